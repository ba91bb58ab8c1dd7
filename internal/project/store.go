// Package project holds the in-memory composition state. The overlay
// list is an immutable-update structure: every mutation swaps in a new
// list, so concurrent readers (preview and timeline rendering the same
// frame) never see a partially edited overlay.
package project

import (
	"sync"
	"time"

	"github.com/reelkit/reelkit/internal/overlay"
	"github.com/reelkit/reelkit/internal/timeline"
)

// Settings fixes the composition canvas and frame rate.
type Settings struct {
	FPS    int
	Width  int
	Height int
	Rows   int
}

// Store is the single source of truth for one composition.
type Store struct {
	mu       sync.RWMutex
	overlays []overlay.Overlay
	settings Settings
	lastID   int
}

// NewStore creates an empty composition with the given settings.
func NewStore(settings Settings) *Store {
	if settings.Rows <= 0 {
		settings.Rows = 5
	}
	if settings.FPS <= 0 {
		settings.FPS = 30
	}
	return &Store{settings: settings}
}

// nextID issues a clock-derived id, bumped to stay monotonic when two
// calls land in the same millisecond. Callers must hold mu.
func (s *Store) nextID() int {
	id := int(time.Now().UnixMilli())
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) visibleRows() []int {
	rows := make([]int, s.settings.Rows)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// Settings returns the composition settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Overlays returns a copy of the current overlay list.
func (s *Store) Overlays() []overlay.Overlay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]overlay.Overlay(nil), s.overlays...)
}

// Get returns the overlay with the given id.
func (s *Store) Get(id int) (overlay.Overlay, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.overlays {
		if o.ID == id {
			return o, true
		}
	}
	return overlay.Overlay{}, false
}

// Duration derives the composition length from the overlay list.
func (s *Store) Duration() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return timeline.DurationInFrames(s.overlays)
}

// Add assigns a fresh id to o, places it on the first available slot and
// appends it. The placed overlay is returned.
func (s *Store) Add(o overlay.Overlay) overlay.Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextID()
	pos := timeline.FindNextAvailablePosition(
		s.overlays, s.visibleRows(), o.DurationInFrames,
		timeline.DurationInFrames(s.overlays),
	)
	o.From = pos.From
	o.Row = pos.Row

	next := append(append([]overlay.Overlay(nil), s.overlays...), o)
	s.overlays = next
	return o
}

// Update replaces the overlay with a matching id (immutable update).
func (s *Store) Update(o overlay.Overlay) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.find(o.ID); !ok {
		return false
	}
	s.overlays = timeline.Replace(s.overlays, o)
	return true
}

// Remove deletes the overlay with the given id.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.find(id); !ok {
		return false
	}
	s.overlays = timeline.Remove(s.overlays, id)
	return true
}

// RemoveRow deletes every overlay on the given row and reports how many
// were removed.
func (s *Store) RemoveRow(row int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.overlays)
	s.overlays = timeline.RemoveRow(s.overlays, row)
	return before - len(s.overlays)
}

// Split cuts the overlay at an absolute frame into two overlays with
// fresh ids. The original is replaced by the two pieces.
func (s *Store) Split(id, atFrame int) (first, second overlay.Overlay, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, found := s.find(id)
	if !found {
		return overlay.Overlay{}, overlay.Overlay{}, false
	}

	first, second, ok = timeline.Split(o, atFrame, s.nextID(), s.nextID())
	if !ok {
		return overlay.Overlay{}, overlay.Overlay{}, false
	}

	next := timeline.Remove(s.overlays, id)
	s.overlays = append(next, first, second)
	return first, second, true
}

// Duplicate clones the overlay under a fresh id, placed through the
// regular placement path.
func (s *Store) Duplicate(id int) (overlay.Overlay, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, found := s.find(id)
	if !found {
		return overlay.Overlay{}, false
	}

	dup := timeline.Duplicate(o, s.overlays, s.visibleRows(), s.nextID())
	s.overlays = append(append([]overlay.Overlay(nil), s.overlays...), dup)
	return dup, true
}

// Load replaces the whole overlay list, e.g. when importing a project
// snapshot. The id counter advances past every loaded id.
func (s *Store) Load(overlays []overlay.Overlay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overlays = append([]overlay.Overlay(nil), overlays...)
	for _, o := range overlays {
		if o.ID > s.lastID {
			s.lastID = o.ID
		}
	}
}

func (s *Store) find(id int) (overlay.Overlay, bool) {
	for _, o := range s.overlays {
		if o.ID == id {
			return o, true
		}
	}
	return overlay.Overlay{}, false
}
