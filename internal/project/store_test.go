package project

import (
	"testing"

	"github.com/reelkit/reelkit/internal/overlay"
)

func newTestStore() *Store {
	return NewStore(Settings{FPS: 30, Width: 1280, Height: 720, Rows: 3})
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	s := newTestStore()

	a := s.Add(overlay.Overlay{Type: overlay.KindVideo, DurationInFrames: 60})
	b := s.Add(overlay.Overlay{Type: overlay.KindVideo, DurationInFrames: 60})
	c := s.Add(overlay.Overlay{Type: overlay.KindVideo, DurationInFrames: 60})

	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("ids not monotonic: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestAddPlacesWithoutOverlap(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 8; i++ {
		s.Add(overlay.Overlay{Type: overlay.KindVideo, DurationInFrames: 60})
	}

	overlays := s.Overlays()
	for i := 0; i < len(overlays); i++ {
		for j := i + 1; j < len(overlays); j++ {
			a, b := overlays[i], overlays[j]
			if a.Row == b.Row && a.Overlaps(b) {
				t.Fatalf("overlays %d and %d overlap in row %d", a.ID, b.ID, a.Row)
			}
		}
	}
}

func TestOverlaysReturnsCopy(t *testing.T) {
	s := newTestStore()
	s.Add(overlay.Overlay{Type: overlay.KindText, DurationInFrames: 30, Content: "hi"})

	snapshot := s.Overlays()
	snapshot[0].Content = "mutated"

	if got := s.Overlays()[0].Content; got != "hi" {
		t.Errorf("external mutation leaked into store: %q", got)
	}
}

func TestSplitReplacesOriginal(t *testing.T) {
	s := newTestStore()
	o := s.Add(overlay.Overlay{Type: overlay.KindVideo, DurationInFrames: 100})

	first, second, ok := s.Split(o.ID, 40)
	if !ok {
		t.Fatal("split must succeed inside bounds")
	}

	if _, found := s.Get(o.ID); found {
		t.Error("original overlay must be gone after split")
	}
	if _, found := s.Get(first.ID); !found {
		t.Error("first piece missing from store")
	}
	if _, found := s.Get(second.ID); !found {
		t.Error("second piece missing from store")
	}
	if got := s.Duration(); got != 100 {
		t.Errorf("duration after split = %d, expected 100", got)
	}
}

func TestSplitOutOfBoundsIsNoOp(t *testing.T) {
	s := newTestStore()
	o := s.Add(overlay.Overlay{Type: overlay.KindVideo, DurationInFrames: 100})

	if _, _, ok := s.Split(o.ID, 0); ok {
		t.Error("split at start frame must be rejected")
	}
	if len(s.Overlays()) != 1 {
		t.Error("rejected split must leave the list untouched")
	}
}

func TestDurationTracksMutations(t *testing.T) {
	s := newTestStore()

	a := s.Add(overlay.Overlay{Type: overlay.KindVideo, DurationInFrames: 30})
	if got := s.Duration(); got != 30 {
		t.Errorf("duration = %d, expected 30", got)
	}

	b := a
	b.DurationInFrames = 80
	s.Update(b)
	if got := s.Duration(); got != 80 {
		t.Errorf("duration after update = %d, expected 80", got)
	}

	s.Remove(a.ID)
	if got := s.Duration(); got != 0 {
		t.Errorf("duration after remove = %d, expected 0", got)
	}
}

func TestLoadAdvancesIDCounter(t *testing.T) {
	s := newTestStore()
	s.Load([]overlay.Overlay{
		{ID: 9_999_999_999_999, Type: overlay.KindVideo, From: 0, DurationInFrames: 30},
	})

	added := s.Add(overlay.Overlay{Type: overlay.KindVideo, DurationInFrames: 30})
	if added.ID <= 9_999_999_999_999 {
		t.Errorf("id %d collides with loaded ids", added.ID)
	}
}

func TestRemoveRow(t *testing.T) {
	s := newTestStore()
	o := s.Add(overlay.Overlay{Type: overlay.KindVideo, DurationInFrames: 60})

	if removed := s.RemoveRow(o.Row); removed != 1 {
		t.Errorf("removed %d overlays, expected 1", removed)
	}
	if len(s.Overlays()) != 0 {
		t.Error("row delete left overlays behind")
	}
}
