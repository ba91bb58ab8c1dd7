// Package timeline places overlays on rows without overlap and derives
// composition length. Placement always succeeds by construction: when no
// gap fits inside the current composition, the timeline extends at the
// end of the least-occupied row.
package timeline

import (
	"sort"

	"github.com/reelkit/reelkit/internal/overlay"
)

// Position is a computed (row, startFrame) slot.
type Position struct {
	From int `json:"from"`
	Row  int `json:"row"`
}

// FindNextAvailablePosition returns the earliest non-overlapping slot for
// a new overlay of the given duration. Rows are scanned in ascending
// index order among the visible rows; the first gap that fits inside the
// current composition length wins. If no row has such a gap, the overlay
// is appended after the last occupied interval of the row that ends
// soonest, so insertion can never produce an overlap.
func FindNextAvailablePosition(overlays []overlay.Overlay, visibleRows []int, durationInFrames, compositionDurationInFrames int) Position {
	rows := append([]int(nil), visibleRows...)
	if len(rows) == 0 {
		rows = []int{0}
	}
	sort.Ints(rows)

	for _, row := range rows {
		if from, ok := earliestGap(overlays, row, durationInFrames, compositionDurationInFrames); ok {
			return Position{From: from, Row: row}
		}
	}

	// Extension fallback: the row whose occupancy ends soonest, lowest
	// index on ties.
	bestRow, bestEnd := rows[0], rowEnd(overlays, rows[0])
	for _, row := range rows[1:] {
		if end := rowEnd(overlays, row); end < bestEnd {
			bestRow, bestEnd = row, end
		}
	}
	return Position{From: bestEnd, Row: bestRow}
}

// earliestGap finds the first window of the requested duration in row
// that fits without overlap and ends within the composition.
func earliestGap(overlays []overlay.Overlay, row, duration, compositionDuration int) (int, bool) {
	intervals := rowIntervals(overlays, row)

	cursor := 0
	for _, iv := range intervals {
		if iv.from-cursor >= duration {
			return cursor, true
		}
		if iv.end > cursor {
			cursor = iv.end
		}
	}
	if cursor+duration <= compositionDuration {
		return cursor, true
	}
	return 0, false
}

type interval struct {
	from, end int
}

func rowIntervals(overlays []overlay.Overlay, row int) []interval {
	var intervals []interval
	for _, o := range overlays {
		if o.Row == row {
			intervals = append(intervals, interval{from: o.From, end: o.End()})
		}
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].from < intervals[j].from
	})
	return intervals
}

func rowEnd(overlays []overlay.Overlay, row int) int {
	end := 0
	for _, o := range overlays {
		if o.Row == row && o.End() > end {
			end = o.End()
		}
	}
	return end
}

// Split cuts o at an absolute timeline frame, producing two overlays
// with fresh ids that together cover exactly the original frame range.
// Clip-backed overlays have their source offset advanced so the second
// piece continues playback seamlessly. A split point at or outside the
// overlay's bounds is rejected.
func Split(o overlay.Overlay, atFrame, firstID, secondID int) (first, second overlay.Overlay, ok bool) {
	if atFrame <= o.From || atFrame >= o.End() {
		return overlay.Overlay{}, overlay.Overlay{}, false
	}

	first = o.Clone()
	first.ID = firstID
	first.DurationInFrames = atFrame - o.From

	second = o.Clone()
	second.ID = secondID
	second.From = atFrame
	second.DurationInFrames = o.End() - atFrame

	switch o.Type {
	case overlay.KindVideo, overlay.KindWebcam, overlay.KindSound:
		second.VideoStartTime = o.VideoStartTime + (atFrame - o.From)
	}
	return first, second, true
}

// Duplicate clones o under a fresh id and places the copy through the
// regular placement path, so a duplicate can never overlap its original.
func Duplicate(o overlay.Overlay, overlays []overlay.Overlay, visibleRows []int, newID int) overlay.Overlay {
	c := o.Clone()
	c.ID = newID

	pos := FindNextAvailablePosition(overlays, visibleRows, c.DurationInFrames, DurationInFrames(overlays))
	c.From = pos.From
	c.Row = pos.Row
	return c
}

// Replace swaps the overlay with a matching id, returning a new list.
// The input list is never mutated.
func Replace(overlays []overlay.Overlay, updated overlay.Overlay) []overlay.Overlay {
	next := make([]overlay.Overlay, len(overlays))
	for i, o := range overlays {
		if o.ID == updated.ID {
			next[i] = updated
		} else {
			next[i] = o
		}
	}
	return next
}

// Remove drops the overlay with the given id, returning a new list.
func Remove(overlays []overlay.Overlay, id int) []overlay.Overlay {
	next := make([]overlay.Overlay, 0, len(overlays))
	for _, o := range overlays {
		if o.ID != id {
			next = append(next, o)
		}
	}
	return next
}

// RemoveRow drops every overlay on the given row, returning a new list.
// Used when a track itself is deleted.
func RemoveRow(overlays []overlay.Overlay, row int) []overlay.Overlay {
	next := make([]overlay.Overlay, 0, len(overlays))
	for _, o := range overlays {
		if o.Row != row {
			next = append(next, o)
		}
	}
	return next
}
