package timeline

import (
	"testing"

	"github.com/reelkit/reelkit/internal/overlay"
)

// assertNoRowOverlaps checks the core placement invariant: within one
// row, overlay frame ranges are pairwise disjoint.
func assertNoRowOverlaps(t *testing.T, overlays []overlay.Overlay) {
	t.Helper()
	for i := 0; i < len(overlays); i++ {
		for j := i + 1; j < len(overlays); j++ {
			a, b := overlays[i], overlays[j]
			if a.Row == b.Row && a.Overlaps(b) {
				t.Fatalf("overlays %d and %d overlap in row %d: [%d,%d) vs [%d,%d)",
					a.ID, b.ID, a.Row, a.From, a.End(), b.From, b.End())
			}
		}
	}
}

func place(overlays []overlay.Overlay, rows []int, id, duration int) []overlay.Overlay {
	pos := FindNextAvailablePosition(overlays, rows, duration, DurationInFrames(overlays))
	return append(overlays, overlay.Overlay{
		ID: id, Type: overlay.KindVideo,
		From: pos.From, Row: pos.Row, DurationInFrames: duration,
	})
}

func TestBasicPlacement(t *testing.T) {
	rows := []int{0, 1, 2}

	var overlays []overlay.Overlay
	overlays = place(overlays, rows, 1, 60)
	overlays = place(overlays, rows, 2, 60)

	if overlays[0].From != 0 || overlays[0].Row != 0 {
		t.Errorf("first overlay placed at row %d frame %d, expected row 0 frame 0",
			overlays[0].Row, overlays[0].From)
	}
	assertNoRowOverlaps(t, overlays)
}

func TestPlacementFillsGaps(t *testing.T) {
	rows := []int{0}
	overlays := []overlay.Overlay{
		{ID: 1, Row: 0, From: 0, DurationInFrames: 30},
		{ID: 2, Row: 0, From: 100, DurationInFrames: 50},
	}

	pos := FindNextAvailablePosition(overlays, rows, 60, DurationInFrames(overlays))
	if pos.Row != 0 || pos.From != 30 {
		t.Errorf("expected gap at row 0 frame 30, got row %d frame %d", pos.Row, pos.From)
	}
}

func TestPlacementExtendsWhenNoGap(t *testing.T) {
	rows := []int{0}
	overlays := []overlay.Overlay{
		{ID: 1, Row: 0, From: 0, DurationInFrames: 100},
	}

	pos := FindNextAvailablePosition(overlays, rows, 60, DurationInFrames(overlays))
	if pos.Row != 0 || pos.From != 100 {
		t.Errorf("expected extension at row 0 frame 100, got row %d frame %d", pos.Row, pos.From)
	}
}

func TestPlacementInvariantUnderManyInsertions(t *testing.T) {
	rows := []int{0, 1, 2}

	var overlays []overlay.Overlay
	durations := []int{60, 45, 90, 30, 120, 15, 75, 60, 30, 45, 200, 10}
	for i, d := range durations {
		overlays = place(overlays, rows, i+1, d)
	}
	assertNoRowOverlaps(t, overlays)
}

func TestSplitRoundTrip(t *testing.T) {
	o := overlay.Overlay{
		ID: 1, Type: overlay.KindVideo, Row: 0,
		From: 20, DurationInFrames: 100, VideoStartTime: 10,
	}

	first, second, ok := Split(o, 50, 2, 3)
	if !ok {
		t.Fatal("split inside bounds must succeed")
	}

	if first.From != 20 || first.DurationInFrames != 30 {
		t.Errorf("first piece = [%d,%d), expected [20,50)", first.From, first.End())
	}
	if second.From != 50 || second.DurationInFrames != 70 {
		t.Errorf("second piece = [%d,%d), expected [50,120)", second.From, second.End())
	}
	if first.End() != second.From {
		t.Errorf("gap between pieces: first ends %d, second starts %d", first.End(), second.From)
	}
	if first.From != o.From || second.End() != o.End() {
		t.Error("pieces do not reconstruct the original frame range")
	}
	if second.VideoStartTime != 40 {
		t.Errorf("second piece source offset = %d, expected 40", second.VideoStartTime)
	}
	if first.ID == o.ID || second.ID == o.ID || first.ID == second.ID {
		t.Error("split pieces must receive fresh distinct ids")
	}
}

func TestSplitOutOfBoundsRejected(t *testing.T) {
	o := overlay.Overlay{ID: 1, From: 20, DurationInFrames: 100}

	for _, at := range []int{0, 20, 120, 500} {
		if _, _, ok := Split(o, at, 2, 3); ok {
			t.Errorf("split at %d must be rejected", at)
		}
	}
}

func TestDuplicateNeverOverlapsOriginal(t *testing.T) {
	rows := []int{0, 1}
	overlays := []overlay.Overlay{
		{ID: 1, Row: 0, From: 0, DurationInFrames: 60},
	}

	dup := Duplicate(overlays[0], overlays, rows, 2)
	overlays = append(overlays, dup)

	if dup.ID != 2 {
		t.Errorf("duplicate id = %d, expected 2", dup.ID)
	}
	assertNoRowOverlaps(t, overlays)
}

func TestReplaceIsImmutable(t *testing.T) {
	overlays := []overlay.Overlay{
		{ID: 1, From: 0, DurationInFrames: 30},
		{ID: 2, From: 30, DurationInFrames: 30},
	}

	updated := overlays[1]
	updated.DurationInFrames = 45
	next := Replace(overlays, updated)

	if overlays[1].DurationInFrames != 30 {
		t.Error("Replace mutated the input list")
	}
	if next[1].DurationInFrames != 45 {
		t.Error("Replace did not apply the update")
	}
}

func TestRemoveRow(t *testing.T) {
	overlays := []overlay.Overlay{
		{ID: 1, Row: 0, From: 0, DurationInFrames: 30},
		{ID: 2, Row: 1, From: 0, DurationInFrames: 30},
		{ID: 3, Row: 1, From: 40, DurationInFrames: 30},
		{ID: 4, Row: 2, From: 0, DurationInFrames: 30},
	}

	next := RemoveRow(overlays, 1)
	if len(next) != 2 {
		t.Fatalf("expected 2 overlays after row delete, got %d", len(next))
	}
	for _, o := range next {
		if o.Row == 1 {
			t.Errorf("overlay %d still on deleted row", o.ID)
		}
	}
	if len(overlays) != 4 {
		t.Error("RemoveRow mutated the input list")
	}
}

func TestDurationAggregation(t *testing.T) {
	overlays := []overlay.Overlay{
		{ID: 1, From: 0, DurationInFrames: 30},
		{ID: 2, From: 20, DurationInFrames: 50},
	}

	if got := DurationInFrames(overlays); got != 70 {
		t.Errorf("composition duration = %d, expected 70", got)
	}
	if got := DurationInFrames(nil); got != 0 {
		t.Errorf("empty composition duration = %d, expected 0", got)
	}
}
