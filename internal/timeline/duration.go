package timeline

import "github.com/reelkit/reelkit/internal/overlay"

// DurationInFrames derives the composition length from the maximum end
// frame across all overlays. It is a pure derived value; callers must
// not cache it anywhere it could drift from the overlay list.
func DurationInFrames(overlays []overlay.Overlay) int {
	max := 0
	for _, o := range overlays {
		if end := o.End(); end > max {
			max = end
		}
	}
	return max
}
