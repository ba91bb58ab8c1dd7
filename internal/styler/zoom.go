package styler

import (
	"fmt"

	"github.com/reelkit/reelkit/internal/overlay"
)

// Zoom-reveal phase split, as proportions of a segment's frame span.
const (
	zoomInShare = 0.4
	holdShare   = 0.2
)

// zoomRevealAt computes the scale transform and transform-origin for a
// zoom-reveal clip at frame. Segments are matched first-wins; a frame
// outside every segment renders centered at scale 1.
func zoomRevealAt(cfg *overlay.ZoomRevealConfig, frame int) (transform, origin string) {
	if cfg == nil {
		return "scale(1)", "50% 50%"
	}

	for _, z := range cfg.ZoomConfigs {
		if z.Contains(frame) {
			x, y, scale := zoomSegmentAt(z, frame)
			return fmt.Sprintf("scale(%.4f)", scale), fmt.Sprintf("%.2fpx %.2fpx", x, y)
		}
	}
	return "scale(1)", "50% 50%"
}

// zoomSegmentAt splits the segment span into zoom-in (40%), hold (20%)
// and zoom-out (40%) phases, with floor'd boundaries, and interpolates
// the keyframe triple inside the active phase.
func zoomSegmentAt(z overlay.ZoomConfig, frame int) (x, y, scale float64) {
	span := z.EndFrame - z.StartFrame
	if span <= 0 {
		return z.HoldX, z.HoldY, z.HoldScale
	}

	zoomInFrames := int(float64(span) * zoomInShare)
	holdFrames := int(float64(span) * holdShare)
	local := frame - z.StartFrame

	switch {
	case local < zoomInFrames:
		t := float64(local) / float64(zoomInFrames)
		p := enhancedEase(t, z.EasingConfig.P1Y, z.EasingConfig.P2Y)
		return lerp(z.StartX, z.HoldX, p), lerp(z.StartY, z.HoldY, p), lerp(z.StartScale, z.HoldScale, p)

	case local < zoomInFrames+holdFrames:
		return z.HoldX, z.HoldY, z.HoldScale

	default:
		outFrames := span - zoomInFrames - holdFrames
		if outFrames <= 0 {
			return z.EndX, z.EndY, z.EndScale
		}
		t := float64(local-zoomInFrames-holdFrames) / float64(outFrames)
		if t > 1 {
			t = 1
		}
		p := enhancedEase(t, z.EasingConfig.P1Y, z.EasingConfig.P2Y)
		return lerp(z.HoldX, z.EndX, p), lerp(z.HoldY, z.EndY, p), lerp(z.HoldScale, z.EndScale, p)
	}
}

// enhancedEase pre-warps t with a smoothstep, then evaluates a cubic
// bezier from the y control values only. The x control values are
// intentionally unused to stay output-compatible with existing
// compositions.
func enhancedEase(t, p1y, p2y float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	s := t * t * (3 - 2*t)
	u := 1 - s
	return 3*u*u*s*p1y + 3*u*s*s*p2y + s*s*s
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
