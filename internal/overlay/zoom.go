package overlay

// VideoEffectType names the special-cased clip effects.
type VideoEffectType string

const (
	EffectNone       VideoEffectType = "none"
	EffectZoomReveal VideoEffectType = "zoom_reveal"
)

// VideoEffect attaches an effect to a clip overlay. A zoom-reveal effect
// replaces the overlay's enter/exit animations entirely.
type VideoEffect struct {
	Type   VideoEffectType   `json:"type"`
	Config *ZoomRevealConfig `json:"config,omitempty"`
}

// ZoomRevealConfig sequences keyframed pan/scale segments over a clip.
type ZoomRevealConfig struct {
	ZoomConfigs       []ZoomConfig `json:"zoomConfigs"`
	ShowZoomIndicator bool         `json:"showZoomIndicator,omitempty"`
}

// ZoomConfig is one keyframed zoom segment. StartFrame must be less than
// EndFrame; when segments overlap in frame range the first match wins.
type ZoomConfig struct {
	StartFrame int `json:"startFrame"`
	EndFrame   int `json:"endFrame"`

	StartX     float64 `json:"startX"`
	StartY     float64 `json:"startY"`
	StartScale float64 `json:"startScale"`

	HoldX     float64 `json:"holdX"`
	HoldY     float64 `json:"holdY"`
	HoldScale float64 `json:"holdScale"`

	EndX     float64 `json:"endX"`
	EndY     float64 `json:"endY"`
	EndScale float64 `json:"endScale"`

	EasingConfig BezierConfig `json:"easingConfig"`
}

// Contains reports whether frame falls inside this segment's range.
func (z ZoomConfig) Contains(frame int) bool {
	return frame >= z.StartFrame && frame <= z.EndFrame
}

// BezierConfig carries cubic-bezier control points. Only the y
// coordinates feed the eased output; the x coordinates are kept for
// wire compatibility.
type BezierConfig struct {
	P1X float64 `json:"p1x"`
	P1Y float64 `json:"p1y"`
	P2X float64 `json:"p2x"`
	P2Y float64 `json:"p2y"`
}
