// Package animation catalogs the named enter/exit animation templates.
// Templates are pure functions of their inputs so that style resolution
// is deterministic and replayable at any frame.
package animation

import (
	"sort"

	"github.com/reelkit/reelkit/internal/easing"
)

// StyleDelta is a partial style record produced by a template. Transform
// and Filter are composable CSS-style function strings; a nil Opacity
// means "leave opacity alone".
type StyleDelta struct {
	Opacity   *float64
	Transform string
	Filter    string
}

// Empty is the no-op delta used for unknown template names.
var Empty = StyleDelta{}

// PhaseFunc computes a delta for one phase. frame is relative to the
// overlay start (0-based); totalDuration is the overlay length in
// frames; animationDuration shapes the curve window.
type PhaseFunc func(frame, totalDuration, animationDuration int, curve easing.Kind) StyleDelta

// Template pairs the enter and exit behavior of a named animation.
type Template struct {
	Enter PhaseFunc
	Exit  PhaseFunc

	// IsWordByWord marks templates whose delta must be applied per
	// word token rather than to the whole container.
	IsWordByWord bool

	RecommendedMinDuration int
	RecommendedMaxDuration int
}

// Lookup returns the template for name. Unknown names report ok=false;
// callers treat that as "no animation", never as an error.
func Lookup(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// Names returns the registered template names in stable order.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// enterProgress maps frame into [0,1] over the leading animation window.
func enterProgress(frame, animationDuration int, curve easing.Kind) float64 {
	return easing.Interpolate(
		float64(frame),
		[2]float64{0, float64(animationDuration)},
		[2]float64{0, 1},
		curve,
		easing.Options{ExtrapolateLeft: easing.Clamp, ExtrapolateRight: easing.Clamp},
	)
}

// exitProgress maps frame into [1,0] over the trailing animation window,
// measured backward from totalDuration.
func exitProgress(frame, totalDuration, animationDuration int, curve easing.Kind) float64 {
	return easing.Interpolate(
		float64(frame),
		[2]float64{float64(totalDuration - animationDuration), float64(totalDuration)},
		[2]float64{1, 0},
		curve,
		easing.Options{ExtrapolateLeft: easing.Clamp, ExtrapolateRight: easing.Clamp},
	)
}

func opacity(v float64) *float64 {
	return &v
}
