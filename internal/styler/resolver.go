// Package styler resolves the concrete render style of an overlay at an
// arbitrary playback frame. Resolution is a pure read: it never fails
// for normal-range input and is safe to call for any frame in any order,
// which is what makes random seeking and pre-fetch rendering possible.
package styler

import (
	"github.com/reelkit/reelkit/internal/animation"
	"github.com/reelkit/reelkit/internal/overlay"
)

// ExitPhaseFrames is the fixed trailing window during which an overlay is
// considered to be in its exit phase. It is deliberately distinct from the
// configurable exit animation duration, which only shapes the curve inside
// the phase.
const ExitPhaseFrames = 30

// Style is the resolved render style for one frame.
type Style struct {
	Opacity         float64 `json:"opacity"`
	Transform       string  `json:"transform,omitempty"`
	TransformOrigin string  `json:"transformOrigin,omitempty"`
	Filter          string  `json:"filter,omitempty"`

	// FontSize is set for text content only; zero means "not text".
	FontSize float64 `json:"fontSize,omitempty"`

	// Words is non-nil when a word-by-word template is active; the
	// container opacity then stays at the base value and each token
	// carries its own.
	Words []WordStyle `json:"words,omitempty"`
}

// WordStyle is the per-token style of word-by-word animated text.
type WordStyle struct {
	Text    string  `json:"text"`
	Line    int     `json:"line"`
	Opacity float64 `json:"opacity"`
}

// Resolve computes the style of o at currentFrame, where currentFrame is
// relative to the overlay's own start (0-based).
func Resolve(o overlay.Overlay, currentFrame int) Style {
	style := Style{Opacity: baseOpacity(o)}

	if o.Type == overlay.KindText {
		style.FontSize = o.Styles.FontSize
		if style.FontSize <= 0 {
			style.FontSize = AutoFontSize(o.Content, o.Width, o.Height)
		}
	}

	// A zoom-reveal clip bypasses enter/exit animation entirely.
	if o.VideoEffect != nil && o.VideoEffect.Type == overlay.EffectZoomReveal {
		transform, origin := zoomRevealAt(o.VideoEffect.Config, currentFrame)
		style.Transform = transform
		style.TransformOrigin = origin
		return style
	}

	anim := o.Styles.Animation
	enterTmpl, hasEnter := lookupPhase(anim, true)
	exitTmpl, hasExit := lookupPhase(anim, false)

	isExitPhase := currentFrame >= o.DurationInFrames-ExitPhaseFrames

	wordByWord := (hasEnter && enterTmpl.IsWordByWord) || (hasExit && exitTmpl.IsWordByWord)
	if wordByWord && o.Content != "" {
		style.Words = resolveWords(o, currentFrame, isExitPhase, enterTmpl, hasEnter, exitTmpl, hasExit)
		return style
	}

	var delta animation.StyleDelta
	if isExitPhase {
		if hasExit {
			delta = exitTmpl.Exit(currentFrame, o.DurationInFrames, anim.ExitFrames(), anim.ExitCurve())
		}
	} else {
		if hasEnter {
			delta = enterTmpl.Enter(currentFrame, o.DurationInFrames, anim.EnterFrames(), anim.EnterCurve())
		}
	}

	if delta.Opacity != nil {
		style.Opacity *= *delta.Opacity
	}
	style.Transform = delta.Transform
	if delta.Filter != "" {
		style.Filter = joinFilters(o.Styles.Filter, delta.Filter)
	} else {
		style.Filter = o.Styles.Filter
	}
	return style
}

func baseOpacity(o overlay.Overlay) float64 {
	if o.Styles.Opacity != nil {
		return *o.Styles.Opacity
	}
	return 1
}

// lookupPhase resolves the configured template for one phase. A missing
// or unknown name degrades to "no animation".
func lookupPhase(anim *overlay.Animation, enter bool) (animation.Template, bool) {
	if anim == nil {
		return animation.Template{}, false
	}
	name := anim.Exit
	if enter {
		name = anim.Enter
	}
	if name == "" {
		return animation.Template{}, false
	}
	return animation.Lookup(name)
}

func joinFilters(base, extra string) string {
	if base == "" {
		return extra
	}
	if extra == "" {
		return base
	}
	return base + " " + extra
}
