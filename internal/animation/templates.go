package animation

import (
	"fmt"
	"math"

	"github.com/reelkit/reelkit/internal/easing"
)

var templates = map[string]Template{
	"fade": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			return StyleDelta{Opacity: opacity(enterProgress(frame, dur, curve))}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			return StyleDelta{Opacity: opacity(exitProgress(frame, total, dur, curve))}
		},
		RecommendedMinDuration: 10,
		RecommendedMaxDuration: 45,
	},

	"slide": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := enterProgress(frame, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("translateY(%.2fpx)", (1-p)*40),
			}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := exitProgress(frame, total, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("translateY(%.2fpx)", (1-p)*40),
			}
		},
		RecommendedMinDuration: 10,
		RecommendedMaxDuration: 30,
	},

	"scale": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := enterProgress(frame, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("scale(%.4f)", 0.8+0.2*p),
			}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := exitProgress(frame, total, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("scale(%.4f)", 0.8+0.2*p),
			}
		},
		RecommendedMinDuration: 10,
		RecommendedMaxDuration: 30,
	},

	"bounce": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := enterProgress(frame, dur, curve)
			// Overshoot to 1.1 at 70% of the window, then settle.
			var s float64
			if p < 0.7 {
				s = (p / 0.7) * 1.1
			} else {
				s = 1.1 - 0.1*((p-0.7)/0.3)
			}
			return StyleDelta{
				Opacity:   opacity(math.Min(1, p*2)),
				Transform: fmt.Sprintf("scale(%.4f)", s),
			}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := exitProgress(frame, total, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("scale(%.4f)", p),
			}
		},
		RecommendedMinDuration: 15,
		RecommendedMaxDuration: 45,
	},

	"flip": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := enterProgress(frame, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("perspective(800px) rotateY(%.2fdeg)", (1-p)*90),
			}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := exitProgress(frame, total, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("perspective(800px) rotateY(%.2fdeg)", (1-p)*-90),
			}
		},
		RecommendedMinDuration: 15,
		RecommendedMaxDuration: 40,
	},

	"elastic": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := enterProgress(frame, dur, curve)
			// Damped oscillation around the rest scale.
			s := 1.0
			if p < 1 {
				s = 1 + math.Exp(-4*p)*math.Sin(p*3*math.Pi)*0.3 - math.Exp(-4*p)
			}
			return StyleDelta{
				Opacity:   opacity(math.Min(1, p*3)),
				Transform: fmt.Sprintf("scale(%.4f)", s),
			}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := exitProgress(frame, total, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("scale(%.4f)", p),
			}
		},
		RecommendedMinDuration: 20,
		RecommendedMaxDuration: 60,
	},

	"rotate": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := enterProgress(frame, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("rotate(%.2fdeg) scale(%.4f)", (1-p)*-180, 0.5+0.5*p),
			}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := exitProgress(frame, total, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("rotate(%.2fdeg) scale(%.4f)", (1-p)*180, 0.5+0.5*p),
			}
		},
		RecommendedMinDuration: 15,
		RecommendedMaxDuration: 45,
	},

	"blur": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := enterProgress(frame, dur, curve)
			return StyleDelta{
				Opacity: opacity(p),
				Filter:  fmt.Sprintf("blur(%.2fpx)", (1-p)*10),
			}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := exitProgress(frame, total, dur, curve)
			return StyleDelta{
				Opacity: opacity(p),
				Filter:  fmt.Sprintf("blur(%.2fpx)", (1-p)*10),
			}
		},
		RecommendedMinDuration: 10,
		RecommendedMaxDuration: 30,
	},

	"blurScale": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := enterProgress(frame, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("scale(%.4f)", 1.2-0.2*p),
				Filter:    fmt.Sprintf("blur(%.2fpx)", (1-p)*8),
			}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			p := exitProgress(frame, total, dur, curve)
			return StyleDelta{
				Opacity:   opacity(p),
				Transform: fmt.Sprintf("scale(%.4f)", 1.2-0.2*p),
				Filter:    fmt.Sprintf("blur(%.2fpx)", (1-p)*8),
			}
		},
		RecommendedMinDuration: 15,
		RecommendedMaxDuration: 40,
	},

	// fadeWords staggers opacity per word token. The container-level
	// delta below is only a fallback; callers detect IsWordByWord and
	// sequence tokens themselves.
	"fadeWords": {
		Enter: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			return StyleDelta{Opacity: opacity(enterProgress(frame, dur, curve))}
		},
		Exit: func(frame, total, dur int, curve easing.Kind) StyleDelta {
			return StyleDelta{Opacity: opacity(exitProgress(frame, total, dur, curve))}
		},
		IsWordByWord:           true,
		RecommendedMinDuration: 20,
		RecommendedMaxDuration: 90,
	},
}
