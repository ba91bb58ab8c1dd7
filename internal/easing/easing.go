package easing

import "math"

// Kind names a timing curve. Unknown kinds fall back to Linear.
type Kind string

const (
	Linear    Kind = "linear"
	EaseIn    Kind = "easeIn"
	EaseOut   Kind = "easeOut"
	EaseInOut Kind = "easeInOut"
)

// Ease maps a normalized progress value through the named curve.
// Progress is clamped to [0,1] before the curve is applied; callers are
// not required to pre-clamp.
func Ease(progress float64, kind Kind) float64 {
	t := clamp01(progress)

	switch kind {
	case EaseIn:
		return t * t
	case EaseOut:
		return 1 - (1-t)*(1-t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	default:
		return t
	}
}

// Extrapolation controls behavior outside the input range.
type Extrapolation string

const (
	// Clamp pins out-of-range frames to the nearest endpoint.
	Clamp Extrapolation = "clamp"
	// Extend continues the eased mapping past the endpoints.
	Extend Extrapolation = "extend"
)

// Options adjust Interpolate behavior outside the input range.
// The zero value clamps on both sides.
type Options struct {
	ExtrapolateLeft  Extrapolation
	ExtrapolateRight Extrapolation
}

// Interpolate maps frame from the input range into [0,1], applies the
// easing curve, then maps the result into the output range.
//
// A degenerate input range (equal endpoints) is treated as an immediate
// jump to the far endpoint rather than a division by zero.
func Interpolate(frame float64, inputRange, outputRange [2]float64, kind Kind, opts Options) float64 {
	inStart, inEnd := inputRange[0], inputRange[1]
	outStart, outEnd := outputRange[0], outputRange[1]

	if inEnd == inStart {
		if frame < inStart {
			return outStart
		}
		return outEnd
	}

	if frame <= inStart && opts.ExtrapolateLeft != Extend {
		return outStart
	}
	if frame >= inEnd && opts.ExtrapolateRight != Extend {
		return outEnd
	}

	progress := (frame - inStart) / (inEnd - inStart)
	eased := Ease(progress, kind)
	return outStart + (outEnd-outStart)*eased
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
