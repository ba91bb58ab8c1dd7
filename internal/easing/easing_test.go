package easing

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	kinds := []Kind{Linear, EaseIn, EaseOut, EaseInOut}

	for _, kind := range kinds {
		if got := Ease(0, kind); got != 0 {
			t.Errorf("%s: Ease(0) = %f, expected 0", kind, got)
		}
		if got := Ease(1, kind); got != 1 {
			t.Errorf("%s: Ease(1) = %f, expected 1", kind, got)
		}
	}
}

func TestEaseClampsProgress(t *testing.T) {
	kinds := []Kind{Linear, EaseIn, EaseOut, EaseInOut}

	for _, kind := range kinds {
		if got := Ease(-0.5, kind); got != 0 {
			t.Errorf("%s: Ease(-0.5) = %f, expected 0", kind, got)
		}
		if got := Ease(1.5, kind); got != 1 {
			t.Errorf("%s: Ease(1.5) = %f, expected 1", kind, got)
		}
	}
}

func TestEaseMidpoints(t *testing.T) {
	if got := Ease(0.5, Linear); got != 0.5 {
		t.Errorf("linear midpoint = %f, expected 0.5", got)
	}
	if got := Ease(0.5, EaseIn); got != 0.25 {
		t.Errorf("easeIn midpoint = %f, expected 0.25", got)
	}
	if got := Ease(0.5, EaseOut); got != 0.75 {
		t.Errorf("easeOut midpoint = %f, expected 0.75", got)
	}
	if got := Ease(0.5, EaseInOut); got != 0.5 {
		t.Errorf("easeInOut midpoint = %f, expected 0.5", got)
	}
}

func TestEaseUnknownKindIsLinear(t *testing.T) {
	if got := Ease(0.3, Kind("bogus")); got != 0.3 {
		t.Errorf("unknown kind = %f, expected linear 0.3", got)
	}
}

func TestInterpolateBoundaryClamp(t *testing.T) {
	kinds := []Kind{Linear, EaseIn, EaseOut, EaseInOut}

	for _, kind := range kinds {
		opts := Options{ExtrapolateLeft: Clamp, ExtrapolateRight: Clamp}

		if got := Interpolate(5, [2]float64{10, 40}, [2]float64{0, 1}, kind, opts); got != 0 {
			t.Errorf("%s: frame before range = %f, expected exactly 0", kind, got)
		}
		if got := Interpolate(10, [2]float64{10, 40}, [2]float64{0, 1}, kind, opts); got != 0 {
			t.Errorf("%s: frame at start = %f, expected exactly 0", kind, got)
		}
		if got := Interpolate(40, [2]float64{10, 40}, [2]float64{0, 1}, kind, opts); got != 1 {
			t.Errorf("%s: frame at end = %f, expected exactly 1", kind, got)
		}
		if got := Interpolate(100, [2]float64{10, 40}, [2]float64{0, 1}, kind, opts); got != 1 {
			t.Errorf("%s: frame past range = %f, expected exactly 1", kind, got)
		}
	}
}

func TestInterpolateLinearMapping(t *testing.T) {
	got := Interpolate(15, [2]float64{10, 20}, [2]float64{100, 200}, Linear, Options{})
	if math.Abs(got-150) > 1e-9 {
		t.Errorf("linear midpoint = %f, expected 150", got)
	}
}

func TestInterpolateReversedOutputRange(t *testing.T) {
	got := Interpolate(10, [2]float64{0, 20}, [2]float64{1, 0}, Linear, Options{})
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("reversed range midpoint = %f, expected 0.5", got)
	}
	if got := Interpolate(20, [2]float64{0, 20}, [2]float64{1, 0}, Linear, Options{}); got != 0 {
		t.Errorf("reversed range end = %f, expected 0", got)
	}
}

func TestInterpolateDegenerateRange(t *testing.T) {
	// Equal endpoints must jump to the far output, never NaN.
	got := Interpolate(5, [2]float64{5, 5}, [2]float64{0, 1}, Linear, Options{})
	if math.IsNaN(got) {
		t.Fatal("degenerate range produced NaN")
	}
	if got != 1 {
		t.Errorf("degenerate range at boundary = %f, expected 1", got)
	}
	if got := Interpolate(4, [2]float64{5, 5}, [2]float64{0, 1}, Linear, Options{}); got != 0 {
		t.Errorf("degenerate range before boundary = %f, expected 0", got)
	}
}
