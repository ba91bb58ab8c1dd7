package overlay

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/reelkit/reelkit/internal/easing"
)

func TestJSONRoundTrip(t *testing.T) {
	opacity := 0.8
	overlays := []Overlay{
		{
			ID: 1, Type: KindVideo, From: 0, DurationInFrames: 120, Row: 0,
			Left: 10, Top: 20, Width: 640, Height: 360, Rotation: 1.5,
			Src: "clips/intro.mp4", VideoStartTime: 30,
			VideoEffect: &VideoEffect{
				Type: EffectZoomReveal,
				Config: &ZoomRevealConfig{
					ZoomConfigs: []ZoomConfig{{
						StartFrame: 0, EndFrame: 100,
						StartX: 0, StartY: 0, StartScale: 1,
						HoldX: 320, HoldY: 180, HoldScale: 2,
						EndX: 0, EndY: 0, EndScale: 1,
						EasingConfig: BezierConfig{P1X: 0.25, P1Y: 0.1, P2X: 0.25, P2Y: 1},
					}},
				},
			},
			Styles: Styles{ObjectFit: "cover"},
		},
		{
			ID: 2, Type: KindText, From: 30, DurationInFrames: 90, Row: 1,
			Width: 400, Height: 200, Content: "Hello\nworld",
			Styles: Styles{
				Animation: &Animation{
					Enter: "fadeWords", Exit: "fade",
					EnterDuration: 20, EnterEasing: easing.EaseInOut,
				},
				Color: "#fff", FontFamily: "Inter",
			},
		},
		{
			ID: 3, Type: KindCaption, From: 0, DurationInFrames: 60, Row: 2,
			Captions: []Caption{{
				Text: "hi there", StartMs: 0, EndMs: 800,
				Words: []CaptionWord{{Word: "hi", StartMs: 0, EndMs: 300}, {Word: "there", StartMs: 300, EndMs: 800}},
			}},
		},
		{
			ID: 4, Type: KindRectangle, From: 10, DurationInFrames: 40, Row: 3,
			Styles: Styles{
				Fill: "#ff0000", Stroke: "#000", StrokeWidth: 2, BorderRadius: 8,
				Draw:    &DrawConfig{Enabled: true, Duration: 25, Direction: "left"},
				Opacity: &opacity,
			},
		},
		{
			ID: 5, Type: KindButtonClick, From: 0, DurationInFrames: 100, Row: 4,
			ButtonText: &ButtonText{Before: "Subscribe", After: "Subscribed"},
			Timing:     &ButtonTiming{ButtonEntryDuration: 15, CursorMovementDuration: 30, ClickDuration: 10, StateChangeDuration: 10},
			Cursor:     &CursorPath{StartPosition: Point{X: 0, Y: 0}, EndPosition: Point{X: 200, Y: 100}, PathCurvature: 0.4},
		},
	}

	data, err := json.Marshal(overlays)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded []Overlay
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(overlays, decoded) {
		t.Errorf("round trip lost data:\nbefore: %+v\nafter:  %+v", overlays, decoded)
	}
}

func TestCloneIsDeep(t *testing.T) {
	o := Overlay{
		ID: 1, Type: KindVideo,
		VideoEffect: &VideoEffect{
			Type:   EffectZoomReveal,
			Config: &ZoomRevealConfig{ZoomConfigs: []ZoomConfig{{StartFrame: 0, EndFrame: 50}}},
		},
		Styles: Styles{Animation: &Animation{Enter: "fade"}},
	}

	c := o.Clone()
	c.VideoEffect.Config.ZoomConfigs[0].EndFrame = 999
	c.Styles.Animation.Enter = "scale"

	if o.VideoEffect.Config.ZoomConfigs[0].EndFrame != 50 {
		t.Error("clone shares zoom config slice with original")
	}
	if o.Styles.Animation.Enter != "fade" {
		t.Error("clone shares animation pointer with original")
	}
}

func TestAnimationDefaults(t *testing.T) {
	var a *Animation
	if got := a.EnterFrames(); got != DefaultAnimationFrames {
		t.Errorf("nil animation EnterFrames = %d, expected %d", got, DefaultAnimationFrames)
	}
	if got := a.EnterCurve(); got != easing.EaseOut {
		t.Errorf("nil animation EnterCurve = %s, expected easeOut", got)
	}
	if got := a.ExitCurve(); got != easing.EaseIn {
		t.Errorf("nil animation ExitCurve = %s, expected easeIn", got)
	}

	a = &Animation{EnterDuration: 20, ExitEasing: easing.Linear}
	if got := a.EnterFrames(); got != 20 {
		t.Errorf("EnterFrames = %d, expected 20", got)
	}
	if got := a.ExitFrames(); got != DefaultAnimationFrames {
		t.Errorf("ExitFrames = %d, expected default %d", got, DefaultAnimationFrames)
	}
	if got := a.ExitCurve(); got != easing.Linear {
		t.Errorf("ExitCurve = %s, expected linear", got)
	}
}

func TestOverlaps(t *testing.T) {
	a := Overlay{From: 0, DurationInFrames: 30}
	b := Overlay{From: 30, DurationInFrames: 30}
	c := Overlay{From: 29, DurationInFrames: 10}

	if a.Overlaps(b) {
		t.Error("touching intervals must not overlap")
	}
	if !a.Overlaps(c) {
		t.Error("intersecting intervals must overlap")
	}
}
