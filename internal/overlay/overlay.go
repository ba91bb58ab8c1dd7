// Package overlay defines the timed, layered elements that make up a
// composition. The overlay list is the serialization unit of a project:
// everything here stays plain and JSON-representable.
package overlay

import "github.com/reelkit/reelkit/internal/easing"

// Kind discriminates the overlay variants.
type Kind string

const (
	KindText        Kind = "text"
	KindVideo       Kind = "video"
	KindSound       Kind = "sound"
	KindCaption     Kind = "caption"
	KindImage       Kind = "image"
	KindRectangle   Kind = "rectangle"
	KindWebcam      Kind = "webcam"
	KindButtonClick Kind = "button_click"
)

// Kinds lists every valid overlay variant.
var Kinds = []Kind{
	KindText, KindVideo, KindSound, KindCaption,
	KindImage, KindRectangle, KindWebcam, KindButtonClick,
}

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Overlay is a single timed, positioned element on the timeline.
//
// Variant-specific payloads are optional fields gated by Type; unused
// fields stay at their zero value and are omitted from JSON.
type Overlay struct {
	ID               int     `json:"id"`
	Type             Kind    `json:"type"`
	From             int     `json:"from"`
	DurationInFrames int     `json:"durationInFrames"`
	Row              int     `json:"row"`
	Left             float64 `json:"left"`
	Top              float64 `json:"top"`
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	Rotation         float64 `json:"rotation"`

	// IsDragging is a transient UI flag; it round-trips but carries no
	// meaning once persisted.
	IsDragging bool `json:"isDragging"`

	// Content holds the text for text and floating-text overlays.
	// It may contain newlines.
	Content string `json:"content,omitempty"`

	// Src points at the media for video, image, sound and webcam overlays.
	Src string `json:"src,omitempty"`

	// VideoStartTime is the source offset, in frames, where playback of a
	// clip begins. Adjusted when a clip is split.
	VideoStartTime int          `json:"videoStartTime,omitempty"`
	VideoEffect    *VideoEffect `json:"videoEffect,omitempty"`

	Captions []Caption `json:"captions,omitempty"`

	ButtonText *ButtonText   `json:"buttonText,omitempty"`
	Timing     *ButtonTiming `json:"timing,omitempty"`
	Cursor     *CursorPath   `json:"cursor,omitempty"`

	Styles Styles `json:"styles"`
}

// End returns the exclusive end frame on the global timeline.
func (o Overlay) End() int {
	return o.From + o.DurationInFrames
}

// Overlaps reports whether two overlays occupy intersecting frame ranges.
// Row membership is not considered.
func (o Overlay) Overlaps(other Overlay) bool {
	return o.From < other.End() && other.From < o.End()
}

// Clone returns a deep copy. Mutating the copy never affects the
// original, which keeps immutable list updates safe.
func (o Overlay) Clone() Overlay {
	c := o
	if o.VideoEffect != nil {
		ve := *o.VideoEffect
		if o.VideoEffect.Config != nil {
			cfg := *o.VideoEffect.Config
			cfg.ZoomConfigs = append([]ZoomConfig(nil), o.VideoEffect.Config.ZoomConfigs...)
			ve.Config = &cfg
		}
		c.VideoEffect = &ve
	}
	if o.Captions != nil {
		c.Captions = make([]Caption, len(o.Captions))
		for i, cpt := range o.Captions {
			cpt.Words = append([]CaptionWord(nil), cpt.Words...)
			c.Captions[i] = cpt
		}
	}
	if o.ButtonText != nil {
		bt := *o.ButtonText
		c.ButtonText = &bt
	}
	if o.Timing != nil {
		tm := *o.Timing
		c.Timing = &tm
	}
	if o.Cursor != nil {
		cur := *o.Cursor
		c.Cursor = &cur
	}
	if o.Styles.Animation != nil {
		anim := *o.Styles.Animation
		c.Styles.Animation = &anim
	}
	if o.Styles.Opacity != nil {
		op := *o.Styles.Opacity
		c.Styles.Opacity = &op
	}
	if o.Styles.Draw != nil {
		d := *o.Styles.Draw
		c.Styles.Draw = &d
	}
	return c
}

// Styles is the per-variant style bag. Every variant may carry an
// animation configuration; the rest of the fields apply to whichever
// variants render them.
type Styles struct {
	Animation *Animation `json:"animation,omitempty"`
	Opacity   *float64   `json:"opacity,omitempty"`

	// Typography (text, caption, button overlays).
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontWeight string  `json:"fontWeight,omitempty"`
	Color      string  `json:"color,omitempty"`
	Background string  `json:"background,omitempty"`
	TextAlign  string  `json:"textAlign,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty"`

	// Shape (rectangle overlays).
	Fill         string      `json:"fill,omitempty"`
	Stroke       string      `json:"stroke,omitempty"`
	StrokeWidth  float64     `json:"strokeWidth,omitempty"`
	BorderRadius float64     `json:"borderRadius,omitempty"`
	Draw         *DrawConfig `json:"draw,omitempty"`

	// Media fitting (video, image, webcam overlays).
	ObjectFit string `json:"objectFit,omitempty"`
	Filter    string `json:"filter,omitempty"`
}

// DefaultAnimationFrames is the animation duration used when an overlay
// does not configure one.
const DefaultAnimationFrames = 15

// Animation configures the enter and exit templates of an overlay.
// Empty template names mean no animation for that phase.
type Animation struct {
	Enter         string      `json:"enter,omitempty"`
	Exit          string      `json:"exit,omitempty"`
	EnterDuration int         `json:"enterDuration,omitempty"`
	ExitDuration  int         `json:"exitDuration,omitempty"`
	EnterEasing   easing.Kind `json:"enterEasing,omitempty"`
	ExitEasing    easing.Kind `json:"exitEasing,omitempty"`
}

// EnterFrames returns the configured enter duration or the default.
func (a *Animation) EnterFrames() int {
	if a == nil || a.EnterDuration <= 0 {
		return DefaultAnimationFrames
	}
	return a.EnterDuration
}

// ExitFrames returns the configured exit duration or the default.
func (a *Animation) ExitFrames() int {
	if a == nil || a.ExitDuration <= 0 {
		return DefaultAnimationFrames
	}
	return a.ExitDuration
}

// EnterCurve returns the configured enter easing, defaulting to easeOut.
func (a *Animation) EnterCurve() easing.Kind {
	if a == nil || a.EnterEasing == "" {
		return easing.EaseOut
	}
	return a.EnterEasing
}

// ExitCurve returns the configured exit easing, defaulting to easeIn.
func (a *Animation) ExitCurve() easing.Kind {
	if a == nil || a.ExitEasing == "" {
		return easing.EaseIn
	}
	return a.ExitEasing
}

// DrawConfig animates a rectangle being drawn on.
type DrawConfig struct {
	Enabled   bool   `json:"enabled"`
	Duration  int    `json:"duration"`
	Direction string `json:"direction"`
}

// Caption is a timed subtitle block with word-level timings.
type Caption struct {
	Text    string        `json:"text"`
	StartMs int           `json:"startMs"`
	EndMs   int           `json:"endMs"`
	Words   []CaptionWord `json:"words,omitempty"`
}

// CaptionWord is a single word within a caption.
type CaptionWord struct {
	Word    string `json:"word"`
	StartMs int    `json:"startMs"`
	EndMs   int    `json:"endMs"`
}

// ButtonText holds the before/after labels of a button-click overlay.
type ButtonText struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// ButtonTiming stages a button-click overlay, all values in frames.
type ButtonTiming struct {
	ButtonEntryDuration    int `json:"buttonEntryDuration"`
	CursorMovementDuration int `json:"cursorMovementDuration"`
	ClickDuration          int `json:"clickDuration"`
	StateChangeDuration    int `json:"stateChangeDuration"`
}

// Point is a position in canvas pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CursorPath describes the cursor flight of a button-click overlay.
type CursorPath struct {
	StartPosition Point   `json:"startPosition"`
	EndPosition   Point   `json:"endPosition"`
	PathCurvature float64 `json:"pathCurvature"`
}
