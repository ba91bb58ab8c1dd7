package styler

import (
	"regexp"
	"strings"

	"github.com/reelkit/reelkit/internal/animation"
	"github.com/reelkit/reelkit/internal/easing"
	"github.com/reelkit/reelkit/internal/overlay"
)

// Token is one fade-able unit of word-by-word text. Runs of whitespace
// and punctuation are their own tokens so spacing survives the fade.
type Token struct {
	Text string
	Line int
}

// tokenPattern splits a line into word runs and delimiter runs.
var tokenPattern = regexp.MustCompile(`[\s\p{P}]+|[^\s\p{P}]+`)

// Tokenize splits content into per-line tokens with a global ordering.
func Tokenize(content string) []Token {
	var tokens []Token
	for line, text := range strings.Split(content, "\n") {
		for _, run := range tokenPattern.FindAllString(text, -1) {
			tokens = append(tokens, Token{Text: run, Line: line})
		}
	}
	return tokens
}

// resolveWords computes the staggered per-token opacities for the active
// phase. Entering tokens hold at 0 before their window opens; exiting
// tokens hold at 1 until theirs does, and disappear in reverse order so
// the last word to appear is the first to go.
func resolveWords(o overlay.Overlay, currentFrame int, isExitPhase bool, enterTmpl animation.Template, hasEnter bool, exitTmpl animation.Template, hasExit bool) []WordStyle {
	tokens := Tokenize(o.Content)
	words := make([]WordStyle, len(tokens))
	base := baseOpacity(o)
	anim := o.Styles.Animation

	for i, tok := range tokens {
		op := 1.0

		if isExitPhase {
			switch {
			case hasExit && exitTmpl.IsWordByWord:
				op = exitTokenOpacity(i, currentFrame, o.DurationInFrames, anim)
			case hasExit:
				delta := exitTmpl.Exit(currentFrame, o.DurationInFrames, anim.ExitFrames(), anim.ExitCurve())
				if delta.Opacity != nil {
					op = *delta.Opacity
				}
			}
		} else {
			switch {
			case hasEnter && enterTmpl.IsWordByWord:
				op = enterTokenOpacity(i, currentFrame, anim)
			case hasEnter:
				delta := enterTmpl.Enter(currentFrame, o.DurationInFrames, anim.EnterFrames(), anim.EnterCurve())
				if delta.Opacity != nil {
					op = *delta.Opacity
				}
			}
		}

		words[i] = WordStyle{Text: tok.Text, Line: tok.Line, Opacity: base * op}
	}
	return words
}

func enterTokenOpacity(index, currentFrame int, anim *overlay.Animation) float64 {
	dur := anim.EnterFrames()
	delay := float64(index * (dur / 3))
	window := float64(dur) / 2

	return easing.Interpolate(
		float64(currentFrame),
		[2]float64{delay, delay + window},
		[2]float64{0, 1},
		anim.EnterCurve(),
		easing.Options{ExtrapolateLeft: easing.Clamp, ExtrapolateRight: easing.Clamp},
	)
}

// exitTokenOpacity measures backward from the end of the overlay. A
// later token has a larger delay in remaining-frames space, so it hits
// its fade window sooner: the last word to appear disappears first.
func exitTokenOpacity(index, currentFrame, durationInFrames int, anim *overlay.Animation) float64 {
	dur := anim.ExitFrames()
	delay := float64(index * (dur / 3))
	window := float64(dur) / 2
	remaining := float64(durationInFrames - currentFrame)

	return easing.Interpolate(
		remaining,
		[2]float64{delay, delay + window},
		[2]float64{0, 1},
		anim.ExitCurve(),
		easing.Options{ExtrapolateLeft: easing.Clamp, ExtrapolateRight: easing.Clamp},
	)
}
