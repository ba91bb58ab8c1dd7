package styler

import (
	"math"
	"strings"
	"unicode/utf8"
)

// AutoFontSize estimates a font size that fits content inside a
// width x height box. The heuristic drives visual fidelity of auto-fit
// text, so the derating steps are reproduced exactly: area-based base
// size, multi-line derate, long-line derate, extreme-aspect derate, then
// a clamp to [12, height/lines*0.8].
func AutoFontSize(content string, width, height float64) float64 {
	lines := strings.Split(content, "\n")
	numLines := len(lines)

	maxLineLength := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLineLength {
			maxLineLength = n
		}
	}
	if maxLineLength == 0 || width <= 0 || height <= 0 {
		return 12
	}

	size := math.Sqrt(width*height/float64(maxLineLength*numLines)) * 1.2

	if numLines > 1 {
		size *= math.Max(0.5, 1-0.1*float64(numLines))
	}
	if maxLineLength > 20 {
		size *= math.Max(0.6, 1-float64(maxLineLength-20)/100)
	}

	aspect := width / height
	if aspect > 2 || aspect < 0.5 {
		size *= 0.8
	}

	maxSize := (height / float64(numLines)) * 0.8
	if size > maxSize {
		size = maxSize
	}
	if size < 12 {
		size = 12
	}
	return size
}
