package tui

import "github.com/mattn/go-runewidth"

// DisplayWidth returns the terminal column width of s
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxWidth columns
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadRight pads string with spaces to width columns
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// WrapText wraps text at word boundaries to fit width columns
// Returns slice of lines, each no wider than width; explicit newlines start new lines
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range SplitLines(s) {
		lines = append(lines, wrapLine([]rune(para), width)...)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// wrapLine wraps a single paragraph
func wrapLine(runes []rune, width int) []string {
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	lineStart := 0
	lineW := 0
	lastSpace := -1

	for i := 0; i < len(runes); i++ {
		w := runewidth.RuneWidth(runes[i])
		if lineW+w > width && i > lineStart {
			// Need to wrap, prefer the last space on this line
			wrapAt := i
			if lastSpace > lineStart {
				wrapAt = lastSpace
			}
			lines = append(lines, string(runes[lineStart:wrapAt]))

			// Skip space at wrap point
			if wrapAt < len(runes) && runes[wrapAt] == ' ' {
				lineStart = wrapAt + 1
			} else {
				lineStart = wrapAt
			}
			lastSpace = -1
			if lineStart > i {
				// The wrapping rune was the space itself
				lineW = 0
				continue
			}
			lineW = runewidth.StringWidth(string(runes[lineStart:i]))
		}

		if runes[i] == ' ' {
			lastSpace = i
		}
		lineW += w
	}

	if lineStart < len(runes) {
		lines = append(lines, string(runes[lineStart:]))
	}
	return lines
}

// SplitLines splits on \n, keeping empty paragraphs
func SplitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

// MaxLineWidth returns the widest line of s in columns
func MaxLineWidth(s string) int {
	widest := 0
	for _, line := range SplitLines(s) {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// RepeatRune returns a string of n repeated runes
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}
