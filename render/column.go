package render

import "strings"

// Format selects how body cells of a column lay out their text
type Format uint8

const (
	// FormatText shows the first line truncated to the cell width
	FormatText Format = iota
	// FormatTruncated word-wraps text inside the cell and elides what does not fit
	FormatTruncated
	// FormatTruncatedFormat keeps preformatted lines as-is, one per cell line
	FormatTruncatedFormat
	// FormatValue word-wraps an editable value
	FormatValue
)

var formatNames = [...]string{"text", "truncated", "truncated-format", "value"}

// String returns format name
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat maps a format name to Format, ok is false for unknown names
func ParseFormat(name string) (Format, bool) {
	if name == "" {
		return FormatText, true
	}
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), true
		}
	}
	return FormatText, false
}

// Column describes one column of the sheet
type Column struct {
	ID      string
	Name    string
	Format  Format
	Loading bool // body cells render a skeleton instead of content
}

// ColumnLetters returns the spreadsheet-style name of column i: A..Z, AA..AZ, ...
func ColumnLetters(i int) string {
	if i < 0 {
		return ""
	}
	var buf [8]byte
	n := len(buf)
	for i >= 0 {
		n--
		buf[n] = byte('A' + i%26)
		i = i/26 - 1
	}
	return string(buf[n:])
}
