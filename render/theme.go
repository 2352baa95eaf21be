package render

import "github.com/gdamore/tcell/v2"

// Theme holds the styles used when painting a sheet
type Theme struct {
	Background tcell.Style
	Header     tcell.Style
	Gutter     tcell.Style
	Cell       tcell.Style
	AltCell    tcell.Style // Odd rows, zero value = same as Cell
	Frozen     tcell.Style
	Selected   tcell.Style
	Separator  tcell.Style
	Skeleton   tcell.Style
	ScrollBar  tcell.Style
}

var (
	rgbHeaderBg  = tcell.NewRGBColor(40, 44, 52)
	rgbHeaderFg  = tcell.NewRGBColor(220, 223, 228)
	rgbCellBg    = tcell.NewRGBColor(24, 26, 31)
	rgbAltCellBg = tcell.NewRGBColor(30, 33, 39)
	rgbFrozenBg  = tcell.NewRGBColor(36, 40, 48)
	rgbSelectBg  = tcell.NewRGBColor(61, 90, 128)
	rgbDimFg     = tcell.NewRGBColor(110, 118, 129)
	rgbTextFg    = tcell.NewRGBColor(200, 204, 212)
)

// DefaultTheme returns the dark theme
func DefaultTheme() Theme {
	base := tcell.StyleDefault.Foreground(rgbTextFg)
	return Theme{
		Background: base.Background(rgbCellBg),
		Header:     base.Background(rgbHeaderBg).Foreground(rgbHeaderFg).Bold(true),
		Gutter:     base.Background(rgbHeaderBg).Foreground(rgbDimFg),
		Cell:       base.Background(rgbCellBg),
		AltCell:    base.Background(rgbAltCellBg),
		Frozen:     base.Background(rgbFrozenBg),
		Selected:   base.Background(rgbSelectBg).Foreground(tcell.ColorWhite),
		Separator:  base.Background(rgbCellBg).Foreground(rgbDimFg),
		Skeleton:   base.Background(rgbCellBg).Foreground(rgbDimFg).Dim(true),
		ScrollBar:  base.Background(rgbCellBg).Foreground(rgbDimFg),
	}
}
