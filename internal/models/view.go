package models

import (
	"image/color"
)

const (
	MinFontSize = 8
	MaxFontSize = 30
)

// FontSizes returns the selectable sizes: 8, 10, ..., 30.
func FontSizes() []int {
	sizes := make([]int, 0, (MaxFontSize-MinFontSize)/2+1)
	for s := MinFontSize; s <= MaxFontSize; s += 2 {
		sizes = append(sizes, s)
	}
	return sizes
}

// ValidFontSize reports whether size is in FontSizes.
func ValidFontSize(size int) bool {
	return size >= MinFontSize && size <= MaxFontSize && size%2 == 0
}

// FontDescriptor is the font a style is rendered with.
type FontDescriptor struct {
	Family string
	Size   int
	Style  Style
}

// Palette is the background/foreground pair of the text area and status bar.
type Palette struct {
	Background color.NRGBA
	Foreground color.NRGBA
}

var (
	LightPalette = Palette{
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Foreground: color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	}
	DarkPalette = Palette{
		Background: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
)

// ViewState is presentation-only state; it never reaches the saved file.
type ViewState struct {
	FontFamily string
	FontSize   int
	DarkMode   bool
}

func (v ViewState) Palette() Palette {
	if v.DarkMode {
		return DarkPalette
	}
	return LightPalette
}

// Descriptor is the base font with style attached.
func (v ViewState) Descriptor(style Style) FontDescriptor {
	return FontDescriptor{Family: v.FontFamily, Size: v.FontSize, Style: style}
}
