package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"text-editor/internal/gui/components"
	"text-editor/internal/models"
)

// EditorTheme styles the text area: palette, base font and the fonts
// captured for each formatting style.
type EditorTheme struct {
	base        fyne.Theme
	view        models.ViewState
	catalog     *FontCatalog
	descriptors map[models.Style]models.FontDescriptor
}

func NewEditorTheme(view models.ViewState, catalog *FontCatalog, doc *models.Document) *EditorTheme {
	t := &EditorTheme{
		base:        theme.DefaultTheme(),
		view:        view,
		catalog:     catalog,
		descriptors: make(map[models.Style]models.FontDescriptor),
	}
	if doc != nil {
		for _, style := range models.Styles {
			if fd, ok := doc.Descriptor(style); ok {
				t.descriptors[style] = fd
			}
		}
	}
	return t
}

func (t *EditorTheme) variant() fyne.ThemeVariant {
	if t.view.DarkMode {
		return theme.VariantDark
	}
	return theme.VariantLight
}

func (t *EditorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	palette := t.view.Palette()
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return palette.Background
	case theme.ColorNameForeground:
		return palette.Foreground
	}
	return t.base.Color(name, t.variant())
}

func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.catalog != nil {
		if res := t.catalog.Font(t.familyFor(style), style); res != nil {
			return res
		}
	}
	return t.base.Font(style)
}

func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return float32(t.view.FontSize)
	case components.SizeNameBold:
		return t.styleSize(models.StyleBold)
	case components.SizeNameItalic:
		return t.styleSize(models.StyleItalic)
	case components.SizeNameUnderline:
		return t.styleSize(models.StyleUnderline)
	}
	return t.base.Size(name)
}

// familyFor picks the family captured by the most significant style in s.
func (t *EditorTheme) familyFor(s fyne.TextStyle) string {
	for _, style := range stylesOf(s) {
		if fd, ok := t.descriptors[style]; ok {
			return fd.Family
		}
	}
	return t.view.FontFamily
}

func (t *EditorTheme) styleSize(style models.Style) float32 {
	if fd, ok := t.descriptors[style]; ok && fd.Size > 0 {
		return float32(fd.Size)
	}
	return float32(t.view.FontSize)
}

func stylesOf(s fyne.TextStyle) []models.Style {
	var styles []models.Style
	if s.Bold {
		styles = append(styles, models.StyleBold)
	}
	if s.Italic {
		styles = append(styles, models.StyleItalic)
	}
	if s.Underline {
		styles = append(styles, models.StyleUnderline)
	}
	return styles
}
