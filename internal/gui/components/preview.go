package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"text-editor/internal/models"
)

// Size names the theme resolves from the per-style font descriptors.
const (
	SizeNameBold      fyne.ThemeSizeName = "text-editor-bold"
	SizeNameItalic    fyne.ThemeSizeName = "text-editor-italic"
	SizeNameUnderline fyne.ThemeSizeName = "text-editor-underline"
)

// FormattedPreview renders the document with its formatting spans.
type FormattedPreview struct {
	text   *widget.RichText
	scroll *container.Scroll
}

func NewFormattedPreview() *FormattedPreview {
	text := widget.NewRichText()
	text.Wrapping = fyne.TextWrapWord
	return &FormattedPreview{
		text:   text,
		scroll: container.NewVScroll(text),
	}
}

func (p *FormattedPreview) GetContainer() fyne.CanvasObject {
	return p.scroll
}

// Segments exposes the rendered segments.
func (p *FormattedPreview) Segments() []widget.RichTextSegment {
	return p.text.Segments
}

// Render rebuilds the preview from segs.
func (p *FormattedPreview) Render(segs []models.Segment) {
	out := make([]widget.RichTextSegment, 0, len(segs))
	for _, seg := range segs {
		out = append(out, &widget.TextSegment{
			Text:  seg.Text,
			Style: segmentStyle(seg),
		})
	}
	p.text.Segments = out
	p.text.Refresh()
}

func segmentStyle(seg models.Segment) widget.RichTextStyle {
	style := widget.RichTextStyleInline
	style.TextStyle = fyne.TextStyle{
		Bold:      seg.Bold,
		Italic:    seg.Italic,
		Underline: seg.Underline,
	}
	switch {
	case seg.Bold:
		style.SizeName = SizeNameBold
	case seg.Italic:
		style.SizeName = SizeNameItalic
	case seg.Underline:
		style.SizeName = SizeNameUnderline
	}
	return style
}
