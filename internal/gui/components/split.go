package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// PaneSplit places the editor and the formatted preview side by side
// without a draggable divider.
type PaneSplit struct {
	widget.BaseWidget
	leading  fyne.CanvasObject
	trailing fyne.CanvasObject
	offset   float64
}

func NewPaneSplit(leading, trailing fyne.CanvasObject, offset float64) *PaneSplit {
	split := &PaneSplit{
		leading:  leading,
		trailing: trailing,
		offset:   clampOffset(offset),
	}
	split.ExtendBaseWidget(split)
	return split
}

// SetOffset sets the leading pane's share of the width, 0.0 to 1.0.
func (s *PaneSplit) SetOffset(offset float64) {
	s.offset = clampOffset(offset)
	s.Refresh()
}

func (s *PaneSplit) Offset() float64 {
	return s.offset
}

func (s *PaneSplit) CreateRenderer() fyne.WidgetRenderer {
	return &paneSplitRenderer{
		split:   s,
		objects: []fyne.CanvasObject{s.leading, s.trailing},
	}
}

func clampOffset(offset float64) float64 {
	switch {
	case offset < 0:
		return 0
	case offset > 1:
		return 1
	}
	return offset
}

type paneSplitRenderer struct {
	split   *PaneSplit
	objects []fyne.CanvasObject
}

func (r *paneSplitRenderer) Layout(size fyne.Size) {
	leadingWidth := size.Width * float32(r.split.offset)
	trailingWidth := size.Width - leadingWidth

	r.split.leading.Resize(fyne.NewSize(leadingWidth, size.Height))
	r.split.leading.Move(fyne.NewPos(0, 0))

	r.split.trailing.Resize(fyne.NewSize(trailingWidth, size.Height))
	r.split.trailing.Move(fyne.NewPos(leadingWidth, 0))
}

func (r *paneSplitRenderer) MinSize() fyne.Size {
	leadingMin := r.split.leading.MinSize()
	trailingMin := r.split.trailing.MinSize()

	return fyne.NewSize(
		leadingMin.Width+trailingMin.Width,
		fyne.Max(leadingMin.Height, trailingMin.Height),
	)
}

func (r *paneSplitRenderer) Refresh() {
	r.Layout(r.split.Size())
	for _, obj := range r.objects {
		obj.Refresh()
	}
}

func (r *paneSplitRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *paneSplitRenderer) Destroy() {}
