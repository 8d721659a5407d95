package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"text-editor/internal/models"
)

type StatusBar struct {
	container   *fyne.Container
	background  *canvas.Rectangle
	statusLabel *canvas.Text
}

func NewStatusBar() *StatusBar {
	background := canvas.NewRectangle(models.LightPalette.Background)
	statusLabel := canvas.NewText(models.StatusSummary{}.String(), models.LightPalette.Foreground)
	statusLabel.Alignment = fyne.TextAlignTrailing

	mainContainer := container.NewStack(
		background,
		container.NewPadded(statusLabel),
	)

	return &StatusBar{
		container:   mainContainer,
		background:  background,
		statusLabel: statusLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// Alignment reports where the summary sits within the bar.
func (sb *StatusBar) Alignment() fyne.TextAlign {
	return sb.statusLabel.Alignment
}

func (sb *StatusBar) Text() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetStatus(summary models.StatusSummary) {
	sb.statusLabel.Text = summary.String()
	sb.statusLabel.Refresh()
}

func (sb *StatusBar) SetPalette(p models.Palette) {
	sb.background.FillColor = p.Background
	sb.background.Refresh()
	sb.statusLabel.Color = p.Foreground
	sb.statusLabel.Refresh()
}

// Colors returns the current background and text colours.
func (sb *StatusBar) Colors() (background, foreground color.Color) {
	return sb.background.FillColor, sb.statusLabel.Color
}
