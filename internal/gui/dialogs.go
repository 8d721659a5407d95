package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"text-editor/internal/controllers"
	"text-editor/internal/debug"
)

const defaultFileName = "untitled.txt"

// Dialogs shows the editor's prompts on a fyne window.
type Dialogs struct {
	window fyne.Window
	logger debug.Logger
}

func NewDialogs(window fyne.Window, logger debug.Logger) *Dialogs {
	return &Dialogs{window: window, logger: logger}
}

// ChooseOpenPath lists every file; .txt is not enforced on open.
func (d *Dialogs) ChooseOpenPath(callback func(path string, err error)) {
	dlg := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			callback("", err)
			return
		}
		if reader == nil {
			callback("", controllers.ErrDialogCancelled)
			return
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			d.logger.Debug("Dialogs", "reader close failed", map[string]interface{}{"error": cerr.Error()})
		}
		callback(path, nil)
	}, d.window)
	dlg.Resize(dialogSize(d.window))
	dlg.Show()
}

// ChooseSavePath proposes untitled.txt and filters on .txt. The returned
// path is used as chosen.
func (d *Dialogs) ChooseSavePath(callback func(path string, err error)) {
	dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			callback("", err)
			return
		}
		if writer == nil {
			callback("", controllers.ErrDialogCancelled)
			return
		}
		// The file service writes through a temp file, so the handle the
		// dialog opened is only needed for its path.
		path := writer.URI().Path()
		if cerr := writer.Close(); cerr != nil {
			d.logger.Debug("Dialogs", "writer close failed", map[string]interface{}{"error": cerr.Error()})
		}
		callback(path, nil)
	}, d.window)
	dlg.SetFileName(defaultFileName)
	dlg.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	dlg.Resize(dialogSize(d.window))
	dlg.Show()
}

func (d *Dialogs) AskString(title, prompt string, callback func(value string, err error)) {
	entry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem(prompt, entry)}

	form := dialog.NewForm(title, "OK", "Cancel", items, func(ok bool) {
		if !ok {
			callback("", controllers.ErrDialogCancelled)
			return
		}
		callback(entry.Text, nil)
	}, d.window)
	form.Show()
	d.window.Canvas().Focus(entry)
}

func (d *Dialogs) ShowError(title string, err error) {
	d.logger.Debug("Dialogs", "error shown", map[string]interface{}{"title": title})
	dialog.ShowError(err, d.window)
}

func (d *Dialogs) ShowNotice(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

func dialogSize(window fyne.Window) fyne.Size {
	size := window.Canvas().Size()
	return fyne.NewSize(fyne.Max(size.Width*0.8, 600), fyne.Max(size.Height*0.8, 400))
}
