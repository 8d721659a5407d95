package controllers

import (
	"errors"

	"text-editor/internal/models"
)

// ErrDialogCancelled is passed to dialog callbacks when the user dismisses the dialog.
var ErrDialogCancelled = errors.New("dialog cancelled")

// ErrInvalidFontSize is returned for sizes outside 8, 10, ..., 30.
var ErrInvalidFontSize = errors.New("invalid font size")

// Dialogs are the interactive prompts the editor needs. Callbacks may run
// immediately or later on the UI thread; a cancelled dialog reports
// ErrDialogCancelled.
type Dialogs interface {
	ChooseOpenPath(callback func(path string, err error))
	ChooseSavePath(callback func(path string, err error))
	AskString(title, prompt string, callback func(value string, err error))
	ShowError(title string, err error)
	ShowNotice(title, message string)
}

// Surface is the text widget. Clipboard work is delegated to it so the
// host toolkit's clipboard behaviour is kept.
type Surface interface {
	Selection() (models.Selection, bool)
	Cut()
	Copy()
	Paste()
}

// Watcher follows the current file for external modification.
type Watcher interface {
	Watch(path string) error
}
