package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Actions are the editor operations reachable from the keyboard and menus.
type Actions interface {
	New()
	Open()
	Save()
	SaveAs()
	Cut()
	Copy()
	Paste()
}

// Binding ties a keyboard shortcut to an action. Alias is the toolkit's
// own shortcut for the same keys, delivered when nothing has focus.
type Binding struct {
	Label    string
	Shortcut *desktop.CustomShortcut
	Alias    fyne.Shortcut
	Action   func()
}

func ctrl(key fyne.KeyName) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierControl}
}

func ctrlShift(key fyne.KeyName) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift}
}

// Bindings returns the fixed shortcut table.
func Bindings(a Actions) []Binding {
	return []Binding{
		{Label: "New", Shortcut: ctrl(fyne.KeyN), Action: a.New},
		{Label: "Open", Shortcut: ctrl(fyne.KeyO), Action: a.Open},
		{Label: "Save", Shortcut: ctrl(fyne.KeyS), Action: a.Save},
		{Label: "Save As", Shortcut: ctrlShift(fyne.KeyS), Action: a.SaveAs},
		{Label: "Cut", Shortcut: ctrl(fyne.KeyX), Alias: &fyne.ShortcutCut{}, Action: a.Cut},
		{Label: "Copy", Shortcut: ctrl(fyne.KeyC), Alias: &fyne.ShortcutCopy{}, Action: a.Copy},
		{Label: "Paste", Shortcut: ctrl(fyne.KeyV), Alias: &fyne.ShortcutPaste{}, Action: a.Paste},
	}
}

// shortcutTarget is a widget that keeps shortcuts working while focused.
type shortcutTarget interface {
	HandleShortcut(s fyne.Shortcut, fn func())
}

// RegisterShortcuts adds every binding to the canvas and to target.
func RegisterShortcuts(c fyne.Canvas, target shortcutTarget, bindings []Binding) {
	for _, b := range bindings {
		action := b.Action
		c.AddShortcut(b.Shortcut, func(fyne.Shortcut) { action() })
		if b.Alias != nil {
			c.AddShortcut(b.Alias, func(fyne.Shortcut) { action() })
		}
		if target != nil {
			target.HandleShortcut(b.Shortcut, action)
		}
	}
}

func shortcutFor(bindings []Binding, label string) fyne.Shortcut {
	for _, b := range bindings {
		if b.Label == label {
			return b.Shortcut
		}
	}
	return nil
}
