package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"text-editor/internal/models"
)

// EditorView is the multi-line text area. It routes clipboard shortcuts
// through the configured clipboard and hands window shortcuts it does not
// own back to the registered handler, since a focused Entry would swallow
// them otherwise.
type EditorView struct {
	widget.Entry

	clipboard fyne.Clipboard
	onEdited  func(text string)
	shortcuts map[string]func()

	// anchor is the offset where the current selection began.
	anchor   int
	anchored bool
}

func NewEditorView(clipboard fyne.Clipboard) *EditorView {
	v := &EditorView{
		clipboard: clipboard,
		shortcuts: make(map[string]func()),
	}
	v.MultiLine = true
	v.Wrapping = fyne.TextWrapWord
	v.ExtendBaseWidget(v)

	v.OnChanged = func(text string) {
		if v.onEdited != nil {
			v.onEdited(text)
		}
	}
	return v
}

// SetOnEdited registers the callback for every text change.
func (v *EditorView) SetOnEdited(fn func(text string)) {
	v.onEdited = fn
}

// SetClipboard replaces the clipboard used for cut, copy and paste.
func (v *EditorView) SetClipboard(c fyne.Clipboard) {
	v.clipboard = c
}

// HandleShortcut makes the view forward s to fn while it has focus.
func (v *EditorView) HandleShortcut(s fyne.Shortcut, fn func()) {
	v.shortcuts[s.ShortcutName()] = fn
}

func (v *EditorView) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCut:
		v.Cut()
		return
	case *fyne.ShortcutCopy:
		v.Copy()
		return
	case *fyne.ShortcutPaste:
		v.Paste()
		return
	case *desktop.CustomShortcut:
		if fn, ok := v.shortcuts[s.ShortcutName()]; ok {
			fn()
			return
		}
	case *fyne.ShortcutSelectAll:
		v.anchored = false
	}
	v.track(func() { v.Entry.TypedShortcut(s) })
}

func (v *EditorView) TypedKey(key *fyne.KeyEvent) {
	v.track(func() { v.Entry.TypedKey(key) })
}

func (v *EditorView) MouseDown(m *desktop.MouseEvent) {
	v.track(func() { v.Entry.MouseDown(m) })
}

func (v *EditorView) Dragged(d *fyne.DragEvent) {
	v.track(func() { v.Entry.Dragged(d) })
}

// DoubleTapped selects a word, which never starts at the press position.
func (v *EditorView) DoubleTapped(p *fyne.PointEvent) {
	v.anchored = false
	v.track(func() { v.Entry.DoubleTapped(p) })
}

// track runs an input handler and records the cursor offset it started
// from when that handler opens a new selection.
func (v *EditorView) track(handle func()) {
	before := v.cursor()
	had := v.SelectedText() != ""
	handle()
	if v.SelectedText() == "" {
		v.anchored = false
		return
	}
	if !had || !v.anchored {
		v.anchor, v.anchored = before, true
	}
}

func (v *EditorView) cursor() int {
	return cursorOffset(v.Text, v.CursorRow, v.CursorColumn)
}

func (v *EditorView) Cut() {
	v.Entry.TypedShortcut(&fyne.ShortcutCut{Clipboard: v.clipboard})
	v.notify()
}

func (v *EditorView) Copy() {
	v.Entry.TypedShortcut(&fyne.ShortcutCopy{Clipboard: v.clipboard})
}

func (v *EditorView) Paste() {
	v.Entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: v.clipboard})
	v.notify()
}

// Selection reports the selected rune range, if any.
func (v *EditorView) Selection() (models.Selection, bool) {
	selected := v.SelectedText()
	if v.anchored {
		if sel, ok := anchoredRange(v.Text, v.anchor, v.cursor(), selected); ok {
			return sel, true
		}
	}
	return selectionRange(v.Text, v.CursorRow, v.CursorColumn, selected)
}

// SetContent replaces the text when it differs from the current one.
func (v *EditorView) SetContent(text string) {
	if v.Text == text {
		return
	}
	v.SetText(text)
}

func (v *EditorView) notify() {
	if v.onEdited != nil {
		v.onEdited(v.Text)
	}
}

// anchoredRange spans anchor to cursor, provided that range holds selected.
// Selections made by word or select-all do not start at the recorded anchor
// and fail the check.
func anchoredRange(text string, anchor, cursor int, selected string) (models.Selection, bool) {
	if selected == "" {
		return models.Selection{}, false
	}
	runes := []rune(text)
	sel := models.Selection{Start: anchor, End: cursor}.Normalize()
	if sel.Start < 0 || sel.End > len(runes) || string(runes[sel.Start:sel.End]) != selected {
		return models.Selection{}, false
	}
	return sel, true
}

// selectionRange locates selected relative to the cursor. The cursor sits
// at one end of a selection; the end that matches the text wins, the
// leading side first.
func selectionRange(text string, row, col int, selected string) (models.Selection, bool) {
	if selected == "" {
		return models.Selection{}, false
	}

	runes := []rune(text)
	cursor := cursorOffset(text, row, col)
	n := len([]rune(selected))

	if cursor-n >= 0 && string(runes[cursor-n:cursor]) == selected {
		return models.Selection{Start: cursor - n, End: cursor}, true
	}
	if cursor+n <= len(runes) && string(runes[cursor:cursor+n]) == selected {
		return models.Selection{Start: cursor, End: cursor + n}, true
	}
	return models.Selection{}, false
}

// cursorOffset converts a row/column position into a rune offset.
func cursorOffset(text string, row, col int) int {
	offset := 0
	lines := strings.Split(text, "\n")
	for i := 0; i < row && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1
	}
	if row < len(lines) {
		if lineLen := len([]rune(lines[row])); col > lineLen {
			col = lineLen
		}
		offset += col
	}
	if total := len([]rune(text)); offset > total {
		offset = total
	}
	return offset
}
