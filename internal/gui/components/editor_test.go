package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text-editor/internal/models"
)

type memoryClipboard struct{ content string }

func (m *memoryClipboard) Content() string           { return m.content }
func (m *memoryClipboard) SetContent(content string) { m.content = content }

func newTestView(t *testing.T) (*EditorView, *memoryClipboard, *[]string) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	clip := &memoryClipboard{}
	view := NewEditorView(clip)
	edits := &[]string{}
	view.SetOnEdited(func(text string) { *edits = append(*edits, text) })
	test.NewWindow(view)
	return view, clip, edits
}

func TestSelectionRange(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		row, col int
		selected string
		want     models.Selection
		ok       bool
	}{
		{"nothing selected", "hello", 0, 3, "", models.Selection{}, false},
		{"cursor after selection", "hello world", 0, 11, "world", models.Selection{Start: 6, End: 11}, true},
		{"cursor before selection", "hello world", 0, 0, "hello", models.Selection{Start: 0, End: 5}, true},
		{"second line", "one\ntwo three", 1, 3, "two", models.Selection{Start: 4, End: 7}, true},
		{"across lines", "one\ntwo", 1, 2, "ne\ntw", models.Selection{Start: 1, End: 6}, true},
		{"multibyte runes", "héllo wörld", 0, 11, "wörld", models.Selection{Start: 6, End: 11}, true},
		{"stale selection", "hello", 0, 5, "xyz", models.Selection{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := selectionRange(tt.text, tt.row, tt.col, tt.selected)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnchoredRange(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		anchor, cursor int
		selected       string
		want           models.Selection
		ok             bool
	}{
		{"forward", "abab", 0, 2, "ab", models.Selection{Start: 0, End: 2}, true},
		{"backward over repeated text", "abab", 4, 2, "ab", models.Selection{Start: 2, End: 4}, true},
		{"anchor inside a word", "hello world", 8, 11, "world", models.Selection{}, false},
		{"anchor past the end", "ab", 5, 0, "ab", models.Selection{}, false},
		{"nothing selected", "abab", 4, 2, "", models.Selection{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := anchoredRange(tt.text, tt.anchor, tt.cursor, tt.selected)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditorViewBackwardSelectionOfRepeatedText(t *testing.T) {
	view, _, _ := newTestView(t)
	test.Type(view, "abab")

	view.KeyDown(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	view.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	view.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	view.KeyUp(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})

	require.Equal(t, "ab", view.SelectedText())
	sel, ok := view.Selection()
	require.True(t, ok)
	assert.Equal(t, models.Selection{Start: 2, End: 4}, sel)

	view.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	_, ok = view.Selection()
	assert.False(t, ok)
}

func TestCursorOffsetClamps(t *testing.T) {
	assert.Equal(t, 0, cursorOffset("", 0, 0))
	assert.Equal(t, 3, cursorOffset("abc", 0, 10))
	assert.Equal(t, 5, cursorOffset("ab\ncd", 1, 3))
	assert.Equal(t, 5, cursorOffset("ab\ncd", 7, 0))
}

func TestEditorViewReportsTyping(t *testing.T) {
	view, _, edits := newTestView(t)

	test.Type(view, "hi")

	require.NotEmpty(t, *edits)
	assert.Equal(t, "hi", (*edits)[len(*edits)-1])
}

func TestEditorViewSelectAll(t *testing.T) {
	view, _, _ := newTestView(t)
	view.SetText("hello world")

	_, ok := view.Selection()
	assert.False(t, ok)

	view.TypedShortcut(&fyne.ShortcutSelectAll{})
	sel, ok := view.Selection()
	require.True(t, ok)
	assert.Equal(t, models.Selection{Start: 0, End: 11}, sel)
}

func TestEditorViewClipboard(t *testing.T) {
	view, clip, edits := newTestView(t)
	view.SetText("hello")

	view.TypedShortcut(&fyne.ShortcutSelectAll{})
	view.Copy()
	assert.Equal(t, "hello", clip.content)
	assert.Equal(t, "hello", view.Text)

	view.Cut()
	assert.Equal(t, "hello", clip.content)
	assert.Equal(t, "", view.Text)
	require.NotEmpty(t, *edits)
	assert.Equal(t, "", (*edits)[len(*edits)-1])

	clip.SetContent("bye")
	view.Paste()
	assert.Equal(t, "bye", view.Text)
	assert.Equal(t, "bye", (*edits)[len(*edits)-1])
}

func TestEditorViewForwardsCustomShortcuts(t *testing.T) {
	view, _, _ := newTestView(t)

	fired := 0
	ctrlN := &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierControl}
	view.HandleShortcut(ctrlN, func() { fired++ })

	view.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierControl})
	assert.Equal(t, 1, fired)

	view.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift})
	assert.Equal(t, 1, fired)
}

func TestEditorViewSetContentSkipsUnchanged(t *testing.T) {
	view, _, edits := newTestView(t)
	view.SetContent("abc")
	n := len(*edits)

	view.SetContent("abc")
	assert.Len(t, *edits, n)
	assert.Equal(t, "abc", view.Text)
}
