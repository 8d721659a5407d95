package gui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"github.com/stretchr/testify/require"

	"text-editor/internal/logger"
)

func TestParseFontFile(t *testing.T) {
	tests := []struct {
		file   string
		family string
		face   fontFace
		ok     bool
	}{
		{"DejaVuSans.ttf", "DejaVuSans", faceRegular, true},
		{"DejaVuSans-Bold.ttf", "DejaVuSans", faceBold, true},
		{"DejaVuSans-BoldOblique.ttf", "DejaVuSans", faceBoldItalic, true},
		{"LiberationMono_Italic.otf", "LiberationMono", faceItalic, true},
		{"Noto-Regular.TTF", "Noto", faceRegular, true},
		{"Source-Code-Pro.ttf", "Source-Code-Pro", faceRegular, true},
		{"readme.txt", "", faceRegular, false},
		{"fonts.dir", "", faceRegular, false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			family, face, ok := parseFontFile(tt.file)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.family, family)
			assert.Equal(t, tt.face, face)
		})
	}
}

func writeFonts(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("font:"+name), 0o644))
	}
	return dir
}

func TestFontCatalogFamilies(t *testing.T) {
	dir := writeFonts(t,
		"Zed-Regular.ttf",
		"nested/Alpha.ttf",
		"nested/Alpha-Bold.ttf",
		"notes.txt",
	)
	c := ScanFontDirs(logger.NoOpLogger{}, dir, filepath.Join(dir, "missing"))

	assert.Equal(t, []string{DefaultFamily, "Alpha", "Zed"}, c.Families())
	assert.True(t, c.Has("Alpha"))
	assert.True(t, c.Has(DefaultFamily))
	assert.True(t, c.Has(""))
	assert.False(t, c.Has("Nope"))
}

func TestFontCatalogFaces(t *testing.T) {
	dir := writeFonts(t, "Alpha.ttf", "Alpha-Bold.ttf")
	c := ScanFontDirs(logger.NoOpLogger{}, dir)

	regular := c.Font("Alpha", fyne.TextStyle{})
	require.NotNil(t, regular)
	assert.Equal(t, "Alpha.ttf", regular.Name())
	assert.Equal(t, []byte("font:Alpha.ttf"), regular.Content())

	bold := c.Font("Alpha", fyne.TextStyle{Bold: true})
	require.NotNil(t, bold)
	assert.Equal(t, "Alpha-Bold.ttf", bold.Name())

	// No italic face: falls back to regular.
	italic := c.Font("Alpha", fyne.TextStyle{Italic: true})
	require.NotNil(t, italic)
	assert.Equal(t, "Alpha.ttf", italic.Name())

	assert.Nil(t, c.Font("Alpha", fyne.TextStyle{Monospace: true}))
	assert.Nil(t, c.Font(DefaultFamily, fyne.TextStyle{}))
	assert.Same(t, regular, c.Font("Alpha", fyne.TextStyle{}))
}

func TestFontCatalogReadsNameTable(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string][]byte{
		"a.ttf": goregular.TTF,
		"b.ttf": gobold.TTF,
		"c.ttf": goitalic.TTF,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}

	c := ScanFontDirs(logger.NoOpLogger{}, dir)
	assert.Equal(t, []string{DefaultFamily, "Go"}, c.Families())

	bold := c.Font("Go", fyne.TextStyle{Bold: true})
	require.NotNil(t, bold)
	assert.Equal(t, "b.ttf", bold.Name())

	italic := c.Font("Go", fyne.TextStyle{Italic: true})
	require.NotNil(t, italic)
	assert.Equal(t, "c.ttf", italic.Name())
}

func TestReadFontNameFallsBackForUnreadableFiles(t *testing.T) {
	path := filepath.Join(writeFonts(t, "Alpha-Bold.ttf"), "Alpha-Bold.ttf")
	_, _, ok := readFontName(path)
	assert.False(t, ok)
}

func TestFaceFor(t *testing.T) {
	face, ok := faceFor("BoldItalic")
	assert.True(t, ok)
	assert.Equal(t, faceBoldItalic, face)

	face, ok = faceFor("")
	assert.True(t, ok)
	assert.Equal(t, faceRegular, face)

	_, ok = faceFor("Light")
	assert.False(t, ok)
}
