package gui

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"golang.org/x/image/font/sfnt"

	"text-editor/internal/debug"
)

// DefaultFamily is the theme's bundled font, always available.
const DefaultFamily = "Default"

type fontFace int

const (
	faceRegular fontFace = iota
	faceBold
	faceItalic
	faceBoldItalic
)

var faceSuffixes = []struct {
	suffix string
	face   fontFace
}{
	{"bolditalic", faceBoldItalic},
	{"boldoblique", faceBoldItalic},
	{"bold", faceBold},
	{"italic", faceItalic},
	{"oblique", faceItalic},
	{"regular", faceRegular},
	{"book", faceRegular},
	{"roman", faceRegular},
	{"normal", faceRegular},
}

// FontCatalog lists font families found in the system font directories
// and loads their faces on demand.
type FontCatalog struct {
	logger   debug.Logger
	families map[string]map[fontFace]string

	mu     sync.Mutex
	loaded map[string]fyne.Resource
}

// NewFontCatalog scans dirs plus the platform font directories.
func NewFontCatalog(logger debug.Logger, dirs ...string) *FontCatalog {
	return ScanFontDirs(logger, append(dirs, systemFontDirs()...)...)
}

// ScanFontDirs builds a catalog from dirs only.
func ScanFontDirs(logger debug.Logger, dirs ...string) *FontCatalog {
	c := &FontCatalog{
		logger:   logger,
		families: make(map[string]map[fontFace]string),
		loaded:   make(map[string]fyne.Resource),
	}
	for _, dir := range dirs {
		c.scan(dir)
	}

	logger.Info("FontCatalog", "fonts scanned", map[string]interface{}{
		"families": len(c.families),
	})
	return c
}

// Families returns the built-in family followed by the discovered ones.
func (c *FontCatalog) Families() []string {
	names := make([]string, 0, len(c.families)+1)
	for name := range c.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{DefaultFamily}, names...)
}

func (c *FontCatalog) Has(family string) bool {
	if family == DefaultFamily || family == "" {
		return true
	}
	_, ok := c.families[family]
	return ok
}

// Font returns the face of family closest to style, or nil when the
// theme's own font should be used.
func (c *FontCatalog) Font(family string, style fyne.TextStyle) fyne.Resource {
	faces, ok := c.families[family]
	if !ok || style.Monospace || style.Symbol {
		return nil
	}

	want := faceRegular
	switch {
	case style.Bold && style.Italic:
		want = faceBoldItalic
	case style.Bold:
		want = faceBold
	case style.Italic:
		want = faceItalic
	}

	path, ok := faces[want]
	if !ok {
		path, ok = faces[faceRegular]
	}
	if !ok {
		return nil
	}
	return c.load(path)
}

func (c *FontCatalog) load(path string) fyne.Resource {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.loaded[path]; ok {
		return res
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		c.logger.Warning("FontCatalog", "font load failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		res = nil
	}
	c.loaded[path] = res
	return res
}

func (c *FontCatalog) scan(dir string) {
	if dir == "" {
		return
	}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !isFontFile(d.Name()) {
			return nil
		}
		family, face, ok := readFontName(path)
		if !ok {
			family, face, ok = parseFontFile(d.Name())
		}
		if !ok {
			return nil
		}
		faces := c.families[family]
		if faces == nil {
			faces = make(map[fontFace]string)
			c.families[family] = faces
		}
		if _, seen := faces[face]; !seen {
			faces[face] = path
		}
		return nil
	})
	if err != nil {
		c.logger.Debug("FontCatalog", "font directory skipped", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
	}
}

func isFontFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".ttf" || ext == ".otf"
}

// readFontName takes the family and face from the font's name table,
// preferring the typographic names over the legacy four-style ones.
// Subfamilies other than regular, bold and italic become families of
// their own, such as "Noto Sans Light".
func readFontName(path string) (string, fontFace, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", faceRegular, false
	}
	defer f.Close()

	font, err := sfnt.ParseReaderAt(f)
	if err != nil {
		return "", faceRegular, false
	}

	var buf sfnt.Buffer
	family := firstName(font, &buf, sfnt.NameIDTypographicFamily, sfnt.NameIDFamily)
	sub := firstName(font, &buf, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily)
	if family == "" {
		return "", faceRegular, false
	}

	face, ok := faceFor(strings.ReplaceAll(sub, " ", ""))
	if !ok {
		family += " " + sub
	}
	if family == DefaultFamily {
		return "", faceRegular, false
	}
	return family, face, true
}

func firstName(font *sfnt.Font, buf *sfnt.Buffer, ids ...sfnt.NameID) string {
	for _, id := range ids {
		if name, err := font.Name(buf, id); err == nil && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

// parseFontFile derives a family and face from names like
// "DejaVuSans-BoldOblique.ttf" or "LiberationMono_Italic.otf". It is the
// fallback for files whose name table cannot be read.
func parseFontFile(name string) (string, fontFace, bool) {
	if !isFontFile(name) {
		return "", faceRegular, false
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))

	family, style := base, ""
	if i := strings.LastIndexAny(base, "-_"); i > 0 {
		family, style = base[:i], base[i+1:]
	}

	face := faceRegular
	if style != "" {
		var matched bool
		if face, matched = faceFor(style); !matched {
			family = base
		}
	}
	if family == "" || family == DefaultFamily {
		return "", faceRegular, false
	}
	return family, face, true
}

// faceFor matches a style word such as "BoldOblique" case-insensitively.
// An empty style is regular.
func faceFor(style string) (fontFace, bool) {
	if style == "" {
		return faceRegular, true
	}
	lower := strings.ToLower(style)
	for _, s := range faceSuffixes {
		if lower == s.suffix {
			return s.face, true
		}
	}
	return faceRegular, false
}

func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		return []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts", filepath.Join(home, "Library", "Fonts")}
	default:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts"))
		}
		return dirs
	}
}
