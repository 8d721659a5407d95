package models

import (
	"fmt"
	"sort"
)

// Style is a character attribute that can be toggled over a range.
type Style int

const (
	StyleBold Style = iota
	StyleItalic
	StyleUnderline
)

// Styles lists every style in menu order.
var Styles = []Style{StyleBold, StyleItalic, StyleUnderline}

func (s Style) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleUnderline:
		return "underline"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// Span is a half-open rune range [Start, End) carrying one style.
type Span struct {
	Start int
	End   int
	Style Style
}

func (s Span) Len() int { return s.End - s.Start }

// Selection is a half-open rune range. Start may be greater than End when
// the user selected backwards; use Normalize before indexing.
type Selection struct {
	Start int
	End   int
}

func (s Selection) Normalize() Selection {
	if s.Start > s.End {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}

func (s Selection) Empty() bool { return s.Start == s.End }

// Document is the editor buffer: the text as runes plus per-style spans.
// Spans of one style are kept sorted, non-empty and non-touching.
type Document struct {
	text        []rune
	spans       map[Style][]Span
	descriptors map[Style]FontDescriptor
}

func NewDocument(text string) *Document {
	return &Document{
		text:        []rune(text),
		spans:       make(map[Style][]Span),
		descriptors: make(map[Style]FontDescriptor),
	}
}

func (d *Document) Text() string { return string(d.text) }

// Len is the length in runes.
func (d *Document) Len() int { return len(d.text) }

// Slice returns the text in [start, end), clamped to the document.
func (d *Document) Slice(start, end int) string {
	start, end = d.clamp(start), d.clamp(end)
	if start >= end {
		return ""
	}
	return string(d.text[start:end])
}

// SetText replaces the whole buffer. All spans are dropped; style font
// descriptors survive, like tag configuration in a text widget.
func (d *Document) SetText(text string) {
	d.text = []rune(text)
	d.spans = make(map[Style][]Span)
}

func (d *Document) Clear() { d.SetText("") }

// ReplaceRange replaces [start, end) with insert and re-anchors spans:
// spans before the range are untouched, spans after it shift, spans that
// contain a non-empty range keep covering the inserted text and spans that
// only partly overlap it are clipped. A pure insertion at a span boundary
// stays outside the span.
func (d *Document) ReplaceRange(start, end int, insert string) error {
	if start < 0 || end > len(d.text) || start > end {
		return fmt.Errorf("replace range [%d,%d) outside document of length %d", start, end, len(d.text))
	}

	ins := []rune(insert)
	delta := len(ins) - (end - start)

	next := make([]rune, 0, len(d.text)+delta)
	next = append(next, d.text[:start]...)
	next = append(next, ins...)
	next = append(next, d.text[end:]...)
	d.text = next

	for style, spans := range d.spans {
		moved := spans[:0]
		for _, sp := range spans {
			if end > start && sp.Start <= start && sp.End >= end {
				sp.End += delta
			} else {
				sp.Start = mapStart(sp.Start, start, end, len(ins), delta)
				sp.End = mapEnd(sp.End, start, end, delta)
			}
			if sp.End > sp.Start {
				moved = append(moved, sp)
			}
		}
		d.setSpans(style, moved)
	}
	return nil
}

func mapStart(p, start, end, insLen, delta int) int {
	switch {
	case p < start:
		return p
	case p >= end:
		return p + delta
	default:
		return start + insLen
	}
}

func mapEnd(p, start, end, delta int) int {
	switch {
	case p <= start:
		return p
	case p > end:
		return p + delta
	default:
		return start
	}
}

// Sync brings the buffer in line with text as edited by the view, treating
// the difference as a single range replacement so spans stay anchored.
// It reports whether anything changed.
func (d *Document) Sync(text string) bool {
	next := []rune(text)
	old := d.text

	prefix := 0
	for prefix < len(old) && prefix < len(next) && old[prefix] == next[prefix] {
		prefix++
	}
	if prefix == len(old) && prefix == len(next) {
		return false
	}

	suffix := 0
	for suffix < len(old)-prefix && suffix < len(next)-prefix &&
		old[len(old)-1-suffix] == next[len(next)-1-suffix] {
		suffix++
	}

	// bounds are derived from d.text so the error case cannot happen
	_ = d.ReplaceRange(prefix, len(old)-suffix, string(next[prefix:len(next)-suffix]))
	return true
}

// HasStyle reports whether the rune at pos carries style.
func (d *Document) HasStyle(style Style, pos int) bool {
	spans := d.spans[style]
	i := sort.Search(len(spans), func(i int) bool { return spans[i].End > pos })
	return i < len(spans) && spans[i].Start <= pos
}

// Covers reports whether every rune of [start, end) carries style.
func (d *Document) Covers(style Style, start, end int) bool {
	if start >= end {
		return false
	}
	for _, sp := range d.spans[style] {
		if sp.Start <= start && sp.End >= end {
			return true
		}
	}
	return false
}

// AddStyle applies style to [start, end), merging with neighbouring spans.
func (d *Document) AddStyle(style Style, start, end int) {
	start, end = d.clamp(start), d.clamp(end)
	if start >= end {
		return
	}

	merged := Span{Start: start, End: end, Style: style}
	var out []Span
	for _, sp := range d.spans[style] {
		if sp.End < merged.Start || sp.Start > merged.End {
			out = append(out, sp)
			continue
		}
		merged.Start = min(merged.Start, sp.Start)
		merged.End = max(merged.End, sp.End)
	}
	out = append(out, merged)
	d.setSpans(style, out)
}

// RemoveStyle clears style from [start, end), splitting spans as needed.
func (d *Document) RemoveStyle(style Style, start, end int) {
	start, end = d.clamp(start), d.clamp(end)
	if start >= end {
		return
	}

	var out []Span
	for _, sp := range d.spans[style] {
		if sp.End <= start || sp.Start >= end {
			out = append(out, sp)
			continue
		}
		if sp.Start < start {
			out = append(out, Span{Start: sp.Start, End: start, Style: style})
		}
		if sp.End > end {
			out = append(out, Span{Start: end, End: sp.End, Style: style})
		}
	}
	d.setSpans(style, out)
}

// Spans returns a copy of the spans of one style in document order.
func (d *Document) Spans(style Style) []Span {
	spans := d.spans[style]
	out := make([]Span, len(spans))
	copy(out, spans)
	return out
}

// AllSpans returns every span ordered by start, then style.
func (d *Document) AllSpans() []Span {
	var out []Span
	for _, style := range Styles {
		out = append(out, d.spans[style]...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Style < out[j].Style
	})
	return out
}

func (d *Document) Descriptor(style Style) (FontDescriptor, bool) {
	fd, ok := d.descriptors[style]
	return fd, ok
}

func (d *Document) SetDescriptor(style Style, fd FontDescriptor) {
	d.descriptors[style] = fd
}

func (d *Document) setSpans(style Style, spans []Span) {
	if len(spans) == 0 {
		delete(d.spans, style)
		return
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	// merge touching spans left behind by edits
	out := spans[:1]
	for _, sp := range spans[1:] {
		last := &out[len(out)-1]
		if sp.Start <= last.End {
			last.End = max(last.End, sp.End)
			continue
		}
		out = append(out, sp)
	}
	d.spans[style] = out
}

func (d *Document) clamp(p int) int {
	return max(0, min(p, len(d.text)))
}
