package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var base = FontDescriptor{Family: "Helvetica", Size: 14}

func TestToggleBoldRoundTrip(t *testing.T) {
	doc := NewDocument("hello world")
	sel := Selection{Start: 0, End: 5}

	res := doc.ToggleStyle(StyleBold, sel, LeadingCharacter, base)
	assert.True(t, res.Applied)
	assert.Equal(t, []Span{{Start: 0, End: 5, Style: StyleBold}}, doc.Spans(StyleBold))

	res = doc.ToggleStyle(StyleBold, sel, LeadingCharacter, base)
	assert.False(t, res.Applied)
	assert.Empty(t, doc.Spans(StyleBold))

	res = doc.ToggleStyle(StyleBold, sel, LeadingCharacter, base)
	assert.True(t, res.Applied)
	assert.Equal(t, []Span{{Start: 0, End: 5, Style: StyleBold}}, doc.Spans(StyleBold))
}

func TestToggleLeadingCharacterPolicyOnMixedSelection(t *testing.T) {
	// leading character bold: the whole selection loses bold
	doc := NewDocument("hello world")
	doc.AddStyle(StyleBold, 0, 3)

	res := doc.ToggleStyle(StyleBold, Selection{Start: 0, End: 11}, LeadingCharacter, base)

	assert.False(t, res.Applied)
	assert.Empty(t, doc.Spans(StyleBold))

	// leading character plain: the whole selection gains bold
	doc = NewDocument("hello world")
	doc.AddStyle(StyleBold, 6, 11)

	res = doc.ToggleStyle(StyleBold, Selection{Start: 0, End: 11}, LeadingCharacter, base)

	assert.True(t, res.Applied)
	assert.Equal(t, []Span{{Start: 0, End: 11, Style: StyleBold}}, doc.Spans(StyleBold))
}

func TestToggleUniformScanPolicyOnMixedSelection(t *testing.T) {
	// leading character bold but selection not fully bold: uniform scan adds
	doc := NewDocument("hello world")
	doc.AddStyle(StyleBold, 0, 3)

	res := doc.ToggleStyle(StyleBold, Selection{Start: 0, End: 11}, UniformScan, base)

	assert.True(t, res.Applied)
	assert.Equal(t, []Span{{Start: 0, End: 11, Style: StyleBold}}, doc.Spans(StyleBold))

	// fully bold: uniform scan removes
	res = doc.ToggleStyle(StyleBold, Selection{Start: 0, End: 11}, UniformScan, base)

	assert.False(t, res.Applied)
	assert.Empty(t, doc.Spans(StyleBold))
}

func TestToggleWithEmptySelectionIsNoOp(t *testing.T) {
	doc := NewDocument("hello")

	res := doc.ToggleStyle(StyleItalic, Selection{Start: 2, End: 2}, LeadingCharacter, base)

	assert.False(t, res.Changed)
	assert.Empty(t, doc.AllSpans())
	_, ok := doc.Descriptor(StyleItalic)
	assert.False(t, ok)
}

func TestToggleBackwardSelection(t *testing.T) {
	doc := NewDocument("hello")

	doc.ToggleStyle(StyleUnderline, Selection{Start: 5, End: 1}, LeadingCharacter, base)

	assert.Equal(t, []Span{{Start: 1, End: 5, Style: StyleUnderline}}, doc.Spans(StyleUnderline))
}

func TestToggleRecordsDescriptorFromCurrentFont(t *testing.T) {
	doc := NewDocument("hello")

	doc.ToggleStyle(StyleItalic, Selection{Start: 0, End: 5}, LeadingCharacter, FontDescriptor{Family: "Courier", Size: 20})

	fd, ok := doc.Descriptor(StyleItalic)
	assert.True(t, ok)
	assert.Equal(t, FontDescriptor{Family: "Courier", Size: 20, Style: StyleItalic}, fd)
}

func TestSegments(t *testing.T) {
	doc := NewDocument("plain bold both ital")
	doc.AddStyle(StyleBold, 6, 15)
	doc.AddStyle(StyleItalic, 11, 20)

	segs := doc.Segments()

	want := []Segment{
		{Text: "plain ", Start: 0},
		{Text: "bold ", Start: 6, Bold: true},
		{Text: "both", Start: 11, Bold: true, Italic: true},
		{Text: " ital", Start: 15, Italic: true},
	}
	assert.Equal(t, want, segs)
	assert.False(t, segs[0].Styled())
	assert.True(t, segs[2].Styled())
}

func TestSegmentsOfEmptyDocument(t *testing.T) {
	assert.Empty(t, NewDocument("").Segments())
}

func TestParseTogglePolicy(t *testing.T) {
	assert.Equal(t, UniformScan, ParseTogglePolicy("uniform"))
	assert.Equal(t, LeadingCharacter, ParseTogglePolicy("leading"))
	assert.Equal(t, LeadingCharacter, ParseTogglePolicy(""))
}
