package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(start, end int, style Style) Span {
	return Span{Start: start, End: end, Style: style}
}

func TestAddStyleMergesOverlappingAndTouchingSpans(t *testing.T) {
	doc := NewDocument("hello brave new world")

	doc.AddStyle(StyleBold, 0, 5)
	doc.AddStyle(StyleBold, 5, 11)
	doc.AddStyle(StyleBold, 16, 21)
	doc.AddStyle(StyleBold, 10, 17)

	assert.Equal(t, []Span{span(0, 21, StyleBold)}, doc.Spans(StyleBold))
}

func TestRemoveStyleSplitsSpan(t *testing.T) {
	doc := NewDocument("hello brave new world")
	doc.AddStyle(StyleItalic, 0, 21)

	doc.RemoveStyle(StyleItalic, 6, 11)

	assert.Equal(t, []Span{span(0, 6, StyleItalic), span(11, 21, StyleItalic)}, doc.Spans(StyleItalic))
	assert.True(t, doc.HasStyle(StyleItalic, 5))
	assert.False(t, doc.HasStyle(StyleItalic, 6))
	assert.False(t, doc.HasStyle(StyleItalic, 10))
	assert.True(t, doc.HasStyle(StyleItalic, 11))
}

func TestStylesAreIndependent(t *testing.T) {
	doc := NewDocument("abcdef")
	doc.AddStyle(StyleBold, 0, 3)
	doc.AddStyle(StyleUnderline, 2, 6)

	assert.True(t, doc.HasStyle(StyleBold, 2))
	assert.True(t, doc.HasStyle(StyleUnderline, 2))
	assert.False(t, doc.HasStyle(StyleItalic, 2))
	assert.Len(t, doc.AllSpans(), 2)
}

func TestStyleRangesAreClampedToDocument(t *testing.T) {
	doc := NewDocument("abc")

	doc.AddStyle(StyleBold, -4, 99)
	assert.Equal(t, []Span{span(0, 3, StyleBold)}, doc.Spans(StyleBold))

	doc.AddStyle(StyleItalic, 5, 9)
	assert.Empty(t, doc.Spans(StyleItalic))
}

func TestSetTextDropsSpansButKeepsDescriptors(t *testing.T) {
	doc := NewDocument("abc")
	doc.AddStyle(StyleBold, 0, 3)
	doc.SetDescriptor(StyleBold, FontDescriptor{Family: "Serif", Size: 12, Style: StyleBold})

	doc.SetText("xyz")

	assert.Empty(t, doc.AllSpans())
	fd, ok := doc.Descriptor(StyleBold)
	assert.True(t, ok)
	assert.Equal(t, "Serif", fd.Family)
}

func TestReplaceRangeReanchorsSpans(t *testing.T) {
	tests := []struct {
		name       string
		span       Span
		start, end int
		insert     string
		wantText   string
		want       []Span
	}{
		{
			name:     "span before edit is untouched",
			span:     span(0, 3, StyleBold),
			start:    6, end: 9, insert: "X",
			wantText: "abcdefX",
			want:     []Span{span(0, 3, StyleBold)},
		},
		{
			name:     "span after edit shifts",
			span:     span(6, 9, StyleBold),
			start:    0, end: 3, insert: "",
			wantText: "defghi",
			want:     []Span{span(3, 6, StyleBold)},
		},
		{
			name:     "span straddling edit absorbs insert",
			span:     span(1, 8, StyleBold),
			start:    3, end: 5, insert: "1234",
			wantText: "abc1234fghi",
			want:     []Span{span(1, 10, StyleBold)},
		},
		{
			name:     "insertion inside span extends it",
			span:     span(2, 5, StyleBold),
			start:    3, end: 3, insert: "ZZ",
			wantText: "abcZZdefghi",
			want:     []Span{span(2, 7, StyleBold)},
		},
		{
			name:     "insertion at span start shifts it",
			span:     span(2, 5, StyleBold),
			start:    2, end: 2, insert: "ZZ",
			wantText: "abZZcdefghi",
			want:     []Span{span(4, 7, StyleBold)},
		},
		{
			name:     "insertion at span end does not extend it",
			span:     span(2, 5, StyleBold),
			start:    5, end: 5, insert: "ZZ",
			wantText: "abcdeZZfghi",
			want:     []Span{span(2, 5, StyleBold)},
		},
		{
			name:     "span equal to replaced range covers the replacement",
			span:     span(3, 6, StyleBold),
			start:    3, end: 6, insert: "XY",
			wantText: "abcXYghi",
			want:     []Span{span(3, 5, StyleBold)},
		},
		{
			name:     "span starting at replaced range keeps its start",
			span:     span(0, 7, StyleBold),
			start:    0, end: 3, insert: "XYZW",
			wantText: "XYZWdefghi",
			want:     []Span{span(0, 8, StyleBold)},
		},
		{
			name:     "span ending at replaced range keeps covering it",
			span:     span(2, 6, StyleBold),
			start:    4, end: 6, insert: "Z",
			wantText: "abcdZghi",
			want:     []Span{span(2, 5, StyleBold)},
		},
		{
			name:     "deleting a whole span removes it",
			span:     span(3, 6, StyleBold),
			start:    3, end: 6, insert: "",
			wantText: "abcghi",
			want:     []Span{},
		},
		{
			name:     "span inside deleted range disappears",
			span:     span(3, 5, StyleBold),
			start:    2, end: 6, insert: "",
			wantText: "abghi",
			want:     []Span{},
		},
		{
			name:     "partial overlap at the left is clipped",
			span:     span(0, 4, StyleBold),
			start:    2, end: 6, insert: "--",
			wantText: "ab--ghi",
			want:     []Span{span(0, 2, StyleBold)},
		},
		{
			name:     "partial overlap at the right is clipped",
			span:     span(4, 8, StyleBold),
			start:    2, end: 6, insert: "--",
			wantText: "ab--ghi",
			want:     []Span{span(4, 6, StyleBold)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument("abcdefghi")
			doc.AddStyle(tt.span.Style, tt.span.Start, tt.span.End)

			require.NoError(t, doc.ReplaceRange(tt.start, tt.end, tt.insert))

			assert.Equal(t, tt.wantText, doc.Text())
			assert.Equal(t, tt.want, append([]Span{}, doc.Spans(StyleBold)...))
		})
	}
}

func TestReplaceRangeRejectsBadBounds(t *testing.T) {
	doc := NewDocument("abc")

	assert.Error(t, doc.ReplaceRange(-1, 2, ""))
	assert.Error(t, doc.ReplaceRange(2, 1, ""))
	assert.Error(t, doc.ReplaceRange(0, 4, ""))
	assert.Equal(t, "abc", doc.Text())
}

func TestSyncAppliesMinimalEdit(t *testing.T) {
	doc := NewDocument("hello world")
	doc.AddStyle(StyleBold, 6, 11)

	changed := doc.Sync("hello, world")

	assert.True(t, changed)
	assert.Equal(t, "hello, world", doc.Text())
	assert.Equal(t, []Span{span(7, 12, StyleBold)}, doc.Spans(StyleBold))
	assert.Equal(t, "world", doc.Slice(7, 12))
}

func TestSyncTypingInsideStyledWord(t *testing.T) {
	doc := NewDocument("bold")
	doc.AddStyle(StyleBold, 0, 4)

	doc.Sync("boXld")

	assert.Equal(t, []Span{span(0, 5, StyleBold)}, doc.Spans(StyleBold))
}

func TestSyncRepeatedCharacters(t *testing.T) {
	doc := NewDocument("aaa")
	doc.AddStyle(StyleUnderline, 0, 3)

	doc.Sync("aaaa")

	assert.Equal(t, "aaaa", doc.Text())
	assert.Equal(t, []Span{span(0, 3, StyleUnderline)}, doc.Spans(StyleUnderline))
}

func TestSyncNoChange(t *testing.T) {
	doc := NewDocument("same")
	assert.False(t, doc.Sync("same"))
}

func TestSyncHandlesMultibyteRunes(t *testing.T) {
	doc := NewDocument("héllo wörld")
	doc.AddStyle(StyleItalic, 6, 11)

	doc.Sync("héllo, wörld")

	assert.Equal(t, "wörld", doc.Slice(7, 12))
	assert.Equal(t, []Span{span(7, 12, StyleItalic)}, doc.Spans(StyleItalic))
}

func TestSelectionNormalize(t *testing.T) {
	assert.Equal(t, Selection{Start: 2, End: 5}, Selection{Start: 5, End: 2}.Normalize())
	assert.True(t, Selection{Start: 3, End: 3}.Empty())
}
