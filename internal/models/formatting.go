package models

import "sort"

// TogglePolicy decides whether a toggle treats the selection as already styled.
type TogglePolicy int

const (
	// LeadingCharacter looks only at the first character of the selection,
	// so a mixed selection follows its leading character.
	LeadingCharacter TogglePolicy = iota
	// UniformScan treats the style as on only when the whole selection has it.
	UniformScan
)

func (p TogglePolicy) String() string {
	if p == UniformScan {
		return "uniform"
	}
	return "leading"
}

// ParseTogglePolicy maps the configuration names to policies.
func ParseTogglePolicy(name string) TogglePolicy {
	if name == "uniform" {
		return UniformScan
	}
	return LeadingCharacter
}

// ToggleResult describes what a toggle did.
type ToggleResult struct {
	Applied bool // style is now on over the selection
	Changed bool // false when the selection was empty
}

// ToggleStyle flips style over sel and records descriptor as the font used
// to render that style. An empty selection leaves the document untouched.
func (d *Document) ToggleStyle(style Style, sel Selection, policy TogglePolicy, descriptor FontDescriptor) ToggleResult {
	sel = sel.Normalize()
	sel.Start, sel.End = d.clamp(sel.Start), d.clamp(sel.End)
	if sel.Empty() {
		return ToggleResult{}
	}

	var on bool
	switch policy {
	case UniformScan:
		on = d.Covers(style, sel.Start, sel.End)
	default:
		on = d.HasStyle(style, sel.Start)
	}

	if on {
		d.RemoveStyle(style, sel.Start, sel.End)
	} else {
		d.AddStyle(style, sel.Start, sel.End)
	}

	descriptor.Style = style
	d.SetDescriptor(style, descriptor)

	return ToggleResult{Applied: !on, Changed: true}
}

// Segment is a maximal run of text sharing the same set of styles.
type Segment struct {
	Text      string
	Start     int
	Bold      bool
	Italic    bool
	Underline bool
}

func (s Segment) Styled() bool { return s.Bold || s.Italic || s.Underline }

// Segments splits the document at every span boundary for rendering.
func (d *Document) Segments() []Segment {
	if len(d.text) == 0 {
		return nil
	}

	cuts := map[int]struct{}{0: {}, len(d.text): {}}
	for _, sp := range d.AllSpans() {
		cuts[sp.Start] = struct{}{}
		cuts[sp.End] = struct{}{}
	}
	bounds := make([]int, 0, len(cuts))
	for c := range cuts {
		bounds = append(bounds, c)
	}
	sort.Ints(bounds)

	segments := make([]Segment, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		segments = append(segments, Segment{
			Text:      string(d.text[start:end]),
			Start:     start,
			Bold:      d.HasStyle(StyleBold, start),
			Italic:    d.HasStyle(StyleItalic, start),
			Underline: d.HasStyle(StyleUnderline, start),
		})
	}
	return segments
}
