package expr

import (
	"iter"
)

// GlyphSpan is a range of glyph indexes in an expression.
type GlyphSpan struct {
	Start  int
	Length int
}

// End is the index just past the span.
func (span GlyphSpan) End() int {
	return span.Start + span.Length
}

// Indices yields each glyph index covered by the span.
func (span GlyphSpan) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := span.Start; n < span.End(); n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Merge returns the smallest span covering both spans.
func (span GlyphSpan) Merge(other GlyphSpan) GlyphSpan {
	start := min(span.Start, other.Start)
	end := max(span.End(), other.End())
	return GlyphSpan{Start: start, Length: end - start}
}
