package glyph

import (
	"strings"
	"unicode"
)

// runeGlyph maps text to glyphs. Besides the canonical form of every glyph,
// the multiplication and division signs are accepted.
var runeGlyph = func() map[rune]Glyph {
	m := map[rune]Glyph{
		'×': MULTIPLY,
		'÷': DIVIDE,
	}
	for g := range Glyph(GLYPH_COUNT) {
		m[g.Rune()] = g
	}
	return m
}()

// FromRune returns the glyph typed as r.
func FromRune(r rune) (g Glyph, ok bool) {
	g, ok = runeGlyph[r]
	return
}

// Parse converts text to glyphs. Whitespace is ignored. Position in a
// returned ErrGlyphSyntax counts characters from the start of text.
func Parse(text string) (glyphs []Glyph, err error) {
	position := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			g, ok := FromRune(r)
			if !ok {
				err = ErrGlyphSyntax{Position: position, Rune: r}
				return
			}
			glyphs = append(glyphs, g)
		}
		position++
	}

	return
}

// Format converts glyphs to their canonical text.
func Format(glyphs []Glyph) string {
	var sb strings.Builder
	for _, g := range glyphs {
		sb.WriteRune(g.Rune())
	}
	return sb.String()
}
