// Package pokestr implements the Generation IV in-game text codec: splitting
// host strings into UTF-16 graphemes, mapping those graphemes to and from
// the proprietary 16-bit character codes the games use, and the lossless
// \xHHHH escape syntax for codes that have no Unicode representation.
//
//go:generate go run github.com/eiskasten/wc-beacon/cmd/wcbeacon-gentables
package pokestr

import "unicode/utf16"

// highSurrogateMask isolates the six high bits that distinguish UTF-16
// surrogate code units from the rest of the BMP; highSurrogateTag and
// lowSurrogateTag are the values those bits take for each kind of surrogate.
const (
	highSurrogateMask = 0xFC00
	highSurrogateTag  = 0xD800
	lowSurrogateTag   = 0xDC00
)

// GraphemeKind tags which variant a Grapheme holds.
type GraphemeKind uint8

const (
	// KindBMP holds a single code unit directly representable in the BMP.
	KindBMP GraphemeKind = iota
	// KindSurrogatePair holds a high/low surrogate pair representing an
	// astral codepoint.
	KindSurrogatePair
)

// Grapheme is a single UTF-16 atom: either one BMP code unit or a
// high/low surrogate pair. Unlike a Go rune, it keeps the original code
// units around so that a pair round-trips exactly through re-encoding.
type Grapheme struct {
	Kind GraphemeKind
	High uint16 // the only unit for KindBMP, the high surrogate for KindSurrogatePair
	Low  uint16 // the low surrogate, only meaningful for KindSurrogatePair
}

// BMP builds a Grapheme from a single BMP code unit.
func BMP(c uint16) Grapheme { return Grapheme{Kind: KindBMP, High: c} }

// SurrogatePair builds a Grapheme from a high/low surrogate pair.
func SurrogatePair(high, low uint16) Grapheme {
	return Grapheme{Kind: KindSurrogatePair, High: high, Low: low}
}

func isHighSurrogate(c uint16) bool { return c&highSurrogateMask == highSurrogateTag }
func isLowSurrogate(c uint16) bool  { return c&highSurrogateMask == lowSurrogateTag }

// Units returns the raw UTF-16 code units this grapheme expands to.
func (g Grapheme) Units() []uint16 {
	if g.Kind == KindSurrogatePair {
		return []uint16{g.High, g.Low}
	}
	return []uint16{g.High}
}

// Compare orders graphemes: all KindBMP values sort before all
// KindSurrogatePair values, matching the derived Ord used to build the
// by-grapheme binary-search table.
func (g Grapheme) Compare(o Grapheme) int {
	if g.Kind != o.Kind {
		if g.Kind < o.Kind {
			return -1
		}
		return 1
	}
	if g.High != o.High {
		if g.High < o.High {
			return -1
		}
		return 1
	}
	if g.Low != o.Low {
		if g.Low < o.Low {
			return -1
		}
		return 1
	}
	return 0
}

// SplitGraphemes splits s into its sequence of UTF-16 graphemes, pairing up
// valid high/low surrogate sequences and leaving any lone surrogate as its
// own BMP atom.
func SplitGraphemes(s string) []Grapheme {
	units := utf16.Encode([]rune(s))
	out := make([]Grapheme, 0, len(units))
	for i := 0; i < len(units); i++ {
		c := units[i]
		if isHighSurrogate(c) && i+1 < len(units) && isLowSurrogate(units[i+1]) {
			out = append(out, SurrogatePair(c, units[i+1]))
			i++
			continue
		}
		out = append(out, BMP(c))
	}
	return out
}

// GraphemesToString joins graphemes back into a host string.
func GraphemesToString(gs []Grapheme) string {
	units := make([]uint16, 0, len(gs))
	for _, g := range gs {
		units = append(units, g.Units()...)
	}
	return string(utf16.Decode(units))
}
