package pokestr

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// CodeTableSize is the exclusive upper bound on in-game character codes
// covered by the compiled by-code table (spec: "bounded by 0x1FE entries").
const CodeTableSize = 0x1FE

// hardCodedCode and hardCodedGrapheme are consulted before the compiled
// tables in both directions. 0xE000 sits far outside CodeTableSize, so
// without this override the newline character could never be decoded.
var (
	hardCodedCode     uint16   = 0xE000
	hardCodedGrapheme Grapheme = BMP(0x000A)
)

//go:embed data/gen-iv-character-map.txt
var defaultCharacterMapText string

type graphemeEntry struct {
	g    Grapheme
	code uint16
}

// CharacterMap is a compiled pair of lookup tables: by in-game code (O(1),
// array-indexed) and by grapheme (O(log n), binary-searched).
type CharacterMap struct {
	byCode    []Grapheme // len == CodeTableSize
	byCodeSet []bool     // parallel to byCode; codes never assigned a glyph stay unset
	byGrapheme []graphemeEntry
}

var defaultMap *CharacterMap

func init() {
	m, err := LoadCharacterMap(strings.NewReader(defaultCharacterMapText))
	if err != nil {
		panic(fmt.Sprintf("pokestr: embedded character map failed to load: %v", err))
	}
	defaultMap = m
}

// Default returns the character map compiled into the binary.
func Default() *CharacterMap { return defaultMap }

// LoadCharacterMap parses the build-time character-map format described in
// spec.md §6: one mapping per line, "0xCODE GLYPH"; any other line is
// ignored. The literal two-character sequence "\n" assigns the newline
// grapheme, and "\s" assigns the space grapheme, since a bare space or an
// actual line break cannot otherwise survive a line-oriented text format.
func LoadCharacterMap(r io.Reader) (*CharacterMap, error) {
	byCode := make([]Grapheme, CodeTableSize)
	byCodeSet := make([]bool, CodeTableSize)
	var entries []graphemeEntry

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "0x") || len(line) < 8 {
			continue
		}
		code64, err := strconv.ParseUint(line[2:6], 16, 16)
		if err != nil {
			return nil, fmt.Errorf("pokestr: invalid code in %q: %w", line, err)
		}
		code := uint16(code64)

		rest := line[7:]
		var g Grapheme
		switch rest {
		case `\n`:
			g = BMP(0x000A)
		case `\s`:
			g = BMP(0x0020)
		default:
			gs := SplitGraphemes(rest)
			if len(gs) == 0 {
				continue
			}
			g = gs[0]
		}

		entries = append(entries, graphemeEntry{g: g, code: code})
		if int(code) < CodeTableSize {
			byCode[code] = g
			byCodeSet[code] = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pokestr: reading character map: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].g.Compare(entries[j].g) < 0 })
	return &CharacterMap{byCode: byCode, byCodeSet: byCodeSet, byGrapheme: entries}, nil
}

// ToGrapheme looks up the UTF-16 grapheme for an in-game character code.
// It reports false for codes that are neither the hard-coded override nor
// assigned a glyph in the compiled table.
func (m *CharacterMap) ToGrapheme(code uint16) (Grapheme, bool) {
	if code == hardCodedCode {
		return hardCodedGrapheme, true
	}
	if int(code) >= len(m.byCode) || !m.byCodeSet[code] {
		return Grapheme{}, false
	}
	return m.byCode[code], true
}

// ToCode looks up the in-game character code for a UTF-16 grapheme.
func (m *CharacterMap) ToCode(g Grapheme) (uint16, bool) {
	if g.Compare(hardCodedGrapheme) == 0 {
		return hardCodedCode, true
	}
	i := sort.Search(len(m.byGrapheme), func(i int) bool { return m.byGrapheme[i].g.Compare(g) >= 0 })
	if i < len(m.byGrapheme) && m.byGrapheme[i].g.Compare(g) == 0 {
		return m.byGrapheme[i].code, true
	}
	return 0, false
}
