package beacon

import "fmt"

// GGID gates which game locales accept a given broadcast.
type GGID uint32

const (
	GGIDJapanese GGID = 0x000345
	GGIDEnglish  GGID = 0x400318
	GGIDFrench   GGID = 0x8000CD
	GGIDGerman   GGID = 0x8000CE
	GGIDItalian  GGID = 0x8000CF
	GGIDSpanish  GGID = 0x8000D0
	GGIDKorean   GGID = 0xC00018
)

var ggidNames = []struct {
	code GGID
	name string
}{
	{GGIDJapanese, "ja"},
	{GGIDEnglish, "en"},
	{GGIDFrench, "fr"},
	{GGIDGerman, "de"},
	{GGIDItalian, "it"},
	{GGIDSpanish, "es"},
	{GGIDKorean, "ko"},
}

// String returns the two-letter region code for the --region flag and for
// display.
func (g GGID) String() string {
	for _, n := range ggidNames {
		if n.code == g {
			return n.name
		}
	}
	return fmt.Sprintf("ggid(%#x)", uint32(g))
}

// ParseGGID resolves a two-letter region code to its GGID.
func ParseGGID(s string) (GGID, error) {
	for _, n := range ggidNames {
		if n.name == s {
			return n.code, nil
		}
	}
	return 0, fmt.Errorf("beacon: unknown region code %q", s)
}
