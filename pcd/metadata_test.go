package pcd

import (
	"encoding/binary"
	"testing"
)

func blankPartitioned() Partitioned {
	var p Partitioned
	for i := range p.header {
		p.header[i] = 0xFF
	}
	for i := range p.cardData {
		p.cardData[i] = 0xFF
	}
	return p
}

func TestMetadataRoundTrip(t *testing.T) {
	p := blankPartitioned()
	m := DeserializedMetadata{
		Title:          "Hello!",
		CardType:       CardTypeManaphyEgg,
		GiftInstance:   7,
		CardID:         1234,
		Games:          GameDiamond.With(GamePlatinum),
		Comment:        "A gift",
		Icons:          [iconCount]uint16{1, 0, 0},
		Redistribution: 0xFF,
		Received:       8982,
	}

	applied, err := m.Apply(p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, err := ParseMetadata(applied)
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}

	if got.Title != m.Title {
		t.Fatalf("Title = %q, want %q", got.Title, m.Title)
	}
	if got.CardType != m.CardType {
		t.Fatalf("CardType = %v, want %v", got.CardType, m.CardType)
	}
	if got.GiftInstance != m.GiftInstance {
		t.Fatalf("GiftInstance = %d, want %d", got.GiftInstance, m.GiftInstance)
	}
	if got.CardID != m.CardID {
		t.Fatalf("CardID = %d, want %d", got.CardID, m.CardID)
	}
	if got.Games != m.Games {
		t.Fatalf("Games = %v, want %v", got.Games, m.Games)
	}
	if got.Comment != m.Comment {
		t.Fatalf("Comment = %q, want %q", got.Comment, m.Comment)
	}
	if got.Icons != m.Icons {
		t.Fatalf("Icons = %v, want %v", got.Icons, m.Icons)
	}
	if got.Redistribution != m.Redistribution {
		t.Fatalf("Redistribution = %#x, want %#x", got.Redistribution, m.Redistribution)
	}
	if got.Received != m.Received {
		t.Fatalf("Received = %d, want %d", got.Received, m.Received)
	}
}

// TestGamesFieldAsymmetry exercises the on-wire byte order directly: write
// emits big-endian, read consumes little-endian and rotates left 8 — the
// pairing that keeps the games field round-tripping despite the asymmetry.
func TestGamesFieldAsymmetry(t *testing.T) {
	g := GameDiamond.With(GameSoulSilver)
	var field [2]byte = gamesFieldWrite(g)
	raw := binary.LittleEndian.Uint16(field[:])
	if back := gamesFieldRead(raw); back != g {
		t.Fatalf("gamesFieldRead(LE(gamesFieldWrite(g))) = %v, want %v", back, g)
	}
}

func TestCardTypeCoercesOutOfRangeToUnknown(t *testing.T) {
	if got := cardTypeFromByte(0xFF); got != CardTypeUnknown {
		t.Fatalf("cardTypeFromByte(0xff) = %v, want Unknown", got)
	}
}

func TestParseCardTypeRoundTrip(t *testing.T) {
	for ct := CardTypeNone; ct <= CardTypePokewalkerArea; ct++ {
		got, err := ParseCardType(ct.String())
		if err != nil {
			t.Fatalf("ParseCardType(%q): %v", ct.String(), err)
		}
		if got != ct {
			t.Fatalf("ParseCardType(%q) = %v, want %v", ct.String(), got, ct)
		}
	}
}
