package pcd

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/eiskasten/wc-beacon/pokestr"
)

// Field offsets and capacities within their regions, per the raw 856-byte
// layout: pgt occupies [0, PGTLength), header [PGTLength, PGTLength+HeaderLength),
// card_data the remainder.
const (
	cardTypeOffset     = 0x0
	giftInstanceOffset = 0x4

	titleOffset   = 0x0
	titleMaxWords = 36 // 72 bytes, ending just before the games field
	gamesOffset   = 0x48
	cardIDOffset  = 0x4C

	commentOffset     = 0x0
	commentMaxWords   = 250 // 500 bytes, ending just before redistribution
	redistribution    = 0x1F4
	iconsOffset       = 0x1F6
	receivedOffset    = 0x200
	iconCount         = 3
)

// CardType enumerates the kind of gift a wondercard carries.
type CardType uint8

const (
	CardTypeNone CardType = iota
	CardTypePokemon
	CardTypePokemonEgg
	CardTypeItem
	CardTypeRule
	CardTypeSeal
	CardTypeAccessory
	CardTypeManaphyEgg
	CardTypeMemberCard
	CardTypeOaksLetter
	CardTypeAzureFlute
	CardTypePoketchApp
	CardTypeSecretKey
	CardTypeUnknown
	CardTypePokewalkerArea
)

var cardTypeNames = [...]string{
	CardTypeNone:           "none",
	CardTypePokemon:        "pokemon",
	CardTypePokemonEgg:     "pokemon-egg",
	CardTypeItem:           "item",
	CardTypeRule:           "rule",
	CardTypeSeal:           "seal",
	CardTypeAccessory:      "accessory",
	CardTypeManaphyEgg:     "manaphy-egg",
	CardTypeMemberCard:     "member-card",
	CardTypeOaksLetter:     "oaks-letter",
	CardTypeAzureFlute:     "azure-flute",
	CardTypePoketchApp:     "poketch-app",
	CardTypeSecretKey:      "secret-key",
	CardTypeUnknown:        "unknown",
	CardTypePokewalkerArea: "pokewalker-area",
}

// String implements fmt.Stringer for human-readable and JSON output.
func (c CardType) String() string {
	if int(c) < len(cardTypeNames) {
		return cardTypeNames[c]
	}
	return cardTypeNames[CardTypeUnknown]
}

// cardTypeFromByte coerces a raw byte to CardType, per spec: any value
// outside 0x0..0xE coerces to Unknown.
func cardTypeFromByte(b byte) CardType {
	if b > byte(CardTypePokewalkerArea) {
		return CardTypeUnknown
	}
	return CardType(b)
}

// ParseCardType resolves a --kind flag value (the String() spelling) back to
// a CardType.
func ParseCardType(s string) (CardType, error) {
	for i, name := range cardTypeNames {
		if name == s {
			return CardType(i), nil
		}
	}
	return 0, fmt.Errorf("pcd: unknown card kind %q", s)
}

// GameSet is a bit set over the games a wondercard may be redeemed in.
type GameSet uint16

const (
	GameSoulSilver GameSet = 1 << 0
	GameDiamond    GameSet = 1 << 2
	GamePearl      GameSet = 1 << 3
	GamePlatinum   GameSet = 1 << 4
	GameHeartGold  GameSet = 1 << 15
)

var gameNames = []struct {
	bit  GameSet
	name string
}{
	{GameDiamond, "diamond"},
	{GamePearl, "pearl"},
	{GamePlatinum, "platinum"},
	{GameHeartGold, "heartgold"},
	{GameSoulSilver, "soulsilver"},
}

// Has reports whether g includes game.
func (g GameSet) Has(game GameSet) bool { return g&game != 0 }

// With returns g with game added.
func (g GameSet) With(game GameSet) GameSet { return g | game }

// Without returns g with game removed.
func (g GameSet) Without(game GameSet) GameSet { return g &^ game }

// String lists the set's member games, comma-separated, for info/JSON
// output.
func (g GameSet) String() string {
	if g == 0 {
		return "none"
	}
	s := ""
	for _, gn := range gameNames {
		if g.Has(gn.bit) {
			if s != "" {
				s += ","
			}
			s += gn.name
		}
	}
	return s
}

// ParseGameName resolves a single --games token to its GameSet bit.
func ParseGameName(s string) (GameSet, error) {
	for _, gn := range gameNames {
		if gn.name == s {
			return gn.bit, nil
		}
	}
	return 0, fmt.Errorf("pcd: unknown game %q", s)
}

// gamesFieldRead undoes the on-wire rotate-left-8 of the raw little-endian
// word. This asymmetry with gamesFieldWrite is a protocol constant (see
// spec's Open Question on the games field byte order), not a bug: changing
// it would break compatibility with real receivers.
func gamesFieldRead(raw uint16) GameSet {
	return GameSet(bits.RotateLeft16(raw, 8))
}

// gamesFieldWrite emits the set-union in big-endian byte order, the inverse
// pairing that makes gamesFieldRead/gamesFieldWrite round-trip.
func gamesFieldWrite(g GameSet) [2]byte {
	return [2]byte{byte(uint16(g) >> 8), byte(uint16(g))}
}

// DeserializedMetadata is the parsed, human-editable form of a wondercard's
// presentation metadata.
type DeserializedMetadata struct {
	Title          string
	CardType       CardType
	GiftInstance   uint16
	CardID         uint16
	Games          GameSet
	Comment        string
	Icons          [iconCount]uint16
	Redistribution uint8
	Received       uint16
	PGT            [PGTLength]byte
}

// ParseMetadata extracts the metadata record from a Partitioned wondercard,
// decoding the title and comment text fields with the default character
// map.
func ParseMetadata(p Partitioned) (DeserializedMetadata, error) {
	pgt := p.PGT()
	header := p.Header()
	cardData := p.CardData()

	var m DeserializedMetadata
	m.PGT = pgt
	m.CardType = cardTypeFromByte(pgt[cardTypeOffset])
	m.GiftInstance = binary.LittleEndian.Uint16(pgt[giftInstanceOffset:])

	titleField, err := pokestr.ReadField(header[titleOffset:titleOffset+titleMaxWords*2], titleMaxWords)
	if err != nil {
		return DeserializedMetadata{}, fmt.Errorf("pcd: title field: %w", err)
	}
	title, err := pokestr.Default().Decode(titleField)
	if err != nil {
		return DeserializedMetadata{}, fmt.Errorf("pcd: title text: %w", err)
	}
	m.Title = title

	m.Games = gamesFieldRead(binary.LittleEndian.Uint16(header[gamesOffset:]))
	m.CardID = binary.LittleEndian.Uint16(header[cardIDOffset:])

	commentField, err := pokestr.ReadField(cardData[commentOffset:commentOffset+commentMaxWords*2], commentMaxWords)
	if err != nil {
		return DeserializedMetadata{}, fmt.Errorf("pcd: comment field: %w", err)
	}
	comment, err := pokestr.Default().Decode(commentField)
	if err != nil {
		return DeserializedMetadata{}, fmt.Errorf("pcd: comment text: %w", err)
	}
	m.Comment = comment

	m.Redistribution = cardData[redistribution]
	for i := 0; i < iconCount; i++ {
		m.Icons[i] = binary.LittleEndian.Uint16(cardData[iconsOffset+2*i:])
	}
	m.Received = binary.LittleEndian.Uint16(cardData[receivedOffset:])

	return m, nil
}

// Apply writes m's fields back into a Partitioned value's regions, as the
// inverse of ParseMetadata. It is the serializer used by the "set" verb.
func (m DeserializedMetadata) Apply(p Partitioned) (Partitioned, error) {
	pgt := p.PGT()
	header := p.Header()
	cardData := p.CardData()

	copy(pgt[:], m.PGT[:])
	pgt[cardTypeOffset] = byte(m.CardType)
	binary.LittleEndian.PutUint16(pgt[giftInstanceOffset:], m.GiftInstance)

	titleGen4, err := pokestr.Default().Encode(m.Title)
	if err != nil {
		if _, ok := err.(*pokestr.BadEscapeError); ok {
			return Partitioned{}, fmt.Errorf("pcd: title text: %w", err)
		}
	}
	titleBytes := pokestr.WriteField(titleGen4, titleMaxWords)
	copy(header[titleOffset:], titleBytes)

	binary.LittleEndian.PutUint16(header[gamesOffset:], 0)
	gb := gamesFieldWrite(m.Games)
	header[gamesOffset], header[gamesOffset+1] = gb[0], gb[1]
	binary.LittleEndian.PutUint16(header[cardIDOffset:], m.CardID)

	commentGen4, err := pokestr.Default().Encode(m.Comment)
	if err != nil {
		if _, ok := err.(*pokestr.BadEscapeError); ok {
			return Partitioned{}, fmt.Errorf("pcd: comment text: %w", err)
		}
	}
	commentBytes := pokestr.WriteField(commentGen4, commentMaxWords)
	copy(cardData[commentOffset:], commentBytes)

	cardData[redistribution] = m.Redistribution
	for i := 0; i < iconCount; i++ {
		binary.LittleEndian.PutUint16(cardData[iconsOffset+2*i:], m.Icons[i])
	}
	binary.LittleEndian.PutUint16(cardData[receivedOffset:], m.Received)

	return Partitioned{pgt: pgt, header: header, cardData: cardData}, nil
}
