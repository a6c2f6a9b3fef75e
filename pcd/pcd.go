// Package pcd implements the wondercard state pipeline: the typed
// Raw/Partitioned/Extended/Encrypted transformation chain, its checksum and
// RC4 key schedule, and fragmentation into beacon-sized payloads.
package pcd

import (
	"fmt"
	"net"
)

// Fixed region lengths, in octets. Values match the on-wire layout; see
// metadata.go for the field offsets within these regions.
const (
	PGTLength      = 0x104
	HeaderLength   = 0x50
	CardDataLength = 0x204
	PCDLength      = PGTLength + HeaderLength + CardDataLength
	ExtendedLength = PCDLength + HeaderLength

	FragmentCount  = 9 // payload fragments per cycle; a 10th terminator frame is header-only
	FragmentLength = ExtendedLength / FragmentCount
)

// MACAddress is a 6-octet hardware address, used both as the spoofed sender
// address on the air interface and as the RC4 key material.
type MACAddress [6]byte

// ParseMACAddress parses a string such as "a4:c0:e1:6e:76:80" into a
// MACAddress, using the standard library's hardware-address parser.
func ParseMACAddress(s string) (MACAddress, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MACAddress{}, &BadMACAddressError{Input: s, Err: err}
	}
	if len(hw) != 6 {
		return MACAddress{}, &BadMACAddressError{Input: s, Err: fmt.Errorf("want 6 octets, got %d", len(hw))}
	}
	var a MACAddress
	copy(a[:], hw)
	return a, nil
}

func (a MACAddress) String() string {
	return net.HardwareAddr(a[:]).String()
}

// WrongSizeError reports that an input buffer did not match an expected
// fixed size.
type WrongSizeError struct {
	Want int
	Got  int
}

func (e *WrongSizeError) Error() string {
	return fmt.Sprintf("pcd: wrong size: want %d bytes, got %d", e.Want, e.Got)
}

// OddLengthError reports that the checksum was invoked over an odd-length
// buffer.
type OddLengthError struct {
	Length int
}

func (e *OddLengthError) Error() string {
	return fmt.Sprintf("pcd: checksum requires an even-length buffer, got %d bytes", e.Length)
}

// BadMACAddressError reports a hardware-address parse failure.
type BadMACAddressError struct {
	Input string
	Err   error
}

func (e *BadMACAddressError) Error() string {
	return fmt.Sprintf("pcd: bad MAC address %q: %v", e.Input, e.Err)
}

func (e *BadMACAddressError) Unwrap() error { return e.Err }

// Raw is an imported wondercard file, validated only for size.
type Raw struct {
	data [PCDLength]byte
}

// NewRaw validates b and wraps it as Raw. It fails with *WrongSizeError if
// len(b) != PCDLength.
func NewRaw(b []byte) (Raw, error) {
	if len(b) != PCDLength {
		return Raw{}, &WrongSizeError{Want: PCDLength, Got: len(b)}
	}
	var r Raw
	copy(r.data[:], b)
	return r, nil
}

// Bytes returns the underlying PCDLength-byte buffer.
func (r Raw) Bytes() [PCDLength]byte { return r.data }

// Partitioned splits a Raw buffer into its three constituent regions:
// PGT ‖ HDR ‖ CARD, in that order.
type Partitioned struct {
	pgt      [PGTLength]byte
	header   [HeaderLength]byte
	cardData [CardDataLength]byte
}

// ToPartitioned slices r at the fixed region boundaries. This direction is
// total: any Raw value has a valid Partitioned form.
func (r Raw) ToPartitioned() Partitioned {
	var p Partitioned
	copy(p.pgt[:], r.data[0:PGTLength])
	copy(p.header[:], r.data[PGTLength:PGTLength+HeaderLength])
	copy(p.cardData[:], r.data[PGTLength+HeaderLength:PCDLength])
	return p
}

// ToRaw concatenates the three regions back into a Raw buffer. Composed with
// ToPartitioned, this is a bijection on byte sequences.
func (p Partitioned) ToRaw() Raw {
	var r Raw
	copy(r.data[0:PGTLength], p.pgt[:])
	copy(r.data[PGTLength:PGTLength+HeaderLength], p.header[:])
	copy(r.data[PGTLength+HeaderLength:PCDLength], p.cardData[:])
	return r
}

// Header returns the header region, needed by the beacon generator's
// terminator frame and by metadata inspection.
func (p Partitioned) Header() [HeaderLength]byte { return p.header }

// PGT returns the gift-payload region.
func (p Partitioned) PGT() [PGTLength]byte { return p.pgt }

// CardData returns the card-data region.
func (p Partitioned) CardData() [CardDataLength]byte { return p.cardData }

// Extended duplicates the header ahead of the pgt, matching what the
// on-wire protocol expects the receiver to reassemble. The duplication is
// intentional and must never be collapsed away.
type Extended struct {
	header          [HeaderLength]byte
	pgt             [PGTLength]byte
	headerDuplicate [HeaderLength]byte
	cardData        [CardDataLength]byte
}

// ToExtended builds the extended form: header ‖ pgt ‖ header ‖ card_data.
func (p Partitioned) ToExtended() Extended {
	return Extended{
		header:          p.header,
		pgt:             p.pgt,
		headerDuplicate: p.header,
		cardData:        p.cardData,
	}
}

// Simplify drops the duplicate header, recovering a Partitioned value. Used
// by the decrypt data-flow after Encrypted.Decrypt.
func (e Extended) Simplify() Partitioned {
	return Partitioned{
		pgt:      e.pgt,
		header:   e.header,
		cardData: e.cardData,
	}
}

// Header returns the (non-duplicate) header region.
func (e Extended) Header() [HeaderLength]byte { return e.header }

// bytes concatenates the four regions in on-wire order: header ‖ pgt ‖
// header_duplicate ‖ card_data.
func (e Extended) bytes() [ExtendedLength]byte {
	var b [ExtendedLength]byte
	n := 0
	n += copy(b[n:], e.header[:])
	n += copy(b[n:], e.pgt[:])
	n += copy(b[n:], e.headerDuplicate[:])
	copy(b[n:], e.cardData[:])
	return b
}

func fromExtendedBytes(b [ExtendedLength]byte) Extended {
	var e Extended
	n := 0
	n += copy(e.header[:], b[n:n+HeaderLength])
	n += copy(e.pgt[:], b[n:n+PGTLength])
	n += copy(e.headerDuplicate[:], b[n:n+HeaderLength])
	copy(e.cardData[:], b[n:])
	return e
}

// Encrypted is the RC4-keystreamed extended buffer as it travels on the
// air interface. Decrypting it requires the checksum the sender computed,
// since the checksum feeds the key schedule and is not itself transmitted
// in the clear within this buffer.
type Encrypted struct {
	data [ExtendedLength]byte
}

// NewEncrypted validates b and wraps it as Encrypted. It fails with
// *WrongSizeError if len(b) != ExtendedLength.
func NewEncrypted(b []byte) (Encrypted, error) {
	if len(b) != ExtendedLength {
		return Encrypted{}, &WrongSizeError{Want: ExtendedLength, Got: len(b)}
	}
	var enc Encrypted
	copy(enc.data[:], b)
	return enc, nil
}

// Bytes returns the underlying ExtendedLength-byte buffer.
func (enc Encrypted) Bytes() [ExtendedLength]byte { return enc.data }
