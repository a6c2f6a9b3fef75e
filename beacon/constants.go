// Package beacon builds the IEEE 802.11 beacon frames that carry a
// wondercard broadcast: a radiotap header, an 802.11 beacon frame, a
// wireless-management information element, and a fragment of the encrypted
// wondercard, cyclically emitted with a monotonic sequence number and a
// per-frame CRC-32 trailer.
package beacon

import "github.com/eiskasten/wc-beacon/pcd"

// RadioHead is the radiotap header prefix: channel 2412 MHz (0x098A),
// 2 Mbit/s data rate, and the vendor radiotap fields a real capture from a
// Nintendo-compatible adapter carries. Treated as an opaque byte blob; the
// receiver only looks past it.
var RadioHead = [56]byte{
	0x00, 0x00, // rev, pad
	0x38, 0x00, // header length
	0x2f, 0x40, 0x40, 0xa0, 0x20, 0x08, 0x00, 0xa0, 0x20, 0x08, 0x00, 0x00, // present flags
	0x4d, 0x6c, 0xb8, 0x06, 0x00, 0x00, 0x00, 0x00, // MAC timestamp
	0x12,       // flags
	0x04,       // data rate
	0x8a, 0x09, // channel frequency
	0xa0, 0x00, // channel flags
	0xbd,       // antenna signal
	0x00,       // ?
	0x00, 0x00, // rx flags
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // ?
	0xee, 0x6b, 0xb8, 0x06, 0x00, 0x00, 0x00, 0x00, 0x16, 0x00, 0x11, 0x03, // timestamp info
	0xbc, // antenna signal
	0x00, // antenna
	0xbd, // antenna signal
	0x01, // antenna
}

// BeaconFrame is the 802.11 frame-control prefix: management/beacon
// subtype (0x0080), zero duration, broadcast destination.
var BeaconFrame = [10]byte{
	0x80, 0x00, // frame control field (type, subtype)
	0x00, 0x00, // duration
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // destination address
}

// WirelessManagement is the fixed+tagged parameter block: a timestamp
// placeholder, beacon interval 0x000A, capabilities 0x0021, supported
// rates, the DS-parameter (channel 7), a TIM IE, and the vendor tag
// preamble (tag 0xDD, length 0x88, Nintendo OUI 00:09:BF, subtype 0).
var WirelessManagement = [32]byte{
	// fixed parameters
	0xcc, 0xc8, 0x08, 0x2f, 0x00, 0x00, 0x00, 0x00, // timestamp
	0x0a, 0x00, // beacon interval
	0x21, 0x00, // capabilities information
	// tagged parameters
	0x01, 0x02, 0x82, 0x84, // supported rates
	0x03, 0x01, 0x07, // DS parameter set, channel
	0x05, 0x05, 0x01, 0x02, 0x00, 0x00, 0x00, // TIM
	// vendor specific
	0xdd,             // tag number
	0x88,             // tag length
	0x00, 0x09, 0xbf, // OUI
	0x00, // OUI type
}

// headLength is the length of the precomputed, per-generator-lifetime
// prefix: radiotap ‖ beacon frame ‖ src(6) ‖ bssid(6).
const headLength = len(RadioHead) + len(BeaconFrame) + 2*6
const addressOffset = len(RadioHead) + len(BeaconFrame)

// PacketHeaderLength is the fixed 28-byte packet header preceding each
// fragment's payload.
const PacketHeaderLength = 28

// packetHeader lays out the 28-byte packet header: frame count, two
// constant 0x0001 words, GGID, a run of protocol constants, checksum,
// fragment index (0xFFFF for the terminator), and the payload length.
func packetHeader(framesCount uint32, fragmentIndex uint16, checksum uint16, payloadLength uint32, ggid GGID) [PacketHeaderLength]byte {
	var h [PacketHeaderLength]byte
	putU32 := func(off int, v uint32) {
		h[off], h[off+1], h[off+2], h[off+3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	}
	putU16 := func(off int, v uint16) {
		h[off], h[off+1] = byte(v), byte(v>>8)
	}

	putU32(0, framesCount)
	putU16(4, 0x0001)
	putU16(6, 0x0001)
	putU32(8, uint32(ggid))
	putU16(12, 0x0000)
	putU16(14, 0x0070)
	putU16(16, 0x0028)
	putU16(18, 0x000c)
	putU16(20, checksum)

	idx := fragmentIndex
	if int(fragmentIndex) == int(framesCount)-1 {
		idx = 0xFFFF
	}
	putU16(22, idx)
	putU32(24, payloadLength)

	return h
}

// FrameLength is the fixed size of every emitted on-wire frame, excluding
// RadioHead: BeaconFrame ‖ src(6) ‖ bssid(6) ‖ seq(2) ‖ WirelessManagement ‖
// PacketHeader ‖ Fragment ‖ CRC32(4).
const FrameLength = len(BeaconFrame) + 12 + 2 + len(WirelessManagement) + PacketHeaderLength + pcd.FragmentLength + 4
