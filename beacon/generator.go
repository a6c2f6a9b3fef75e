package beacon

import (
	"hash/crc32"

	"github.com/eiskasten/wc-beacon/pcd"
)

// blockCount is the total frames per broadcast cycle: nine encrypted
// payload fragments plus one header-only terminator.
const blockCount = pcd.FragmentCount + 1

// FrameGenerator precomputes the ten per-cycle frame bodies and the shared
// head once, then yields fully framed byte slices on each Next() call. Go
// has no generator-function sugar, so this pull-based iterator is the
// idiomatic substitute for a lazy Iterator: precompute once, then iterate.
type FrameGenerator struct {
	blocks  [blockCount][]byte
	head    [headLength]byte
	counter uint64
}

// NewFrameGenerator builds the generator for one broadcast: addr is used
// both as the spoofed source address and BSSID, region gates which game
// locales accept the transmission, enc is the RC4-encrypted wondercard,
// header is the plaintext header used for the terminator frame, and
// checksum is the value that must accompany the broadcast for a receiver
// to derive the same RC4 key on decrypt.
func NewFrameGenerator(addr pcd.MACAddress, region GGID, enc pcd.Encrypted, header [pcd.HeaderLength]byte, checksum uint16) *FrameGenerator {
	fragments := enc.Fragments()

	var g FrameGenerator
	for f := 0; f < pcd.FragmentCount; f++ {
		g.blocks[f] = buildBlock(blockCount, f, checksum, fragments[f][:], region)
	}
	terminator := pcd.ZeroPad(header)
	g.blocks[pcd.FragmentCount] = buildBlock(blockCount, pcd.FragmentCount, checksum, terminator[:], region)

	copy(g.head[:len(RadioHead)], RadioHead[:])
	copy(g.head[len(RadioHead):addressOffset], BeaconFrame[:])
	copy(g.head[addressOffset:addressOffset+6], addr[:])
	copy(g.head[addressOffset+6:addressOffset+12], addr[:])

	return &g
}

func buildBlock(framesCount, fragmentIndex int, checksum uint16, payload []byte, region GGID) []byte {
	ph := packetHeader(uint32(framesCount), uint16(fragmentIndex), checksum, pcd.ExtendedLength, region)
	block := make([]byte, 0, len(WirelessManagement)+len(ph)+len(payload))
	block = append(block, WirelessManagement[:]...)
	block = append(block, ph[:]...)
	block = append(block, payload...)
	return block
}

// Next yields the next fully framed byte slice: head ‖ sequence-control ‖
// (wireless-management ‖ packet-header ‖ fragment) ‖ CRC32, and advances
// the internal frame counter. Every call returns a freshly allocated
// slice; the frame counter never wraps within a process lifetime in
// practice, matching the unbounded distribution loop it feeds.
func (g *FrameGenerator) Next() []byte {
	seq := g.counter << 4
	block := g.blocks[g.counter%uint64(len(g.blocks))]
	g.counter++

	frame := make([]byte, 0, len(g.head)+2+len(block)+4)
	frame = append(frame, g.head[:]...)
	frame = append(frame, byte(seq), byte(seq>>8))
	frame = append(frame, block...)

	crc := crc32.ChecksumIEEE(frame[len(RadioHead):])
	frame = append(frame, byte(crc), byte(crc>>8), byte(crc>>16), byte(crc>>24))
	return frame
}
