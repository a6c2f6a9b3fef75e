// Package inject defines the boundary between the beacon frame generator
// and the raw-socket packet-injection library, which is an external
// collaborator and out of scope for this module: only the interface the
// core consumes lives here, plus two implementations that keep the core
// testable without a live wireless NIC.
package inject

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"
)

// PacketSink accepts a fully framed 802.11 byte slice for transmission (or
// recording). Send errors terminate the distribution loop; there is no
// retry at this layer.
type PacketSink interface {
	Send(frame []byte) error
}

// NullSink discards every frame. It is the default sink used by tests and
// any dry run that only wants to exercise frame generation.
type NullSink struct {
	// Sent counts frames handed to Send, for tests that want to assert how
	// many frames a bounded run produced.
	Sent int
}

// Send implements PacketSink by discarding frame.
func (s *NullSink) Send(frame []byte) error {
	s.Sent++
	return nil
}

// pcapGlobalHeader is the classic libpcap file format's 24-byte file
// header: magic, version, timezone/accuracy (unused), snapshot length, and
// link-layer type.
type pcapGlobalHeader struct {
	MagicNumber  uint32
	VersionMajor uint16
	VersionMinor uint16
	ThisZone     int32
	SigFigs      uint32
	SnapLen      uint32
	Network      uint32
}

// linkTypeIEEE80211Radiotap is the libpcap DLT_IEEE802_11_RADIOTAP
// link-layer type: frames handed to Send already begin with the radiotap
// header and are written as-is.
const linkTypeIEEE80211Radiotap = 127

// PCAPFileSink appends every frame to a classic libpcap-format capture
// file, each as its own record. Opened in append mode so a distribute run
// can be stopped and resumed without corrupting earlier records.
type PCAPFileSink struct {
	f           *os.File
	wroteHeader bool
}

// NewPCAPFileSink opens (or creates) path for appending and, if the file is
// new, writes the global pcap header.
func NewPCAPFileSink(path string) (*PCAPFileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("inject: opening pcap file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("inject: stat pcap file: %w", err)
	}
	sink := &PCAPFileSink{f: f, wroteHeader: info.Size() > 0}
	if !sink.wroteHeader {
		if err := sink.writeGlobalHeader(); err != nil {
			f.Close()
			return nil, err
		}
		sink.wroteHeader = true
	}
	return sink, nil
}

func (s *PCAPFileSink) writeGlobalHeader() error {
	hdr := pcapGlobalHeader{
		MagicNumber:  0xa1b2c3d4,
		VersionMajor: 2,
		VersionMinor: 4,
		SnapLen:      65535,
		Network:      linkTypeIEEE80211Radiotap,
	}
	return binary.Write(s.f, binary.LittleEndian, hdr)
}

// Send appends frame as one pcap record with a wall-clock timestamp.
func (s *PCAPFileSink) Send(frame []byte) error {
	now := time.Now()
	rec := struct {
		TsSec, TsUsec       uint32
		InclLen, OrigLen    uint32
	}{
		TsSec:    uint32(now.Unix()),
		TsUsec:   uint32(now.Nanosecond() / 1000),
		InclLen:  uint32(len(frame)),
		OrigLen:  uint32(len(frame)),
	}
	if err := binary.Write(s.f, binary.LittleEndian, rec); err != nil {
		return fmt.Errorf("inject: writing pcap record header: %w", err)
	}
	if _, err := s.f.Write(frame); err != nil {
		return fmt.Errorf("inject: writing pcap record: %w", err)
	}
	return nil
}

// Close releases the underlying file handle.
func (s *PCAPFileSink) Close() error {
	return s.f.Close()
}
