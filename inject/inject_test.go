package inject

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNullSinkCountsSends(t *testing.T) {
	s := &NullSink{}
	for i := 0; i < 3; i++ {
		if err := s.Send([]byte{0x01, 0x02}); err != nil {
			t.Fatalf("Send: %v", err)
		}
	}
	if s.Sent != 3 {
		t.Fatalf("Sent = %d, want 3", s.Sent)
	}
}

func TestPCAPFileSinkWritesHeaderAndRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.pcap")
	sink, err := NewPCAPFileSink(path)
	if err != nil {
		t.Fatalf("NewPCAPFileSink: %v", err)
	}
	frame := []byte{0xde, 0xad, 0xbe, 0xef}
	if err := sink.Send(frame); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	const globalHeaderLen = 24
	const recordHeaderLen = 16
	want := globalHeaderLen + recordHeaderLen + len(frame)
	if len(data) != want {
		t.Fatalf("len(data) = %d, want %d", len(data), want)
	}
	if data[0] != 0xd4 || data[1] != 0xc3 || data[2] != 0xb2 || data[3] != 0xa1 {
		t.Fatalf("unexpected pcap magic bytes: % x", data[:4])
	}
}

func TestPCAPFileSinkAppendsWithoutRewritingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.pcap")
	for i := 0; i < 2; i++ {
		sink, err := NewPCAPFileSink(path)
		if err != nil {
			t.Fatalf("NewPCAPFileSink: %v", err)
		}
		if err := sink.Send([]byte{byte(i)}); err != nil {
			t.Fatalf("Send: %v", err)
		}
		if err := sink.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	const globalHeaderLen = 24
	const recordHeaderLen = 16
	want := globalHeaderLen + 2*(recordHeaderLen+1)
	if len(data) != want {
		t.Fatalf("len(data) = %d, want %d (expected a single global header across two appended sessions)", len(data), want)
	}
}
