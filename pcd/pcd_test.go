package pcd

import "testing"

func fillSequential(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestRawPartitionedRoundTrip(t *testing.T) {
	src := fillSequential(PCDLength)
	raw, err := NewRaw(src)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	part := raw.ToPartitioned()
	back := part.ToRaw()
	gotBytes := back.Bytes()
	for i, b := range src {
		if gotBytes[i] != b {
			t.Fatalf("round-trip mismatch at byte %d: got %#x, want %#x", i, gotBytes[i], b)
		}
	}
}

func TestNewRawWrongSize(t *testing.T) {
	if _, err := NewRaw(make([]byte, PCDLength-1)); err == nil {
		t.Fatalf("expected *WrongSizeError")
	}
}

func TestPartitionedExtendedHeaderDuplication(t *testing.T) {
	src := fillSequential(PCDLength)
	raw, _ := NewRaw(src)
	part := raw.ToPartitioned()
	ext := part.ToExtended()
	if ext.Header() != part.Header() {
		t.Fatalf("extended header does not match partitioned header")
	}
	b := ext.bytes()
	// header duplicated at offset HeaderLength+PGTLength
	h := part.Header()
	for i := 0; i < HeaderLength; i++ {
		if b[HeaderLength+PGTLength+i] != h[i] {
			t.Fatalf("header duplicate mismatch at %d", i)
		}
	}
}

func TestExtendedSimplifyDropsDuplicate(t *testing.T) {
	src := fillSequential(PCDLength)
	raw, _ := NewRaw(src)
	part := raw.ToPartitioned()
	ext := part.ToExtended()
	simplified := ext.Simplify()
	if simplified.Header() != part.Header() || simplified.PGT() != part.PGT() || simplified.CardData() != part.CardData() {
		t.Fatalf("Simplify did not recover the original partitioned value")
	}
}

func TestEncryptDecryptInvolution(t *testing.T) {
	src := fillSequential(PCDLength)
	raw, _ := NewRaw(src)
	ext := raw.ToPartitioned().ToExtended()
	addr := MACAddress{0xa4, 0xc0, 0xe1, 0x6e, 0x76, 0x80}

	checksum, err := ext.Checksum()
	if err != nil {
		t.Fatalf("Checksum: %v", err)
	}
	enc, err := ext.Encrypt(addr)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	decrypted := enc.Decrypt(addr, checksum)
	if decrypted.bytes() != ext.bytes() {
		t.Fatalf("decrypt(encrypt(e)) != e")
	}
}

func TestFragmentsConcatenateToEncryptedBuffer(t *testing.T) {
	src := fillSequential(PCDLength)
	raw, _ := NewRaw(src)
	ext := raw.ToPartitioned().ToExtended()
	addr := MACAddress{0xa4, 0xc0, 0xe1, 0x6e, 0x76, 0x80}
	enc, err := ext.Encrypt(addr)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	frags := enc.Fragments()
	want := enc.Bytes()
	got := make([]byte, 0, ExtendedLength)
	for _, f := range frags {
		got = append(got, f[:]...)
	}
	if len(got) != FragmentCount*FragmentLength {
		t.Fatalf("fragments length = %d, want %d", len(got), FragmentCount*FragmentLength)
	}
	for i, b := range got {
		if want[i] != b {
			t.Fatalf("fragment concatenation mismatch at %d", i)
		}
	}
}

func TestChecksumOddLength(t *testing.T) {
	if _, err := checksumBytes(make([]byte, 3)); err == nil {
		t.Fatalf("expected *OddLengthError")
	}
}

func TestChecksumPermutationSensitivity(t *testing.T) {
	a := []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}
	b := []byte{0x03, 0x00, 0x02, 0x00, 0x01, 0x00}
	ca, err := checksumBytes(a)
	if err != nil {
		t.Fatalf("checksumBytes(a): %v", err)
	}
	cb, err := checksumBytes(b)
	if err != nil {
		t.Fatalf("checksumBytes(b): %v", err)
	}
	if ca == cb {
		t.Fatalf("expected permuting regions to change the checksum")
	}
}

func TestZeroPad(t *testing.T) {
	var h [HeaderLength]byte
	for i := range h {
		h[i] = byte(i + 1)
	}
	frag := ZeroPad(h)
	for i := 0; i < HeaderLength; i++ {
		if frag[i] != h[i] {
			t.Fatalf("zero-padded header mismatch at %d", i)
		}
	}
	for i := HeaderLength; i < FragmentLength; i++ {
		if frag[i] != 0 {
			t.Fatalf("expected zero padding at %d, got %#x", i, frag[i])
		}
	}
}

func TestParseMACAddress(t *testing.T) {
	addr, err := ParseMACAddress("a4:c0:e1:6e:76:80")
	if err != nil {
		t.Fatalf("ParseMACAddress: %v", err)
	}
	want := MACAddress{0xa4, 0xc0, 0xe1, 0x6e, 0x76, 0x80}
	if addr != want {
		t.Fatalf("addr = %+v, want %+v", addr, want)
	}
}

func TestParseMACAddressBad(t *testing.T) {
	if _, err := ParseMACAddress("not-a-mac"); err == nil {
		t.Fatalf("expected *BadMACAddressError")
	}
}
