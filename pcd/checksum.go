package pcd

import "encoding/binary"

// Checksum computes the rolling checksum over the extended form's bytes:
// add each little-endian u16 word, then rotate the running total left by
// one bit. This is not a CRC; the word order matters, so permuting the
// words changes the result. Fails with *OddLengthError, which cannot occur for a
// well-formed Extended value but guards against misuse of the lower-level
// helper checksumBytes.
func (e Extended) Checksum() (uint16, error) {
	b := e.bytes()
	return checksumBytes(b[:])
}

func checksumBytes(data []byte) (uint16, error) {
	if len(data)%2 != 0 {
		return 0, &OddLengthError{Length: len(data)}
	}
	var csum uint16
	for i := 0; i < len(data); i += 2 {
		w := binary.LittleEndian.Uint16(data[i : i+2])
		csum += w
		csum = csum<<1 | csum>>15
	}
	return csum, nil
}
