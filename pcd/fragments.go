package pcd

// Fragments slices the encrypted extended buffer into the nine
// FragmentLength-byte payload chunks broadcast over the air interface.
func (enc Encrypted) Fragments() [FragmentCount][FragmentLength]byte {
	var frags [FragmentCount][FragmentLength]byte
	for i := range frags {
		copy(frags[i][:], enc.data[i*FragmentLength:(i+1)*FragmentLength])
	}
	return frags
}

// ZeroPad builds the tenth, terminator fragment: the plaintext header
// followed by zero bytes out to FragmentLength.
func ZeroPad(header [HeaderLength]byte) [FragmentLength]byte {
	var frag [FragmentLength]byte
	copy(frag[:], header[:])
	return frag
}
