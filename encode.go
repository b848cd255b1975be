package stacksat128

// toNibbles expands each byte into two nibbles, high nibble first.
func toNibbles(data []byte) []uint8 {
	out := make([]uint8, 0, len(data)*2+rateNibbles)
	for _, b := range data {
		out = append(out, b>>4, b&0xF)
	}
	return out
}

// pad appends 10*1 multi-rate padding to a nibble stream: a single
// 0x8 nibble, zero or more 0x0 nibbles, then a single 0x1 nibble,
// bringing the total length to a positive multiple of rateNibbles.
func pad(nibbles []uint8) []uint8 {
	nibbles = append(nibbles, 0x8)
	for len(nibbles)%rateNibbles != rateNibbles-1 {
		nibbles = append(nibbles, 0x0)
	}
	nibbles = append(nibbles, 0x1)
	return nibbles
}

// paddedLength returns the length, in nibbles, that pad would produce
// for a message of lenBytes bytes, without actually building it.
func paddedLength(lenBytes int) int {
	n := 2*lenBytes + 2
	return rateNibbles * ((n + rateNibbles - 1) / rateNibbles)
}

// decodeDigest packs 64 nibbles into 32 bytes, high nibble first.
func decodeDigest(state [stateNibbles]uint8) [Size]byte {
	var out [Size]byte
	for i := range out {
		out[i] = state[2*i]<<4 | state[2*i+1]
	}
	return out
}
