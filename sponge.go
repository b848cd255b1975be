package stacksat128

// Size is the size, in bytes, of a STACKSAT-128 digest.
const Size = 32

// Sum256 computes the STACKSAT-128 hash of message and returns the
// 32-byte digest. Sum256 is total and deterministic: it never fails
// and always produces the same output for the same input, including
// the empty message.
func Sum256(message []byte) [Size]byte {
	padded := pad(toNibbles(message))

	var state [stateNibbles]uint8
	for block := 0; block < len(padded); block += rateNibbles {
		absorb(&state, padded[block:block+rateNibbles])
		permute(&state)
	}

	return decodeDigest(state)
}

// absorb adds (via add16) one rate-sized block of padded nibbles into
// the rate portion of state. The capacity (indices 32..63) is
// untouched here; it is modified only by permute.
func absorb(state *[stateNibbles]uint8, block []uint8) {
	for i := 0; i < rateNibbles; i++ {
		state[i] = add16(state[i], block[i])
	}
}
