package shared

import "math/bits"

// LeadingZeroBits counts the leading zero bits of a digest read as a
// big-endian bit string: zero bytes count in full, followed by the leading
// zero bits of the first non-zero byte. The count is strictly monotonic
// with the digest interpreted as a big-endian integer being small.
func LeadingZeroBits(digest []byte) uint {
	var count uint
	for _, b := range digest {
		if b != 0 {
			return count + uint(bits.LeadingZeros8(b))
		}
		count += 8
	}
	return count
}

// CheckLeadingZeroBits reports whether the first 'expected' bits of data are
// all zero.
func CheckLeadingZeroBits(data []byte, expected uint) bool {
	if len(data)*8 < int(expected) {
		return false
	}
	for i := 0; i < int(expected/8); i++ {
		if data[i] != 0 {
			return false
		}
	}
	if expected%8 != 0 {
		if data[expected/8]>>(8-expected%8) != 0 {
			return false
		}
	}

	return true
}
