package bitmix

// maxContainerLength is the largest encoded payload byte span (for arrays,
// objects and strings) the length field can represent.
const maxContainerLength = 2048

// writeLength writes the container-bytesize length field for a record
// spanning buf[start:end), where buf[start] already carries the record's
// tag bits and L is the encoded payload byte span. On return buf[start]
// holds the finished type byte (tag | length bits).
//
// Short form (L <= 15): the whole length fits in the type byte's low
// nibble and buf[end-1] becomes the trailing padding byte.
//
// Long form (L > 15): bit 4 of the type byte is set, the low nibble holds
// L mod 16, and the payload bytes in [start+1, end-1) are shifted one
// position to the right to make room for a second length byte at
// start+1 holding L>>4. Total record length is unchanged either way.
func writeLength(buf []byte, start, end int, tag Tag, l int) error {
	if l > maxContainerLength {
		return newErr(KindOverflow, start, "container exceeds maximum encoded length")
	}
	if l <= 15 {
		buf[start] = byte(tag) | byte(l)
		buf[end-1] = 0
		return nil
	}
	hi := byte(l >> 4)
	lo := byte(l & 0xF)
	copy(buf[start+2:end], buf[start+1:end-1])
	buf[start+1] = hi
	buf[start] = byte(tag) | longFormFlag | lo
	return nil
}

// readLength reads the length field starting at p and returns (L, offset)
// where offset is the number of bytes the type byte plus length field
// occupy, so the payload begins at p+offset.
func readLength(buf []byte, p int) (l, offset int) {
	b := buf[p]
	low := int(b & 0x0F)
	if b&longFormFlag == 0 {
		return low, 1
	}
	high := int(buf[p+1])
	return (high << 4) | low, 2
}
