package bitmix

// isJSONWhitespace reports whether b is one of the four ASCII bytes JSON
// treats as insignificant whitespace between tokens.
func isJSONWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// skipWhitespace overwrites a run of JSON whitespace starting at p with
// 0x00 padding and returns the cursor just past it. Never fails: a cursor
// that isn't on whitespace is returned unchanged.
func skipWhitespace(buf []byte, p int) int {
	if accelerated {
		for p+8 <= len(buf) && wordAllWhitespace(loadWord64(buf, p)) {
			buf[p], buf[p+1], buf[p+2], buf[p+3] = 0, 0, 0, 0
			buf[p+4], buf[p+5], buf[p+6], buf[p+7] = 0, 0, 0, 0
			p += 8
		}
	}
	for p < len(buf) && isJSONWhitespace(buf[p]) {
		buf[p] = 0
		p++
	}
	return p
}

// skipPadding advances p over 0x00 padding bytes during decode. Read-only:
// it never mutates the buffer.
func skipPadding(buf []byte, p int) int {
	if accelerated {
		for p+8 <= len(buf) && wordAllZero(loadWord64(buf, p)) {
			p += 8
		}
	}
	for p < len(buf) && buf[p] == 0 {
		p++
	}
	return p
}
