package bitmix

import "unicode/utf8"

// encodeString unescapes the JSON string starting at p (byte at p must be
// `"`) in place, shrinking it as needed, zero-padding the freed tail, and
// writing the string record's length field. Supports the four escapes the
// codec understands (\n, \t, \\, \uXXXX) plus \" (see design notes: an
// escaped quote is standard JSON and is supported here even though the
// distilled grammar omits it).
func encodeString(buf []byte, p int) (int, error) {
	if buf[p] != '"' {
		return p, errNotMatchedSentinel
	}
	r := p + 1
	w := p + 1
	for {
		if r >= len(buf) {
			return p, newErr(KindMalformed, p, "unterminated string")
		}
		c := buf[r]
		switch {
		case c == '"':
			readSpan := r + 1 - p
			writtenSpan := w + 1 - p
			for i := p + writtenSpan; i < p+readSpan; i++ {
				buf[i] = 0
			}
			buf[p+writtenSpan-1] = '"'
			if err := writeLength(buf, p, p+writtenSpan, tagString, writtenSpan-2); err != nil {
				return p, err
			}
			return p + readSpan, nil
		case c == '\\':
			if r+1 >= len(buf) {
				return p, newErr(KindMalformed, p, "unterminated escape")
			}
			switch buf[r+1] {
			case 'n':
				buf[w] = '\n'
				r += 2
				w++
			case 't':
				buf[w] = '\t'
				r += 2
				w++
			case '\\':
				buf[w] = '\\'
				r += 2
				w++
			case '"':
				buf[w] = '"'
				r += 2
				w++
			case 'u':
				if r+6 > len(buf) {
					return p, newErr(KindMalformed, p, "truncated \\u escape")
				}
				cp, ok := parseHex4(buf[r+2 : r+6])
				if !ok {
					return p, newErr(KindMalformed, r, "invalid \\u escape")
				}
				var enc [utf8.UTFMax]byte
				n := utf8.EncodeRune(enc[:], rune(cp))
				for i := 0; i < n; i++ {
					buf[w+i] = enc[i]
				}
				w += n
				r += 6
			default:
				return p, newErr(KindUnsupported, r, "unsupported escape sequence")
			}
		default:
			buf[w] = c
			r++
			w++
		}
	}
}

func parseHex4(b []byte) (uint16, bool) {
	var v uint16
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

// decodeString reads a string record at p and returns a Value whose bytes
// borrow the decoded content directly from buf.
func decodeString(buf []byte, p int) (Value, int, error) {
	if Tag(buf[p])&tagMask != tagString {
		return Value{}, p, errNotMatchedSentinel
	}
	l, offset := readLength(buf, p)
	start := p + offset
	end := start + l
	if end > len(buf) {
		return Value{}, p, newErr(KindMalformed, p, "string record extends beyond buffer")
	}
	return Value{kind: KindString, bytes: buf[start:end]}, end, nil
}
