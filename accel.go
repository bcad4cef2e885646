package bitmix

import (
	"encoding/binary"

	"github.com/klauspost/cpuid/v2"
)

// accelerated reports whether the word-at-a-time skip path is used. The
// byte-oriented fallback is always correct; this only decides whether we
// additionally try to retire 8 bytes per iteration with SWAR tricks before
// dropping back to the scalar loop for the boundary byte.
//
// Mirrors the CPU feature gate simdjson-go uses to pick its vectorized scan
// over a portable one, but since bitmix has no assembly kernel the gains
// here are a handful of branches, not a SIMD width.
var accelerated = cpuid.CPU.Supports(cpuid.SSE2) || cpuid.CPU.Supports(cpuid.ASIMD)

// broadcast repeats b into every byte lane of a 64-bit word.
func broadcast(b byte) uint64 {
	return uint64(b) * 0x0101010101010101
}

// haszero returns a word with the high bit of byte lane i set whenever lane
// i of x is zero. See Bit Twiddling Hacks, "determine if a word has a byte
// equal to n".
func haszero(x uint64) uint64 {
	// Adding 0x7F to each lane's low 7 bits cannot carry into the next
	// lane, so unlike the subtract-based test no lane above a zero lane
	// is flagged by a borrow.
	const low7 = 0x7F7F7F7F7F7F7F7F
	return ^(((x & low7) + low7) | x | low7)
}

// wsLaneMask returns a word with the high bit of byte lane i set whenever
// lane i of w holds an ASCII JSON whitespace byte.
func wsLaneMask(w uint64) uint64 {
	return haszero(w^broadcast(' ')) |
		haszero(w^broadcast('\t')) |
		haszero(w^broadcast('\n')) |
		haszero(w^broadcast('\r'))
}

const allLanesZero = 0

// wordAllWhitespace reports whether every byte of w is JSON whitespace.
func wordAllWhitespace(w uint64) bool {
	return wsLaneMask(w) == 0x8080808080808080
}

// wordAllZero reports whether every byte of w is 0x00 padding.
func wordAllZero(w uint64) bool {
	return w == allLanesZero
}

// loadWord64 reads 8 little-endian bytes from buf starting at p. The caller
// must ensure p+8 <= len(buf).
func loadWord64(buf []byte, p int) uint64 {
	return binary.LittleEndian.Uint64(buf[p : p+8])
}
