package bitmix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// CompressMode selects how a Serializer packs an encoded TLV buffer for
// storage or transport.
type CompressMode uint8

const (
	// CompressNone stores the TLV buffer as-is.
	CompressNone CompressMode = iota
	// CompressFast applies s2, favoring encode/decode speed.
	CompressFast
	// CompressBest applies zstd, favoring ratio over speed.
	CompressBest
)

const (
	serializeMagic   = "BMX1"
	serializeVersion = 1
)

// Serializer packs an already-encoded TLV buffer (the output of Parse)
// into a self-describing byte stream, and unpacks it back into a fresh
// buffer ready for decodeValue. A Serializer can be reused but must not be
// used concurrently.
type Serializer struct {
	mode CompressMode

	zw *zstd.Encoder
	zr *zstd.Decoder
}

// NewSerializer creates a Serializer using CompressFast by default.
func NewSerializer() *Serializer {
	return &Serializer{mode: CompressFast}
}

// CompressMode sets the compression strategy used by subsequent Serialize
// calls.
func (s *Serializer) CompressMode(m CompressMode) {
	s.mode = m
}

// Serialize writes buf (a buffer already rewritten by Parse) to dst,
// prefixed with a magic header, version, compression mode and the
// original length, so Deserialize can reconstruct a buffer of identical
// size.
func (s *Serializer) Serialize(dst io.Writer, buf []byte) error {
	var hdr [14]byte
	copy(hdr[0:4], serializeMagic)
	hdr[4] = serializeVersion
	hdr[5] = byte(s.mode)
	binary.LittleEndian.PutUint64(hdr[6:14], uint64(len(buf)))
	if _, err := dst.Write(hdr[:]); err != nil {
		return fmt.Errorf("bitmix: writing serialize header: %w", err)
	}

	var payload []byte
	switch s.mode {
	case CompressNone:
		payload = buf
	case CompressFast:
		payload = s2.Encode(nil, buf)
	case CompressBest:
		if s.zw == nil {
			zw, err := zstd.NewWriter(nil)
			if err != nil {
				return fmt.Errorf("bitmix: creating zstd encoder: %w", err)
			}
			s.zw = zw
		}
		payload = s.zw.EncodeAll(buf, nil)
	default:
		return errors.New("bitmix: unknown compression mode")
	}

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(payload)))
	if _, err := dst.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("bitmix: writing payload length: %w", err)
	}
	_, err := dst.Write(payload)
	return err
}

// Deserialize reads a stream written by Serialize and returns a fresh
// buffer holding the original TLV bytes, suitable for decodeValue (via
// Value-producing accessors) but never for re-running Parse's encode
// phase, since it is already in TLV form.
func (s *Serializer) Deserialize(src io.Reader) ([]byte, error) {
	var hdr [14]byte
	if _, err := io.ReadFull(src, hdr[:]); err != nil {
		return nil, fmt.Errorf("bitmix: reading serialize header: %w", err)
	}
	if string(hdr[0:4]) != serializeMagic {
		return nil, errors.New("bitmix: bad magic in serialized stream")
	}
	if hdr[4] != serializeVersion {
		return nil, fmt.Errorf("bitmix: unsupported serialize version %d", hdr[4])
	}
	mode := CompressMode(hdr[5])
	origLen := binary.LittleEndian.Uint64(hdr[6:14])

	var lenBuf [8]byte
	if _, err := io.ReadFull(src, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("bitmix: reading payload length: %w", err)
	}
	payloadLen := binary.LittleEndian.Uint64(lenBuf[:])

	payload, err := io.ReadAll(io.LimitReader(src, int64(payloadLen)))
	if err != nil {
		return nil, fmt.Errorf("bitmix: reading payload: %w", err)
	}

	var buf []byte
	switch mode {
	case CompressNone:
		buf = payload
	case CompressFast:
		buf, err = s2.Decode(nil, payload)
		if err != nil {
			return nil, fmt.Errorf("bitmix: s2 decode: %w", err)
		}
	case CompressBest:
		if s.zr == nil {
			zr, err := zstd.NewReader(nil)
			if err != nil {
				return nil, fmt.Errorf("bitmix: creating zstd decoder: %w", err)
			}
			s.zr = zr
		}
		buf, err = s.zr.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("bitmix: zstd decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("bitmix: unknown compression mode %d", mode)
	}

	if uint64(len(buf)) != origLen {
		return nil, fmt.Errorf("bitmix: decompressed length %d does not match recorded length %d", len(buf), origLen)
	}
	return buf, nil
}
