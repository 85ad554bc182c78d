// Package snapshot encodes fixed-width numeric arrays into a compact,
// checksummed binary form and back.
//
// Layout (little-endian):
//
//	"DYNA" | version (1 byte) | element width (1 byte) | uvarint count |
//	zstd frame of the raw elements | SipHash-2-4 of all preceding bytes (8 bytes)
//
// Only the live elements are stored; a decoded array's capacity equals its
// length.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dchest/siphash"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-container/container/dynarray"
)

const (
	magic   = "DYNA"
	version = 1

	// fixed SipHash key; the trailer detects corruption, not tampering
	k0 = 0x646e7961_72726179
	k1 = 0x736e6170_73686f74

	sumSize = 8
)

var (
	ErrMagic     = errors.New("snapshot: bad magic")
	ErrVersion   = errors.New("snapshot: unsupported version")
	ErrWidth     = errors.New("snapshot: element width mismatch")
	ErrChecksum  = errors.New("snapshot: checksum mismatch")
	ErrTruncated = errors.New("snapshot: truncated input")
)

// Number is the set of element types with a fixed binary width.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		constraints.Float
}

var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	e, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(err)
	}
	encoder = e
	d, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	decoder = d
}

// Marshal encodes the live elements of a.
func Marshal[T Number](a *dynarray.Array[T]) ([]byte, error) {
	var zero T
	width := binary.Size(zero)

	raw := bytes.NewBuffer(make([]byte, 0, width*a.Len()))
	if err := binary.Write(raw, binary.LittleEndian, a.Slice()); err != nil {
		return nil, fmt.Errorf("snapshot: encoding elements: %w", err)
	}

	out := make([]byte, 0, len(magic)+2+binary.MaxVarintLen64+raw.Len()/2+sumSize)
	out = append(out, magic...)
	out = append(out, version, byte(width))
	out = binary.AppendUvarint(out, uint64(a.Len()))
	out = encoder.EncodeAll(raw.Bytes(), out)
	out = binary.LittleEndian.AppendUint64(out, siphash.Hash(k0, k1, out))
	return out, nil
}

// Unmarshal decodes data produced by Marshal for the same element type.
// opts configure the returned array.
func Unmarshal[T Number](data []byte, opts ...dynarray.Option) (*dynarray.Array[T], error) {
	if len(data) < len(magic)+2+1+sumSize {
		return nil, ErrTruncated
	}
	body, trailer := data[:len(data)-sumSize], data[len(data)-sumSize:]
	if siphash.Hash(k0, k1, body) != binary.LittleEndian.Uint64(trailer) {
		return nil, ErrChecksum
	}
	if string(body[:len(magic)]) != magic {
		return nil, ErrMagic
	}
	body = body[len(magic):]
	if body[0] != version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, body[0])
	}
	var zero T
	if width := binary.Size(zero); int(body[1]) != width {
		return nil, fmt.Errorf("%w: encoded %d bytes, want %d", ErrWidth, body[1], width)
	}
	width := int(body[1])
	body = body[2:]

	count, n := binary.Uvarint(body)
	if n <= 0 {
		return nil, ErrTruncated
	}
	body = body[n:]

	raw, err := decoder.DecodeAll(body, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress: %w", err)
	}
	if uint64(len(raw)) != count*uint64(width) {
		return nil, fmt.Errorf("%w: %d payload bytes for %d elements", ErrTruncated, len(raw), count)
	}

	a, err := dynarray.Make[T](int(count), opts...)
	if err != nil {
		return nil, err
	}
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, a.Slice()); err != nil {
		return nil, fmt.Errorf("snapshot: decoding elements: %w", err)
	}
	return a, nil
}
