// Package byteindex creates and reads byte-offset index files.
//
// # Design
//
// An index file records, for every occurrence of a single target byte in an
// input stream, the offset of the byte immediately following it (equivalently,
// the 1-based position of the match). Offsets are encoded as fixed-width
// little-endian unsigned integers of 1, 2, 4 or 8 bytes, chosen by the caller.
// The index lets downstream tools split or seek a large file by delimiter
// position without re-scanning it.
//
// # File format
//
// The file starts with a fixed 8-byte header:
//
//	offset 0: 4-byte magic number 0xBA5EBA11 (little-endian), which doubles
//	          as a byte-order check,
//	offset 4: 1-byte format version (currently 1),
//	offset 5: 1-byte record width (1, 2, 4 or 8),
//	offset 6: 1-byte target byte value,
//	offset 7: 1 reserved byte (zero).
//
// The header is followed by zero or more fixed-width records, one per match,
// in file order. Offsets too large for the record width wrap around modulo
// 2^(8*width); this is intentional, not an error. If requested, a synthetic
// zero record is written before the first match ("position before any byte
// has been read").
//
// Indexing is a single forward pass with bounded memory: the input is read in
// blocks, each block is scanned for the target byte, and encoded records are
// accumulated in an output buffer that is flushed to the destination whenever
// it fills up and once at end of stream.
package byteindex

import (
	"encoding/binary"
	"fmt"
)

const (
	KiB = 1024
	MiB = 1024 * KiB
)

// Width is the size in bytes of a single index record.
type Width uint8

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

// IsValid returns true if w is one of the supported record widths.
func (w Width) IsValid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

// Bits returns the record width in bits.
func (w Width) Bits() uint {
	return uint(w) * 8
}

// WidthFromBits maps a bit size (8, 16, 32 or 64) to a Width.
func WidthFromBits(bits uint) (Width, error) {
	switch bits {
	case 8:
		return Width8, nil
	case 16:
		return Width16, nil
	case 32:
		return Width32, nil
	case 64:
		return Width64, nil
	}
	return 0, fmt.Errorf("unsupported record width: %d bits", bits)
}

// PutOffset encodes v modulo 2^(8*w) into the first w bytes of buf as a
// little-endian unsigned integer. Values exceeding the representable range
// wrap around silently.
func PutOffset(buf []byte, w Width, v uint64) {
	_ = buf[w-1] // bounds check hint to compiler
	switch w {
	case Width8:
		buf[0] = byte(v)
	case Width16:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case Width32:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	case Width64:
		binary.LittleEndian.PutUint64(buf, v)
	default:
		panic("byteindex: invalid record width")
	}
}

// GetOffset decodes a w-byte little-endian unsigned integer from buf.
func GetOffset(buf []byte, w Width) uint64 {
	_ = buf[w-1] // bounds check hint to compiler
	switch w {
	case Width8:
		return uint64(buf[0])
	case Width16:
		return uint64(binary.LittleEndian.Uint16(buf))
	case Width32:
		return uint64(binary.LittleEndian.Uint32(buf))
	case Width64:
		return binary.LittleEndian.Uint64(buf)
	default:
		panic("byteindex: invalid record width")
	}
}
