package byteindex

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

// Magic are the first four bytes of an index file, interpreted little-endian.
// Reading it back byte-swapped means the file was written on a machine with
// the opposite byte order.
const Magic = uint32(0xBA5EBA11)

// Version is the current format version.
const Version = uint8(1)

// HeaderSize is the fixed size of the file header in bytes. It never varies
// by record width; only the record-width field changes.
const HeaderSize = 8

var (
	ErrInvalidMagic       = errors.New("not a byteindex file")
	ErrByteOrderMismatch  = errors.New("byte-order mismatch: index was written with the opposite endianness")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrInvalidWidth       = errors.New("invalid record width")
	ErrInvalidReserved    = errors.New("reserved header byte is not zero")
	ErrTruncated          = errors.New("records section is truncated")
)

// Header describes an index file: the width of each record and the byte value
// that was indexed.
type Header struct {
	Width  Width
	Target byte
}

// Bytes returns the serialized 8-byte header.
func (h Header) Bytes() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	buf[4] = Version
	buf[5] = byte(h.Width)
	buf[6] = h.Target
	buf[7] = 0
	return buf
}

// Load checks the magic sequence and loads the header fields. All fields are
// validated: a byte-swapped magic is reported as ErrByteOrderMismatch, and an
// unknown version, width or non-zero reserved byte is rejected.
func (h *Header) Load(buf []byte) error {
	if len(buf) < HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, want %d", ErrInvalidMagic, len(buf), HeaderSize)
	}
	magic := binary.LittleEndian.Uint32(buf[0:4])
	if magic != Magic {
		if bits.ReverseBytes32(magic) == Magic {
			return ErrByteOrderMismatch
		}
		return ErrInvalidMagic
	}
	if buf[4] != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, buf[4])
	}
	width := Width(buf[5])
	if !width.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, buf[5])
	}
	if buf[7] != 0 {
		return fmt.Errorf("%w: 0x%02x", ErrInvalidReserved, buf[7])
	}
	h.Width = width
	h.Target = buf[6]
	return nil
}
