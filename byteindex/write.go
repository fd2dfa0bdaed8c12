package byteindex

import (
	"bytes"
	"fmt"
	"io"
)

const (
	// DefaultBlockSize is how many bytes are requested from the input per
	// read. Large enough to amortize syscall overhead.
	DefaultBlockSize = 512 * KiB

	// DefaultRecordCapacity is how many encoded records the output buffer
	// holds before it is flushed to the destination.
	DefaultRecordCapacity = 512 * 1024
)

// Writer scans a byte stream for a target byte and writes an index file.
//
// The zero value is not usable: Width must be set. BlockSize and
// RecordCapacity fall back to the defaults when zero; they are knobs for
// tests and tuning, not correctness.
type Writer struct {
	// Target is the byte value being indexed.
	Target byte

	// Width is the size of each offset record.
	Width Width

	// IncludeZero prepends a synthetic 0 record before the first match.
	IncludeZero bool

	// BlockSize is the input read size in bytes.
	BlockSize int

	// RecordCapacity is the output buffer size in records.
	RecordCapacity int
}

func (w *Writer) blockSize() int {
	if w.BlockSize <= 0 {
		return DefaultBlockSize
	}
	return w.BlockSize
}

func (w *Writer) recordCapacity() int {
	if w.RecordCapacity <= 0 {
		return DefaultRecordCapacity
	}
	return w.RecordCapacity
}

// Index reads src to the end, writes the header followed by one fixed-width
// record per occurrence of w.Target to dst, and returns the number of records
// written (including the leading zero record, if requested).
//
// The scan is a single forward pass with bounded memory: no byte of the input
// is visited twice, and every flush to dst is a whole number of complete
// records. Any read or write error aborts the run; output already flushed is
// left as-is.
func (w *Writer) Index(src io.Reader, dst io.Writer) (uint64, error) {
	width := w.Width
	if !width.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	target := w.Target
	blockSize := w.blockSize()

	bufs := acquireBuffers(blockSize, w.recordCapacity()*int(width))
	defer bufs.release()

	header := Header{Width: width, Target: target}
	if err := writeFull(dst, header.Bytes()); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	var (
		in         = bufs.in  // len == blockSize
		out        = bufs.out // len 0, cap == recordCapacity*width
		numRecords uint64
		base       uint64 // global offset of the start of the current chunk
	)

	appendRecord := func(v uint64) error {
		out = out[:len(out)+int(width)]
		PutOffset(out[len(out)-int(width):], width, v)
		numRecords++
		if len(out) == cap(out) {
			if err := writeFull(dst, out); err != nil {
				return fmt.Errorf("failed to flush records: %w", err)
			}
			out = out[:0]
		}
		return nil
	}

	if w.IncludeZero {
		if err := appendRecord(0); err != nil {
			return numRecords, err
		}
	}

	for {
		n, err := src.Read(in)
		if n > 0 {
			chunk := in[:n]
			// Resume after each match; every byte is visited at most once.
			from := 0
			for {
				i := bytes.IndexByte(chunk[from:], target)
				if i < 0 {
					break
				}
				from += i + 1
				// The record is the offset of the byte after the match.
				if err := appendRecord(base + uint64(from)); err != nil {
					return numRecords, err
				}
			}
			base += uint64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return numRecords, fmt.Errorf("failed to read input: %w", err)
		}
	}

	if len(out) != 0 {
		if err := writeFull(dst, out); err != nil {
			return numRecords, fmt.Errorf("failed to flush records: %w", err)
		}
	}
	return numRecords, nil
}

func writeFull(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}
	return nil
}
