package byteindex

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// Reader provides random access to the records of an index file.
type Reader struct {
	header  Header
	count   uint64
	records io.ReaderAt
	closer  io.Closer
}

// Open opens an index file in read-only mode.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	reader, err := NewReader(file, stat.Size())
	if err != nil {
		file.Close()
		return nil, err
	}
	reader.closer = file
	return reader, nil
}

// OpenMMAP opens an index file in read-only mode, using memory-mapped IO.
func OpenMMAP(path string) (*Reader, error) {
	file, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	reader, err := NewReader(file, int64(file.Len()))
	if err != nil {
		file.Close()
		return nil, err
	}
	reader.closer = file
	return reader, nil
}

// NewReader reads and validates the header, and checks that the records
// section is a whole number of records.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	var buf [HeaderSize]byte
	if _, err := r.ReadAt(buf[:], 0); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	var header Header
	if err := header.Load(buf[:]); err != nil {
		return nil, err
	}
	body := size - HeaderSize
	if rem := body % int64(header.Width); rem != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, rem)
	}
	return &Reader{
		header:  header,
		count:   uint64(body) / uint64(header.Width),
		records: io.NewSectionReader(r, HeaderSize, body),
	}, nil
}

// Header returns the file header.
func (r *Reader) Header() Header {
	return r.header
}

// Count returns the number of records in the file.
func (r *Reader) Count() uint64 {
	return r.count
}

// Get returns the value of the i-th record.
func (r *Reader) Get(i uint64) (uint64, error) {
	if i >= r.count {
		return 0, fmt.Errorf("record %d out of range [0, %d)", i, r.count)
	}
	width := r.header.Width
	var buf [8]byte
	record := buf[:width]
	n, err := r.records.ReadAt(record, int64(i)*int64(width))
	if err != nil && !(n == len(record) && errors.Is(err, io.EOF)) {
		return 0, fmt.Errorf("failed to read record %d: %w", i, err)
	}
	return GetOffset(record, width), nil
}

// Close closes the underlying file, if the Reader owns one.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
