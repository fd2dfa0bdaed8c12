package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rpcpool/byteindex/byteindex"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// verifyIndex re-scans the input with the same configuration the index file
// was written with and byte-compares the regenerated stream against the file.
// It does this by reading the file header first, then running the scan into a
// pipe while a second goroutine compares the pipe against the file contents.
func verifyIndex(ctx context.Context, inputPath, indexPath string) error {
	reader, err := byteindex.Open(indexPath)
	if err != nil {
		return fmt.Errorf("failed to open index file: %w", err)
	}
	header := reader.Header()

	// A leading zero record is not recoverable from the header; detect it
	// from the first record. A genuine first match can never be at offset 0.
	includeZero := false
	if reader.Count() > 0 {
		first, err := reader.Get(0)
		if err != nil {
			reader.Close()
			return err
		}
		includeZero = first == 0
	}
	reader.Close()

	input, _, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	want, err := os.Open(indexPath)
	if err != nil {
		return fmt.Errorf("failed to open index file: %w", err)
	}
	defer want.Close()

	klog.V(2).Infof("Re-scanning with target 0x%02x, %d-bit records, include-zero=%v",
		header.Target, header.Width.Bits(), includeZero)

	pr, pw := io.Pipe()
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		writer := &byteindex.Writer{
			Target:      header.Target,
			Width:       header.Width,
			IncludeZero: includeZero,
		}
		_, err := writer.Index(input, pw)
		pw.CloseWithError(err)
		if err != nil {
			return fmt.Errorf("failed to re-scan input: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := streamsEqual(pr, want)
		pr.CloseWithError(err)
		return err
	})
	return g.Wait()
}

// streamsEqual reads both streams to the end and reports the first byte
// position where they differ, if any.
func streamsEqual(got, want io.Reader) error {
	const chunkSize = 256 * 1024
	gotBuf := make([]byte, chunkSize)
	wantBuf := make([]byte, chunkSize)
	offset := int64(0)
	for {
		n, gotErr := io.ReadFull(got, gotBuf)
		if n > 0 {
			if _, err := io.ReadFull(want, wantBuf[:n]); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return fmt.Errorf("index file is shorter than the re-scan (ends within %d bytes after offset %d)", n, offset)
				}
				return fmt.Errorf("failed to read index file: %w", err)
			}
			if !bytes.Equal(gotBuf[:n], wantBuf[:n]) {
				i := 0
				for gotBuf[i] == wantBuf[i] {
					i++
				}
				return fmt.Errorf("index file differs from the re-scan at byte %d", offset+int64(i))
			}
			offset += int64(n)
		}
		if errors.Is(gotErr, io.EOF) || errors.Is(gotErr, io.ErrUnexpectedEOF) {
			if n, _ := want.Read(wantBuf[:1]); n > 0 {
				return fmt.Errorf("index file is longer than the re-scan (%d bytes matched)", offset)
			}
			return nil
		}
		if gotErr != nil {
			return gotErr
		}
	}
}
