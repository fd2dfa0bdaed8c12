package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rpcpool/byteindex/byteindex"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sys/unix"
	"k8s.io/klog/v2"
)

// createIndex opens the input and output (or stdin/stdout for "-"), scans the
// input for the target byte and writes the index file. It returns the number
// of records written.
func createIndex(inputPath, outputPath string, target byte, width byteindex.Width, includeZero bool) (uint64, error) {
	input, inputSize, err := openInput(inputPath)
	if err != nil {
		return 0, err
	}
	defer input.Close()

	var src io.Reader = input
	if inputSize > 0 && outputPath != "-" {
		bar := progressbar.DefaultBytes(inputSize, "indexing")
		reader := progressbar.NewReader(input, bar)
		src = &reader
	}

	output, err := openOutput(outputPath)
	if err != nil {
		return 0, err
	}

	writer := &byteindex.Writer{
		Target:      target,
		Width:       width,
		IncludeZero: includeZero,
	}
	numRecords, err := writer.Index(src, output)
	if err != nil {
		output.Close()
		return numRecords, fmt.Errorf("failed to index %s: %w", inputPath, err)
	}
	if err := output.Close(); err != nil {
		return numRecords, fmt.Errorf("failed to close output file: %w", err)
	}
	return numRecords, nil
}

// openInput opens the input for reading; "-" selects stdin. For regular files
// it also returns the size (for progress reporting) and advises the kernel
// that the file will be read sequentially.
func openInput(path string) (*os.File, int64, error) {
	if path == "-" {
		return os.Stdin, 0, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	if err := unix.Fadvise(int(file.Fd()), 0, 0, unix.FADV_SEQUENTIAL); err != nil {
		klog.V(2).Infof("fadvise(SEQUENTIAL) failed: %v", err)
	}
	var size int64
	if stat, err := file.Stat(); err == nil && stat.Mode().IsRegular() {
		size = stat.Size()
	}
	return file, size, nil
}

// openOutput opens the output for writing; "-" selects stdout.
func openOutput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return file, nil
}
