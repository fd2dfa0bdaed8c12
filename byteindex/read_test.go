package byteindex

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildIndex(t *testing.T, w *Writer, input string) []byte {
	t.Helper()
	var out bytes.Buffer
	_, err := w.Index(strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.Bytes()
}

func TestNewReader(t *testing.T) {
	data := buildIndex(t, &Writer{Target: '\n', Width: Width32}, "a\nb\nc\n")

	reader, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, Header{Width: Width32, Target: '\n'}, reader.Header())
	require.Equal(t, uint64(3), reader.Count())

	for i, want := range []uint64{2, 4, 6} {
		got, err := reader.Get(uint64(i))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err = reader.Get(3)
	require.Error(t, err)

	require.NoError(t, reader.Close())
}

func TestNewReader_HeaderOnly(t *testing.T) {
	data := buildIndex(t, &Writer{Target: 'x', Width: Width8}, "no matches here")

	reader, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, uint64(0), reader.Count())
	_, err = reader.Get(0)
	require.Error(t, err)
}

func TestNewReader_Truncated(t *testing.T) {
	data := buildIndex(t, &Writer{Target: '\n', Width: Width32}, "a\nb\nc\n")

	// Chop one byte off the last record.
	data = data[:len(data)-1]
	_, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestNewReader_InvalidHeader(t *testing.T) {
	data := []byte("definitely not an index")
	_, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.ErrorIs(t, err, ErrInvalidMagic)

	_, err = NewReader(bytes.NewReader(nil), 0)
	require.Error(t, err)
}

func TestOpen(t *testing.T) {
	data := buildIndex(t, &Writer{Target: '\t', Width: Width16, IncludeZero: true}, "a\tb\tc")
	path := filepath.Join(t.TempDir(), "test.index")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	for name, open := range map[string]func(string) (*Reader, error){
		"file": Open,
		"mmap": OpenMMAP,
	} {
		t.Run(name, func(t *testing.T) {
			reader, err := open(path)
			require.NoError(t, err)
			defer reader.Close()

			require.Equal(t, Header{Width: Width16, Target: '\t'}, reader.Header())
			require.Equal(t, uint64(3), reader.Count())
			for i, want := range []uint64{0, 2, 4} {
				got, err := reader.Get(uint64(i))
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		})
	}

	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
