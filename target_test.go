package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	for in, want := range map[string]byte{
		"a":  'a',
		"\t": '\t',
		"0":  '0',
		`\n`: '\n',
		`\t`: '\t',
		`\r`: '\r',
		`\a`: '\a',
		`\b`: '\b',
		`\f`: '\f',
		`\\`: '\\',
		`\'`: '\'',
		`\"`: '"',
		`\?`: '?',
	} {
		got, err := parseTarget(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "ab", `\x`, `\0`, "abc", `\nn`} {
		_, err := parseTarget(in)
		require.Error(t, err, "input %q", in)
	}
}
