package main

import "fmt"

// parseTarget decodes the value of the --target flag: a single literal
// character, or a two-character backslash escape (\n, \t, \r, \a, \b, \f,
// \', \", \?, \\).
func parseTarget(s string) (byte, error) {
	switch len(s) {
	case 1:
		return s[0], nil
	case 2:
		if s[0] != '\\' {
			return 0, fmt.Errorf("target not recognized: %q", s)
		}
		switch s[1] {
		case '\'':
			return '\'', nil
		case '"':
			return '"', nil
		case '?':
			return '?', nil
		case '\\':
			return '\\', nil
		case 'a':
			return '\a', nil
		case 'b':
			return '\b', nil
		case 'f':
			return '\f', nil
		case 'n':
			return '\n', nil
		case 'r':
			return '\r', nil
		case 't':
			return '\t', nil
		}
		return 0, fmt.Errorf("escape sequence not recognized: %q", s)
	}
	return 0, fmt.Errorf("target must be a single character or a backslash escape, got %q", s)
}
