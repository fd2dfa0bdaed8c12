//go:build !unix

package byteindex

import "errors"

func scratchBudget() (uint64, error) {
	return 0, errors.New("scratch budget unavailable on this platform")
}
