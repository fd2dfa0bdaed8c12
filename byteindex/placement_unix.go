//go:build unix

package byteindex

import (
	"math"

	"golang.org/x/sys/unix"
)

// scratchBudget returns the soft stack rlimit as the budget for throwaway
// working memory. Runs whose buffers fit well under it get a one-shot slab,
// everything else goes through the pool.
func scratchBudget() (uint64, error) {
	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &lim); err != nil {
		return 0, err
	}
	if lim.Cur == unix.RLIM_INFINITY {
		return math.MaxUint64, nil
	}
	return uint64(lim.Cur), nil
}
