package pkg

import (
	"fmt"

	"github.com/rocketscienceinc/marble-mania/internal/apperror"
)

// NonNegativeMod - returns a mod b in [0, b), correcting the sign of truncated remainders.
func NonNegativeMod(a, b int) (int, error) {
	if b <= 0 {
		return 0, fmt.Errorf("%w: got %d", apperror.ErrInvalidDivisor, b)
	}

	m := a % b
	if m < 0 {
		m += b
	}

	return m, nil
}
