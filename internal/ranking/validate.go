package ranking

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned by ValidateScores for NaN or infinite values.
var ErrNonFinite = errors.New("non-finite score")

// ValidateScores rejects NaN and infinite values. The engine itself does not
// check its inputs; callers accepting untrusted maps run this first.
func ValidateScores(name string, scores map[string]float64) error {
	for _, k := range sortedKeys(scores) {
		v := scores[k]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%q] = %v: %w", name, k, v, ErrNonFinite)
		}
	}
	return nil
}
