package biometrics

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
)

// Cosine returns the cosine similarity of a and b in [-1, 1].
// Each norm is floored at eps, so a zero vector scores 0 against anything.
// Inputs whose products overflow or carry NaN yield ErrProcessingFailure.
func Cosine(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, common.ErrDimensionMismatch
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}

	s := dot / (math.Max(norm(a), eps) * math.Max(norm(b), eps))
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, fmt.Errorf("%w: non-finite similarity", common.ErrProcessingFailure)
	}
	return math.Max(-1, math.Min(1, s)), nil
}

// MeanCosine scores two batches row by row and averages the result. A
// one-row batch is broadcast against every row of the other side; otherwise
// both sides must have the same number of rows.
func MeanCosine(a, b Batch) (float64, error) {
	rows := len(a)
	switch {
	case len(a) == 0 || len(b) == 0:
		return 0, common.ErrDimensionMismatch
	case len(a) == 1:
		rows = len(b)
	case len(b) != 1 && len(b) != len(a):
		return 0, common.ErrDimensionMismatch
	}

	var sum float64
	for i := 0; i < rows; i++ {
		s, err := Cosine(pick(a, i), pick(b, i))
		if err != nil {
			return 0, err
		}
		sum += s
	}
	return sum / float64(rows), nil
}

func pick(b Batch, i int) []float64 {
	if len(b) == 1 {
		return b[0]
	}
	return b[i]
}
