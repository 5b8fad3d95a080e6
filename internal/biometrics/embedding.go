package biometrics

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
)

// eps guards divisions by a vector norm, so a zero vector scores 0.
const eps = 1e-8

// Vector is a single fixed-length speaker embedding.
type Vector []float64

// Batch is one or more embeddings as produced by the extractor. A single
// utterance normally yields a batch of one row.
type Batch [][]float64

// Extractor turns raw audio into a speaker embedding.
type Extractor interface {
	Extract(ctx context.Context, audio []byte) (Batch, error)
}

// AsBatch wraps v as a one-row batch.
func (v Vector) AsBatch() Batch {
	return Batch{v}
}

// Squeeze collapses b to a plain vector: a single row is copied as is, and
// several rows are averaged element-wise.
func Squeeze(b Batch) (Vector, error) {
	if len(b) == 0 || len(b[0]) == 0 {
		return nil, fmt.Errorf("empty embedding: %w", common.ErrorValidation)
	}

	dim := len(b[0])
	out := make(Vector, dim)
	for _, row := range b {
		if len(row) != dim {
			return nil, common.ErrDimensionMismatch
		}
		for i, x := range row {
			out[i] += x
		}
	}
	if len(b) > 1 {
		n := float64(len(b))
		for i := range out {
			out[i] /= n
		}
	}
	return out, nil
}

// Normalize returns v scaled to unit L2 norm. A zero vector stays zero.
func Normalize(v Vector) Vector {
	n := math.Max(norm(v), eps)
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	return out
}

func norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}
