// Package blend provides pure interpolation primitives used by plot
// transitions: scalar and slice lerps with broadcast rules, and a
// float-channel color type with parsing and channel-wise blending.
package blend

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch reports from/to sequences whose lengths cannot be
// reconciled by broadcasting.
var ErrShapeMismatch = errors.New("shape mismatch")

// Lerp returns the linear blend of two scalars at progress t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Slice blends two sequences element-wise at progress t. A length-1
// sequence broadcasts against the other; any other length difference is
// an ErrShapeMismatch.
func Slice(from, to []float64, t float64) ([]float64, error) {
	switch {
	case len(from) == len(to):
		out := make([]float64, len(from))
		for i := range from {
			out[i] = Lerp(from[i], to[i], t)
		}
		return out, nil
	case len(from) == 1:
		out := make([]float64, len(to))
		for i := range to {
			out[i] = Lerp(from[0], to[i], t)
		}
		return out, nil
	case len(to) == 1:
		out := make([]float64, len(from))
		for i := range from {
			out[i] = Lerp(from[i], to[0], t)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: len %d vs %d", ErrShapeMismatch, len(from), len(to))
	}
}

// CheckLen verifies that two sequences are broadcastable, without
// blending. Used for fail-fast validation at transition creation.
func CheckLen(from, to []float64) error {
	if len(from) == len(to) || len(from) == 1 || len(to) == 1 {
		return nil
	}
	return fmt.Errorf("%w: len %d vs %d", ErrShapeMismatch, len(from), len(to))
}
