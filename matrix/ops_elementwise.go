// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small private element-wise kernels (ew*) behind the AllClose, Clip and
//     ReplaceInfNaN facades.
//
// Determinism & Performance:
//   - Flat 0..n-1 loops over a materialized *Dense; O(r*c) time.

package matrix

import (
	"fmt"
	"math"
)

// ewReplaceInfNaN copies X replacing every NaN or ±Inf with val.
func ewReplaceInfNaN(X Matrix, val float64) (*Dense, error) {
	return mapCells(X, "ReplaceInfNaN", func(v float64) float64 {
		if isNonFinite(v) {
			return val
		}
		return v
	})
}

// ewClipRange bounds every element into [lo, hi].
func ewClipRange(X Matrix, lo, hi float64) (*Dense, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, matrixErrorf("Clip", ErrNaNInf)
	}
	if lo > hi {
		return nil, matrixErrorf("Clip", fmt.Errorf("lo=%g > hi=%g: %w", lo, hi, ErrDimensionMismatch))
	}

	return mapCells(X, "Clip", func(v float64) float64 {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		}
		return v
	})
}

// ewAllClose checks |a-b| ≤ atol + rtol*|b| for every cell.
// Any NaN cell makes the comparison fail; equal infinities compare close.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var x, y float64
	for idx := range da.data {
		x, y = da.data[idx], db.data[idx]
		if x == y {
			continue // covers equal infinities
		}
		if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
			return false, nil // NaN lands here too
		}
	}

	return true, nil
}
