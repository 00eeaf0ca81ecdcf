// SPDX-License-Identifier: MIT
// Package matrix - Vector: a one-dimensional float64 buffer.
//
// Purpose:
//   - Element-wise arithmetic, dot/cross products, norms and geometric helpers
//     (projection, normalization, angle).
//   - Column embedding into *Dense (n×1) so vectors compose with matrix kernels.
//
// Notes:
//   - Binary operations require equal lengths (ErrDimensionMismatch); results
//     are always freshly allocated.
//   - Division follows IEEE-754 like Div: x/0 yields ±Inf or NaN.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	opVecAdd    = "VecAdd"
	opVecScale  = "VecScale"
	opVecSum    = "VecSum"
	opNorm      = "Norm"
	opConcat    = "Concat"
	opVecSub    = "VecSub"
	opVecMul    = "VecMul"
	opVecDiv    = "VecDiv"
	opDot       = "Dot"
	opCross     = "Cross"
	opProject   = "Project"
	opNormalize = "Normalize"
	opAngle     = "Angle"
)

// crossLen is the only length Cross accepts.
const crossLen = 3

// Vector is a one-dimensional buffer. The zero value is an empty vector.
type Vector struct {
	data []float64
}

// NewVector returns a vector holding a copy of values.
func NewVector(values []float64) *Vector {
	return &Vector{data: append([]float64(nil), values...)}
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set writes element i or returns ErrOutOfRange.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the elements.
func (v *Vector) Values() []float64 {
	return append([]float64(nil), v.data...)
}

// ToDense embeds v as an n×1 column matrix.
// An empty vector yields ErrInvalidDimensions.
func (v *Vector) ToDense() (*Dense, error) {
	return NewDense(len(v.data), 1, v.data)
}

// String renders the elements on one line with two decimals.
func (v *Vector) String() string {
	var sb strings.Builder
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, _fmtCell, x)
	}

	return sb.String()
}

// zipVec applies f pairwise to equal-length vectors.
func zipVec(a, b *Vector, tag string, f func(x, y float64) float64) (*Vector, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if len(a.data) != len(b.data) {
		return nil, matrixErrorf(tag, fmt.Errorf("len %d vs %d: %w", len(a.data), len(b.data), ErrDimensionMismatch))
	}
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = f(a.data[i], b.data[i])
	}

	return &Vector{data: out}, nil
}

// VecAdd returns a + b.
func VecAdd(a, b *Vector) (*Vector, error) {
	return zipVec(a, b, opVecAdd, func(x, y float64) float64 { return x + y })
}

// VecSub returns a − b.
func VecSub(a, b *Vector) (*Vector, error) {
	return zipVec(a, b, opVecSub, func(x, y float64) float64 { return x - y })
}

// VecMul returns the element-wise (Hadamard) product.
func VecMul(a, b *Vector) (*Vector, error) {
	return zipVec(a, b, opVecMul, func(x, y float64) float64 { return x * y })
}

// VecDiv returns the element-wise quotient a / b.
func VecDiv(a, b *Vector) (*Vector, error) {
	return zipVec(a, b, opVecDiv, func(x, y float64) float64 { return x / y })
}

// Dot returns Σ a[i]*b[i], accumulated in ascending i.
func Dot(a, b *Vector) (float64, error) {
	p, err := zipVec(a, b, opDot, func(x, y float64) float64 { return x * y })
	if err != nil {
		return 0, err
	}

	return sumOf(p.data), nil
}

// VecScale returns alpha·v.
func VecScale(v *Vector, alpha float64) (*Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opVecScale, ErrNilMatrix)
	}

	return scaled(v.data, alpha), nil
}

// VecSum returns the sum of the elements (0 for an empty vector).
func VecSum(v *Vector) (float64, error) {
	if v == nil {
		return 0, matrixErrorf(opVecSum, ErrNilMatrix)
	}

	return sumOf(v.data), nil
}

// Norm returns the Euclidean length sqrt(v·v).
func Norm(v *Vector) (float64, error) {
	if v == nil {
		return 0, matrixErrorf(opNorm, ErrNilMatrix)
	}

	return normOf(v.data), nil
}

// Concat returns a followed by b.
func Concat(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opConcat, ErrNilMatrix)
	}
	out := make([]float64, 0, len(a.data)+len(b.data))
	out = append(out, a.data...)

	return &Vector{data: append(out, b.data...)}, nil
}

func sumOf(xs []float64) float64 {
	sum := ZeroSum
	for _, x := range xs {
		sum += x
	}

	return sum
}

func normOf(xs []float64) float64 {
	sq := ZeroSum
	for _, x := range xs {
		sq += x * x
	}

	return math.Sqrt(sq)
}

func scaled(xs []float64, alpha float64) *Vector {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * alpha
	}

	return &Vector{data: out}
}

// Cross returns a × b for 3-vectors; other lengths yield ErrDimensionMismatch.
func Cross(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opCross, ErrNilMatrix)
	}
	if len(a.data) != crossLen || len(b.data) != crossLen {
		return nil, matrixErrorf(opCross, ErrDimensionMismatch)
	}
	x, y := a.data, b.data

	return &Vector{data: []float64{
		x[1]*y[2] - x[2]*y[1],
		x[2]*y[0] - x[0]*y[2],
		x[0]*y[1] - x[1]*y[0],
	}}, nil
}

// Project returns the projection of a onto b: (a·b / b·b)·b.
// Errors: ErrDimensionMismatch, ErrSingular when b is the zero vector.
func Project(a, b *Vector) (*Vector, error) {
	ab, err := Dot(a, b)
	if err != nil {
		return nil, matrixErrorf(opProject, err)
	}
	bb, _ := Dot(b, b)
	if bb == 0 {
		return nil, matrixErrorf(opProject, ErrSingular)
	}

	return scaled(b.data, ab/bb), nil
}

// Normalize returns v / |v|. The zero vector yields ErrSingular.
func Normalize(v *Vector) (*Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opNormalize, ErrNilMatrix)
	}
	n := normOf(v.data)
	if n == 0 {
		return nil, matrixErrorf(opNormalize, ErrSingular)
	}
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x / n
	}

	return &Vector{data: out}, nil
}

// Angle returns the angle between a and b in radians, in [0, π].
// The cosine is clamped to [-1, 1] before math.Acos.
// Errors: ErrDimensionMismatch, ErrSingular if either vector is zero.
func Angle(a, b *Vector) (float64, error) {
	ab, err := Dot(a, b)
	if err != nil {
		return 0, matrixErrorf(opAngle, err)
	}
	den := normOf(a.data) * normOf(b.data)
	if den == 0 {
		return 0, matrixErrorf(opAngle, ErrSingular)
	}
	cos := math.Max(-1, math.Min(1, ab/den))

	return math.Acos(cos), nil
}
