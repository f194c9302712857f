package moments

import (
	"fmt"
	"math"
)

// Set is an ordered univariate moment sequence m_0, m_1, ..., m_{N-1}.
// Element k is the raw moment of order k.
type Set []float64

// Validate checks the basic invariants of a moment sequence: it must be
// non-empty, all entries must be finite and m_0 must be strictly positive.
func (m Set) Validate() error {
	if len(m) == 0 {
		return ErrEmptySet
	}
	for k, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: order %d", ErrNotFinite, k)
		}
	}
	if m[0] <= 0 {
		return fmt.Errorf("%w: m_0 = %g", ErrNonPositiveMass, m[0])
	}
	return nil
}

// Copy returns an independent copy of the sequence.
func (m Set) Copy() Set {
	out := make(Set, len(m))
	copy(out, m)
	return out
}

// NDSet is a dense tensor of multivariate moments indexed by exponent
// tuples. Entry (k_1, ..., k_D) holds the raw joint moment of multi-order
// (k_1, ..., k_D). The layout is row-major with the last index varying
// fastest, so iteration order is deterministic.
type NDSet struct {
	dims []int
	data []float64
}

// NewNDSet allocates a zero-filled moment tensor with the given number of
// moment orders per dimension. Every dimension must hold at least one order.
func NewNDSet(dims ...int) (*NDSet, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: no dimensions", ErrDimensionMismatch)
	}
	size := 1
	for d, n := range dims {
		if n < 1 {
			return nil, fmt.Errorf("%w: dimension %d has %d orders", ErrDimensionMismatch, d, n)
		}
		size *= n
	}
	s := &NDSet{dims: make([]int, len(dims)), data: make([]float64, size)}
	copy(s.dims, dims)
	return s, nil
}

// FromSet wraps a univariate sequence into a one-dimensional NDSet.
func FromSet(m Set) (*NDSet, error) {
	if len(m) == 0 {
		return nil, ErrEmptySet
	}
	s, _ := NewNDSet(len(m))
	copy(s.data, m)
	return s, nil
}

// NumDims returns the number of tensor dimensions.
func (s *NDSet) NumDims() int { return len(s.dims) }

// Dims returns a copy of the number of moment orders per dimension.
func (s *NDSet) Dims() []int {
	out := make([]int, len(s.dims))
	copy(out, s.dims)
	return out
}

// At returns the moment with the given exponent tuple.
// The index length must equal NumDims; out-of-range indices panic the same
// way a slice access would, since they are programmer errors.
func (s *NDSet) At(idx ...int) float64 {
	return s.data[s.offset(idx)]
}

// SetAt stores the moment with the given exponent tuple.
func (s *NDSet) SetAt(v float64, idx ...int) {
	s.data[s.offset(idx)] = v
}

// Total returns the total mass m_{0,...,0}.
func (s *NDSet) Total() float64 { return s.data[0] }

// Marginal extracts the pure moments of a single dimension, i.e. the
// entries with all other exponents equal to zero.
func (s *NDSet) Marginal(dim int) Set {
	if dim < 0 || dim >= len(s.dims) {
		panic(fmt.Sprintf("moments: marginal dimension %d out of range", dim))
	}
	idx := make([]int, len(s.dims))
	out := make(Set, s.dims[dim])
	for k := 0; k < s.dims[dim]; k++ {
		idx[dim] = k
		out[k] = s.At(idx...)
	}
	return out
}

// SubTensor returns a copy of the (D-1)-dimensional sub-tensor obtained by
// fixing the leading exponent at k. The receiver must have at least two
// dimensions.
func (s *NDSet) SubTensor(k int) (*NDSet, error) {
	if len(s.dims) < 2 {
		return nil, fmt.Errorf("%w: sub-tensor of a one-dimensional set", ErrDimensionMismatch)
	}
	if k < 0 || k >= s.dims[0] {
		return nil, fmt.Errorf("%w: leading exponent %d out of range", ErrDimensionMismatch, k)
	}
	sub, _ := NewNDSet(s.dims[1:]...)
	size := len(sub.data)
	copy(sub.data, s.data[k*size:(k+1)*size])
	return sub, nil
}

// Flatten returns a copy of the moments in row-major order, the last
// dimension varying fastest.
func (s *NDSet) Flatten() []float64 {
	out := make([]float64, len(s.data))
	copy(out, s.data)
	return out
}

// NewNDSetFromFlat builds a tensor from row-major data. The data length
// must equal the product of the dimensions.
func NewNDSetFromFlat(data []float64, dims ...int) (*NDSet, error) {
	s, err := NewNDSet(dims...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(s.data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrDimensionMismatch, len(data), dims)
	}
	copy(s.data, data)
	return s, nil
}

// Validate checks finiteness of all entries and positivity of the total mass.
func (s *NDSet) Validate() error {
	for i, v := range s.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: flat index %d", ErrNotFinite, i)
		}
	}
	if s.data[0] <= 0 {
		return fmt.Errorf("%w: m_{0,...,0} = %g", ErrNonPositiveMass, s.data[0])
	}
	return nil
}

func (s *NDSet) offset(idx []int) int {
	if len(idx) != len(s.dims) {
		panic(fmt.Sprintf("moments: index rank %d does not match tensor rank %d", len(idx), len(s.dims)))
	}
	off := 0
	for d, k := range idx {
		if k < 0 || k >= s.dims[d] {
			panic(fmt.Sprintf("moments: exponent %d out of range for dimension %d", k, d))
		}
		off = off*s.dims[d] + k
	}
	return off
}
