package cqmom

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/puetzmi/quadmom/inversion"
	"github.com/puetzmi/quadmom/moments"
)

// OneD is the univariate inverter applied along a single dimension. Both
// the plain inverters and the extended (EQMOM) inverter satisfy it.
type OneD interface {
	Invert(mom moments.Set) (inversion.Quadrature, error)
}

// Options configures the conditional inversion.
type Options struct {
	// AllowPartial tolerates failed conditional branches by collapsing
	// them to a single node at the branch's conditional mean. Total mass
	// is preserved. When unset (the default) any branch failure fails the
	// whole inversion.
	AllowPartial bool

	// MaxParallel bounds the number of concurrently inverted branches.
	// Zero means GOMAXPROCS.
	MaxParallel int
}

// CQMOM is the conditional multivariate inverter. The order of children
// fixes the conditioning order of the dimensions.
type CQMOM struct {
	children []OneD
	opts     Options
}

// New creates a conditional inverter with one child per dimension.
// opts may be nil for defaults.
func New(children []OneD, opts *Options) (*CQMOM, error) {
	if len(children) == 0 {
		return nil, ErrNoChildren
	}
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%w: child %d is nil", ErrNoChildren, i)
		}
	}
	c := &CQMOM{children: make([]OneD, len(children))}
	copy(c.children, children)
	if opts != nil {
		c.opts = *opts
	}
	return c, nil
}

// Invert computes the conditional quadrature of an N-dimensional moment
// tensor. The tensor rank must equal the number of child inverters.
//
// Branch failures carry the offending multi-index and wrap
// ErrBranchFailed; see Options.AllowPartial for the tolerant mode.
func (c *CQMOM) Invert(nd *moments.NDSet) (Grid, error) {
	if nd == nil || nd.NumDims() != len(c.children) {
		return Grid{}, fmt.Errorf("%w: %d children for %d dimensions",
			ErrDimensionMismatch, len(c.children), dimsOf(nd))
	}
	if err := nd.Validate(); err != nil {
		return Grid{}, err
	}
	return c.invert(nd, c.children, nil)
}

func dimsOf(nd *moments.NDSet) int {
	if nd == nil {
		return 0
	}
	return nd.NumDims()
}

func (c *CQMOM) invert(nd *moments.NDSet, children []OneD, branch []int) (Grid, error) {
	q, err := children[0].Invert(nd.Marginal(0))
	if err != nil {
		return Grid{}, fmt.Errorf("%w: branch %v: %w", ErrBranchFailed, branch, err)
	}
	if nd.NumDims() == 1 {
		g := Grid{Nodes: make([][]float64, q.Len()), Weights: q.Weights}
		for i, x := range q.Nodes {
			g.Nodes[i] = []float64{x}
		}
		return g, nil
	}

	cond, err := conditionalMoments(nd, q)
	if err != nil {
		return Grid{}, fmt.Errorf("%w: branch %v: %w", ErrBranchFailed, branch, err)
	}

	// Branches are independent: each reads its own conditional tensor and
	// writes its own slot.
	subs := make([]Grid, q.Len())
	var grp errgroup.Group
	limit := c.opts.MaxParallel
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	grp.SetLimit(limit)
	for i := range subs {
		i := i
		grp.Go(func() error {
			br := append(append([]int(nil), branch...), i)
			sub, err := c.invert(cond[i], children[1:], br)
			if err != nil {
				if c.opts.AllowPartial {
					subs[i] = meanFallback(cond[i])
					return nil
				}
				return err
			}
			subs[i] = sub
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Grid{}, err
	}

	// Deterministic assembly: branches in parent node order, sub-points in
	// the order their recursion produced them.
	var out Grid
	for i, sub := range subs {
		for j := range sub.Nodes {
			node := make([]float64, 1+len(sub.Nodes[j]))
			node[0] = q.Nodes[i]
			copy(node[1:], sub.Nodes[j])
			out.Nodes = append(out.Nodes, node)
			out.Weights = append(out.Weights, q.Weights[i]*sub.Weights[j])
		}
	}
	return out, nil
}

// conditionalMoments recovers, for every parent node i, the moment tensor
// of the remaining dimensions conditioned on that node. For each trailing
// multi-index l the joint moments satisfy
//
//	m_{k,l} = sum_i w_i x_i^k <v^l>_i,  k = 0..n-1,
//
// a Vandermonde-weighted linear system solved here by a single LU
// factorization with one right-hand side per multi-index.
func conditionalMoments(nd *moments.NDSet, q inversion.Quadrature) ([]*moments.NDSet, error) {
	n := q.Len()
	subdims := nd.Dims()[1:]

	vand := mat.NewDense(n, n, nil)
	for i, x := range q.Nodes {
		p := 1.0
		for k := 0; k < n; k++ {
			vand.Set(k, i, p)
			p *= x
		}
	}

	size := 1
	for _, d := range subdims {
		size *= d
	}
	rhs := mat.NewDense(n, size, nil)
	for k := 0; k < n; k++ {
		sub, err := nd.SubTensor(k)
		if err != nil {
			return nil, err
		}
		rhs.SetRow(k, sub.Flatten())
	}

	var sol mat.Dense
	if err := sol.Solve(vand, rhs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConditioning, err)
	}

	out := make([]*moments.NDSet, n)
	for i := 0; i < n; i++ {
		if q.Weights[i] == 0 {
			return nil, fmt.Errorf("%w: zero weight at parent node %d", ErrConditioning, i)
		}
		row := make([]float64, size)
		for l := 0; l < size; l++ {
			// The solve yields w_i <v^l>_i; divide the weight back out.
			row[l] = sol.At(i, l) / q.Weights[i]
		}
		t, err := moments.NewNDSetFromFlat(row, subdims...)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// meanFallback collapses a failed branch to one node at the conditional
// mean of every remaining dimension, keeping the branch's share of mass.
func meanFallback(nd *moments.NDSet) Grid {
	node := make([]float64, nd.NumDims())
	for d := range node {
		marg := nd.Marginal(d)
		if len(marg) > 1 && marg[0] != 0 {
			node[d] = marg[1] / marg[0]
		}
	}
	return Grid{Nodes: [][]float64{node}, Weights: []float64{nd.Total()}}
}
