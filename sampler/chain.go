package sampler

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Chain is the output of a sampler run: States[i] is the i-th state and
// LogProbs[i] is the target's log density there. Index 0 is the initial state.
// When a proposal is rejected the previous row and log value are repeated
// exactly. Rows share one backing array, so treat them as read only.
type Chain struct {
	Dim      int
	States   [][]float64
	LogProbs []float64

	data     []float64 // row-major backing store for States
	accepted []bool    // accepted[i] is true when row i came from an accepted proposal
}

func newChain(length int, dim int) *Chain {
	ch := &Chain{
		Dim:      dim,
		States:   make([][]float64, length),
		LogProbs: make([]float64, length),
		data:     make([]float64, length*dim),
		accepted: make([]bool, length),
	}
	for i := range ch.States {
		ch.States[i] = ch.data[i*dim : (i+1)*dim : (i+1)*dim]
	}
	return ch
}

// Len is the number of states in the chain (steps + 1 for a fresh run)
func (c *Chain) Len() int {
	return len(c.States)
}

// Accepted returns the number of accepted proposals
func (c *Chain) Accepted() int {
	n := 0
	for _, a := range c.accepted[1:] {
		if a {
			n++
		}
	}
	return n
}

// AcceptanceRate is the fraction of transitions in the chain that were
// accepted proposals. A chain with a single state has a rate of 0.
func (c *Chain) AcceptanceRate() float64 {
	if c.Len() < 2 {
		return 0
	}
	return float64(c.Accepted()) / float64(c.Len()-1)
}

// WasAccepted reports whether row i is the result of an accepted proposal.
// Row 0 never is.
func (c *Chain) WasAccepted(i int) bool {
	return c.accepted[i]
}

// Last returns a copy of the final state
func (c *Chain) Last() []float64 {
	out := make([]float64, c.Dim)
	copy(out, c.States[c.Len()-1])
	return out
}

// Burn returns a view of the chain with the leading frac of its states
// dropped. The view shares storage with c.
func (c *Chain) Burn(frac float64) (*Chain, error) {
	if math.IsNaN(frac) || frac < 0 || frac >= 1 {
		return nil, errors.Errorf("Burn-in fraction %v must be in [0, 1)", frac)
	}

	skip := int(math.Floor(frac * float64(c.Len())))
	if skip >= c.Len() {
		skip = c.Len() - 1
	}

	burned := &Chain{
		Dim:      c.Dim,
		States:   c.States[skip:],
		LogProbs: c.LogProbs[skip:],
		data:     c.data[skip*c.Dim:],
		accepted: make([]bool, c.Len()-skip),
	}
	// The first kept row is a start state for the view
	copy(burned.accepted[1:], c.accepted[skip+1:])

	return burned, nil
}

// Matrix returns the states as a (Len x Dim) matrix sharing the chain's storage
func (c *Chain) Matrix() *mat.Dense {
	return mat.NewDense(c.Len(), c.Dim, c.data[:c.Len()*c.Dim])
}

// Mean returns the per-coordinate sample mean of the states. Repeated states
// are counted once per repetition, which is what gives them their weight.
func (c *Chain) Mean() []float64 {
	m := c.Matrix()
	means := make([]float64, c.Dim)
	col := make([]float64, c.Len())
	for j := range means {
		mat.Col(col, j, m)
		means[j] = stat.Mean(col, nil)
	}
	return means
}

// Covariance returns the sample covariance matrix of the states
func (c *Chain) Covariance() (*mat.SymDense, error) {
	if c.Len() < 2 {
		return nil, errors.Errorf("Need at least 2 states for a covariance, have %d", c.Len())
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, c.Matrix(), nil)
	return &cov, nil
}
