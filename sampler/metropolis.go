package sampler

import (
	"math"

	"github.com/pkg/errors"
)

// Metropolis is a single-chain random walk Metropolis sampler with a
// Gaussian proposal. All randomness comes from Gen, so a seeded Gen gives a
// reproducible chain.
type Metropolis struct {
	Gen Source

	// Observer, when set, is called after every step with the step index,
	// whether the proposal was accepted and the log density of the new state.
	Observer func(step int, accepted bool, logProb float64)
}

// NewMetropolis creates a sampler drawing from gen
func NewMetropolis(gen Source) (*Metropolis, error) {
	if gen == nil {
		return nil, errors.New("No random source supplied")
	}

	return &Metropolis{Gen: gen}, nil
}

// Run walks the target for steps iterations starting at initial and returns
// a chain of steps+1 states. stepSize is either a single value or one value
// per dimension. args is handed to target.LogProb unchanged on every call.
//
// Precondition failures (ErrNonPositiveSteps, ErrInvalidDimension,
// ErrInvalidStepSize) are reported before any iteration runs. A target that
// returns -Inf is not an error: those proposals are simply rejected.
func (m *Metropolis) Run(target Target, steps int, initial []float64, stepSize []float64, args interface{}) (*Chain, error) {
	if target == nil {
		return nil, errors.New("No target supplied")
	}
	if steps <= 0 {
		return nil, errors.Wrapf(ErrNonPositiveSteps, "steps=%d", steps)
	}

	dim := target.Dim()
	if dim < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "target dimension %d", dim)
	}
	if len(initial) != dim {
		return nil, errors.Wrapf(ErrInvalidDimension, "initial state has %d values, target expects %d", len(initial), dim)
	}

	prop, err := NewGaussianProposal(m.Gen, dim, stepSize)
	if err != nil {
		return nil, err
	}

	ch := newChain(steps+1, dim)
	candidate := make([]float64, dim)

	copy(candidate, initial)
	ch.LogProbs[0] = target.LogProb(candidate, args)
	copy(ch.States[0], candidate)

	for i := 1; i <= steps; i++ {
		prev := ch.States[i-1]
		prevLP := ch.LogProbs[i-1]

		prop.Propose(candidate, prev)
		candLP := target.LogProb(candidate, args)

		accepted := m.accept(candLP - prevLP)
		if accepted {
			copy(ch.States[i], candidate)
			ch.LogProbs[i] = candLP
			ch.accepted[i] = true
		} else {
			copy(ch.States[i], prev)
			ch.LogProbs[i] = prevLP
		}

		if m.Observer != nil {
			m.Observer(i, accepted, ch.LogProbs[i])
		}
	}

	return ch, nil
}

// accept applies the Metropolis rule to delta = log p(candidate) - log p(current).
// An uphill (or level) move is always taken without drawing; a NaN delta, as
// from two zero-probability states, is always refused.
func (m *Metropolis) accept(delta float64) bool {
	switch {
	case math.IsNaN(delta):
		return false
	case delta >= 0:
		return true
	}

	return math.Log(m.Gen.Float64()) < delta
}
