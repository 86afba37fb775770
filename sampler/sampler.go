package sampler

import (
	"math"

	"github.com/pkg/errors"
)

// Precondition failures reported by Run. They are returned wrapped with
// context, so match them with errors.Is or errors.Cause.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrNonPositiveSteps = errors.New("step count must be positive")
	ErrInvalidStepSize  = errors.New("step size must be positive and finite")
)

// A Source supplies the random draws a sampler consumes. rand.Generator is
// the usual implementation.
type Source interface {
	Float64() float64     // uniform in [0, 1)
	NormFloat64() float64 // standard normal
}

// A Target is an unnormalized log density over parameter vectors of length
// Dim. LogProb may return -Inf for states with zero probability. args is
// passed through from Run untouched.
type Target interface {
	Dim() int
	LogProb(theta []float64, args interface{}) float64
}

// TargetFunc adapts a plain function to the Target interface
type TargetFunc struct {
	D int
	F func(theta []float64, args interface{}) float64
}

// Dim implements Target
func (t TargetFunc) Dim() int {
	return t.D
}

// LogProb implements Target
func (t TargetFunc) LogProb(theta []float64, args interface{}) float64 {
	return t.F(theta, args)
}

// PosteriorModel splits a log posterior into prior and likelihood terms.
// LogPrior returns -Inf outside the prior's support and may be improper.
type PosteriorModel interface {
	Dim() int
	LogPrior(theta []float64) float64
	LogLikelihood(theta []float64, data interface{}) float64
}

// Posterior returns the Target whose log density is LogPrior + LogLikelihood
func Posterior(pm PosteriorModel) Target {
	return posterior{pm}
}

type posterior struct {
	pm PosteriorModel
}

func (p posterior) Dim() int {
	return p.pm.Dim()
}

func (p posterior) LogProb(theta []float64, data interface{}) float64 {
	lp := p.pm.LogPrior(theta)
	if math.IsInf(lp, -1) {
		return lp // outside support: the likelihood may not even be defined here
	}
	return lp + p.pm.LogLikelihood(theta, data)
}
