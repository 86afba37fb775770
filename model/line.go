package model

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Line is the posterior for a straight line y = b + m*x fit to Data with
// Gaussian measurement errors. Params[0] is the intercept b, Params[1] the
// slope m; their bounds define a flat (possibly improper) prior.
//
// Line satisfies sampler.PosteriorModel; the data set is the data argument.
type Line struct {
	Params []*Param
}

// NewLine returns a line model with unbounded intercept and slope
func NewLine() *Line {
	return &Line{
		Params: []*Param{
			{Name: "b", Lower: math.Inf(-1), Upper: math.Inf(1)},
			{Name: "m", Lower: math.Inf(-1), Upper: math.Inf(1)},
		},
	}
}

// Clone returns a deep copy of the model
func (l *Line) Clone() *Line {
	cp := &Line{Params: make([]*Param, len(l.Params))}
	for i, p := range l.Params {
		cp.Params[i] = p.Clone()
	}
	return cp
}

// Check returns an error if there is a problem with the model
func (l *Line) Check() error {
	if len(l.Params) != 2 {
		return errors.Errorf("Line needs 2 params, has %d", len(l.Params))
	}
	for _, p := range l.Params {
		if err := p.Check(); err != nil {
			return errors.Wrap(err, "Line has an invalid Param")
		}
	}
	return nil
}

// Dim is always 2
func (l *Line) Dim() int {
	return len(l.Params)
}

// LogPrior is 0 inside the parameter bounds and -Inf outside
func (l *Line) LogPrior(theta []float64) float64 {
	for i, p := range l.Params {
		if !p.Contains(theta[i]) {
			return math.Inf(-1)
		}
	}
	return 0
}

// LogLikelihood sums the Gaussian log density of every observation around
// the line. data must be a *Data; anything else has zero likelihood.
func (l *Line) LogLikelihood(theta []float64, data interface{}) float64 {
	d, ok := data.(*Data)
	if !ok || d == nil {
		return math.Inf(-1)
	}

	b, m := theta[0], theta[1]
	ll := 0.0
	for i, x := range d.X {
		n := distuv.Normal{Mu: b + m*x, Sigma: d.Sigma[i]}
		ll += n.LogProb(d.Y[i])
	}
	return ll
}
