package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineCheck(t *testing.T) {
	assert := assert.New(t)

	l := NewLine()
	assert.NoError(l.Check())
	assert.Equal(2, l.Dim())
	assert.Equal([]string{"b", "m"}, ParamNames(l.Params))

	l.Params[0].Lower, l.Params[0].Upper = 1, 0
	assert.Error(l.Check())

	l = NewLine()
	l.Params = l.Params[:1]
	assert.Error(l.Check())

	// Clones are independent
	l = NewLine()
	cp := l.Clone()
	cp.Params[1].Upper = 10
	assert.True(math.IsInf(l.Params[1].Upper, 1))
}

func TestLinePrior(t *testing.T) {
	assert := assert.New(t)

	l := NewLine()
	assert.Equal(0.0, l.LogPrior([]float64{-1e10, 1e10}))

	l.Params[1].Lower = 0 // slopes must be non-negative
	assert.Equal(0.0, l.LogPrior([]float64{-3, 0}))
	assert.Equal(0.0, l.LogPrior([]float64{-3, 2}))
	assert.True(math.IsInf(l.LogPrior([]float64{-3, -0.01}), -1))
}

func TestLineLikelihood(t *testing.T) {
	assert := assert.New(t)

	l := NewLine()
	d := &Data{
		X:     []float64{0, 1},
		Y:     []float64{1, 4},
		Sigma: []float64{1, 2},
	}

	// b=1, m=2: residuals are 0 and 1
	exp := -0.5*math.Log(2*math.Pi) - 0 +
		-0.5*math.Log(2*math.Pi) - math.Log(2) - 0.5*(1.0/4.0)
	assert.InEpsilon(exp, l.LogLikelihood([]float64{1, 2}, d), 1e-12)

	// The exact line is more likely than a shifted one
	exact := &Data{X: []float64{0, 1, 2}, Y: []float64{1, 3, 5}, Sigma: []float64{1, 1, 1}}
	assert.True(l.LogLikelihood([]float64{1, 2}, exact) > l.LogLikelihood([]float64{1.5, 2}, exact))

	// Wrong data type has zero likelihood rather than a panic
	assert.True(math.IsInf(l.LogLikelihood([]float64{1, 2}, "nope"), -1))
	var nilData *Data
	assert.True(math.IsInf(l.LogLikelihood([]float64{1, 2}, nilData), -1))
}
