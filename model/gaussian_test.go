package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussianCreation(t *testing.T) {
	assert := assert.New(t)

	_, err := NewGaussian(nil, nil)
	assert.Error(err)

	_, err = NewGaussian([]float64{0, 0}, []float64{1, 0, 0})
	assert.Error(err)

	_, err = NewGaussian([]float64{0, 0}, []float64{1, 0.5, 0.4, 1})
	assert.Error(err) // not symmetric

	_, err = NewGaussian([]float64{0, 0}, []float64{1, 2, 2, 1})
	assert.Error(err) // not positive definite

	g, err := NewGaussian([]float64{1, -2}, []float64{1, 0.6, 0.6, 2})
	require.NoError(t, err)
	assert.Equal(2, g.Dim())
	assert.Equal([]float64{1, -2}, g.Mean())

	cov := g.Covariance()
	assert.InDelta(0.6, cov.At(1, 0), 1e-12)
	assert.InDelta(2.0, cov.At(1, 1), 1e-12)
}

func TestGaussianInputsCopied(t *testing.T) {
	assert := assert.New(t)

	mu := []float64{1, 2}
	sigma := []float64{1, 0, 0, 1}
	g, err := NewGaussian(mu, sigma)
	require.NoError(t, err)

	mu[0] = 100
	sigma[0] = 100
	assert.Equal([]float64{1, 2}, g.Mean())
	assert.InDelta(1.0, g.Covariance().At(0, 0), 1e-12)
}

func TestGaussianLogProb(t *testing.T) {
	assert := assert.New(t)

	g, err := NewGaussian([]float64{0, 0}, []float64{1, 0, 0, 1})
	require.NoError(t, err)

	// Standard bivariate normal at the origin: -log(2 pi)
	assert.InEpsilon(-math.Log(2*math.Pi), g.LogProb([]float64{0, 0}, nil), 1e-12)
	assert.InEpsilon(-math.Log(2*math.Pi)-1, g.LogProb([]float64{1, 1}, "ignored"), 1e-12)
}
