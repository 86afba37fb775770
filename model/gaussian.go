package model

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Gaussian is a multivariate normal log density with known mean and
// covariance. Since every moment is known analytically it is the reference
// target for checking sampler output. It satisfies sampler.Target and
// ignores the extra args.
type Gaussian struct {
	dist *distmv.Normal
}

// NewGaussian creates the target from a mean vector and a row-major
// covariance matrix, which must be symmetric positive definite.
func NewGaussian(mu []float64, sigma []float64) (*Gaussian, error) {
	dim := len(mu)
	if dim < 1 {
		return nil, errors.Errorf("Gaussian needs at least one dimension")
	}
	if len(sigma) != dim*dim {
		return nil, errors.Errorf("Covariance has %d entries, need %d for dim %d", len(sigma), dim*dim, dim)
	}

	const eps = 1e-12
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			a, b := sigma[i*dim+j], sigma[j*dim+i]
			if math.Abs(a-b) > eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) {
				return nil, errors.Errorf("Covariance is not symmetric at (%d, %d): %v != %v", i, j, a, b)
			}
		}
	}

	cov := mat.NewSymDense(dim, append([]float64(nil), sigma...))
	dist, ok := distmv.NewNormal(append([]float64(nil), mu...), cov, nil)
	if !ok {
		return nil, errors.Errorf("Covariance is not positive definite")
	}

	return &Gaussian{dist: dist}, nil
}

// Dim implements sampler.Target
func (g *Gaussian) Dim() int {
	return g.dist.Dim()
}

// LogProb implements sampler.Target
func (g *Gaussian) LogProb(theta []float64, _ interface{}) float64 {
	return g.dist.LogProb(theta)
}

// Mean returns a copy of the mean vector
func (g *Gaussian) Mean() []float64 {
	return g.dist.Mean(nil)
}

// Covariance returns a copy of the covariance matrix
func (g *Gaussian) Covariance() *mat.SymDense {
	var cov mat.SymDense
	g.dist.CovarianceMatrix(&cov)
	return &cov
}

// Normal exposes the underlying distribution
func (g *Gaussian) Normal() *distmv.Normal {
	return g.dist
}
