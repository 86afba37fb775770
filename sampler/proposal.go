package sampler

import (
	"math"

	"github.com/pkg/errors"
)

// GaussianProposal perturbs every coordinate of the current state by an
// independent normal draw scaled by that coordinate's step size. It is
// symmetric, so no Hastings correction is needed.
type GaussianProposal struct {
	gen      Source
	stepSize []float64
}

// NewGaussianProposal creates a proposal over dim coordinates. stepSize holds
// either a single value used for every coordinate or one value per coordinate.
func NewGaussianProposal(gen Source, dim int, stepSize []float64) (*GaussianProposal, error) {
	if gen == nil {
		return nil, errors.New("No random source supplied")
	}
	if dim < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "proposal dimension %d", dim)
	}

	var steps []float64
	switch len(stepSize) {
	case 1:
		steps = make([]float64, dim)
		for i := range steps {
			steps[i] = stepSize[0]
		}
	case dim:
		steps = make([]float64, dim)
		copy(steps, stepSize)
	default:
		return nil, errors.Wrapf(ErrInvalidDimension, "%d step sizes for %d dimensions", len(stepSize), dim)
	}

	for i, s := range steps {
		if !(s > 0) || math.IsInf(s, 1) {
			return nil, errors.Wrapf(ErrInvalidStepSize, "step size[%d] = %v", i, s)
		}
	}

	return &GaussianProposal{gen: gen, stepSize: steps}, nil
}

// Dim is the number of coordinates perturbed
func (g *GaussianProposal) Dim() int {
	return len(g.stepSize)
}

// Propose writes current + stepSize * N(0, I) into dst. dst and current must
// not overlap.
func (g *GaussianProposal) Propose(dst, current []float64) {
	for i, s := range g.stepSize {
		dst[i] = current[i] + s*g.gen.NormFloat64()
	}
}
