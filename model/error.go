package model

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// ErrorSuite represents all the error functions we use to judge a sampler's
// estimate of a distribution against a known Gaussian answer. Mean* errors
// compare the mean vectors, Cov* errors compare every covariance entry.
// Hellinger and KLDivergence compare the Gaussian with the estimated moments
// to the reference; they are NaN when the estimated covariance is not
// positive definite (e.g. a chain that never moved).
type ErrorSuite struct {
	MeanMeanAbsError float64
	MeanMaxAbsError  float64
	CovMeanAbsError  float64
	CovMaxAbsError   float64

	Hellinger    float64
	KLDivergence float64
}

// NewErrorSuite returns an ErrorSuite with all calculated error functions
func NewErrorSuite(estMean []float64, estCov mat.Symmetric, ref *Gaussian) (*ErrorSuite, error) {
	if ref == nil {
		return nil, errors.New("No reference distribution supplied")
	}

	dim := ref.Dim()
	if len(estMean) != dim {
		return nil, errors.Errorf("Mean length mismatch %d != %d", len(estMean), dim)
	}
	if estCov == nil || estCov.SymmetricDim() != dim {
		return nil, errors.Errorf("Covariance dimension mismatch for dim %d", dim)
	}

	refMean := ref.Mean()
	refCov := ref.Covariance()

	es := &ErrorSuite{
		MeanMeanAbsError: MeanAbsDiff(estMean, refMean),
		MeanMaxAbsError:  MaxAbsDiff(estMean, refMean),
	}

	estFlat := make([]float64, 0, dim*dim)
	refFlat := make([]float64, 0, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			estFlat = append(estFlat, estCov.At(i, j))
			refFlat = append(refFlat, refCov.At(i, j))
		}
	}
	es.CovMeanAbsError = MeanAbsDiff(estFlat, refFlat)
	es.CovMaxAbsError = MaxAbsDiff(estFlat, refFlat)

	es.Hellinger = math.NaN()
	es.KLDivergence = math.NaN()
	if est, ok := distmv.NewNormal(estMean, estCov, nil); ok {
		es.Hellinger = distmv.Hellinger{}.DistNormal(est, ref.Normal())
		es.KLDivergence = distmv.KullbackLeibler{}.DistNormal(est, ref.Normal())
	}

	return es, nil
}

// MaxAbsDiff returns the maximum absolute difference between matching entries
func MaxAbsDiff(v1 []float64, v2 []float64) float64 {
	maxErr := 0.0
	for i, a := range v1 {
		err := math.Abs(a - v2[i])
		if i == 0 || err > maxErr {
			maxErr = err
		}
	}
	return maxErr
}

// MeanAbsDiff returns the mean absolute difference between matching entries
func MeanAbsDiff(v1 []float64, v2 []float64) float64 {
	if len(v1) < 1 {
		return 0
	}

	errSum := 0.0
	for i, a := range v1 {
		errSum += math.Abs(a - v2[i])
	}
	return errSum / float64(len(v1))
}
