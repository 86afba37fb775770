package cmd

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CraigKelly/mhsample/model"
)

func newGaussCmd(rf *rootFlags) *cobra.Command {
	var mean, cov []float64

	gaussCmd := &cobra.Command{
		Use:   "gauss",
		Short: "Sample a Gaussian with known moments and report the error",
		Long: `gauss is a testing mode command: it samples a multivariate Gaussian
whose mean and covariance are known and compares the chain's estimates
against them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := startup(cmd, rf)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("mean") {
				sp.cfg.Gauss.Mean = mean
			}
			if cmd.Flags().Changed("cov") {
				sp.cfg.Gauss.Covariance = cov
			}

			if _, err = CheckGaussian(sp); err != nil {
				sp.Close()
				return err
			}
			return sp.Close()
		},
	}

	gaussCmd.Flags().Float64SliceVar(&mean, "mean", nil, "Mean vector of the target")
	gaussCmd.Flags().Float64SliceVar(&cov, "cov", nil, "Row-major covariance matrix of the target")

	return gaussCmd
}

// CheckGaussian samples the configured Gaussian and prints the error between
// the sampled and analytic moments. The score is nil when too few states
// remain after burn-in to estimate a covariance.
func CheckGaussian(sp *startupParams) (*model.ErrorSuite, error) {
	gc := sp.cfg.Gauss
	ref, err := model.NewGaussian(gc.Mean, gc.Covariance)
	if err != nil {
		return nil, errors.Wrap(err, "Invalid Gaussian target")
	}
	sp.out.Printf("Target is a %d-dimensional Gaussian\n", ref.Dim())

	names := make([]string, ref.Dim())
	for i := range names {
		p, err := model.NewParam(i)
		if err != nil {
			return nil, err
		}
		names[i] = p.Name
	}

	initial := initialOrDefault(sp, make([]float64, ref.Dim()))
	ch, err := runChain(sp, ref, initial, names, nil)
	if err != nil {
		return nil, err
	}

	burned, err := reportChain(sp, ch, names)
	if err != nil {
		return nil, err
	}

	if burned.Len() < 2 {
		sp.out.Printf("WARNING: %d state(s) after burn-in is too few to compare - skipping the error report\n", burned.Len())
		return nil, nil
	}

	estCov, err := burned.Covariance()
	if err != nil {
		return nil, errors.Wrap(err, "Chain too short to compare")
	}

	score, err := model.NewErrorSuite(burned.Mean(), estCov, ref)
	if err != nil {
		return nil, err
	}
	errorReport(sp, "SAMPLED VS ANALYTIC", score)

	return score, nil
}

// errorReport prints an error suite, also as -log2 so smaller errors read as
// bigger numbers
func errorReport(sp *startupParams, title string, score *model.ErrorSuite) {
	sp.out.Printf("%s\n", title)
	sp.out.Printf(
		"Mean  | MeanAE:%9.5f MaxAE:%9.5f\n",
		score.MeanMeanAbsError,
		score.MeanMaxAbsError,
	)
	sp.out.Printf(
		"Cov   | MeanAE:%9.5f MaxAE:%9.5f\n",
		score.CovMeanAbsError,
		score.CovMaxAbsError,
	)
	sp.out.Printf(
		"Dist  | Hel:%9.5f KL:%9.5f\n",
		score.Hellinger,
		score.KLDivergence,
	)
	sp.out.Printf(
		"NLog  | MeanMaxAE:%7.3f CovMaxAE:%7.3f Hel:%7.3f\n",
		-math.Log2(score.MeanMaxAbsError),
		-math.Log2(score.CovMaxAbsError),
		-math.Log2(score.Hellinger),
	)
}
