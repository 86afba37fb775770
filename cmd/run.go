package cmd

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/CraigKelly/mhsample/buffer"
	"github.com/CraigKelly/mhsample/rand"
	"github.com/CraigKelly/mhsample/sampler"
)

// defaultWindow is the rolling acceptance window when reporting is disabled
const defaultWindow = 100

// runChain runs one sampler over target and handles the progress reporting,
// monitor updates and trace output that every subcommand shares.
func runChain(sp *startupParams, target sampler.Target, initial []float64, names []string, args interface{}) (*sampler.Chain, error) {
	cfg := sp.cfg

	gen, err := rand.NewGenerator(cfg.Seed)
	if err != nil {
		return nil, err
	}

	samp, err := sampler.NewMetropolis(gen)
	if err != nil {
		return nil, err
	}

	windowSize := cfg.Report
	if windowSize < 1 {
		windowSize = defaultWindow
	}
	window := buffer.NewCircularFloat(windowSize)

	samp.Observer = func(step int, accepted bool, logProb float64) {
		if accepted {
			window.Add(1)
		} else {
			window.Add(0)
		}

		sp.mon.Observe(accepted, logProb, window.Mean())

		if sp.verbose && cfg.Report > 0 && step%cfg.Report == 0 {
			sp.out.Printf("%d: L=%f Acceptance rate %.2f%%\n", step, logProb, 100*window.Mean())
		}
	}

	start := time.Now()
	ch, err := samp.Run(target, cfg.Steps, initial, cfg.StepSize, args)
	if err != nil {
		return nil, errors.Wrap(err, "Sampler run failed")
	}

	sp.out.Printf("Finished %d steps in %v: acceptance rate %.2f%%\n", cfg.Steps, time.Since(start), 100*ch.AcceptanceRate())
	if ch.Accepted() == 0 {
		sp.out.Printf("WARNING: no proposal was accepted - try a smaller step size or a better start\n")
	}

	if sp.trace != nil {
		if err := writeTrace(sp, ch, names); err != nil {
			return nil, err
		}
	}

	return ch, nil
}

// reportChain prints the burned-in posterior summary for a chain
func reportChain(sp *startupParams, ch *sampler.Chain, names []string) (*sampler.Chain, error) {
	burned, err := ch.Burn(sp.cfg.BurnIn)
	if err != nil {
		return nil, err
	}
	sp.out.Printf("Summary over %d states (burn-in %.0f%%)\n", burned.Len(), 100*sp.cfg.BurnIn)

	mean := burned.Mean()
	if burned.Len() < 2 {
		for i, name := range names {
			sp.out.Printf("%-8s mean=%12.6f\n", name, mean[i])
		}
		return burned, nil
	}

	cov, err := burned.Covariance()
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		sp.out.Printf("%-8s mean=%12.6f sd=%12.6f\n", name, mean[i], math.Sqrt(cov.At(i, i)))
	}

	sp.out.Printf("Covariance:\n")
	for i := range names {
		row := make([]float64, len(names))
		for j := range names {
			row[j] = cov.At(i, j)
		}
		sp.out.Printf("  %12.6f\n", row)
	}

	return burned, nil
}

// initialOrDefault returns the configured start or def when none was given
func initialOrDefault(sp *startupParams, def []float64) []float64 {
	if len(sp.cfg.Initial) > 0 {
		return sp.cfg.Initial
	}
	return def
}
