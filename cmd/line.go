package cmd

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CraigKelly/mhsample/model"
	"github.com/CraigKelly/mhsample/sampler"
)

func newLineCmd(rf *rootFlags) *cobra.Command {
	var dataFile string
	var sigma float64
	var lower, upper []float64

	lineCmd := &cobra.Command{
		Use:   "line",
		Short: "Fit a straight line y = b + m*x to an x/y/sigma data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := startup(cmd, rf)
			if err != nil {
				return err
			}

			lc := &sp.cfg.Line
			flags := cmd.Flags()
			if flags.Changed("data") {
				lc.DataFile = dataFile
			}
			if flags.Changed("sigma") {
				lc.DefaultSigma = sigma
			}
			if flags.Changed("lower") {
				lc.Lower = lower
			}
			if flags.Changed("upper") {
				lc.Upper = upper
			}

			if err := FitLine(sp); err != nil {
				sp.Close()
				return err
			}
			return sp.Close()
		},
	}

	lineCmd.Flags().StringVarP(&dataFile, "data", "d", "", "Data file with one 'x y [sigma]' observation per line")
	lineCmd.Flags().Float64Var(&sigma, "sigma", 0, "Sigma for observations that do not give one")
	lineCmd.Flags().Float64SliceVar(&lower, "lower", nil, "Lower prior bounds for b,m")
	lineCmd.Flags().Float64SliceVar(&upper, "upper", nil, "Upper prior bounds for b,m")

	return lineCmd
}

// FitLine samples the posterior of a straight line through the configured
// data file and prints the summary.
func FitLine(sp *startupParams) error {
	lc := sp.cfg.Line
	if len(lc.DataFile) < 1 {
		return errors.New("A data file is required (--data or line.data_file)")
	}

	sp.out.Printf("Reading data from %s\n", lc.DataFile)
	reader := model.DataReader{DefaultSigma: lc.DefaultSigma}
	data, err := model.NewDataFromFile(reader, lc.DataFile)
	if err != nil {
		return err
	}
	sp.out.Printf("Data has %d observations\n", data.Len())

	line, err := newBoundedLine(lc.Lower, lc.Upper)
	if err != nil {
		return err
	}

	names := model.ParamNames(line.Params)
	initial := initialOrDefault(sp, defaultStart(line.Params))

	ch, err := runChain(sp, sampler.Posterior(line), initial, names, data)
	if err != nil {
		return err
	}

	_, err = reportChain(sp, ch, names)
	return err
}

// newBoundedLine applies optional prior bounds to a line model
func newBoundedLine(lower, upper []float64) (*model.Line, error) {
	line := model.NewLine()

	if len(lower) > 0 {
		if len(lower) != line.Dim() {
			return nil, errors.Errorf("Need %d lower bounds, have %d", line.Dim(), len(lower))
		}
		for i, v := range lower {
			line.Params[i].Lower = v
		}
	}
	if len(upper) > 0 {
		if len(upper) != line.Dim() {
			return nil, errors.Errorf("Need %d upper bounds, have %d", line.Dim(), len(upper))
		}
		for i, v := range upper {
			line.Params[i].Upper = v
		}
	}

	if err := line.Check(); err != nil {
		return nil, err
	}
	return line, nil
}

// defaultStart picks a start inside the prior support: zero when allowed,
// else the middle of a finite interval, else the one finite bound.
func defaultStart(params []*model.Param) []float64 {
	start := make([]float64, len(params))
	for i, p := range params {
		switch {
		case p.Contains(0):
			start[i] = 0
		case !math.IsInf(p.Lower, 0) && !math.IsInf(p.Upper, 0):
			start[i] = (p.Lower + p.Upper) / 2
		case !math.IsInf(p.Lower, 0):
			start[i] = p.Lower
		default:
			start[i] = p.Upper
		}
	}
	return start
}
