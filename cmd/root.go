package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CraigKelly/mhsample/config"
)

// startupParams is everything a subcommand needs once flags, config file and
// environment have been merged.
type startupParams struct {
	cfg     *config.Config
	verbose bool
	runID   uuid.UUID

	out   *log.Logger // normal output
	trace *bufio.Writer // nil unless a trace file was requested
	mon   *monitor    // nil unless a monitor address was requested

	closers []io.Closer
}

// Close releases the trace file and monitor. The first close error is
// returned since a failed close can mean a short trace file.
func (sp *startupParams) Close() error {
	if sp.mon != nil {
		sp.mon.Stop(sp.out)
	}

	var firstErr error
	for _, c := range sp.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, "Could not CLOSE output")
		}
	}
	sp.closers = nil
	return firstErr
}

// rootFlags are the persistent flags. They only override the config when
// set explicitly on the command line.
type rootFlags struct {
	cfgFile   string
	verbose   bool
	seed      int64
	steps     int
	stepSize  []float64
	initial   []float64
	burnIn    float64
	report    int
	traceFile string
	monitor   string
}

// newRootCmd builds the command tree writing normal output to out
func newRootCmd(out io.Writer) *cobra.Command {
	rf := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "mhsample",
		Short: "Random walk Metropolis-Hastings sampling",
		Long: `mhsample draws samples from a posterior density with a single chain
random walk Metropolis-Hastings sampler. Among other features:

  - Straight line fits to x/y/sigma data files (the line command)
  - A check against a Gaussian with known moments (the gauss command)
  - Chain trace files and a live metrics endpoint
`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rf.cfgFile, "config", "c", "", "YAML config file")
	pf.BoolVarP(&rf.verbose, "verbose", "v", false, "Verbose logging (default is much more parsimonious)")
	pf.Int64VarP(&rf.seed, "seed", "r", 1, "Random seed to use (0 picks one from the clock)")
	pf.IntVarP(&rf.steps, "steps", "n", 10000, "Number of sampler steps")
	pf.Float64SliceVarP(&rf.stepSize, "step-size", "s", []float64{0.5}, "Proposal step size: one value or one per parameter")
	pf.Float64SliceVarP(&rf.initial, "init", "i", nil, "Initial parameter vector")
	pf.Float64VarP(&rf.burnIn, "burn", "b", 0.2, "Fraction of the chain discarded before summarizing")
	pf.IntVar(&rf.report, "report", 1000, "Log progress every N steps in verbose mode (0 disables)")
	pf.StringVarP(&rf.traceFile, "trace", "t", "", "Write the full chain to this file")
	pf.StringVarP(&rf.monitor, "monitor", "m", "", "Serve progress metrics on this address (e.g. :8000)")

	rootCmd.AddCommand(newLineCmd(rf))
	rootCmd.AddCommand(newGaussCmd(rf))

	return rootCmd
}

// startup merges config, environment and flags and opens the outputs
func startup(cmd *cobra.Command, rf *rootFlags) (*startupParams, error) {
	cfg, err := config.Load(rf.cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = rf.seed
	}
	if flags.Changed("steps") {
		cfg.Steps = rf.steps
	}
	if flags.Changed("step-size") {
		cfg.StepSize = rf.stepSize
	}
	if flags.Changed("init") {
		cfg.Initial = rf.initial
	}
	if flags.Changed("burn") {
		cfg.BurnIn = rf.burnIn
	}
	if flags.Changed("report") {
		cfg.Report = rf.report
	}
	if flags.Changed("trace") {
		cfg.TraceFile = rf.traceFile
	}
	if flags.Changed("monitor") {
		cfg.Monitor = rf.monitor
	}

	if err := cfg.Check(); err != nil {
		return nil, errors.Wrap(err, "Invalid configuration")
	}

	sp := &startupParams{
		cfg:     cfg,
		verbose: rf.verbose,
		runID:   uuid.New(),
		out:     log.New(cmd.OutOrStdout(), "", 0),
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		sp.out.Printf("Using seed: %d\n", cfg.Seed)
	}

	if len(cfg.TraceFile) > 0 {
		f, err := os.Create(cfg.TraceFile)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not create trace file %s", cfg.TraceFile)
		}
		sp.closers = append(sp.closers, f)
		sp.trace = bufio.NewWriter(f)
	}

	if len(cfg.Monitor) > 0 {
		sp.mon = newMonitor(cfg.Monitor)
		if err := sp.mon.Start(sp.out); err != nil {
			sp.Close()
			return nil, err
		}
	}

	if sp.verbose {
		sp.out.Printf("Run:      %s\n", sp.runID)
		sp.out.Printf("Seed:     %d\n", cfg.Seed)
		sp.out.Printf("Steps:    %d\n", cfg.Steps)
		sp.out.Printf("StepSize: %v\n", cfg.StepSize)
		sp.out.Printf("Burn-In:  %v\n", cfg.BurnIn)
	}

	return sp, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
