package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/CraigKelly/mhsample/sampler"
)

// writeTrace writes the full chain to the trace file as tab separated rows:
// iteration, log probability, accepted flag and then the parameters.
func writeTrace(sp *startupParams, ch *sampler.Chain, names []string) error {
	sp.out.Printf("Writing %d states to trace file %v\n", ch.Len(), sp.cfg.TraceFile)
	if err := writeTraceRows(sp, ch, names); err != nil {
		return errors.Wrapf(err, "Could not WRITE trace to %s", sp.cfg.TraceFile)
	}
	return nil
}

func writeTraceRows(sp *startupParams, ch *sampler.Chain, names []string) error {
	w := sp.trace

	if _, err := fmt.Fprintf(w, "# run %s seed %d\n", sp.runID, sp.cfg.Seed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "iteration\tlogprob\taccepted\t%s\n", strings.Join(names, "\t")); err != nil {
		return err
	}

	var row []byte
	for i, state := range ch.States {
		row = strconv.AppendInt(row[:0], int64(i), 10)
		row = append(row, '\t')
		row = strconv.AppendFloat(row, ch.LogProbs[i], 'g', -1, 64)
		if ch.WasAccepted(i) {
			row = append(row, "\t1"...)
		} else {
			row = append(row, "\t0"...)
		}
		for _, v := range state {
			row = append(row, '\t')
			row = strconv.AppendFloat(row, v, 'g', -1, 64)
		}
		row = append(row, '\n')

		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Flush()
}
