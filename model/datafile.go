package model

import (
	"strings"

	"github.com/pkg/errors"
)

// DataReader reads observations from plain text: one observation per line as
// "x y sigma" (or "x y", in which case DefaultSigma is used). Blank lines and
// lines starting with '#' are ignored.
type DataReader struct {
	DefaultSigma float64
}

// Preprocessor for data files: drop blank and comment lines. Return the
// remaining lines along with their 1-based line numbers in the source.
func dataPreprocess(buf []byte) ([]string, []int) {
	lines := strings.Split(string(buf), "\n")

	kept := make([]string, 0, len(lines))
	lineNums := make([]int, 0, len(lines))
	for i, ln := range lines {
		ln = strings.TrimSpace(ln)
		if len(ln) < 1 || ln[0] == '#' {
			continue // Empty or comment: skip
		}
		kept = append(kept, ln)
		lineNums = append(lineNums, i+1)
	}

	return kept, lineNums
}

// ReadData implements the model.Reader interface
func (r DataReader) ReadData(buf []byte) (*Data, error) {
	lines, lineNums := dataPreprocess(buf)
	if len(lines) < 1 {
		return nil, errors.Errorf("No observations found")
	}

	d := &Data{
		X:     make([]float64, 0, len(lines)),
		Y:     make([]float64, 0, len(lines)),
		Sigma: make([]float64, 0, len(lines)),
	}

	for i, ln := range lines {
		lineNum := lineNums[i]
		fr := NewFieldReader(ln)

		cols := fr.Remaining()
		if cols != 2 && cols != 3 {
			return nil, errors.Errorf("Line %d: expected 2 or 3 columns, found %d", lineNum, cols)
		}

		x, err := fr.ReadFloat()
		if err != nil {
			return nil, errors.Wrapf(err, "Line %d: could not read x", lineNum)
		}
		y, err := fr.ReadFloat()
		if err != nil {
			return nil, errors.Wrapf(err, "Line %d: could not read y", lineNum)
		}

		sigma := r.DefaultSigma
		if cols == 3 {
			sigma, err = fr.ReadFloat()
			if err != nil {
				return nil, errors.Wrapf(err, "Line %d: could not read sigma", lineNum)
			}
		}
		if !(sigma > 0) {
			return nil, errors.Errorf("Line %d: sigma must be positive, have %v", lineNum, sigma)
		}

		d.X = append(d.X, x)
		d.Y = append(d.Y, y)
		d.Sigma = append(d.Sigma, sigma)
	}

	// Finally all done - we leave it to our caller to perform final checking
	return d, nil
}
