package model

import (
	"math"
	"os"

	"github.com/pkg/errors"
)

// Reader implementors build an observed data set from a byte stream
type Reader interface {
	ReadData(data []byte) (*Data, error)
}

// Data is a set of independent observations (X[i], Y[i]) where Y[i] has
// Gaussian measurement uncertainty Sigma[i].
type Data struct {
	Name  string
	X     []float64
	Y     []float64
	Sigma []float64
}

// Len is the number of observations
func (d *Data) Len() int {
	return len(d.X)
}

// Check returns an error if there is a problem with the data
func (d *Data) Check() error {
	if len(d.X) < 1 {
		return errors.Errorf("Data %s has no observations", d.Name)
	}
	if len(d.Y) != len(d.X) || len(d.Sigma) != len(d.X) {
		return errors.Errorf("Data %s length mismatch: x=%d y=%d sigma=%d", d.Name, len(d.X), len(d.Y), len(d.Sigma))
	}

	for i := range d.X {
		if math.IsNaN(d.X[i]) || math.IsInf(d.X[i], 0) || math.IsNaN(d.Y[i]) || math.IsInf(d.Y[i], 0) {
			return errors.Errorf("Data %s observation %d is not finite: (%v, %v)", d.Name, i, d.X[i], d.Y[i])
		}
		if !(d.Sigma[i] > 0) || math.IsInf(d.Sigma[i], 1) {
			return errors.Errorf("Data %s observation %d has invalid sigma %v", d.Name, i, d.Sigma[i])
		}
	}

	return nil
}

// NewDataFromFile reads and checks a data set from the specified file
func NewDataFromFile(r Reader, filename string) (*Data, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not READ data from %s", filename)
	}

	data, err := NewDataFromBuffer(r, buf)
	if err != nil {
		return nil, errors.Wrapf(err, "Data file %s", filename)
	}

	data.Name = filename
	return data, nil
}

// NewDataFromBuffer creates a data set from the given pre-read bytes
func NewDataFromBuffer(r Reader, buf []byte) (*Data, error) {
	d, err := r.ReadData(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not PARSE data")
	}

	err = d.Check()
	if err != nil {
		return nil, errors.Wrapf(err, "Parsed data is not valid")
	}

	return d, nil
}
