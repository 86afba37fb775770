package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func vanillaData() *Data {
	return &Data{
		Name:  "TestingData",
		X:     []float64{0, 1, 2},
		Y:     []float64{1.1, 2.9, 5.2},
		Sigma: []float64{0.5, 0.5, 0.5},
	}
}

func TestDataCheck(t *testing.T) {
	assert := assert.New(t)

	// Make sure we have valid data before we start breaking things
	d := vanillaData()
	assert.NoError(d.Check())
	assert.Equal(3, d.Len())

	d = vanillaData()
	d.X, d.Y, d.Sigma = nil, nil, nil
	assert.Error(d.Check())

	d = vanillaData()
	d.Y = d.Y[:2]
	assert.Error(d.Check())

	d = vanillaData()
	d.Sigma = append(d.Sigma, 1)
	assert.Error(d.Check())

	d = vanillaData()
	d.Sigma[1] = 0
	assert.Error(d.Check())

	d = vanillaData()
	d.Sigma[1] = -1
	assert.Error(d.Check())

	d = vanillaData()
	d.Sigma[2] = math.Inf(1)
	assert.Error(d.Check())

	d = vanillaData()
	d.X[0] = math.NaN()
	assert.Error(d.Check())

	d = vanillaData()
	d.Y[0] = math.Inf(-1)
	assert.Error(d.Check())
}

func TestDataFromFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	fn := filepath.Join(dir, "line.dat")
	assert.NoError(os.WriteFile(fn, []byte(lineExample), 0o644))

	d, err := NewDataFromFile(DataReader{}, fn)
	assert.NoError(err)
	assert.Equal(fn, d.Name)
	assert.Equal(4, d.Len())

	_, err = NewDataFromFile(DataReader{}, filepath.Join(dir, "missing.dat"))
	assert.Error(err)

	bad := filepath.Join(dir, "bad.dat")
	assert.NoError(os.WriteFile(bad, []byte("1 2\n"), 0o644))
	_, err = NewDataFromFile(DataReader{}, bad) // no default sigma
	assert.Error(err)
}
