package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Make sure that Check actually catches problems
func TestParamCheck(t *testing.T) {
	assert := assert.New(t)

	inf := math.Inf(1)

	bad := []Param{
		{"Bad-Inverted", 1, 0},
		{"Bad-NaNLower", math.NaN(), 0},
		{"Bad-NaNUpper", 0, math.NaN()},
		{"Bad-InvertedInf", inf, -inf},
	}
	for _, p := range bad {
		assert.Error(p.Check(), p.Name)
	}

	good := []Param{
		{"Good-Unbounded", -inf, inf},
		{"Good-Point", 2, 2},
		{"Good-Box", -1, 1},
		{"Good-HalfLine", 0, inf},
	}
	for _, p := range good {
		assert.NoError(p.Check(), p.Name)
	}
}

func TestParamContains(t *testing.T) {
	assert := assert.New(t)

	p := &Param{"P", 0, 1}
	assert.True(p.Contains(0))
	assert.True(p.Contains(0.5))
	assert.True(p.Contains(1))
	assert.False(p.Contains(-1e-12))
	assert.False(p.Contains(1.0000001))
	assert.False(p.Contains(math.NaN()))

	u, err := NewParam(3)
	assert.NoError(err)
	assert.True(u.Contains(-1e300))
	assert.True(u.Contains(1e300))

	cp := u.Clone()
	cp.Lower = 0
	assert.True(math.IsInf(u.Lower, -1))
}

// test our naming helper
func TestParamNaming(t *testing.T) {
	assert := assert.New(t)

	_, err := NewParam(-1) // Quick error testing
	assert.Error(err)

	cases := []struct {
		index int
		name  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{(26 * 26) + 26 - 1, "ZZ"},
		{(26 * 26) + 26, "AAA"},
	}

	for _, c := range cases {
		p, err := NewParam(c.index)
		assert.NoError(err)
		assert.Equal(c.name, p.Name)
	}

	a, _ := NewParam(0)
	b, _ := NewParam(1)
	assert.Equal([]string{"A", "B"}, ParamNames([]*Param{a, b}))
}
