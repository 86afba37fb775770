package model

import (
	"math"

	"github.com/pkg/errors"
)

// Param describes one coordinate of a parameter vector: a display name and
// the closed interval the prior allows. Infinite bounds give an improper flat
// prior on that side.
type Param struct {
	Name  string
	Lower float64
	Upper float64
}

// NewParam is our standard way to create an unbounded parameter from an
// index. The name is derived from the index (A, B, ..., Z, AA, ...).
func NewParam(index int) (*Param, error) {
	if index < 0 {
		return nil, errors.Errorf("Invalid param index %d", index)
	}

	p := &Param{
		Name:  letter26(index),
		Lower: math.Inf(-1),
		Upper: math.Inf(1),
	}
	return p, nil
}

// Clone returns a copy of the parameter
func (p *Param) Clone() *Param {
	cp := *p
	return &cp
}

// Check returns an error if any problem is found
func (p *Param) Check() error {
	if math.IsNaN(p.Lower) || math.IsNaN(p.Upper) {
		return errors.Errorf("Param %s has NaN bound", p.Name)
	}
	if p.Lower > p.Upper {
		return errors.Errorf("Param %s has lower bound %v > upper bound %v", p.Name, p.Lower, p.Upper)
	}
	return nil
}

// Contains is true when v is inside the parameter's bounds
func (p *Param) Contains(v float64) bool {
	return v >= p.Lower && v <= p.Upper
}

// ParamNames returns the names in order
func ParamNames(params []*Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

func divmod(numerator, denominator int) (quotient, remainder int) {
	quotient = numerator / denominator // integer division, decimals are truncated
	remainder = numerator % denominator
	return
}

// letter26 is sort of base-26 with only letters, but A=0 *and* the start digit (so 0=A, 1=B, and ZZ+1=AAA)
func letter26(n int) string {
	// Easy for n==0
	if n == 0 {
		return "A"
	}
	// Need to bump up one
	n++

	const LETTERS = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits := make([]byte, 0, 8)
	var remain int
	for n > 0 {
		n, remain = divmod(n-1, 26)
		digits = append(digits, LETTERS[remain])
	}

	//reverse
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}
