package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularFloat(t *testing.T) {
	assert := assert.New(t)

	cf := NewCircularFloat(4)
	assert.Equal(4, cf.BufSize)
	assert.Equal(0, cf.Count)
	assert.Equal(0.0, cf.Mean())
	assert.Empty(cf.Values())

	cf.Add(1)
	cf.Add(2)
	cf.Add(3)
	assert.Equal(3, cf.Count)
	assert.InEpsilon(2.0, cf.Mean(), 1e-12)
	assert.Equal([]float64{1, 2, 3}, cf.Values())

	cf.Add(4)
	assert.Equal(4, cf.Count)
	assert.InEpsilon(2.5, cf.Mean(), 1e-12)

	// 1 2 3 4 add 5 add 6 => 5 6 3 4, oldest first is 3 4 5 6
	cf.Add(5)
	cf.Add(6)
	assert.Equal(4, cf.Count)
	assert.Equal(int64(6), cf.TotalSeen)
	assert.Equal([]float64{3, 4, 5, 6}, cf.Values())
	assert.InEpsilon(4.5, cf.Mean(), 1e-12)
}

func TestCircularFloatRate(t *testing.T) {
	assert := assert.New(t)

	cf := NewCircularFloat(10)
	for i := 0; i < 1000; i++ {
		if i%4 == 0 {
			cf.Add(1)
		} else {
			cf.Add(0)
		}
	}
	// Last ten adds are i=990..999, of which 992 and 996 are accepts
	assert.InDelta(0.2, cf.Mean(), 1e-12)
}

func TestCircularFloatTinySize(t *testing.T) {
	assert := assert.New(t)

	cf := NewCircularFloat(0)
	assert.Equal(1, cf.BufSize)
	cf.Add(3)
	cf.Add(7)
	assert.Equal(1, cf.Count)
	assert.Equal(7.0, cf.Mean())
}
