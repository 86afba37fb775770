package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const lineExample = `# x  y  sigma
0.0  1.1  0.3

1.0  2.9  0.3
# a comment in the middle
2.0  5.2  0.4
   3.0  6.8  0.5
`

func TestDataReaderExample(t *testing.T) {
	assert := assert.New(t)

	r := DataReader{}
	d, err := NewDataFromBuffer(r, []byte(lineExample))
	assert.NoError(err)
	assert.NoError(d.Check())

	assert.Equal([]float64{0, 1, 2, 3}, d.X)
	assert.Equal([]float64{1.1, 2.9, 5.2, 6.8}, d.Y)
	assert.Equal([]float64{0.3, 0.3, 0.4, 0.5}, d.Sigma)
}

func TestDataReaderDefaultSigma(t *testing.T) {
	assert := assert.New(t)

	r := DataReader{DefaultSigma: 2.5}
	d, err := r.ReadData([]byte("1 2\n3 4 0.1\n"))
	assert.NoError(err)
	assert.Equal([]float64{2.5, 0.1}, d.Sigma)

	// Without a default, two columns are not enough
	_, err = DataReader{}.ReadData([]byte("1 2\n"))
	assert.Error(err)
}

func TestDataReaderErrors(t *testing.T) {
	assert := assert.New(t)

	r := DataReader{DefaultSigma: 1}
	cases := []struct {
		Name string
		Text string
	}{
		{"Empty", ""},
		{"OnlyComments", "# nothing\n\n# here\n"},
		{"OneColumn", "1\n"},
		{"FourColumns", "1 2 3 4\n"},
		{"BadX", "x 2 3\n"},
		{"BadY", "1 y 3\n"},
		{"BadSigma", "1 2 s\n"},
		{"ZeroSigma", "1 2 0\n"},
		{"NegativeSigma", "1 2 -0.5\n"},
		{"SecondLineBad", "1 2 3\n4 5 6 7\n"},
	}

	for _, c := range cases {
		_, err := r.ReadData([]byte(c.Text))
		assert.Error(err, c.Name)
	}
}

func TestDataReaderLineNumbers(t *testing.T) {
	assert := assert.New(t)

	_, err := DataReader{}.ReadData([]byte("# header\n\n1 2 3\n1 2 3 4\n"))
	assert.Error(err)
	assert.Contains(err.Error(), "Line 4")
}

func TestFieldReader(t *testing.T) {
	assert := assert.New(t)

	fr := NewFieldReader("  1.5\t two  ")
	assert.Equal(2, fr.Remaining())

	f, err := fr.ReadFloat()
	assert.NoError(err)
	assert.Equal(1.5, f)

	_, err = fr.ReadFloat()
	assert.Error(err)
	assert.Equal(0, fr.Remaining())

	_, err = fr.Read()
	assert.Error(err)
}
