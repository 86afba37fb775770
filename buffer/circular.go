package buffer

// CircularFloat is a fixed-size window over the most recent float64 values
// added. The chain runner uses it (with 0/1 values) to track a rolling
// acceptance rate.
type CircularFloat struct {
	buffer    []float64 // actual storage
	pos       int       // Current position in buffer
	sum       float64   // Sum of the values currently in the window
	BufSize   int       // BufSize is the fixed number of values maintained in memory
	Count     int       // Count is the number of values in memory. Will always be <= BufSize
	TotalSeen int64     // TotalSeen is the total number of times Add has been called
}

// NewCircularFloat creates a new circular buffer holding totalSize values. A
// size less than 1 is bumped up to 1.
func NewCircularFloat(totalSize int) *CircularFloat {
	if totalSize < 1 {
		totalSize = 1
	}

	return &CircularFloat{
		buffer:  make([]float64, totalSize),
		pos:     0,
		BufSize: totalSize,
		Count:   0,
	}
}

// Internal: return the next array position
func (c *CircularFloat) nextPos() int {
	return (c.pos + 1) % c.BufSize
}

// Add appends the given value to the buffer, overwriting the oldest entry
func (c *CircularFloat) Add(v float64) {
	c.TotalSeen++

	if c.Count == c.BufSize {
		c.sum -= c.buffer[c.pos]
	}
	c.buffer[c.pos] = v
	c.sum += v

	c.pos = c.nextPos()

	c.Count++
	if c.Count > c.BufSize {
		c.Count = c.BufSize // max out
	}
}

// Mean returns the mean of the values in the window, or 0 when empty. The sum
// is recomputed once per full rotation so rounding error can not accumulate.
func (c *CircularFloat) Mean() float64 {
	if c.Count < 1 {
		return 0
	}

	if c.pos == 0 && c.Count == c.BufSize {
		c.sum = 0
		for _, v := range c.buffer {
			c.sum += v
		}
	}

	return c.sum / float64(c.Count)
}

// Values returns the values in the window from oldest to newest
func (c *CircularFloat) Values() []float64 {
	out := make([]float64, 0, c.Count)
	start := 0
	if c.Count == c.BufSize {
		start = c.pos // Oldest is the one we're about to write
	}
	for i := 0; i < c.Count; i++ {
		out = append(out, c.buffer[(start+i)%c.BufSize])
	}
	return out
}
