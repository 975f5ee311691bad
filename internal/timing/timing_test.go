package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	calls := 0
	s := Measure(5, func() { calls++ })

	assert.Equal(t, 6, calls, "warm-up plus five timed runs")
	assert.Equal(t, 5, s.Runs)
	assert.LessOrEqual(t, s.Min, s.Median)
	assert.LessOrEqual(t, s.Median, s.Max)
	assert.Contains(t, s.String(), "5 runs")
}

func TestMeasure_Invalid(t *testing.T) {
	assert.Panics(t, func() { Measure(0, func() {}) })
}
