package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	values := []float64{20, 30, 30, 40, 55}

	assert.InDelta(t, 35.0, Mean(values), 1e-9)
	assert.Equal(t, 30.0, Median(values))
	assert.Equal(t, 30.0, Mode(values))
	assert.Equal(t, 25.0, Median([]float64{20, 30, 10, 40}))
}

func TestSummary_Empty(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.Zero(t, Median(nil))
	assert.Zero(t, Mode(nil))
	assert.Zero(t, StdDev([]float64{42}))
}

func TestMode_TieResolvesToSmallest(t *testing.T) {
	assert.Equal(t, 18.0, Mode([]float64{40, 18, 40, 18, 25}))
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestScottBandwidth(t *testing.T) {
	assert.Equal(t, fallbackBandwidth, ScottBandwidth([]float64{30}))
	assert.Equal(t, fallbackBandwidth, ScottBandwidth([]float64{30, 30, 30}))

	values := []float64{10, 20, 30, 40, 50}
	expected := StdDev(values) * math.Pow(5, -0.2)
	assert.InDelta(t, expected, ScottBandwidth(values), 1e-12)
}

func TestGaussianKDE_IntegratesToOne(t *testing.T) {
	values := []float64{22, 25, 31, 31, 36, 44, 58}
	bw := ScottBandwidth(values)
	lo, hi, ok := SupportRange([][]float64{values}, []float64{bw}, math.Inf(-1))
	require.True(t, ok)

	grid := Grid(lo-10, hi+10, 2000)
	density := GaussianKDE(values, grid, bw)

	step := grid[1] - grid[0]
	var area float64
	for _, d := range density {
		area += d * step
	}
	assert.InDelta(t, 1.0, area, 0.01)
}

func TestGaussianKDE_EmptySample(t *testing.T) {
	density := GaussianKDE(nil, []float64{1, 2, 3}, 1)
	assert.Equal(t, []float64{0, 0, 0}, density)
}

func TestSupportRange_ClipsAtFloor(t *testing.T) {
	lo, hi, ok := SupportRange([][]float64{{1, 2}, {}}, []float64{2, 2}, 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 8.0, hi)

	_, _, ok = SupportRange([][]float64{{}}, nil, 0)
	assert.False(t, ok)
}

func TestGrid(t *testing.T) {
	g := Grid(0, 10, 11)
	require.Len(t, g, 11)
	assert.Equal(t, 0.0, g[0])
	assert.Equal(t, 10.0, g[10])
	assert.InDelta(t, 1.0, g[1], 1e-12)
}
