package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultGridSize - число точек, в которых вычисляется кривая плотности
const DefaultGridSize = 200

// ширина окна для слишком малой выборки или выборки без разброса
const fallbackBandwidth = 1.0

// ScottBandwidth возвращает ширину окна по правилу Скотта: σ·n^(-1/5)
func ScottBandwidth(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return fallbackBandwidth
	}
	sd := StdDev(values)
	if sd == 0 || math.IsNaN(sd) {
		return fallbackBandwidth
	}
	return sd * math.Pow(float64(n), -0.2)
}

// Grid возвращает size равноотстоящих точек на отрезке [lo, hi]
func Grid(lo, hi float64, size int) []float64 {
	if size < 2 {
		size = 2
	}
	if hi <= lo {
		hi = lo + 1
	}
	return floats.Span(make([]float64, size), lo, hi)
}

// GaussianKDE вычисляет гауссову ядерную оценку плотности в каждой точке сетки.
// Интеграл результата по прямой примерно равен 1, для пустой выборки - нули.
func GaussianKDE(values, grid []float64, bw float64) []float64 {
	out := make([]float64, len(grid))
	if len(values) == 0 {
		return out
	}
	if bw <= 0 {
		bw = fallbackBandwidth
	}

	norm := 1 / (float64(len(values)) * bw * math.Sqrt(2*math.Pi))
	for i, x := range grid {
		var sum float64
		for _, v := range values {
			u := (x - v) / bw
			sum += math.Exp(-0.5 * u * u)
		}
		out[i] = sum * norm
	}
	return out
}

// SupportRange возвращает [min-3h, max+3h] по всем выборкам, снизу ограниченный floor
func SupportRange(samples [][]float64, bandwidths []float64, floor float64) (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, s := range samples {
		if len(s) == 0 {
			continue
		}
		h := fallbackBandwidth
		if i < len(bandwidths) {
			h = bandwidths[i]
		}
		lo = math.Min(lo, floats.Min(s)-3*h)
		hi = math.Max(hi, floats.Max(s)+3*h)
	}
	if math.IsInf(lo, 1) {
		return 0, 0, false
	}
	if lo < floor {
		lo = floor
	}
	return lo, hi, true
}
