package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean возвращает среднее арифметическое, 0 для пустого среза
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdDev возвращает выборочное стандартное отклонение, 0 если значений меньше двух
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// Median возвращает медиану; при четном числе значений берется среднее двух центральных
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Mode возвращает самое частое значение. При равенстве частот - наименьшее
func Mode(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	freq := make(map[float64]int)
	for _, v := range values {
		freq[v]++
	}

	maxFreq := 0
	var mode float64
	for v, f := range freq {
		if f > maxFreq || (f == maxFreq && v < mode) {
			maxFreq = f
			mode = v
		}
	}
	return mode
}
