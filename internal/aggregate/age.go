package aggregate

import (
	"fmt"

	"github.com/shenikar/fatal_force/internal/models"
	"github.com/shenikar/fatal_force/internal/stats"
)

// AgeDistribution строит KDE возраста для мужчин и женщин на общей сетке
// и ставит отметку выбранной статистики для выбранного пола.
// Плотность выражена в процентах.
func AgeDistribution(records []models.Record, gender, method string) (*models.AgeDistribution, error) {
	gender = models.NormalizeGender(gender)
	if gender != models.GenderMale && gender != models.GenderFemale {
		return nil, fmt.Errorf("%w: unknown gender %q", models.ErrInvalidFilter, gender)
	}
	statistic, err := statisticFor(method)
	if err != nil {
		return nil, err
	}

	genders := []string{models.GenderMale, models.GenderFemale}
	samples := make([][]float64, len(genders))
	for _, r := range records {
		if r.Age == nil {
			continue
		}
		switch models.NormalizeGender(r.Gender) {
		case models.GenderMale:
			samples[0] = append(samples[0], *r.Age)
		case models.GenderFemale:
			samples[1] = append(samples[1], *r.Age)
		}
	}

	bandwidths := make([]float64, len(genders))
	for i, s := range samples {
		bandwidths[i] = stats.ScottBandwidth(s)
	}

	dist := &models.AgeDistribution{
		Gender: gender,
		Method: method,
		Curves: make([]models.DensityCurve, 0, len(genders)),
	}

	lo, hi, ok := stats.SupportRange(samples, bandwidths, 0)
	if !ok {
		return dist, nil
	}
	grid := stats.Grid(lo, hi, stats.DefaultGridSize)

	for i, g := range genders {
		density := stats.GaussianKDE(samples[i], grid, bandwidths[i])
		for j := range density {
			density[j] *= 100
		}
		dist.Curves = append(dist.Curves, models.DensityCurve{
			Gender:    g,
			Samples:   len(samples[i]),
			Bandwidth: bandwidths[i],
			Ages:      grid,
			Density:   density,
		})
		if g == gender && len(samples[i]) > 0 {
			dist.Marker = &models.AgeMarker{Gender: g, Method: method, Age: statistic(samples[i])}
		}
	}
	return dist, nil
}

func statisticFor(method string) (func([]float64) float64, error) {
	switch method {
	case models.MethodMean:
		return stats.Mean, nil
	case models.MethodMedian:
		return stats.Median, nil
	case models.MethodMode:
		return stats.Mode, nil
	}
	return nil, fmt.Errorf("%w: unknown method %q", models.ErrInvalidFilter, method)
}
