// Package aggregate содержит чистые функции построения данных для графиков дашборда.
// Все функции принимают полный набор записей и не изменяют его.
package aggregate

import (
	"sort"
	"strings"

	"github.com/shenikar/fatal_force/internal/models"
)

// DefaultCitiesLimit - количество городов в топе по умолчанию
const DefaultCitiesLimit = 10

// Filter отбирает записи по году и списку штатов
func Filter(records []models.Record, filter models.Filter) []models.Record {
	states := filter.StateSet()
	out := make([]models.Record, 0)
	for _, r := range records {
		if r.Year != filter.Year {
			continue
		}
		if states != nil {
			if _, ok := states[r.State]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// RaceByState считает записи по паре (штат, раса)
func RaceByState(records []models.Record, filter models.Filter) *models.RaceChart {
	type key struct{ state, race string }

	filtered := Filter(records, filter)
	counts := make(map[key]int)
	states := make(map[string]struct{})
	races := make(map[string]struct{})

	for _, r := range filtered {
		race := strings.TrimSpace(r.Race)
		if race == "" {
			race = models.UnknownRace
		}
		counts[key{r.State, race}]++
		states[r.State] = struct{}{}
		races[race] = struct{}{}
	}

	chart := &models.RaceChart{
		Filter: filter,
		States: sortedKeys(states),
		Races:  sortedKeys(races),
		Counts: make([]models.RaceCount, 0, len(counts)),
		Total:  len(filtered),
	}
	for k, c := range counts {
		chart.Counts = append(chart.Counts, models.RaceCount{State: k.state, Race: k.race, Count: c})
	}
	sort.Slice(chart.Counts, func(i, j int) bool {
		a, b := chart.Counts[i], chart.Counts[j]
		if a.State != b.State {
			return a.State < b.State
		}
		return a.Race < b.Race
	})
	return chart
}

// TopCities возвращает города с наибольшим количеством записей, по убыванию
func TopCities(records []models.Record, filter models.Filter, limit int) *models.CitiesChart {
	if limit <= 0 {
		limit = DefaultCitiesLimit
	}

	type key struct{ city, state string }
	counts := make(map[key]int)
	for _, r := range Filter(records, filter) {
		city := strings.TrimSpace(r.City)
		if city == "" {
			continue
		}
		counts[key{city, r.State}]++
	}

	cities := make([]models.CityCount, 0, len(counts))
	for k, c := range counts {
		cities = append(cities, models.CityCount{City: k.city, State: k.state, Count: c})
	}
	sort.Slice(cities, func(i, j int) bool {
		a, b := cities[i], cities[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.City != b.City {
			return a.City < b.City
		}
		return a.State < b.State
	})
	if len(cities) > limit {
		cities = cities[:limit]
	}

	return &models.CitiesChart{Filter: filter, Limit: limit, Cities: cities}
}

// ShootingsByState соединяет количество записей по штатам с границами штатов.
// Для Overall возвращаются все регионы, иначе только выбранные.
func ShootingsByState(records []models.Record, shapes []models.StateShape, filter models.Filter) *models.ShootingsMap {
	counts := make(map[string]int)
	total := 0
	for _, r := range Filter(records, filter) {
		counts[r.State]++
		total++
	}

	selected := filter.StateSet()
	out := &models.ShootingsMap{Filter: filter, Regions: make([]models.GeoRegion, 0), Total: total}
	for i := range shapes {
		shape := &shapes[i]
		if selected != nil {
			if _, ok := selected[shape.State]; !ok {
				continue
			}
		}
		c := counts[shape.State]
		if c > out.MaxCount {
			out.MaxCount = c
		}
		out.Regions = append(out.Regions, models.GeoRegion{
			State:    shape.State,
			Name:     shape.Name,
			Count:    c,
			Centroid: shape.Centroid,
			AreaKm2:  shape.AreaKm2,
			BBox:     shape.BBox,
			Shape:    shape,
		})
	}
	sort.Slice(out.Regions, func(i, j int) bool { return out.Regions[i].State < out.Regions[j].State })
	return out
}

// GenderShare считает доли мужчин и женщин по всему набору; прочие значения пола не учитываются
func GenderShare(records []models.Record) *models.GenderShare {
	var male, female int
	for _, r := range records {
		switch models.NormalizeGender(r.Gender) {
		case models.GenderMale:
			male++
		case models.GenderFemale:
			female++
		}
	}

	total := male + female
	share := &models.GenderShare{Total: total, Slices: make([]models.GenderSlice, 0, 2)}
	for _, s := range []models.GenderSlice{
		{Gender: models.GenderMale, Count: male},
		{Gender: models.GenderFemale, Count: female},
	} {
		if total > 0 {
			s.Percent = float64(s.Count) / float64(total) * 100
		}
		share.Slices = append(share.Slices, s)
	}
	return share
}

// Options формирует значения для элементов управления дашборда
func Options(records []models.Record) *models.DashboardOptions {
	years := make([]int, 0, models.MaxYear-models.MinYear+1)
	for y := models.MinYear; y <= models.MaxYear; y++ {
		years = append(years, y)
	}

	states := make(map[string]struct{})
	for _, r := range records {
		states[r.State] = struct{}{}
	}
	options := []models.Option{{Label: models.OverallState, Value: models.OverallState}}
	for _, s := range sortedKeys(states) {
		options = append(options, models.Option{Label: s, Value: s})
	}

	return &models.DashboardOptions{
		Years:         years,
		States:        options,
		Genders:       []string{models.GenderMale, models.GenderFemale},
		Methods:       []string{models.MethodMean, models.MethodMedian, models.MethodMode},
		DefaultYear:   models.DefaultYear,
		DefaultStates: []string{models.OverallState},
		DefaultGender: models.GenderMale,
		DefaultMethod: models.MethodMean,
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
