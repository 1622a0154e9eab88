package v1

import (
	"strings"

	"github.com/shenikar/fatal_force/internal/models"
)

// defaultChartQuery возвращает фильтр по умолчанию: 2015 год, все штаты
func defaultChartQuery() ChartQuery {
	return ChartQuery{Year: models.DefaultYear, States: []string{models.OverallState}}
}

func defaultAgeQuery() AgeQuery {
	return AgeQuery{Gender: models.GenderMale, Method: models.MethodMean}
}

// normalizeChartQuery раскрывает списки через запятую и приводит коды штатов к верхнему регистру
func normalizeChartQuery(q ChartQuery) ChartQuery {
	states := make([]string, 0, len(q.States))
	for _, raw := range q.States {
		for _, st := range strings.Split(raw, ",") {
			st = strings.TrimSpace(st)
			if st == "" {
				continue
			}
			if strings.EqualFold(st, models.OverallState) {
				st = models.OverallState
			} else {
				st = models.NormalizeState(st)
			}
			states = append(states, st)
		}
	}
	q.States = states
	return q
}

// normalizeAgeQuery допускает любой регистр в значениях пола и статистики
func normalizeAgeQuery(q AgeQuery) AgeQuery {
	q.Gender = models.NormalizeGender(q.Gender)
	for _, m := range []string{models.MethodMean, models.MethodMedian, models.MethodMode} {
		if strings.EqualFold(strings.TrimSpace(q.Method), m) {
			q.Method = m
		}
	}
	return q
}

// ChartQueryToFilter преобразует DTO в фильтр доменной модели
func ChartQueryToFilter(q ChartQuery) models.Filter {
	return models.Filter{Year: q.Year, States: q.States}
}
