package models

import (
	"errors"
	"strings"
)

const (
	// OverallState - псевдо-штат, означающий отсутствие ограничения по штатам
	OverallState = "Overall"

	MinYear     = 2000
	MaxYear     = 2021
	DefaultYear = 2015

	GenderMale   = "Male"
	GenderFemale = "Female"

	MethodMean   = "Mean"
	MethodMedian = "Median"
	MethodMode   = "Mode"

	UnknownRace = "Unknown"
)

// ErrInvalidFilter возвращается, если параметры фильтра не проходят проверку
var ErrInvalidFilter = errors.New("invalid filter")

// Record - одна запись о гибели человека от применения силы полицией
type Record struct {
	ID     int64    `json:"id"`
	Year   int      `json:"year"`
	State  string   `json:"state"`
	City   string   `json:"city"`
	Race   string   `json:"race"`
	Gender string   `json:"gender"`
	Age    *float64 `json:"age,omitempty"`
}

// Filter - выбор пользователя (год + список штатов), применяемый перед агрегацией
type Filter struct {
	Year   int      `json:"year"`
	States []string `json:"states"`
}

// IsOverall сообщает, что фильтр не ограничивает штаты
func (f Filter) IsOverall() bool {
	for _, s := range f.States {
		if strings.EqualFold(s, OverallState) {
			return true
		}
	}
	return false
}

// StateSet возвращает множество выбранных штатов (nil для Overall)
func (f Filter) StateSet() map[string]struct{} {
	if f.IsOverall() {
		return nil
	}
	set := make(map[string]struct{}, len(f.States))
	for _, s := range f.States {
		set[NormalizeState(s)] = struct{}{}
	}
	return set
}

// NormalizeState приводит код штата к каноническому виду
func NormalizeState(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeGender приводит пол к "Male"/"Female"; прочие значения возвращаются как есть
func NormalizeGender(g string) string {
	g = strings.TrimSpace(g)
	switch {
	case strings.EqualFold(g, GenderMale):
		return GenderMale
	case strings.EqualFold(g, GenderFemale):
		return GenderFemale
	}
	return g
}
