package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/fatal_force/internal/models"
)

// DefaultForceFilter - значение колонки "Highest level of force", оставляемое по умолчанию
const DefaultForceFilter = "Gunshot"

const (
	colID     = "id"
	colYear   = "year"
	colDate   = "date"
	colState  = "state"
	colCity   = "city"
	colRace   = "race"
	colGender = "gender"
	colAge    = "age"
	colForce  = "force"
)

// Допустимые названия колонок (в нижнем регистре) в порядке приоритета
var columnAliases = map[string][]string{
	colID:     {"unique id", "unique_id", "id"},
	colYear:   {"year", "date (year)"},
	colDate:   {"date of injury resulting in death (month/day/year)", "date", "date of death"},
	colState:  {"state"},
	colCity:   {"location of death (city)", "city"},
	colRace:   {"race", "race with imputations"},
	colGender: {"gender", "sex"},
	colAge:    {"age"},
	colForce:  {"highest level of force"},
}

var dateLayouts = []string{"01/02/2006", "1/2/2006", "2006-01-02"}

var leadingNumber = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)

// DecodeOptions - параметры разбора CSV
type DecodeOptions struct {
	// ForceFilter оставляет только строки с указанной силой; пустое значение отключает фильтр
	ForceFilter string
}

// DecodeReport - статистика разбора
type DecodeReport struct {
	Rows          int
	Skipped       int
	ForceFiltered int
}

// Decode читает записи из CSV
func Decode(r io.Reader, opts DecodeOptions) ([]models.Record, DecodeReport, error) {
	var report DecodeReport

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, report, NewLoadError(StageHeader, fmt.Errorf("failed to read header: %w", err))
	}
	cols := resolveColumns(header)

	if _, ok := cols[colState]; !ok {
		return nil, report, NewLoadError(StageHeader, errors.New("state column not found"))
	}
	_, hasYear := cols[colYear]
	_, hasDate := cols[colDate]
	if !hasYear && !hasDate {
		return nil, report, NewLoadError(StageHeader, errors.New("neither year nor date column found"))
	}

	records := make([]models.Record, 0)
	seen := make(map[int64]struct{})
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, NewLoadError(StageRow, err)
		}
		report.Rows++

		if opts.ForceFilter != "" {
			if force, ok := field(row, cols, colForce); ok && !strings.EqualFold(strings.TrimSpace(force), opts.ForceFilter) {
				report.ForceFiltered++
				continue
			}
		}

		rec, ok := decodeRow(row, cols, report.Rows)
		if !ok {
			report.Skipped++
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			report.Skipped++
			continue
		}
		seen[rec.ID] = struct{}{}
		records = append(records, rec)
	}
	return records, report, nil
}

func resolveColumns(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, exists := index[h]; !exists {
			index[h] = i
		}
	}

	cols := make(map[string]int)
	for canonical, aliases := range columnAliases {
		for _, a := range aliases {
			if i, ok := index[a]; ok {
				cols[canonical] = i
				break
			}
		}
	}
	return cols
}

func field(row []string, cols map[string]int, name string) (string, bool) {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return row[i], true
}

func decodeRow(row []string, cols map[string]int, rowNum int) (models.Record, bool) {
	state, _ := field(row, cols, colState)
	state = models.NormalizeState(state)
	if state == "" {
		return models.Record{}, false
	}

	year, ok := parseYear(row, cols)
	if !ok {
		return models.Record{}, false
	}

	// строки без идентификатора получают отрицательный номер строки,
	// он не пересекается с идентификаторами из файла
	rec := models.Record{
		ID:    -int64(rowNum),
		Year:  year,
		State: state,
	}
	if v, ok := field(row, cols, colID); ok {
		if id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil && id > 0 {
			rec.ID = id
		}
	}
	if v, ok := field(row, cols, colCity); ok {
		rec.City = strings.TrimSpace(v)
	}
	if v, ok := field(row, cols, colRace); ok {
		rec.Race = strings.TrimSpace(v)
	}
	if v, ok := field(row, cols, colGender); ok {
		rec.Gender = models.NormalizeGender(v)
	}
	if v, ok := field(row, cols, colAge); ok {
		rec.Age = parseAge(v)
	}
	return rec, true
}

func parseYear(row []string, cols map[string]int) (int, bool) {
	if v, ok := field(row, cols, colYear); ok {
		if y, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && y > 0 {
			return int(y), true
		}
	}
	if v, ok := field(row, cols, colDate); ok {
		v = strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.Year(), true
			}
		}
	}
	return 0, false
}

// parseAge берет ведущее число ("25", "18-25", "25s"); иначе возраст неизвестен
func parseAge(v string) *float64 {
	m := leadingNumber.FindStringSubmatch(v)
	if m == nil {
		return nil
	}
	age, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &age
}
