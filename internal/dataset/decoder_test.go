package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fatalEncountersCSV = "\ufeffUnique ID,Name,Age,Gender,Race,Date of injury resulting in death (month/day/year),Location of death (city),State,Highest level of force\n" +
	"101,John Doe,25,Male,European-American/White,01/15/2015,Houston,TX,Gunshot\n" +
	"102,Jane Roe,18-25,female,Hispanic/Latino,2/3/2016,Fresno,ca,Gunshot\n" +
	"103,Jim Poe,,Male,African-American/Black,03/04/2015,Chicago,IL,Vehicle\n" +
	"104,No State,40,Male,Race unspecified,03/04/2015,Nowhere,,Gunshot\n" +
	"105,Bad Date,40,Male,Race unspecified,someday,Austin,TX,Gunshot\n" +
	"101,Duplicate,25,Male,European-American/White,01/15/2015,Houston,TX,Gunshot\n" +
	"106,Kid,0.5,Male,Asian/Pacific Islander,2021-07-01,Honolulu,HI,gunshot\n"

func TestDecode_FatalEncountersLayout(t *testing.T) {
	records, report, err := Decode(strings.NewReader(fatalEncountersCSV), DecodeOptions{ForceFilter: DefaultForceFilter})
	require.NoError(t, err)

	assert.Equal(t, 7, report.Rows)
	assert.Equal(t, 1, report.ForceFiltered)
	assert.Equal(t, 3, report.Skipped)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, int64(101), first.ID)
	assert.Equal(t, 2015, first.Year)
	assert.Equal(t, "TX", first.State)
	assert.Equal(t, "Houston", first.City)
	assert.Equal(t, "Male", first.Gender)
	require.NotNil(t, first.Age)
	assert.Equal(t, 25.0, *first.Age)

	second := records[1]
	assert.Equal(t, "CA", second.State)
	assert.Equal(t, 2016, second.Year)
	assert.Equal(t, "Female", second.Gender)
	assert.Equal(t, 18.0, *second.Age)

	third := records[2]
	assert.Equal(t, 2021, third.Year)
	assert.Equal(t, 0.5, *third.Age)
}

func TestDecode_NoForceFilter(t *testing.T) {
	records, report, err := Decode(strings.NewReader(fatalEncountersCSV), DecodeOptions{})
	require.NoError(t, err)

	assert.Zero(t, report.ForceFiltered)
	require.Len(t, records, 4)
	assert.Equal(t, "IL", records[2].State)
	assert.Nil(t, records[2].Age)
}

func TestDecode_SimpleLayout(t *testing.T) {
	csv := "id,year,state,city,race,gender,age\n" +
		"1,2019,ny,New York,Black,Male,unknown\n" +
		"x,2020.0,NY,Buffalo,White,Female,33\n"

	records, report, err := Decode(strings.NewReader(csv), DecodeOptions{ForceFilter: DefaultForceFilter})
	require.NoError(t, err)
	assert.Zero(t, report.Skipped)
	require.Len(t, records, 2)

	assert.Equal(t, int64(1), records[0].ID)
	assert.Nil(t, records[0].Age)
	assert.Equal(t, int64(-2), records[1].ID, "unparseable id falls back to the negated row number")
	assert.Equal(t, 2020, records[1].Year)
}

func TestDecode_FallbackIDDoesNotClashWithRealID(t *testing.T) {
	csv := "id,year,state,city,race,gender,age\n" +
		"2,2015,CA,Fresno,White,Male,30\n" +
		",2015,TX,Dallas,Black,Female,35\n" +
		"2,2016,CA,Fresno,White,Male,31\n"

	records, report, err := Decode(strings.NewReader(csv), DecodeOptions{})
	require.NoError(t, err)

	// строка без id на позиции 2 сохраняется, настоящий дубликат id=2 отбрасывается
	require.Len(t, records, 2)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, int64(2), records[0].ID)
	assert.Equal(t, "TX", records[1].State)
	assert.Equal(t, int64(-2), records[1].ID)
}

func TestDecode_MissingColumns(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{name: "no state", csv: "id,year,city\n1,2015,Austin\n"},
		{name: "no year or date", csv: "id,state,city\n1,TX,Austin\n"},
		{name: "empty input", csv: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(strings.NewReader(tt.csv), DecodeOptions{})
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, StageHeader, loadErr.Stage)
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{in: "25", want: ptr(25)},
		{in: " 40s", want: ptr(40)},
		{in: "18-25", want: ptr(18)},
		{in: "0.25", want: ptr(0.25)},
		{in: "", want: nil},
		{in: "Unknown", want: nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseAge(tt.in), tt.in)
	}
}

func ptr(v float64) *float64 { return &v }
