// Package render рисует графики дашборда в PNG с помощью go-chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/shenikar/fatal_force/internal/models"
)

// ErrNoData возвращается, если для выбранного фильтра нечего рисовать
var ErrNoData = errors.New("no data to render")

const (
	DefaultWidth  = 1024
	DefaultHeight = 600
)

var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
	drawing.ColorFromHex("bcbd22"),
	drawing.ColorFromHex("17becf"),
}

func paletteColor(i int) drawing.Color {
	return palette[i%len(palette)]
}

// Renderer рисует графики заданного размера
type Renderer struct {
	width  int
	height int
}

// NewRenderer создает Renderer; неположительные размеры заменяются значениями по умолчанию
func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{width: width, height: height}
}

func titleStyle() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

func filterTitle(prefix string, f models.Filter) string {
	states := models.OverallState
	if !f.IsOverall() {
		states = strings.Join(f.States, ", ")
	}
	return fmt.Sprintf("%s, %d (%s)", prefix, f.Year, states)
}

// RaceChart рисует столбцы по штатам, разбитые по расам
func (r *Renderer) RaceChart(w io.Writer, c *models.RaceChart) error {
	if c == nil || c.Total == 0 {
		return ErrNoData
	}

	raceColor := make(map[string]drawing.Color, len(c.Races))
	for i, race := range c.Races {
		raceColor[race] = paletteColor(i)
	}

	byState := make(map[string][]chart.Value)
	for _, rc := range c.Counts {
		col := raceColor[rc.Race]
		byState[rc.State] = append(byState[rc.State], chart.Value{
			Label: rc.Race,
			Value: float64(rc.Count),
			Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
		})
	}

	barWidth := (r.width-120)/len(c.States) - 4
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 60 {
		barWidth = 60
	}

	bars := make([]chart.StackedBar, 0, len(c.States))
	for _, st := range c.States {
		bars = append(bars, chart.StackedBar{Name: st, Width: barWidth, Values: byState[st]})
	}

	sbc := chart.StackedBarChart{
		Title:      filterTitle("Fatal shootings by race", c.Filter),
		Width:      r.width,
		Height:     r.height,
		Background: titleStyle(),
		BarSpacing: 4,
		Bars:       bars,
	}
	if err := sbc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render race chart: %w", err)
	}
	return nil
}

// CitiesChart рисует топ городов
func (r *Renderer) CitiesChart(w io.Writer, c *models.CitiesChart) error {
	if c == nil || len(c.Cities) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(c.Cities))
	maxCount := 1
	for i, city := range c.Cities {
		col := paletteColor(i)
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s, %s", city.City, city.State),
			Value: float64(city.Count),
			Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
		})
		if city.Count > maxCount {
			maxCount = city.Count
		}
	}

	bc := chart.BarChart{
		Title:      filterTitle(fmt.Sprintf("Top %d cities", c.Limit), c.Filter),
		Width:      r.width,
		Height:     r.height,
		Background: titleStyle(),
		BarWidth:   (r.width - 120) / (len(bars) + 1),
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
		Bars: bars,
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render cities chart: %w", err)
	}
	return nil
}

// GenderPie рисует круговую диаграмму по полу
func (r *Renderer) GenderPie(w io.Writer, s *models.GenderShare) error {
	if s == nil || s.Total == 0 {
		return ErrNoData
	}

	values := make([]chart.Value, 0, len(s.Slices))
	for i, slice := range s.Slices {
		if slice.Count == 0 {
			continue
		}
		col := paletteColor(i)
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", slice.Gender, slice.Percent),
			Value: slice.Percent,
			Style: chart.Style{FillColor: col},
		})
	}

	pc := chart.PieChart{
		Title:      "Victims by gender",
		Width:      r.width,
		Height:     r.height,
		Background: titleStyle(),
		Values:     values,
	}
	if err := pc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render gender pie: %w", err)
	}
	return nil
}

// AgeDistribution рисует кривые KDE и пунктирную отметку статистики
func (r *Renderer) AgeDistribution(w io.Writer, d *models.AgeDistribution) error {
	if d == nil || len(d.Curves) == 0 {
		return ErrNoData
	}

	series := make([]chart.Series, 0, len(d.Curves)+1)
	peak := 0.0
	for i, curve := range d.Curves {
		width := 2.0
		if curve.Gender == d.Gender {
			width = 4
		}
		series = append(series, chart.ContinuousSeries{
			Name:    curve.Gender,
			XValues: curve.Ages,
			YValues: curve.Density,
			Style:   chart.Style{StrokeColor: paletteColor(i), StrokeWidth: width},
		})
		for _, v := range curve.Density {
			if v > peak {
				peak = v
			}
		}
	}

	if d.Marker != nil {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s %s: %.1f", d.Marker.Gender, strings.ToLower(d.Marker.Method), d.Marker.Age),
			XValues: []float64{d.Marker.Age, d.Marker.Age},
			YValues: []float64{0, peak},
			Style: chart.Style{
				StrokeColor:     drawing.ColorBlack,
				StrokeWidth:     2,
				StrokeDashArray: []float64{6, 4},
			},
		})
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("Age distribution of victims (%s, %s)", d.Gender, d.Method),
		Width:      r.width,
		Height:     r.height,
		Background: titleStyle(),
		XAxis:      chart.XAxis{Name: "Age"},
		YAxis:      chart.YAxis{Name: "Density (%)"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render age distribution: %w", err)
	}
	return nil
}
