package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/shenikar/fatal_force/internal/models"
)

const (
	mapTitleHeight  = 40
	mapLegendHeight = 50
	mapMargin       = 10
	legendSteps     = 10
)

var (
	scaleLow  = drawing.Color{R: 255, G: 245, B: 240, A: 255}
	scaleHigh = drawing.Color{R: 165, G: 15, B: 21, A: 255}
	borderCol = drawing.Color{R: 90, G: 90, B: 90, A: 255}
)

// insetStates рисуются отдельными врезками, если на карте есть континентальные штаты
var insetStates = map[string]struct{}{"AK": {}, "HI": {}}

// frame - прямоугольник холста, в который вписывается набор регионов
type frame struct {
	x, y, w, h int
	bbox       models.BoundingBox
	scaleX     float64
	scaleY     float64
	offX       int
	offY       int
}

func newFrame(x, y, w, h int, regions []models.GeoRegion) frame {
	f := frame{x: x, y: y, w: w, h: h, bbox: unionBBox(regions)}

	midLat := (f.bbox.MinLat + f.bbox.MaxLat) / 2
	kx := math.Cos(midLat * math.Pi / 180)
	spanX := (f.bbox.MaxLon - f.bbox.MinLon) * kx
	spanY := f.bbox.MaxLat - f.bbox.MinLat
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	scale := math.Min(float64(w)/spanX, float64(h)/spanY)
	f.scaleX = scale * kx
	f.scaleY = scale
	f.offX = x + (w-int(spanX*scale))/2
	f.offY = y + (h-int(spanY*scale))/2
	return f
}

func (f frame) project(lon, lat float64) (int, int) {
	px := f.offX + int(math.Round((lon-f.bbox.MinLon)*f.scaleX))
	py := f.offY + int(math.Round((f.bbox.MaxLat-lat)*f.scaleY))
	return px, py
}

func unionBBox(regions []models.GeoRegion) models.BoundingBox {
	box := models.BoundingBox{MinLon: math.Inf(1), MinLat: math.Inf(1), MaxLon: math.Inf(-1), MaxLat: math.Inf(-1)}
	for _, r := range regions {
		box.MinLon = math.Min(box.MinLon, r.BBox.MinLon)
		box.MinLat = math.Min(box.MinLat, r.BBox.MinLat)
		box.MaxLon = math.Max(box.MaxLon, r.BBox.MaxLon)
		box.MaxLat = math.Max(box.MaxLat, r.BBox.MaxLat)
	}
	return box
}

// scaleColor возвращает цвет шкалы белый-красный для доли t в [0, 1]
func scaleColor(t float64) drawing.Color {
	t = math.Max(0, math.Min(1, t))
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return drawing.Color{
		R: lerp(scaleLow.R, scaleHigh.R),
		G: lerp(scaleLow.G, scaleHigh.G),
		B: lerp(scaleLow.B, scaleHigh.B),
		A: 255,
	}
}

// ShootingsMap рисует картограмму: цвет штата зависит от числа записей
func (r *Renderer) ShootingsMap(w io.Writer, m *models.ShootingsMap) error {
	if m == nil || len(m.Regions) == 0 {
		return ErrNoData
	}

	rr, err := chart.PNG(r.width, r.height)
	if err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("render map: load font: %w", err)
	}
	rr.SetFont(font)

	fillRect(rr, 0, 0, r.width, r.height, drawing.ColorWhite)

	areaX, areaY := mapMargin, mapTitleHeight
	areaW := r.width - 2*mapMargin
	areaH := r.height - mapTitleHeight - mapLegendHeight

	main, insets := splitInsets(m.Regions)
	if len(main) == 0 {
		main, insets = insets, nil
	}

	drawRegions(rr, newFrame(areaX, areaY, areaW, areaH, main), main, m.MaxCount)
	for _, region := range insets {
		var fx, fy, fw, fh int
		switch region.State {
		case "AK":
			fx, fy, fw, fh = areaX, areaY+areaH*65/100, areaW*22/100, areaH*35/100
		default:
			fx, fy, fw, fh = areaX+areaW*23/100, areaY+areaH*75/100, areaW*15/100, areaH*25/100
		}
		one := []models.GeoRegion{region}
		drawRegions(rr, newFrame(fx, fy, fw, fh, one), one, m.MaxCount)
	}

	rr.SetFontColor(drawing.ColorBlack)
	rr.SetFontSize(16)
	title := filterTitle("Fatal shootings by state", m.Filter)
	tb := rr.MeasureText(title)
	rr.Text(title, (r.width-tb.Width())/2, mapTitleHeight-12)

	drawLegend(rr, r.width, r.height, m.MaxCount)

	if err := rr.Save(w); err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	return nil
}

// splitInsets отделяет Аляску и Гавайи от остальных штатов
func splitInsets(regions []models.GeoRegion) (main, insets []models.GeoRegion) {
	for _, region := range regions {
		if region.Shape == nil {
			continue
		}
		if _, ok := insetStates[region.State]; ok {
			insets = append(insets, region)
			continue
		}
		main = append(main, region)
	}
	return main, insets
}

func drawRegions(rr chart.Renderer, f frame, regions []models.GeoRegion, maxCount int) {
	for _, region := range regions {
		t := 0.0
		if maxCount > 0 {
			t = float64(region.Count) / float64(maxCount)
		}
		col := scaleColor(t)
		for _, ring := range region.Shape.Rings {
			fill := col
			if ring.Hole {
				fill = drawing.ColorWhite
			}
			drawRing(rr, f, ring, fill)
		}
	}
}

func drawRing(rr chart.Renderer, f frame, ring models.Ring, fill drawing.Color) {
	if len(ring.Points) < 3 {
		return
	}
	rr.SetFillColor(fill)
	rr.SetStrokeColor(borderCol)
	rr.SetStrokeWidth(0.5)

	x, y := f.project(ring.Points[0][0], ring.Points[0][1])
	rr.MoveTo(x, y)
	for _, p := range ring.Points[1:] {
		x, y = f.project(p[0], p[1])
		rr.LineTo(x, y)
	}
	rr.Close()
	rr.FillStroke()
}

func fillRect(rr chart.Renderer, x, y, w, h int, col drawing.Color) {
	rr.SetFillColor(col)
	rr.SetStrokeColor(col)
	rr.SetStrokeWidth(0)
	rr.MoveTo(x, y)
	rr.LineTo(x+w, y)
	rr.LineTo(x+w, y+h)
	rr.LineTo(x, y+h)
	rr.Close()
	rr.Fill()
}

func drawLegend(rr chart.Renderer, width, height, maxCount int) {
	barW := width / 3
	barH := 14
	x0 := (width - barW) / 2
	y0 := height - mapLegendHeight + 10
	step := barW / legendSteps

	for i := 0; i < legendSteps; i++ {
		fillRect(rr, x0+i*step, y0, step, barH, scaleColor(float64(i)/float64(legendSteps-1)))
	}

	rr.SetFontColor(drawing.ColorBlack)
	rr.SetFontSize(10)
	rr.Text("0", x0, y0+barH+14)
	maxLabel := strconv.Itoa(maxCount)
	tb := rr.MeasureText(maxLabel)
	rr.Text(maxLabel, x0+step*legendSteps-tb.Width(), y0+barH+14)
}
