package dataset

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/jonas-p/go-shp"
	"github.com/shenikar/fatal_force/internal/models"
)

const earthRadiusKm = 6371.0088

// ShapefileOptions - имена атрибутов dbf с кодом и названием штата
type ShapefileOptions struct {
	StateField string
	NameField  string
}

// LoadStateShapes читает полигоны штатов из shapefile
func LoadStateShapes(path string, opts ShapefileOptions) ([]models.StateShape, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, NewLoadError(StageOpen, fmt.Errorf("failed to open shapefile: %w", err))
	}
	defer reader.Close()

	stateIdx, nameIdx := -1, -1
	for i, f := range reader.Fields() {
		name := strings.TrimRight(f.String(), "\x00")
		switch {
		case strings.EqualFold(name, opts.StateField):
			stateIdx = i
		case strings.EqualFold(name, opts.NameField):
			nameIdx = i
		}
	}
	if stateIdx < 0 {
		return nil, NewLoadError(StageShape, fmt.Errorf("attribute %q not found in shapefile", opts.StateField))
	}

	shapes := make([]models.StateShape, 0)
	for reader.Next() {
		n, shape := reader.Shape()
		polygon, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}

		code := models.NormalizeState(attribute(reader, n, stateIdx))
		if code == "" {
			continue
		}
		name := code
		if nameIdx >= 0 {
			if v := attribute(reader, n, nameIdx); v != "" {
				name = v
			}
		}

		shapes = append(shapes, buildShape(code, name, polygonRings(polygon)))
	}
	if err := reader.Err(); err != nil {
		return nil, NewLoadError(StageShape, fmt.Errorf("failed to read shapefile: %w", err))
	}
	if len(shapes) == 0 {
		return nil, NewLoadError(StageShape, errors.New("shapefile contains no state polygons"))
	}
	return shapes, nil
}

func attribute(reader *shp.Reader, row, field int) string {
	return strings.TrimSpace(strings.TrimRight(reader.ReadAttribute(row, field), "\x00"))
}

// polygonRings разбивает полигон на контуры. Долготы > 0 (Алеутские острова)
// сдвигаются на -360, чтобы штат не пересекал антимеридиан.
func polygonRings(p *shp.Polygon) [][][2]float64 {
	rings := make([][][2]float64, 0, len(p.Parts))
	for i, start := range p.Parts {
		end := len(p.Points)
		if i+1 < len(p.Parts) {
			end = int(p.Parts[i+1])
		}
		if int(start) >= end {
			continue
		}

		ring := make([][2]float64, 0, end-int(start))
		for _, pt := range p.Points[start:end] {
			lon := pt.X
			if lon > 0 {
				lon -= 360
			}
			ring = append(ring, [2]float64{lon, pt.Y})
		}
		rings = append(rings, ring)
	}
	return rings
}

// buildShape классифицирует контуры (по часовой = внешний) и считает
// площадь и центроид на сфере через s2.
func buildShape(code, name string, rings [][][2]float64) models.StateShape {
	shape := models.StateShape{
		State: code,
		Name:  name,
		BBox: models.BoundingBox{
			MinLon: math.Inf(1), MinLat: math.Inf(1),
			MaxLon: math.Inf(-1), MaxLat: math.Inf(-1),
		},
	}

	var centroid s2.Point
	var area float64
	for _, pts := range rings {
		pts = dedupe(pts)
		if len(pts) < 3 {
			continue
		}
		hole := planarArea(pts) > 0
		shape.Rings = append(shape.Rings, models.Ring{Points: pts, Hole: hole})

		for _, p := range pts {
			shape.BBox.MinLon = math.Min(shape.BBox.MinLon, p[0])
			shape.BBox.MaxLon = math.Max(shape.BBox.MaxLon, p[0])
			shape.BBox.MinLat = math.Min(shape.BBox.MinLat, p[1])
			shape.BBox.MaxLat = math.Max(shape.BBox.MaxLat, p[1])
		}

		loop := ringLoop(pts, hole)
		if hole {
			area -= loop.Area()
			continue
		}
		area += loop.Area()
		centroid = s2.Point{Vector: centroid.Add(loop.Centroid().Vector)}
	}

	if len(shape.Rings) == 0 {
		shape.BBox = models.BoundingBox{}
		return shape
	}

	shape.AreaKm2 = math.Max(area, 0) * earthRadiusKm * earthRadiusKm
	if centroid.Norm() > 0 {
		ll := s2.LatLngFromPoint(centroid)
		lon := ll.Lng.Degrees()
		if lon > 0 {
			lon -= 360
		}
		shape.Centroid = models.LatLon{Lat: ll.Lat.Degrees(), Lon: lon}
	} else {
		shape.Centroid = models.LatLon{
			Lat: (shape.BBox.MinLat + shape.BBox.MaxLat) / 2,
			Lon: (shape.BBox.MinLon + shape.BBox.MaxLon) / 2,
		}
	}
	return shape
}

// ringLoop строит s2-контур против часовой стрелки
func ringLoop(pts [][2]float64, ccw bool) *s2.Loop {
	points := make([]s2.Point, 0, len(pts))
	if ccw {
		for _, p := range pts {
			points = append(points, s2.PointFromLatLng(s2.LatLngFromDegrees(p[1], p[0])))
		}
	} else {
		for i := len(pts) - 1; i >= 0; i-- {
			points = append(points, s2.PointFromLatLng(s2.LatLngFromDegrees(pts[i][1], pts[i][0])))
		}
	}
	loop := s2.LoopFromPoints(points)
	loop.Normalize()
	return loop
}

// planarArea - знаковая площадь по формуле шнурков; > 0 означает обход против часовой стрелки
func planarArea(pts [][2]float64) float64 {
	var sum float64
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}

// dedupe убирает повторяющиеся подряд точки и замыкающую точку
func dedupe(pts [][2]float64) [][2]float64 {
	out := make([][2]float64, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
