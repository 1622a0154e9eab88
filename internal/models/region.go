package models

import "time"

// LatLon - географическая точка в градусах
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BoundingBox - прямоугольник в координатах lon/lat
type BoundingBox struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// Ring - замкнутый контур полигона; точки хранятся как (lon, lat)
type Ring struct {
	Points [][2]float64
	Hole   bool
}

// StateShape - граница штата, загруженная из shapefile
type StateShape struct {
	State    string
	Name     string
	Rings    []Ring
	BBox     BoundingBox
	Centroid LatLon
	AreaKm2  float64
}

// DatasetInfo описывает загруженный набор данных
type DatasetInfo struct {
	Source        string    `json:"source"`
	Origin        string    `json:"origin"`
	LoadedAt      time.Time `json:"loaded_at"`
	Records       int       `json:"records"`
	Skipped       int       `json:"skipped"`
	ForceFiltered int       `json:"force_filtered"`
	FromCache     bool      `json:"from_cache"`
	Regions       int       `json:"regions"`
}
