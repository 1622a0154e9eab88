package models

// RaceCount - количество записей для пары (штат, раса)
type RaceCount struct {
	State string `json:"state"`
	Race  string `json:"race"`
	Count int    `json:"count"`
}

// RaceChart - данные столбчатой диаграммы по расам в разрезе штатов
type RaceChart struct {
	Filter Filter      `json:"filter"`
	States []string    `json:"states"`
	Races  []string    `json:"races"`
	Counts []RaceCount `json:"counts"`
	Total  int         `json:"total"`
}

// CityCount - количество записей в городе
type CityCount struct {
	City  string `json:"city"`
	State string `json:"state"`
	Count int    `json:"count"`
}

// CitiesChart - топ городов по количеству записей
type CitiesChart struct {
	Filter Filter      `json:"filter"`
	Limit  int         `json:"limit"`
	Cities []CityCount `json:"cities"`
}

// GeoRegion - полигон штата вместе с агрегатом для фильтра
type GeoRegion struct {
	State    string      `json:"state"`
	Name     string      `json:"name"`
	Count    int         `json:"count"`
	Centroid LatLon      `json:"centroid"`
	AreaKm2  float64     `json:"area_km2"`
	BBox     BoundingBox `json:"bbox"`

	Shape *StateShape `json:"-"`
}

// ShootingsMap - данные для картограммы
type ShootingsMap struct {
	Filter   Filter      `json:"filter"`
	Regions  []GeoRegion `json:"regions"`
	MaxCount int         `json:"max_count"`
	Total    int         `json:"total"`
}

// GenderSlice - доля одного пола
type GenderSlice struct {
	Gender  string  `json:"gender"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// GenderShare - данные круговой диаграммы по полу (только Male и Female)
type GenderShare struct {
	Slices []GenderSlice `json:"slices"`
	Total  int           `json:"total"`
}

// DensityCurve - оценка плотности распределения возраста для одного пола
type DensityCurve struct {
	Gender    string    `json:"gender"`
	Samples   int       `json:"samples"`
	Bandwidth float64   `json:"bandwidth"`
	Ages      []float64 `json:"ages"`
	Density   []float64 `json:"density"`
}

// AgeMarker - вертикальная отметка выбранной статистики
type AgeMarker struct {
	Gender string  `json:"gender"`
	Method string  `json:"method"`
	Age    float64 `json:"age"`
}

// AgeDistribution - данные графика KDE по возрасту
type AgeDistribution struct {
	Gender string         `json:"gender"`
	Method string         `json:"method"`
	Curves []DensityCurve `json:"curves"`
	Marker *AgeMarker     `json:"marker,omitempty"`
}

// Option - элемент выпадающего списка
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DashboardOptions - значения для элементов управления и значения по умолчанию
type DashboardOptions struct {
	Years         []int    `json:"years"`
	States        []Option `json:"states"`
	Genders       []string `json:"genders"`
	Methods       []string `json:"methods"`
	DefaultYear   int      `json:"default_year"`
	DefaultStates []string `json:"default_states"`
	DefaultGender string   `json:"default_gender"`
	DefaultMethod string   `json:"default_method"`
}
