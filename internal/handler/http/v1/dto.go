package v1

import "github.com/shenikar/fatal_force/internal/models"

// ChartQuery DTO фильтра графиков
// @Description Год и список штатов; state можно повторять или перечислять через запятую
type ChartQuery struct {
	Year   int      `form:"year" validate:"min=2000,max=2021"`
	States []string `form:"state" validate:"min=1,dive,required"`
}

// AgeQuery DTO параметров графика возраста
// @Description Пол и статистика для отметки на графике KDE
type AgeQuery struct {
	Gender string `form:"gender" validate:"oneof=Male Female"`
	Method string `form:"method" validate:"oneof=Mean Median Mode"`
}

// DashboardResponse DTO ответа с тремя графиками, зависящими от фильтра
// @Description Данные графиков по расам, городам и карты
type DashboardResponse struct {
	Filter models.Filter        `json:"filter"`
	Race   *models.RaceChart    `json:"race"`
	Cities *models.CitiesChart  `json:"cities"`
	Map    *models.ShootingsMap `json:"map"`
}

// HealthResponse DTO для проверки состояния
// @Description Состояние приложения и объем загруженных данных
type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
	Regions int    `json:"regions"`
}
