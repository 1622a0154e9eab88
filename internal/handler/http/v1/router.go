package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterPage регистрирует HTML-страницу дашборда
func (h *Handler) RegisterPage(router gin.IRoutes) {
	router.GET("/", h.dashboardPage)
}

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/options", h.getOptions)
	api.GET("/dashboard", h.getDashboard)

	// Графики: JSON с данными и PNG с готовым изображением
	charts := api.Group("/charts")
	{
		charts.GET("/race", h.getRaceChart)
		charts.GET("/race.png", h.getRaceChartPNG)
		charts.GET("/cities", h.getCitiesChart)
		charts.GET("/cities.png", h.getCitiesChartPNG)
		charts.GET("/map", h.getMap)
		charts.GET("/map.png", h.getMapPNG)
		charts.GET("/gender", h.getGenderShare)
		charts.GET("/gender.png", h.getGenderSharePNG)
		charts.GET("/age", h.getAgeDistribution)
		charts.GET("/age.png", h.getAgeDistributionPNG)
	}

	// Служебные маршруты под API-ключом
	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/dataset", h.getDatasetInfo)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
