package v1

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fatal_force/internal/config"
	"github.com/shenikar/fatal_force/internal/models"
	"github.com/shenikar/fatal_force/internal/render"
	"github.com/shenikar/fatal_force/internal/service"
	"github.com/shenikar/fatal_force/web"
	"github.com/sirupsen/logrus"
)

// BasePath - префикс API, используемый страницей дашборда
const BasePath = "/api/v1"

type Handler struct {
	dashboardService service.DashboardService
	renderer         *render.Renderer
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
	page             *template.Template
}

func NewHandler(dashboardService service.DashboardService, renderer *render.Renderer, logger *logrus.Logger, cfg *config.Config) (*Handler, error) {
	page, err := web.DashboardPage()
	if err != nil {
		return nil, err
	}
	return &Handler{
		dashboardService: dashboardService,
		renderer:         renderer,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
		page:             page,
	}, nil
}

type pageData struct {
	Options      *models.DashboardOptions
	Info         *models.DatasetInfo
	FirstYear    int
	LastYear     int
	DefaultState string
	BasePath     string
}

// dashboardPage отдает HTML-страницу с элементами управления и графиками
func (h *Handler) dashboardPage(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardPage")
	ctx := c.Request.Context()

	options, err := h.dashboardService.Options(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get options from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	info, err := h.dashboardService.DatasetInfo(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get dataset info from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var buf bytes.Buffer
	err = h.page.Execute(&buf, pageData{
		Options:      options,
		Info:         info,
		FirstYear:    models.MinYear,
		LastYear:     models.MaxYear,
		DefaultState: models.OverallState,
		BasePath:     BasePath,
	})
	if err != nil {
		log.WithError(err).Error("Failed to execute page template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// @Summary Get control options
// @Description Years, states (Overall first), genders, methods and their defaults
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardOptions
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /options [get]
func (h *Handler) getOptions(c *gin.Context) {
	log := h.logger.WithField("method", "getOptions")

	options, err := h.dashboardService.Options(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get options from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, options)
}

// @Summary Get all filtered charts
// @Description Race by state, top cities and the map for one year and a set of states
// @Tags Dashboard
// @Produce json
// @Param year query int false "Year 2000-2021" default(2015)
// @Param state query []string false "State codes or Overall" collectionFormat(multi) default(Overall)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")
	filter, ok := h.bindChartQuery(c, log)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	race, err := h.dashboardService.RaceByState(ctx, filter)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	cities, err := h.dashboardService.TopCities(ctx, filter)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	m, err := h.dashboardService.ShootingsMap(ctx, filter)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Filter: filter, Race: race, Cities: cities, Map: m})
}

// @Summary Race by state
// @Description Number of fatal shootings per state and race
// @Tags Charts
// @Produce json
// @Param year query int false "Year 2000-2021" default(2015)
// @Param state query []string false "State codes or Overall" collectionFormat(multi) default(Overall)
// @Success 200 {object} models.RaceChart
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /charts/race [get]
func (h *Handler) getRaceChart(c *gin.Context) {
	log := h.logger.WithField("method", "getRaceChart")
	filter, ok := h.bindChartQuery(c, log)
	if !ok {
		return
	}

	chart, err := h.dashboardService.RaceByState(c.Request.Context(), filter)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// @Summary Race by state (PNG)
// @Tags Charts
// @Produce png
// @Param year query int false "Year 2000-2021" default(2015)
// @Param state query []string false "State codes or Overall" collectionFormat(multi) default(Overall)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 422 {object} map[string]string "Nothing to draw"
// @Router /charts/race.png [get]
func (h *Handler) getRaceChartPNG(c *gin.Context) {
	log := h.logger.WithField("method", "getRaceChartPNG")
	filter, ok := h.bindChartQuery(c, log)
	if !ok {
		return
	}

	chart, err := h.dashboardService.RaceByState(c.Request.Context(), filter)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	h.writePNG(c, log, func(w io.Writer) error { return h.renderer.RaceChart(w, chart) })
}

// @Summary Top cities
// @Description Cities with the most fatal shootings, descending
// @Tags Charts
// @Produce json
// @Param year query int false "Year 2000-2021" default(2015)
// @Param state query []string false "State codes or Overall" collectionFormat(multi) default(Overall)
// @Success 200 {object} models.CitiesChart
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /charts/cities [get]
func (h *Handler) getCitiesChart(c *gin.Context) {
	log := h.logger.WithField("method", "getCitiesChart")
	filter, ok := h.bindChartQuery(c, log)
	if !ok {
		return
	}

	chart, err := h.dashboardService.TopCities(c.Request.Context(), filter)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// @Summary Top cities (PNG)
// @Tags Charts
// @Produce png
// @Param year query int false "Year 2000-2021" default(2015)
// @Param state query []string false "State codes or Overall" collectionFormat(multi) default(Overall)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 422 {object} map[string]string "Nothing to draw"
// @Router /charts/cities.png [get]
func (h *Handler) getCitiesChartPNG(c *gin.Context) {
	log := h.logger.WithField("method", "getCitiesChartPNG")
	filter, ok := h.bindChartQuery(c, log)
	if !ok {
		return
	}

	chart, err := h.dashboardService.TopCities(c.Request.Context(), filter)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	h.writePNG(c, log, func(w io.Writer) error { return h.renderer.CitiesChart(w, chart) })
}

// @Summary Shootings map
// @Description Count of fatal shootings per state joined with state geometry metadata
// @Tags Charts
// @Produce json
// @Param year query int false "Year 2000-2021" default(2015)
// @Param state query []string false "State codes or Overall" collectionFormat(multi) default(Overall)
// @Success 200 {object} models.ShootingsMap
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /charts/map [get]
func (h *Handler) getMap(c *gin.Context) {
	log := h.logger.WithField("method", "getMap")
	filter, ok := h.bindChartQuery(c, log)
	if !ok {
		return
	}

	m, err := h.dashboardService.ShootingsMap(c.Request.Context(), filter)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Shootings map (PNG)
// @Tags Charts
// @Produce png
// @Param year query int false "Year 2000-2021" default(2015)
// @Param state query []string false "State codes or Overall" collectionFormat(multi) default(Overall)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 422 {object} map[string]string "Nothing to draw"
// @Router /charts/map.png [get]
func (h *Handler) getMapPNG(c *gin.Context) {
	log := h.logger.WithField("method", "getMapPNG")
	filter, ok := h.bindChartQuery(c, log)
	if !ok {
		return
	}

	m, err := h.dashboardService.ShootingsMap(c.Request.Context(), filter)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	h.writePNG(c, log, func(w io.Writer) error { return h.renderer.ShootingsMap(w, m) })
}

// @Summary Gender share
// @Description Share of male and female victims over the whole dataset
// @Tags Charts
// @Produce json
// @Success 200 {object} models.GenderShare
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /charts/gender [get]
func (h *Handler) getGenderShare(c *gin.Context) {
	log := h.logger.WithField("method", "getGenderShare")

	share, err := h.dashboardService.GenderShare(c.Request.Context())
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, share)
}

// @Summary Gender share (PNG)
// @Tags Charts
// @Produce png
// @Success 200 {file} binary
// @Failure 422 {object} map[string]string "Nothing to draw"
// @Router /charts/gender.png [get]
func (h *Handler) getGenderSharePNG(c *gin.Context) {
	log := h.logger.WithField("method", "getGenderSharePNG")

	share, err := h.dashboardService.GenderShare(c.Request.Context())
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	h.writePNG(c, log, func(w io.Writer) error { return h.renderer.GenderPie(w, share) })
}

// @Summary Age distribution
// @Description Age KDE for both genders with a marker at the mean, median or mode of the selected gender
// @Tags Charts
// @Produce json
// @Param gender query string false "Male or Female" default(Male)
// @Param method query string false "Mean, Median or Mode" default(Mean)
// @Success 200 {object} models.AgeDistribution
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /charts/age [get]
func (h *Handler) getAgeDistribution(c *gin.Context) {
	log := h.logger.WithField("method", "getAgeDistribution")
	q, ok := h.bindAgeQuery(c, log)
	if !ok {
		return
	}

	dist, err := h.dashboardService.AgeDistribution(c.Request.Context(), q.Gender, q.Method)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

// @Summary Age distribution (PNG)
// @Tags Charts
// @Produce png
// @Param gender query string false "Male or Female" default(Male)
// @Param method query string false "Mean, Median or Mode" default(Mean)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 422 {object} map[string]string "Nothing to draw"
// @Router /charts/age.png [get]
func (h *Handler) getAgeDistributionPNG(c *gin.Context) {
	log := h.logger.WithField("method", "getAgeDistributionPNG")
	q, ok := h.bindAgeQuery(c, log)
	if !ok {
		return
	}

	dist, err := h.dashboardService.AgeDistribution(c.Request.Context(), q.Gender, q.Method)
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	h.writePNG(c, log, func(w io.Writer) error { return h.renderer.AgeDistribution(w, dist) })
}

// @Summary Dataset info
// @Description Source, origin and size of the loaded dataset. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DatasetInfo
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Admin API disabled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/dataset [get]
func (h *Handler) getDatasetInfo(c *gin.Context) {
	log := h.logger.WithField("method", "getDatasetInfo")

	info, err := h.dashboardService.DatasetInfo(c.Request.Context())
	if err != nil {
		h.serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	info, err := h.dashboardService.DatasetInfo(c.Request.Context())
	if err != nil || info.Records == 0 {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "no data"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Records: info.Records, Regions: info.Regions})
}

// bindChartQuery разбирает и проверяет год и штаты; при ошибке ответ уже записан
func (h *Handler) bindChartQuery(c *gin.Context, log *logrus.Entry) (models.Filter, bool) {
	q := defaultChartQuery()
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return models.Filter{}, false
	}

	q = normalizeChartQuery(q)
	if err := h.validate.Struct(q); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Filter{}, false
	}
	return ChartQueryToFilter(q), true
}

func (h *Handler) bindAgeQuery(c *gin.Context, log *logrus.Entry) (AgeQuery, bool) {
	q := defaultAgeQuery()
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return AgeQuery{}, false
	}

	q = normalizeAgeQuery(q)
	if err := h.validate.Struct(q); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return AgeQuery{}, false
	}
	return q, true
}

// serviceError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) serviceError(c *gin.Context, log *logrus.Entry, err error) {
	if errors.Is(err, models.ErrInvalidFilter) {
		log.WithError(err).Warn("Invalid filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.WithError(err).Error("Service call failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// writePNG рендерит график в буфер, чтобы ошибка рендера не оставила частичный ответ
func (h *Handler) writePNG(c *gin.Context, log *logrus.Entry, draw func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		if errors.Is(err, render.ErrNoData) {
			log.Debug("Nothing to render for request")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to render chart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
