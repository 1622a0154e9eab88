package service

import (
	"context"
	"fmt"

	"github.com/shenikar/fatal_force/internal/aggregate"
	"github.com/shenikar/fatal_force/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

// DashboardRepository определяет контракт доступа к загруженному набору данных
type DashboardRepository interface {
	Records(ctx context.Context) ([]models.Record, error)
	StateShapes(ctx context.Context) ([]models.StateShape, error)
	DatasetInfo(ctx context.Context) (*models.DatasetInfo, error)
}

// DashboardService определяет контракт построения данных для графиков
type DashboardService interface {
	Options(ctx context.Context) (*models.DashboardOptions, error)
	RaceByState(ctx context.Context, filter models.Filter) (*models.RaceChart, error)
	TopCities(ctx context.Context, filter models.Filter) (*models.CitiesChart, error)
	ShootingsMap(ctx context.Context, filter models.Filter) (*models.ShootingsMap, error)
	GenderShare(ctx context.Context) (*models.GenderShare, error)
	AgeDistribution(ctx context.Context, gender, method string) (*models.AgeDistribution, error)
	DatasetInfo(ctx context.Context) (*models.DatasetInfo, error)
}

type dashboardService struct {
	repo        DashboardRepository
	logger      *logrus.Logger
	citiesLimit int
}

func NewDashboardService(repo DashboardRepository, logger *logrus.Logger, citiesLimit int) DashboardService {
	if citiesLimit <= 0 {
		citiesLimit = aggregate.DefaultCitiesLimit
	}
	return &dashboardService{
		repo:        repo,
		logger:      logger,
		citiesLimit: citiesLimit,
	}
}

// Options возвращает значения для элементов управления
func (s *dashboardService) Options(ctx context.Context) (*models.DashboardOptions, error) {
	records, err := s.repo.Records(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "Options").Error("Failed to get records from repository")
		return nil, fmt.Errorf("service: could not get records: %w", err)
	}
	return aggregate.Options(records), nil
}

// RaceByState считает записи по штатам и расам для фильтра
func (s *dashboardService) RaceByState(ctx context.Context, filter models.Filter) (*models.RaceChart, error) {
	log := s.filterLogger("RaceByState", filter)

	records, err := s.validatedRecords(ctx, log, filter)
	if err != nil {
		return nil, err
	}

	chart := aggregate.RaceByState(records, filter)
	log.WithField("total", chart.Total).Debug("Race chart built")
	return chart, nil
}

// TopCities возвращает топ городов для фильтра
func (s *dashboardService) TopCities(ctx context.Context, filter models.Filter) (*models.CitiesChart, error) {
	log := s.filterLogger("TopCities", filter)

	records, err := s.validatedRecords(ctx, log, filter)
	if err != nil {
		return nil, err
	}

	chart := aggregate.TopCities(records, filter, s.citiesLimit)
	log.WithField("cities", len(chart.Cities)).Debug("Cities chart built")
	return chart, nil
}

// ShootingsMap считает записи по штатам и соединяет их с границами
func (s *dashboardService) ShootingsMap(ctx context.Context, filter models.Filter) (*models.ShootingsMap, error) {
	log := s.filterLogger("ShootingsMap", filter)

	records, err := s.validatedRecords(ctx, log, filter)
	if err != nil {
		return nil, err
	}
	shapes, err := s.repo.StateShapes(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get state shapes from repository")
		return nil, fmt.Errorf("service: could not get state shapes: %w", err)
	}

	m := aggregate.ShootingsByState(records, shapes, filter)
	log.WithFields(logrus.Fields{
		"regions":   len(m.Regions),
		"max_count": m.MaxCount,
	}).Debug("Map built")
	return m, nil
}

// GenderShare возвращает доли мужчин и женщин по всему набору
func (s *dashboardService) GenderShare(ctx context.Context) (*models.GenderShare, error) {
	records, err := s.repo.Records(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "GenderShare").Error("Failed to get records from repository")
		return nil, fmt.Errorf("service: could not get records: %w", err)
	}
	return aggregate.GenderShare(records), nil
}

// AgeDistribution строит KDE возраста и отметку статистики
func (s *dashboardService) AgeDistribution(ctx context.Context, gender, method string) (*models.AgeDistribution, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "AgeDistribution",
		"gender":  gender,
		"stat":    method,
	})

	records, err := s.repo.Records(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get records from repository")
		return nil, fmt.Errorf("service: could not get records: %w", err)
	}

	dist, err := aggregate.AgeDistribution(records, gender, method)
	if err != nil {
		log.WithError(err).Warn("Invalid age distribution parameters")
		return nil, err
	}
	return dist, nil
}

// DatasetInfo возвращает описание загруженного набора
func (s *dashboardService) DatasetInfo(ctx context.Context) (*models.DatasetInfo, error) {
	info, err := s.repo.DatasetInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get dataset info: %w", err)
	}
	return info, nil
}

func (s *dashboardService) filterLogger(method string, filter models.Filter) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  method,
		"year":    filter.Year,
		"states":  filter.States,
	})
}

// validatedRecords проверяет фильтр и возвращает записи
func (s *dashboardService) validatedRecords(ctx context.Context, log *logrus.Entry, filter models.Filter) ([]models.Record, error) {
	records, err := s.repo.Records(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get records from repository")
		return nil, fmt.Errorf("service: could not get records: %w", err)
	}
	if err := validateFilter(filter, records); err != nil {
		log.WithError(err).Warn("Filter validation failed")
		return nil, err
	}
	return records, nil
}

func validateFilter(filter models.Filter, records []models.Record) error {
	if filter.Year < models.MinYear || filter.Year > models.MaxYear {
		return fmt.Errorf("%w: year %d is outside %d-%d", models.ErrInvalidFilter, filter.Year, models.MinYear, models.MaxYear)
	}
	if len(filter.States) == 0 {
		return fmt.Errorf("%w: state list is empty", models.ErrInvalidFilter)
	}
	if filter.IsOverall() {
		return nil
	}

	known := make(map[string]struct{})
	for _, r := range records {
		known[r.State] = struct{}{}
	}
	for _, st := range filter.States {
		if _, ok := known[models.NormalizeState(st)]; !ok {
			return fmt.Errorf("%w: unknown state %q", models.ErrInvalidFilter, st)
		}
	}
	return nil
}
