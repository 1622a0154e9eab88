package repository

import (
	"context"

	"github.com/shenikar/fatal_force/internal/models"
	"github.com/shenikar/fatal_force/internal/service"
)

// DashboardRepository держит загруженный при старте набор данных.
// Данные только читаются, поэтому синхронизация не нужна.
type DashboardRepository struct {
	records []models.Record
	shapes  []models.StateShape
	info    models.DatasetInfo
}

func NewDashboardRepository(records []models.Record, shapes []models.StateShape, info models.DatasetInfo) service.DashboardRepository {
	info.Regions = len(shapes)
	return &DashboardRepository{
		records: records,
		shapes:  shapes,
		info:    info,
	}
}

func (r *DashboardRepository) Records(_ context.Context) ([]models.Record, error) {
	return r.records, nil
}

func (r *DashboardRepository) StateShapes(_ context.Context) ([]models.StateShape, error) {
	return r.shapes, nil
}

func (r *DashboardRepository) DatasetInfo(_ context.Context) (*models.DatasetInfo, error) {
	info := r.info
	return &info, nil
}
