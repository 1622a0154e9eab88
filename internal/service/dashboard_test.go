package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/fatal_force/internal/models"
	"github.com/shenikar/fatal_force/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDashboardService - вспомогательная функция для создания сервиса с моком репозитория
func newTestDashboardService(t *testing.T) (*dashboardService, *mocks.MockDashboardRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockDashboardRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewDashboardService(repoMock, logger, 0)
	return service.(*dashboardService), repoMock
}

func age(v float64) *float64 { return &v }

var testRecords = []models.Record{
	{ID: 1, Year: 2015, State: "CA", City: "Los Angeles", Race: "White", Gender: "Male", Age: age(30)},
	{ID: 2, Year: 2015, State: "CA", City: "Oakland", Race: "Black", Gender: "Male", Age: age(22)},
	{ID: 3, Year: 2015, State: "TX", City: "Dallas", Race: "Black", Gender: "Female", Age: age(35)},
	{ID: 4, Year: 2016, State: "TX", City: "Dallas", Race: "White", Gender: "Male", Age: age(40)},
}

func TestRaceByState_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()
	filter := models.Filter{Year: 2015, States: []string{models.OverallState}}

	// Ожидания
	repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)

	// Действие
	chart, err := service.RaceByState(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, chart.Total)
	assert.Equal(t, []string{"CA", "TX"}, chart.States)
}

func TestRaceByState_InvalidFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter models.Filter
	}{
		{name: "year too early", filter: models.Filter{Year: 1999, States: []string{models.OverallState}}},
		{name: "year too late", filter: models.Filter{Year: 2022, States: []string{models.OverallState}}},
		{name: "empty states", filter: models.Filter{Year: 2015}},
		{name: "unknown state", filter: models.Filter{Year: 2015, States: []string{"CA", "ZZ"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock := newTestDashboardService(t)
			ctx := context.Background()

			repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)

			chart, err := service.RaceByState(ctx, tt.filter)
			assert.Nil(t, chart)
			assert.True(t, errors.Is(err, models.ErrInvalidFilter))
		})
	}
}

func TestRaceByState_RepositoryError(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()
	repoErr := errors.New("boom")

	repoMock.EXPECT().Records(ctx).Return(nil, repoErr).Times(1)

	_, err := service.RaceByState(ctx, models.Filter{Year: 2015, States: []string{models.OverallState}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repoErr))
	assert.Contains(t, err.Error(), "service: could not get records")
}

func TestTopCities_LowercaseStateAccepted(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()

	repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)

	chart, err := service.TopCities(ctx, models.Filter{Year: 2015, States: []string{"ca"}})
	require.NoError(t, err)
	assert.Equal(t, 10, chart.Limit)
	require.Len(t, chart.Cities, 2)
	assert.Equal(t, "Los Angeles", chart.Cities[0].City)
}

func TestShootingsMap_Success(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()
	shapes := []models.StateShape{{State: "CA", Name: "California"}, {State: "TX", Name: "Texas"}}

	repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)
	repoMock.EXPECT().StateShapes(ctx).Return(shapes, nil).Times(1)

	m, err := service.ShootingsMap(ctx, models.Filter{Year: 2015, States: []string{models.OverallState}})
	require.NoError(t, err)
	require.Len(t, m.Regions, 2)
	assert.Equal(t, 2, m.MaxCount)
	assert.Equal(t, 1, m.Regions[1].Count)
}

func TestShootingsMap_ShapesError(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()

	repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)
	repoMock.EXPECT().StateShapes(ctx).Return(nil, errors.New("no shapes")).Times(1)

	_, err := service.ShootingsMap(ctx, models.Filter{Year: 2015, States: []string{models.OverallState}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not get state shapes")
}

func TestShootingsMap_InvalidFilterSkipsShapes(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()

	repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)
	repoMock.EXPECT().StateShapes(gomock.Any()).Times(0)

	_, err := service.ShootingsMap(ctx, models.Filter{Year: 1990, States: []string{models.OverallState}})
	assert.True(t, errors.Is(err, models.ErrInvalidFilter))
}

func TestGenderShare_Success(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()

	repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)

	share, err := service.GenderShare(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, share.Total)
	assert.InDelta(t, 75.0, share.Slices[0].Percent, 1e-9)
	assert.InDelta(t, 25.0, share.Slices[1].Percent, 1e-9)
}

func TestAgeDistribution_Success(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()

	repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)

	dist, err := service.AgeDistribution(ctx, models.GenderMale, models.MethodMedian)
	require.NoError(t, err)
	require.NotNil(t, dist.Marker)
	assert.Equal(t, 30.0, dist.Marker.Age)
	assert.Len(t, dist.Curves, 2)
}

func TestAgeDistribution_InvalidMethod(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()

	repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)

	_, err := service.AgeDistribution(ctx, models.GenderMale, "Average")
	assert.True(t, errors.Is(err, models.ErrInvalidFilter))
}

func TestOptions_Success(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()

	repoMock.EXPECT().Records(ctx).Return(testRecords, nil).Times(1)

	options, err := service.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.OverallState, options.States[0].Value)
	assert.Len(t, options.States, 3)
}

func TestDatasetInfo(t *testing.T) {
	service, repoMock := newTestDashboardService(t)
	ctx := context.Background()
	info := &models.DatasetInfo{Source: "fe.csv", Records: 4}

	repoMock.EXPECT().DatasetInfo(ctx).Return(info, nil).Times(1)

	got, err := service.DatasetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, info, got)
}
