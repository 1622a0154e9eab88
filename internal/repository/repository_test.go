package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fatal_force/internal/dataset"
	"github.com/shenikar/fatal_force/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository(t *testing.T) {
	records := []models.Record{{ID: 1, Year: 2015, State: "TX"}}
	shapes := []models.StateShape{{State: "TX"}, {State: "CA"}}
	repo := NewDashboardRepository(records, shapes, models.DatasetInfo{Source: "fe.csv", Records: 1})
	ctx := context.Background()

	gotRecords, err := repo.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, gotRecords)

	gotShapes, err := repo.StateShapes(ctx)
	require.NoError(t, err)
	assert.Len(t, gotShapes, 2)

	info, err := repo.DatasetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Regions)
	assert.Equal(t, "fe.csv", info.Source)

	info.Source = "changed"
	again, _ := repo.DatasetInfo(ctx)
	assert.Equal(t, "fe.csv", again.Source)
}

func TestRecordRepository_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	for _, file := range []string{
		"../../migrations/000001_create_fatal_encounters.up.sql",
		"../../migrations/000002_create_dataset_imports.up.sql",
	} {
		schema, err := os.ReadFile(file)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, string(schema))
		require.NoError(t, err)
	}
	_, err = pool.Exec(ctx, `TRUNCATE fatal_encounters, dataset_imports;`)
	require.NoError(t, err)

	repo := NewRecordRepository(pool)

	meta, err := repo.LastImport(ctx)
	require.NoError(t, err)
	assert.Nil(t, meta)

	age := 31.0
	records := []models.Record{
		{ID: 2, Year: 2016, State: "CA", City: "Fresno", Race: "White", Gender: "Female"},
		{ID: 1, Year: 2015, State: "TX", City: "Houston", Race: "Black", Gender: "Male", Age: &age},
	}
	importedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveAll(ctx, records, dataset.ImportMeta{
		Source: "fe.csv", ForceFilter: "Gunshot", Records: len(records), ImportedAt: importedAt,
	}))

	meta, err = repo.LastImport(ctx)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "fe.csv", meta.Source)
	assert.Equal(t, "Gunshot", meta.ForceFilter)
	assert.Equal(t, 2, meta.Records)
	assert.True(t, importedAt.Equal(meta.ImportedAt))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, records[1], loaded[0])
	assert.Nil(t, loaded[1].Age)

	require.NoError(t, repo.SaveAll(ctx, records[:1], dataset.ImportMeta{Source: "other.csv", Records: 1, ImportedAt: importedAt}))
	meta, err = repo.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "other.csv", meta.Source)
	assert.Empty(t, meta.ForceFilter)

	loaded, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestSourceCache_Redis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	cache := NewSourceCache(client)
	key := "dataset:csv:test"
	defer client.Del(ctx, key)

	val, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, cache.Set(ctx, key, []byte("id,year\n"), time.Minute))
	val, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("id,year\n"), val)
}
