package dataset

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/fatal_force/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleCSV = "id,year,state,city,race,gender,age\n" +
	"1,2015,TX,Houston,Black,Male,30\n" +
	"2,2015,CA,Fresno,White,Female,41\n"

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

type memoryCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	sets   int
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.data[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

type stringSource struct {
	name  string
	body  string
	opens int
	err   error
}

func (s *stringSource) Name() string { return s.name }

func (s *stringSource) Open(_ context.Context) (io.ReadCloser, error) {
	s.opens++
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.body)), nil
}

type fakeStore struct {
	records   []models.Record
	meta      *ImportMeta
	saved     []models.Record
	savedMeta ImportMeta
	loads     int
	saveErr   error
}

func (s *fakeStore) LastImport(_ context.Context) (*ImportMeta, error) { return s.meta, nil }

func (s *fakeStore) LoadAll(_ context.Context) ([]models.Record, error) {
	s.loads++
	return s.records, nil
}

func (s *fakeStore) SaveAll(_ context.Context, records []models.Record, meta ImportMeta) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = records
	s.savedMeta = meta
	return nil
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, simpleCSV)
	}))
	defer srv.Close()

	src := NewSource(srv.URL+"/data.csv", time.Second)
	require.IsType(t, &HTTPSource{}, src)

	body, err := src.Open(context.Background())
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	body.Close()
	assert.Equal(t, simpleCSV, string(data))

	_, err = NewHTTPSource(srv.URL+"/missing.csv", time.Second).Open(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(simpleCSV), 0o600))

	src := NewSource(path, time.Second)
	require.IsType(t, &FileSource{}, src)

	body, err := src.Open(context.Background())
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, simpleCSV, string(data))

	_, err = NewFileSource(filepath.Join(t.TempDir(), "nope.csv")).Open(context.Background())
	assert.Error(t, err)
}

func TestCachedSource_MissThenHit(t *testing.T) {
	inner := &stringSource{name: "https://example.org/fe.csv", body: simpleCSV}
	cache := &memoryCache{data: map[string][]byte{}}
	src := NewCachedSource(inner, cache, time.Hour, newTestLogger())

	body, err := src.Open(context.Background())
	require.NoError(t, err)
	data, _ := io.ReadAll(body)
	assert.Equal(t, simpleCSV, string(data))
	assert.False(t, src.FromCache())
	assert.Equal(t, 1, cache.sets)
	assert.Contains(t, cache.data, CacheKey(inner.name))

	body, err = src.Open(context.Background())
	require.NoError(t, err)
	data, _ = io.ReadAll(body)
	assert.Equal(t, simpleCSV, string(data))
	assert.True(t, src.FromCache())
	assert.Equal(t, 1, inner.opens)
}

func TestCachedSource_CacheErrorFallsBack(t *testing.T) {
	inner := &stringSource{name: "fe.csv", body: simpleCSV}
	cache := &memoryCache{data: map[string][]byte{}, getErr: errors.New("connection refused")}
	src := NewCachedSource(inner, cache, time.Hour, newTestLogger())

	body, err := src.Open(context.Background())
	require.NoError(t, err)
	data, _ := io.ReadAll(body)
	assert.Equal(t, simpleCSV, string(data))
	assert.Equal(t, 1, inner.opens)
}

func TestCachedSource_ConcurrentOpen(t *testing.T) {
	inner := &stringSource{name: "fe.csv", body: simpleCSV}
	cache := &memoryCache{data: map[string][]byte{CacheKey("fe.csv"): []byte(simpleCSV)}}
	src := NewCachedSource(inner, cache, time.Hour, newTestLogger())

	// Параллельные Open и FromCache не должны гоняться за флагом
	var wg sync.WaitGroup
	hits := make([]bool, 8)
	for i := range hits {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body, err := src.Open(context.Background())
			if err != nil {
				return
			}
			_, _ = io.ReadAll(body)
			body.Close()
			hits[i] = src.FromCache()
		}(i)
	}
	wg.Wait()

	for _, hit := range hits {
		assert.True(t, hit)
	}
	assert.Zero(t, inner.opens)
}

func TestCacheKey_Stable(t *testing.T) {
	assert.Equal(t, CacheKey("a"), CacheKey("a"))
	assert.NotEqual(t, CacheKey("a"), CacheKey("b"))
	assert.True(t, strings.HasPrefix(CacheKey("a"), "dataset:csv:"))
}

func TestLoader_FromCSV(t *testing.T) {
	src := &stringSource{name: "fe.csv", body: simpleCSV}
	loader := NewLoader(src, nil, DecodeOptions{ForceFilter: DefaultForceFilter}, newTestLogger())

	records, info, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, OriginCSV, info.Origin)
	assert.Equal(t, 2, info.Records)
	assert.Equal(t, "fe.csv", info.Source)
	assert.False(t, info.FromCache)
}

func TestLoader_PersistsIntoEmptyStore(t *testing.T) {
	src := &stringSource{name: "fe.csv", body: simpleCSV}
	store := &fakeStore{}
	loader := NewLoader(src, store, DecodeOptions{ForceFilter: DefaultForceFilter}, newTestLogger())

	records, info, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OriginCSV, info.Origin)
	assert.Equal(t, records, store.saved)
	assert.Equal(t, "fe.csv", store.savedMeta.Source)
	assert.Equal(t, DefaultForceFilter, store.savedMeta.ForceFilter)
	assert.Equal(t, 2, store.savedMeta.Records)
	assert.Equal(t, info.LoadedAt, store.savedMeta.ImportedAt)
}

func TestLoader_FromStore(t *testing.T) {
	src := &stringSource{name: "fe.csv", body: simpleCSV}
	store := &fakeStore{
		records: []models.Record{{ID: 9, Year: 2018, State: "OR"}},
		meta:    &ImportMeta{Source: "fe.csv", ForceFilter: "gunshot", Records: 1},
	}
	loader := NewLoader(src, store, DecodeOptions{ForceFilter: DefaultForceFilter}, newTestLogger())

	records, info, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, store.records, records)
	assert.Equal(t, OriginPostgres, info.Origin)
	assert.Zero(t, src.opens)
	assert.Nil(t, store.saved)
}

func TestLoader_StaleStoreIsReimported(t *testing.T) {
	tests := []struct {
		name string
		meta *ImportMeta
	}{
		{name: "other source", meta: &ImportMeta{Source: "old.csv", ForceFilter: DefaultForceFilter, Records: 1}},
		{name: "other force filter", meta: &ImportMeta{Source: "fe.csv", ForceFilter: "", Records: 1}},
		{name: "empty import", meta: &ImportMeta{Source: "fe.csv", ForceFilter: DefaultForceFilter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &stringSource{name: "fe.csv", body: simpleCSV}
			store := &fakeStore{records: []models.Record{{ID: 9, Year: 2018, State: "OR"}}, meta: tt.meta}
			loader := NewLoader(src, store, DecodeOptions{ForceFilter: DefaultForceFilter}, newTestLogger())

			records, info, err := loader.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, OriginCSV, info.Origin)
			assert.Len(t, records, 2)
			assert.Equal(t, 1, src.opens)
			assert.Zero(t, store.loads)
			assert.Equal(t, records, store.saved)
			assert.Equal(t, "fe.csv", store.savedMeta.Source)
		})
	}
}

func TestLoader_Errors(t *testing.T) {
	var loadErr *LoadError

	src := &stringSource{name: "fe.csv", err: errors.New("network down")}
	_, _, err := NewLoader(src, nil, DecodeOptions{}, newTestLogger()).Load(context.Background())
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, StageOpen, loadErr.Stage)

	src = &stringSource{name: "fe.csv", body: simpleCSV}
	store := &fakeStore{saveErr: errors.New("copy failed")}
	_, _, err = NewLoader(src, store, DecodeOptions{}, newTestLogger()).Load(context.Background())
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, StageStore, loadErr.Stage)
}
