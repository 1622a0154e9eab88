package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Source - источник CSV с записями
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// NewSource выбирает источник по строке: http(s) URL или путь к файлу
func NewSource(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout)
	}
	return NewFileSource(location)
}

// HTTPSource загружает CSV по HTTP
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource создает HTTPSource
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *HTTPSource) Name() string { return s.url }

// Open выполняет GET-запрос; любой статус кроме 2xx считается ошибкой
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch dataset: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// FileSource читает CSV с диска
type FileSource struct {
	path string
}

// NewFileSource создает FileSource
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return s.path }

func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	return f, nil
}

// BlobCache - хранилище сырого тела CSV. Get возвращает nil, nil при промахе
type BlobCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedSource кеширует тело CSV, чтобы не скачивать его при каждом запуске
type CachedSource struct {
	source Source
	cache  BlobCache
	ttl    time.Duration
	logger *logrus.Logger

	fromCache atomic.Bool
}

// NewCachedSource оборачивает источник кешем
func NewCachedSource(source Source, cache BlobCache, ttl time.Duration, logger *logrus.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *CachedSource) Name() string { return s.source.Name() }

// FromCache сообщает, было ли тело последнего завершенного Open взято из кеша.
// Безопасен для вызова из нескольких горутин.
func (s *CachedSource) FromCache() bool { return s.fromCache.Load() }

// CacheKey возвращает ключ кеша для источника
func CacheKey(name string) string {
	return "dataset:csv:" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// Open отдает тело из кеша, а при промахе читает источник и сохраняет тело в кеш.
// Ошибки кеша не прерывают загрузку.
func (s *CachedSource) Open(ctx context.Context) (io.ReadCloser, error) {
	key := CacheKey(s.source.Name())
	log := s.logger.WithFields(logrus.Fields{
		"source":    s.source.Name(),
		"cache_key": key,
	})
	s.fromCache.Store(false)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("Failed to read dataset from cache")
	} else if cached != nil {
		log.Info("Dataset served from cache")
		s.fromCache.Store(true)
		return io.NopCloser(bytes.NewReader(cached)), nil
	}

	body, err := s.source.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset body: %w", err)
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		log.WithError(err).Warn("Failed to store dataset in cache")
	} else {
		log.WithField("bytes", len(data)).Debug("Dataset stored in cache")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
