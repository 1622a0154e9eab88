package dataset

import (
	"context"
	"strings"
	"time"

	"github.com/shenikar/fatal_force/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	OriginCSV      = "csv"
	OriginPostgres = "postgres"
)

// ImportMeta описывает, откуда и с каким фильтром были импортированы записи хранилища
type ImportMeta struct {
	Source      string
	ForceFilter string
	Records     int
	ImportedAt  time.Time
}

// RecordStore - постоянное хранилище записей.
// LastImport возвращает nil, nil, если импорта еще не было.
type RecordStore interface {
	LastImport(ctx context.Context) (*ImportMeta, error)
	LoadAll(ctx context.Context) ([]models.Record, error)
	SaveAll(ctx context.Context, records []models.Record, meta ImportMeta) error
}

// Loader загружает записи при старте: из хранилища, если оно заполнено из того же
// источника с тем же фильтром силы, иначе из CSV с повторным сохранением в хранилище
type Loader struct {
	source Source
	store  RecordStore
	opts   DecodeOptions
	logger *logrus.Logger
}

// NewLoader создает Loader; store может быть nil
func NewLoader(source Source, store RecordStore, opts DecodeOptions, logger *logrus.Logger) *Loader {
	return &Loader{
		source: source,
		store:  store,
		opts:   opts,
		logger: logger,
	}
}

// Load возвращает полный набор записей и описание загрузки
func (l *Loader) Load(ctx context.Context) ([]models.Record, *models.DatasetInfo, error) {
	log := l.logger.WithFields(logrus.Fields{
		"component": "loader",
		"source":    l.source.Name(),
	})

	if l.store != nil {
		meta, err := l.store.LastImport(ctx)
		if err != nil {
			return nil, nil, NewLoadError(StageStore, err)
		}
		switch {
		case meta == nil || meta.Records == 0:
			log.Info("Record store is empty")
		case !l.matches(meta):
			log.WithFields(logrus.Fields{
				"stored_source":       meta.Source,
				"stored_force_filter": meta.ForceFilter,
				"force_filter":        l.opts.ForceFilter,
			}).Info("Record store was imported with other settings, reimporting")
		default:
			log.WithField("count", meta.Records).Info("Loading records from record store")
			records, err := l.store.LoadAll(ctx)
			if err != nil {
				return nil, nil, NewLoadError(StageStore, err)
			}
			return records, &models.DatasetInfo{
				Source:   meta.Source,
				Origin:   OriginPostgres,
				LoadedAt: time.Now(),
				Records:  len(records),
			}, nil
		}
	}

	log.Info("Loading records from CSV source")
	body, err := l.source.Open(ctx)
	if err != nil {
		return nil, nil, NewLoadError(StageOpen, err)
	}
	defer body.Close()

	records, report, err := Decode(body, l.opts)
	if err != nil {
		return nil, nil, err
	}

	info := &models.DatasetInfo{
		Source:        l.source.Name(),
		Origin:        OriginCSV,
		LoadedAt:      time.Now(),
		Records:       len(records),
		Skipped:       report.Skipped,
		ForceFiltered: report.ForceFiltered,
	}
	if cached, ok := l.source.(interface{ FromCache() bool }); ok {
		info.FromCache = cached.FromCache()
	}
	log.WithFields(logrus.Fields{
		"rows":           report.Rows,
		"records":        len(records),
		"skipped":        report.Skipped,
		"force_filtered": report.ForceFiltered,
	}).Info("CSV decoded")

	if l.store != nil {
		meta := ImportMeta{
			Source:      l.source.Name(),
			ForceFilter: l.opts.ForceFilter,
			Records:     len(records),
			ImportedAt:  info.LoadedAt,
		}
		if err := l.store.SaveAll(ctx, records, meta); err != nil {
			return nil, nil, NewLoadError(StageStore, err)
		}
		log.WithField("count", len(records)).Info("Records persisted to record store")
	}
	return records, info, nil
}

func (l *Loader) matches(meta *ImportMeta) bool {
	return meta.Source == l.source.Name() && strings.EqualFold(meta.ForceFilter, l.opts.ForceFilter)
}
