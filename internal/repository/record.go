package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/fatal_force/internal/dataset"
	"github.com/shenikar/fatal_force/internal/models"
)

var recordColumns = []string{"id", "year", "state", "city", "race", "gender", "age"}

type RecordRepository struct {
	db *pgxpool.Pool
}

func NewRecordRepository(db *pgxpool.Pool) dataset.RecordStore {
	return &RecordRepository{
		db: db,
	}
}

// LastImport возвращает описание последнего импорта или nil, если таблица пуста
func (r *RecordRepository) LastImport(ctx context.Context) (*dataset.ImportMeta, error) {
	query := `
		SELECT
			source,
			force_filter,
			records,
			imported_at
		FROM dataset_imports
		WHERE id = 1;
	`
	var meta dataset.ImportMeta
	err := r.db.QueryRow(ctx, query).Scan(&meta.Source, &meta.ForceFilter, &meta.Records, &meta.ImportedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last import: %w", err)
	}
	return &meta, nil
}

// LoadAll возвращает все записи, упорядоченные по id
func (r *RecordRepository) LoadAll(ctx context.Context) ([]models.Record, error) {
	query := `
		SELECT
			id,
			year,
			state,
			city,
			race,
			gender,
			age
		FROM fatal_encounters
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var rec models.Record
		err := rows.Scan(
			&rec.ID,
			&rec.Year,
			&rec.State,
			&rec.City,
			&rec.Race,
			&rec.Gender,
			&rec.Age,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error records iteration: %w", err)
	}
	return records, nil
}

// SaveAll заменяет содержимое таблицы переданными записями и описание импорта в одной транзакции
func (r *RecordRepository) SaveAll(ctx context.Context, records []models.Record, meta dataset.ImportMeta) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM fatal_encounters;`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"fatal_encounters"},
		recordColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{rec.ID, rec.Year, rec.State, rec.City, rec.Race, rec.Gender, rec.Age}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy records: %w", err)
	}
	if int(copied) != len(records) {
		return fmt.Errorf("copied %d of %d records", copied, len(records))
	}

	upsert := `
		INSERT INTO dataset_imports (id, source, force_filter, records, imported_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			source = EXCLUDED.source,
			force_filter = EXCLUDED.force_filter,
			records = EXCLUDED.records,
			imported_at = EXCLUDED.imported_at;
	`
	if _, err := tx.Exec(ctx, upsert, meta.Source, meta.ForceFilter, meta.Records, meta.ImportedAt); err != nil {
		return fmt.Errorf("failed to save import meta: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}
