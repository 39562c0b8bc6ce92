package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// CatalogRepository persists the car make/model catalog in Postgres.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// EnsureSchema creates the catalog tables when missing. The year CHECK
// mirrors the domain invariant.
func (r *CatalogRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS car_makes (
    id          SERIAL PRIMARY KEY,
    name        VARCHAR(100) NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS car_models (
    id      SERIAL PRIMARY KEY,
    make_id INTEGER NOT NULL REFERENCES car_makes(id) ON DELETE CASCADE,
    name    VARCHAR(100) NOT NULL,
    type    VARCHAR(10) NOT NULL DEFAULT 'SUV',
    year    INTEGER NOT NULL CHECK (year BETWEEN 2000 AND 2025)
);`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure catalog schema: %w", err)
	}
	return nil
}

func (r *CatalogRepository) CountMakes(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM car_makes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count makes: %w", err)
	}
	return count, nil
}

// Seed inserts the dataset in one transaction. Models failing the year
// invariant are rejected before any row is written.
func (r *CatalogRepository) Seed(ctx context.Context, makes []ports.SeedMake) error {
	for _, m := range makes {
		for _, model := range m.Models {
			if err := model.Validate(); err != nil {
				return err
			}
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range makes {
		var makeID int
		err := tx.QueryRowContext(ctx,
			`INSERT INTO car_makes (name, description) VALUES ($1, $2) RETURNING id`,
			m.Make.Name, m.Make.Description).Scan(&makeID)
		if err != nil {
			return fmt.Errorf("insert make %q: %w", m.Make.Name, err)
		}
		for _, model := range m.Models {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO car_models (make_id, name, type, year) VALUES ($1, $2, $3, $4)`,
				makeID, model.Name, model.Type, model.Year)
			if err != nil {
				return fmt.Errorf("insert model %q: %w", model.Name, err)
			}
		}
	}

	return tx.Commit()
}

// ListEntries returns every model joined to its make.
func (r *CatalogRepository) ListEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT m.name, k.name
FROM car_models m
JOIN car_makes k ON k.id = m.make_id`)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()

	var entries []domain.CatalogEntry
	for rows.Next() {
		var e domain.CatalogEntry
		if err := rows.Scan(&e.ModelName, &e.MakeName); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
