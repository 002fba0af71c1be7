// Package snapshot persists the last successfully fetched remote content.
// When the remote source later fails, the resolver prefers a stale snapshot
// over the built-in dataset, so degraded pages still show real content.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"devhub/portal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Snapshot kinds. Products are snapshotted per request shape so a light
// snapshot never has to stand in for a detailed one.
const (
	KindProductsLight    = "products_light"
	KindProductsDetailed = "products_detailed"
	KindHomepage         = "homepage"
)

type Repository interface {
	SaveProducts(ctx context.Context, kind string, products []domain.Product) error
	LoadProducts(ctx context.Context, kind string) ([]domain.Product, error)
	SaveHomepage(ctx context.Context, hp domain.HomepageContent) error
	LoadHomepage(ctx context.Context) (*domain.HomepageContent, error)
}

type pgRepository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &pgRepository{
		db: db,
	}
}

func (r *pgRepository) save(ctx context.Context, kind string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", kind, err)
	}

	query := `
	INSERT INTO content_snapshots (kind, data, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (kind)
	DO UPDATE SET data = $2, updated_at = now()`
	if _, err := r.db.Exec(ctx, query, kind, data); err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", kind, err)
	}
	return nil
}

func (r *pgRepository) load(ctx context.Context, kind string, v any) (bool, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM content_snapshots WHERE kind = $1`, kind).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s snapshot: %w", kind, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s snapshot: %w", kind, err)
	}
	return true, nil
}

func (r *pgRepository) SaveProducts(ctx context.Context, kind string, products []domain.Product) error {
	return r.save(ctx, kind, products)
}

func (r *pgRepository) LoadProducts(ctx context.Context, kind string) ([]domain.Product, error) {
	var products []domain.Product
	found, err := r.load(ctx, kind, &products)
	if err != nil || !found {
		return nil, err
	}
	return products, nil
}

func (r *pgRepository) SaveHomepage(ctx context.Context, hp domain.HomepageContent) error {
	return r.save(ctx, KindHomepage, hp)
}

func (r *pgRepository) LoadHomepage(ctx context.Context) (*domain.HomepageContent, error) {
	var hp domain.HomepageContent
	found, err := r.load(ctx, KindHomepage, &hp)
	if err != nil || !found {
		return nil, err
	}
	return &hp, nil
}
