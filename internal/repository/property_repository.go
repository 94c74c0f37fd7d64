package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/estate-service/internal/domain"
)

// FeedLimit caps every property listing. It is a hard cap, not a page
// boundary; there is no pagination cursor.
const FeedLimit = 20

// PropertyFilter captures listing parameters.
type PropertyFilter struct {
	OwnerID *string
	Limit   int
}

// PropertyRepository encapsulates property persistence.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]domain.Property, error)
	ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
}

type propertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository instantiates repository.
func NewPropertyRepository(pool *pgxpool.Pool) PropertyRepository {
	return &propertyRepository{pool: pool}
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	const query = `
        INSERT INTO properties (id, owner_id, title, city, price, image_url)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		property.ID,
		property.OwnerID,
		property.Title,
		property.City,
		property.Price,
		property.ImageURL,
	).Scan(&property.CreatedAt)
}

// Update persists mutable fields only. owner_id is deliberately absent
// from the statement so ownership can never change post-creation.
func (r *propertyRepository) Update(ctx context.Context, property *domain.Property) error {
	const query = `
        UPDATE properties SET title=$1, city=$2, price=$3, image_url=$4
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		property.Title,
		property.City,
		property.Price,
		property.ImageURL,
		property.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the row; the store cascades to its inquiries.
func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	const query = `
        SELECT id, owner_id, title, city, price, image_url, created_at
        FROM properties WHERE id=$1`
	var property domain.Property
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&property.ID,
		&property.OwnerID,
		&property.Title,
		&property.City,
		&property.Price,
		&property.ImageURL,
		&property.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) List(ctx context.Context, filter PropertyFilter) ([]domain.Property, error) {
	base := `SELECT id, owner_id, title, city, price, image_url, created_at
             FROM properties`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		clauses = append(clauses, fmt.Sprintf("owner_id=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 || limit > FeedLimit {
		limit = FeedLimit
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d`,
		base, strings.Join(clauses, " AND "), limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProperties(rows)
}

func (r *propertyRepository) ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM properties WHERE owner_id=$1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanProperties(rows pgx.Rows) ([]domain.Property, error) {
	var result []domain.Property
	for rows.Next() {
		var property domain.Property
		if err := rows.Scan(
			&property.ID,
			&property.OwnerID,
			&property.Title,
			&property.City,
			&property.Price,
			&property.ImageURL,
			&property.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, property)
	}
	return result, rows.Err()
}
