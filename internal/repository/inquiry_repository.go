package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/estate-service/internal/domain"
)

// InquiryRepository encapsulates inquiry persistence. Every read joins
// the owning property so callers always see the property owner next to
// the sender.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Inquiry, error)
	ListBySender(ctx context.Context, senderID string) ([]domain.Inquiry, error)
	ListBySenderOrProperties(ctx context.Context, senderID string, propertyIDs []string) ([]domain.Inquiry, error)
}

type inquiryRepository struct {
	pool *pgxpool.Pool
}

// NewInquiryRepository instantiates repository.
func NewInquiryRepository(pool *pgxpool.Pool) InquiryRepository {
	return &inquiryRepository{pool: pool}
}

const inquirySelect = `
        SELECT i.id, i.property_id, i.sender_id, i.message, i.created_at, p.owner_id
        FROM inquiries i
        JOIN properties p ON p.id = i.property_id`

func (r *inquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	const query = `
        INSERT INTO inquiries (id, property_id, sender_id, message)
        VALUES ($1,$2,$3,$4)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		inquiry.ID,
		inquiry.PropertyID,
		inquiry.SenderID,
		inquiry.Message,
	).Scan(&inquiry.CreatedAt)
}

func (r *inquiryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM inquiries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	query := inquirySelect + ` WHERE i.id=$1`
	var inquiry domain.Inquiry
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&inquiry.ID,
		&inquiry.PropertyID,
		&inquiry.SenderID,
		&inquiry.Message,
		&inquiry.CreatedAt,
		&inquiry.PropertyOwnerID,
	); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Inquiry, error) {
	query := inquirySelect + ` WHERE i.property_id=$1 ORDER BY i.created_at DESC`
	return r.list(ctx, query, propertyID)
}

func (r *inquiryRepository) ListBySender(ctx context.Context, senderID string) ([]domain.Inquiry, error) {
	query := inquirySelect + ` WHERE i.sender_id=$1 ORDER BY i.created_at DESC`
	return r.list(ctx, query, senderID)
}

// ListBySenderOrProperties returns inquiries sent by senderID plus
// inquiries on the given properties. An empty propertyIDs set must
// match no property rows, so that branch drops the membership clause
// entirely instead of formatting an empty IN-list.
func (r *inquiryRepository) ListBySenderOrProperties(ctx context.Context, senderID string, propertyIDs []string) ([]domain.Inquiry, error) {
	if len(propertyIDs) == 0 {
		return r.ListBySender(ctx, senderID)
	}
	query := inquirySelect + ` WHERE (i.sender_id=$1 OR i.property_id = ANY($2::uuid[]))
        ORDER BY i.created_at DESC`
	return r.list(ctx, query, senderID, propertyIDs)
}

func (r *inquiryRepository) list(ctx context.Context, query string, args ...any) ([]domain.Inquiry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInquiries(rows)
}

func scanInquiries(rows pgx.Rows) ([]domain.Inquiry, error) {
	var result []domain.Inquiry
	for rows.Next() {
		var inquiry domain.Inquiry
		if err := rows.Scan(
			&inquiry.ID,
			&inquiry.PropertyID,
			&inquiry.SenderID,
			&inquiry.Message,
			&inquiry.CreatedAt,
			&inquiry.PropertyOwnerID,
		); err != nil {
			return nil, err
		}
		result = append(result, inquiry)
	}
	return result, rows.Err()
}
