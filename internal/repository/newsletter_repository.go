package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"portfolio-api/internal/domain"
	"portfolio-api/pkg/database"
)

// newsletterRepository handles newsletter subscription persistence with PostgreSQL
type newsletterRepository struct {
	db *database.PostgresDB
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *database.PostgresDB) NewsletterRepository {
	return &newsletterRepository{
		db: db,
	}
}

// FindByEmail retrieves the subscription for an email address. Callers are
// expected to lowercase the email first.
func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*domain.NewsletterSubscription, error) {
	query := `
		SELECT id, email, status, created_at, updated_at
		FROM newsletter_subscribers
		WHERE email = $1
	`

	subscription := &domain.NewsletterSubscription{}
	err := r.db.Pool.QueryRow(ctx, query, email).Scan(
		&subscription.ID,
		&subscription.Email,
		&subscription.Status,
		&subscription.CreatedAt,
		&subscription.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No subscription exists yet, return nil without error
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find newsletter subscription: %w", err)
	}

	return subscription, nil
}

// Create inserts a new subscription and populates the database-assigned fields.
func (r *newsletterRepository) Create(ctx context.Context, subscription *domain.NewsletterSubscription) error {
	query := `
		INSERT INTO newsletter_subscribers (email, status)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		subscription.Email,
		subscription.Status,
	).Scan(&subscription.ID, &subscription.CreatedAt, &subscription.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create newsletter subscription: %w", err)
	}

	return nil
}

// UpdateStatus sets the status of an existing subscription by id.
func (r *newsletterRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE newsletter_subscribers
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := r.db.Pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update newsletter subscription status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("newsletter subscription %d not found", id)
	}

	return nil
}
