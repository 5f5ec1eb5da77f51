package repository

import (
	"context"

	"portfolio-api/internal/domain"
)

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	// Create inserts a submission and fills in ID and CreatedAt.
	Create(ctx context.Context, submission *domain.ContactSubmission) error
}

// NewsletterRepository persists newsletter subscriptions.
type NewsletterRepository interface {
	// FindByEmail returns the subscription for a lowercased email, or
	// (nil, nil) when no row exists.
	FindByEmail(ctx context.Context, email string) (*domain.NewsletterSubscription, error)
	// Create inserts a subscription and fills in ID and CreatedAt.
	Create(ctx context.Context, subscription *domain.NewsletterSubscription) error
	// UpdateStatus sets the status of an existing subscription.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
