package domain

import "time"

// Newsletter subscription statuses
const (
	SubscriptionStatusActive       = "active"
	SubscriptionStatusUnsubscribed = "unsubscribed"
)

// NewsletterSubscription represents a persisted newsletter signup.
// At most one row exists per lowercased email.
type NewsletterSubscription struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewsletterRequest is the JSON body accepted by POST /api/newsletter.
type NewsletterRequest struct {
	Email string `json:"email"`
}
