package service

import (
	"context"

	"portfolio-api/internal/domain"
)

// ContactService owns the contact-form submission pipeline after
// validation: persist the record, then attempt a best-effort notification.
type ContactService interface {
	Submit(ctx context.Context, request *domain.ContactRequest) (*domain.ContactSubmission, error)
}

// SubscribeOutcome distinguishes a first-time signup from a reactivation.
type SubscribeOutcome string

const (
	OutcomeSubscribed  SubscribeOutcome = "subscribed"
	OutcomeReactivated SubscribeOutcome = "reactivated"
)

// NewsletterService idempotently ensures an active subscription exists for
// an email address. An already-active subscription is a request error.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (SubscribeOutcome, error)
}
