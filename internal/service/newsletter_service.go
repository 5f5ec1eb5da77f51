package service

import (
	"context"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
	apperrors "portfolio-api/pkg/errors"
	"portfolio-api/pkg/logger"
)

// AlreadySubscribedMessage is returned when the email already has an
// active subscription.
const AlreadySubscribedMessage = "This email is already subscribed"

// newsletterService implements the insert-or-reactivate subscription flow
type newsletterService struct {
	repo repository.NewsletterRepository
	log  *logger.Logger
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(repo repository.NewsletterRepository, log *logger.Logger) NewsletterService {
	return &newsletterService{
		repo: repo,
		log:  log,
	}
}

// Subscribe looks up the (lowercased) email and either inserts a new
// active subscription, reactivates an unsubscribed one, or rejects an
// already-active one. The unique index on email backs up the
// lookup-before-insert against races.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (SubscribeOutcome, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.log.WithError(err).Error("Failed to look up newsletter subscription")
		return "", apperrors.NewInternalError(GenericErrorMessage, err)
	}

	if existing == nil {
		subscription := &domain.NewsletterSubscription{
			Email:  email,
			Status: domain.SubscriptionStatusActive,
		}
		if err := s.repo.Create(ctx, subscription); err != nil {
			s.log.WithError(err).Error("Failed to create newsletter subscription")
			return "", apperrors.NewInternalError(GenericErrorMessage, err)
		}

		s.log.WithField("subscription_id", subscription.ID).Info("Newsletter subscription created")
		return OutcomeSubscribed, nil
	}

	if existing.Status == domain.SubscriptionStatusActive {
		return "", apperrors.NewValidationError(AlreadySubscribedMessage)
	}

	if err := s.repo.UpdateStatus(ctx, existing.ID, domain.SubscriptionStatusActive); err != nil {
		s.log.WithError(err).Error("Failed to reactivate newsletter subscription")
		return "", apperrors.NewInternalError(GenericErrorMessage, err)
	}

	s.log.WithField("subscription_id", existing.ID).Info("Newsletter subscription reactivated")
	return OutcomeReactivated, nil
}
