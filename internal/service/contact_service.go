package service

import (
	"context"
	"strings"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/notifier"
	"portfolio-api/internal/repository"
	apperrors "portfolio-api/pkg/errors"
	"portfolio-api/pkg/logger"
)

// GenericErrorMessage is the only wording a dependency failure ever
// surfaces to a caller. The real error stays in the logs.
const GenericErrorMessage = "Something went wrong. Please try again later."

// contactService persists contact submissions and notifies the site owner
type contactService struct {
	repo     repository.ContactRepository
	notifier notifier.Notifier
	log      *logger.Logger
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepository, n notifier.Notifier, log *logger.Logger) ContactService {
	return &contactService{
		repo:     repo,
		notifier: n,
		log:      log,
	}
}

// Submit persists a validated contact request and attempts an email
// notification. Notification failure is swallowed: the submission already
// succeeded and that is the caller-relevant fact.
func (s *contactService) Submit(ctx context.Context, request *domain.ContactRequest) (*domain.ContactSubmission, error) {
	submission := &domain.ContactSubmission{
		Name:        strings.TrimSpace(request.Name),
		Email:       strings.ToLower(strings.TrimSpace(request.Email)),
		Company:     strings.TrimSpace(request.Company),
		ProjectType: strings.TrimSpace(request.ProjectType),
		Budget:      strings.TrimSpace(request.Budget),
		Timeline:    strings.TrimSpace(request.Timeline),
		Message:     strings.TrimSpace(request.Message),
		Source:      domain.ContactSource,
		Status:      domain.ContactStatusNew,
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		s.log.WithError(err).Error("Failed to persist contact submission")
		return nil, apperrors.NewInternalError(GenericErrorMessage, err)
	}

	if err := s.notifier.NotifyContact(ctx, submission); err != nil {
		s.log.WithError(err).WithField("submission_id", submission.ID).
			Error("Failed to send contact notification")
	}

	s.log.WithFields(map[string]interface{}{
		"submission_id": submission.ID,
		"email":         submission.Email,
	}).Info("Contact submission stored")

	return submission, nil
}
