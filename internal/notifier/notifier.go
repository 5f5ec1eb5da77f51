// Package notifier delivers operator-facing email notifications for new
// form submissions. Delivery is best-effort from the caller's point of
// view: a failed notification never fails the submission that triggered it.
package notifier

import (
	"context"

	"portfolio-api/internal/domain"
	"portfolio-api/pkg/logger"
)

// Notifier sends a notification for a persisted contact submission.
type Notifier interface {
	NotifyContact(ctx context.Context, submission *domain.ContactSubmission) error
}

// Disabled is a no-op notifier used when no email provider is configured.
type Disabled struct {
	log *logger.Logger
}

// NewDisabled creates a notifier that only logs.
func NewDisabled(log *logger.Logger) *Disabled {
	return &Disabled{log: log}
}

// NotifyContact implements Notifier.
func (n *Disabled) NotifyContact(_ context.Context, submission *domain.ContactSubmission) error {
	n.log.WithField("submission_id", submission.ID).Info("Email notifications disabled, skipping")
	return nil
}
