package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-api/internal/domain"
	"portfolio-api/pkg/logger"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendNotifier sends submission notifications through the Resend
// transactional email API.
type ResendNotifier struct {
	apiKey     string
	from       string
	to         string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewResendNotifier creates a Resend-backed notifier.
func NewResendNotifier(apiKey, from, to string, log *logger.Logger) *ResendNotifier {
	return &ResendNotifier{
		apiKey:  apiKey,
		from:    from,
		to:      to,
		baseURL: defaultResendBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// resendEmailRequest is the payload for POST /emails.
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// NotifyContact sends an email carrying the full submission payload.
func (n *ResendNotifier) NotifyContact(ctx context.Context, submission *domain.ContactSubmission) error {
	payload := resendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: fmt.Sprintf("New contact form submission from %s", submission.Name),
		Text:    formatContactBody(submission),
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	url := fmt.Sprintf("%s/emails", n.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", n.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call email API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read email API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email API returned status %d: %s", resp.StatusCode, string(body))
	}

	n.log.WithField("submission_id", submission.ID).Debug("Contact notification sent")
	return nil
}

// formatContactBody renders the submission as a plain-text email body.
func formatContactBody(s *domain.ContactSubmission) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Name: %s\n", s.Name)
	fmt.Fprintf(&buf, "Email: %s\n", s.Email)
	if s.Company != "" {
		fmt.Fprintf(&buf, "Company: %s\n", s.Company)
	}
	if s.ProjectType != "" {
		fmt.Fprintf(&buf, "Project type: %s\n", s.ProjectType)
	}
	if s.Budget != "" {
		fmt.Fprintf(&buf, "Budget: %s\n", s.Budget)
	}
	if s.Timeline != "" {
		fmt.Fprintf(&buf, "Timeline: %s\n", s.Timeline)
	}
	fmt.Fprintf(&buf, "\nMessage:\n%s\n", s.Message)

	return buf.String()
}
