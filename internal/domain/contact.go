package domain

import (
	"regexp"
	"time"
)

// Contact submission constants
const (
	ContactSource    = "website"
	ContactStatusNew = "new"
)

// emailPattern is the syntactic check applied to submitted addresses.
// No DNS or mailbox verification happens server-side.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like a local@domain.tld address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ContactSubmission represents a persisted contact-form entry.
type ContactSubmission struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Company     string    `json:"company" db:"company"`
	ProjectType string    `json:"project_type" db:"project_type"`
	Budget      string    `json:"budget" db:"budget"`
	Timeline    string    `json:"timeline" db:"timeline"`
	Message     string    `json:"message" db:"message"`
	Source      string    `json:"source" db:"source"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ContactRequest is the JSON body accepted by POST /api/contact.
// Website is a decoy field; genuine browsers submit it empty, so a
// non-empty value marks the request as automated.
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Message     string `json:"message"`
	Website     string `json:"website"`
}
