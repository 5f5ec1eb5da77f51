package repository

import (
	"context"
	"fmt"

	"portfolio-api/internal/domain"
	"portfolio-api/pkg/database"
)

// contactRepository handles contact submission persistence with PostgreSQL
type contactRepository struct {
	db *database.PostgresDB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *database.PostgresDB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create inserts a new contact submission and populates the ID and
// CreatedAt assigned by the database. Optional fields are stored as NULL
// when empty.
func (r *contactRepository) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions
			(name, email, company, project_type, budget, timeline, message, source, status)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		submission.Name,
		submission.Email,
		submission.Company,
		submission.ProjectType,
		submission.Budget,
		submission.Timeline,
		submission.Message,
		submission.Source,
		submission.Status,
	).Scan(&submission.ID, &submission.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}

	return nil
}
