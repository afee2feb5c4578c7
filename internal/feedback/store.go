// Package feedback persists operator ratings of generated responses.
package feedback

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Feedback is one operator rating of a generated response.
type Feedback struct {
	ID              string    `json:"id"`
	ConversationID  string    `json:"conversationId,omitempty"`
	Rating          int       `json:"rating"`
	Comments        string    `json:"comments,omitempty"`
	ResponseContent string    `json:"responseContent,omitempty"`
	Processed       bool      `json:"processed"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Store persists feedback in Postgres.
type Store struct {
	db *sql.DB
}

// NewStore creates a feedback store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save inserts one feedback record, filling ID and CreatedAt when unset.
func (s *Store) Save(ctx context.Context, fb Feedback) (Feedback, error) {
	if fb.Rating < 1 || fb.Rating > 5 {
		return Feedback{}, fmt.Errorf("feedback: rating must be between 1 and 5, got %d", fb.Rating)
	}
	if fb.ID == "" {
		fb.ID = "feedback_" + uuid.NewString()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO response_feedback (
			id, conversation_id, rating, comments, response_content, processed, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		fb.ID,
		nullString(fb.ConversationID),
		fb.Rating,
		fb.Comments,
		fb.ResponseContent,
		fb.Processed,
		fb.CreatedAt,
	)
	if err != nil {
		return Feedback{}, fmt.Errorf("feedback: save: %w", err)
	}
	return fb, nil
}

// Recent returns the latest feedback records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Feedback, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, conversation_id, rating, comments, response_content, processed, created_at
		FROM response_feedback
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("feedback: query recent: %w", err)
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var fb Feedback
		var convID sql.NullString
		if err := rows.Scan(&fb.ID, &convID, &fb.Rating, &fb.Comments, &fb.ResponseContent, &fb.Processed, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("feedback: scan: %w", err)
		}
		fb.ConversationID = convID.String
		out = append(out, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("feedback: iterate: %w", err)
	}
	return out, nil
}

// AverageRating computes the mean rating over all feedback, or 0 when none
// exists.
func (s *Store) AverageRating(ctx context.Context) (float64, error) {
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `SELECT AVG(rating) FROM response_feedback`).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("feedback: average rating: %w", err)
	}
	return avg.Float64, nil
}

// MarkProcessed flags a feedback record as handled.
func (s *Store) MarkProcessed(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE response_feedback SET processed = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("feedback: mark processed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("feedback: no record with id %s", id)
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
