package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Question is a solved question kept for the owner's history.
type Question struct {
	ID         int64
	Text       string
	Answer     string
	Language   string
	Subject    string
	ClassLevel string
	CreatedAt  time.Time
	OwnerID    int64
}

// QuestionRepository manages solved question history.
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Save inserts a solved question and fills in the generated ID and timestamp.
func (r *QuestionRepository) Save(ctx context.Context, q *Question) error {
	query := `
		INSERT INTO questions (text, answer, language, subject, class_level, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, q.Text, q.Answer, q.Language, q.Subject, q.ClassLevel, q.OwnerID).
		Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("save question: %w", err)
	}

	return nil
}

// ListByOwner returns the owner's solved questions, newest first.
func (r *QuestionRepository) ListByOwner(ctx context.Context, ownerID int64, limit int) ([]Question, error) {
	query := `
		SELECT id, text, answer, language, subject, class_level, created_at, owner_id
		FROM questions
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Answer, &q.Language, &q.Subject, &q.ClassLevel, &q.CreatedAt, &q.OwnerID); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}
