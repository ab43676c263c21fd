package questions

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new question repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns all forum questions
func (r *Repository) ListAll(ctx context.Context) ([]Question, error) {
	rows, err := r.db.Query(ctx, queryListAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Question

	for rows.Next() {
		var question Question

		err := rows.Scan(
			&question.ID,
			&question.Title,
			&question.Body,
			&question.Tags,
		)

		if err != nil {
			return nil, err
		}

		result = append(result, question)
	}

	return result, rows.Err()
}
