package jobs

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new job repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns all published job postings
func (r *Repository) ListPublished(ctx context.Context) ([]Job, error) {
	rows, err := r.db.Query(ctx, queryListPublished)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Job

	for rows.Next() {
		var job Job

		err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.OrgName,
			&job.Location,
			&job.Type,
			&job.Description,
		)

		if err != nil {
			return nil, err
		}

		result = append(result, job)
	}

	return result, rows.Err()
}
