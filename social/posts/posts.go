package posts

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new post repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the ids of the most recent posts authored by any of the given
// users, newest first
func (r *Repository) ListRecentByAuthors(ctx context.Context, authorIDs []string, limit int) ([]string, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, queryListRecentByAuthors, authorIDs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string

		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}
