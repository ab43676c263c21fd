package orgs

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new organization repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns all active organization pages
func (r *Repository) ListActive(ctx context.Context) ([]Organization, error) {
	rows, err := r.db.Query(ctx, queryListActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Organization

	for rows.Next() {
		var org Organization

		err := rows.Scan(
			&org.ID,
			&org.Slug,
			&org.Name,
			&org.Industry,
			&org.FocusAreas,
			&org.Description,
		)

		if err != nil {
			return nil, err
		}

		result = append(result, org)
	}

	return result, rows.Err()
}
