package profiles

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new profile repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns all user profiles
func (r *Repository) ListAll(ctx context.Context) ([]Profile, error) {
	rows, err := r.db.Query(ctx, queryListAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Profile

	for rows.Next() {
		var profile Profile

		if err := scanProfile(rows.Scan, &profile); err != nil {
			return nil, err
		}

		result = append(result, profile)
	}

	return result, rows.Err()
}

// finds a profile by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Profile, error) {
	var profile Profile

	if err := scanProfile(r.db.QueryRow(ctx, queryGetByID, id).Scan, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func scanProfile(scan func(dest ...any) error, p *Profile) error {
	return scan(
		&p.ID,
		&p.FullName,
		&p.Role,
		&p.Affiliation,
		&p.Skills,
		&p.Focus,
		&p.ShortBio,
	)
}
