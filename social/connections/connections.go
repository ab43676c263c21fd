package connections

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new connection repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the ids of users the given user holds an accepted entanglement with
func (r *Repository) AcceptedPeers(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, queryAcceptedPeers, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var peers []string

	for rows.Next() {
		var id string

		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		peers = append(peers, id)
	}

	return peers, rows.Err()
}
