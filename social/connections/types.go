package connections

import "github.com/jackc/pgx/v5/pgxpool"

// handles entanglement (connection) database operations
type Repository struct {
	db *pgxpool.Pool
}
