package posts

import "github.com/jackc/pgx/v5/pgxpool"

// handles social feed post database operations
type Repository struct {
	db *pgxpool.Pool
}
