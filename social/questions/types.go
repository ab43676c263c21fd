package questions

import "github.com/jackc/pgx/v5/pgxpool"

// handles Q&A forum database operations
type Repository struct {
	db *pgxpool.Pool
}

// the projection of a forum question the indexing pipeline reads
type Question struct {
	ID    string
	Title string
	Body  string
	Tags  []string
}
