package products

import "github.com/jackc/pgx/v5/pgxpool"

// handles marketplace product database operations
type Repository struct {
	db *pgxpool.Pool
}

// the projection of a marketplace product the indexing pipeline reads
type Product struct {
	ID               string
	Name             string
	CompanyName      string
	Category         string
	ShortDescription string
}
