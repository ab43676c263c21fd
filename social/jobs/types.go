package jobs

import "github.com/jackc/pgx/v5/pgxpool"

// handles job posting database operations
type Repository struct {
	db *pgxpool.Pool
}

// the projection of a job posting the indexing pipeline reads
type Job struct {
	ID          string
	Title       string
	OrgName     string
	Location    string
	Type        string
	Description string
}
