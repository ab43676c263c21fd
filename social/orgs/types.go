package orgs

import "github.com/jackc/pgx/v5/pgxpool"

// handles organization page database operations
type Repository struct {
	db *pgxpool.Pool
}

// the projection of an organization page the indexing pipeline reads
//
// Slug is the human-readable identifier used for links, so it serves as the
// dedup key instead of the row id.
type Organization struct {
	ID          string
	Slug        string
	Name        string
	Industry    string
	FocusAreas  string
	Description string
}
