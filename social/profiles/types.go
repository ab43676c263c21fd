package profiles

import "github.com/jackc/pgx/v5/pgxpool"

// handles user profile database operations
type Repository struct {
	db *pgxpool.Pool
}

// the projection of a user profile read by the pipeline and consumers
type Profile struct {
	ID          string
	FullName    string
	Role        string
	Affiliation string
	Skills      string
	Focus       string
	ShortBio    string
}
