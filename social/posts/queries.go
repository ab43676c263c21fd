package posts

const (
	queryListRecentByAuthors = `
		SELECT id::text
		FROM posts
		WHERE author_id = ANY($1)
		ORDER BY created_at DESC
		LIMIT $2
	`
)
