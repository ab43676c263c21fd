package jobs

const (
	queryListPublished = `
		SELECT id::text,
		       title,
		       COALESCE(organisation_name, ''),
		       COALESCE(location, ''),
		       COALESCE(type, ''),
		       COALESCE(description, '')
		FROM jobs
		WHERE is_published = true
		ORDER BY created_at DESC
	`
)
