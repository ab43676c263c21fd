package profiles

const (
	queryListAll = `
		SELECT id::text,
		       COALESCE(full_name, ''),
		       COALESCE(role, ''),
		       COALESCE(affiliation, ''),
		       COALESCE(skills, ''),
		       COALESCE(focus, ''),
		       COALESCE(short_bio, '')
		FROM profiles
		ORDER BY created_at
	`

	queryGetByID = `
		SELECT id::text,
		       COALESCE(full_name, ''),
		       COALESCE(role, ''),
		       COALESCE(affiliation, ''),
		       COALESCE(skills, ''),
		       COALESCE(focus, ''),
		       COALESCE(short_bio, '')
		FROM profiles
		WHERE id = $1
	`
)
