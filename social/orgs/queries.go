package orgs

const (
	queryListActive = `
		SELECT id::text,
		       slug,
		       name,
		       COALESCE(industry, ''),
		       COALESCE(focus_areas, ''),
		       COALESCE(description, '')
		FROM organizations
		WHERE is_active = true
		ORDER BY name
	`
)
