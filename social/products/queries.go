package products

const (
	queryListAll = `
		SELECT id::text,
		       name,
		       COALESCE(company_name, ''),
		       COALESCE(category, ''),
		       COALESCE(short_description, '')
		FROM products
		ORDER BY created_at DESC
	`
)
