package docstore

const (
	insertDocumentQuery = `
		INSERT INTO search_documents (content, embedding, metadata)
		VALUES ($1, $2, $3::jsonb)
	`

	existsByLinkQuery = `
		SELECT EXISTS (
			SELECT 1 FROM search_documents
			WHERE metadata->>'link' = $1
		)
	`

	matchDocumentsQuery = `
		SELECT
			id::text,
			content,
			metadata,
			similarity
		FROM match_documents($1, $2, $3)
	`

	indexProviderQuery = `
		SELECT DISTINCT metadata->>'provider'
		FROM search_documents
		WHERE metadata->>'provider' IS NOT NULL
	`

	countDocumentsQuery = `
		SELECT COUNT(*) FROM search_documents
	`
)
