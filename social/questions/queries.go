package questions

const (
	queryListAll = `
		SELECT id::text,
		       title,
		       COALESCE(body, ''),
		       COALESCE(tags, '{}')
		FROM qna_questions
		ORDER BY created_at DESC
	`
)
