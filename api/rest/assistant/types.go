package assistant

// request payload for one assistant turn
type ChatRequest struct {
	Message string    `json:"message" binding:"required"`
	History []Message `json:"history"`
}

// conversation message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// response payload for one assistant turn
type ChatResponse struct {
	Answer        string `json:"answer"`
	DocsRetrieved int    `json:"docs_retrieved"`
	Model         string `json:"model"`
}
