package assistant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assistantcore "github.com/quantum5ocial/server/internal/assistant"
	apierrors "github.com/quantum5ocial/server/internal/errors"
	"github.com/quantum5ocial/server/internal/llm"
)

// handles conversational assistant requests
func ChatHandler(assistantClient *assistantcore.Assistant) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		history := make([]llm.Message, 0, len(req.History))
		for _, msg := range req.History {
			if msg.Content != "" {
				history = append(history, llm.Message{
					Role:    msg.Role,
					Content: msg.Content,
				})
			}
		}

		resp, err := assistantClient.Chat(c.Request.Context(), assistantcore.ChatRequest{
			Message: req.Message,
			History: history,
		})

		if err != nil {
			apierrors.InternalError(c, "failed to generate answer", err)
			return
		}

		c.JSON(http.StatusOK, ChatResponse{
			Answer:        resp.Answer,
			DocsRetrieved: resp.DocsRetrieved,
			Model:         resp.Model,
		})
	}
}
