package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"spendly/internal/assistant"
	apperrors "spendly/internal/errors"
	"spendly/internal/snapshot"
)

// Replier answers a chat message.
type Replier interface {
	Reply(ctx context.Context, message string, history []assistant.Message, data *snapshot.Data) (string, error)
}

// ChatHandler handles the finance assistant.
type ChatHandler struct {
	assistant Replier
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(assistant Replier) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// ChatRequest represents the request payload for a chat message.
type ChatRequest struct {
	Message  string              `json:"message" binding:"max=4000"`
	History  []assistant.Message `json:"history" binding:"omitempty,max=50,dive"`
	Snapshot *snapshot.Data      `json:"snapshot"`
}

// ChatResponse represents the assistant's answer.
type ChatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

// Chat handles a message to the finance assistant.
// @Summary     Ask the assistant
// @Description Answer a question about the finances in the supplied snapshot
// @Tags        assistant
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChatRequest true "Message, earlier turns and local data"
// @Success     200 {object} ChatResponse "Assistant reply"
// @Failure     400 {object} ErrorResponse "Message is required"
// @Failure     502 {object} ErrorResponse "Model request failed"
// @Failure     503 {object} ErrorResponse "Assistant not configured"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	invalid, err := bindJSON(c, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if req.Message == "" {
		respondWithError(c, apperrors.ErrMessageRequired)
		return
	}
	if invalid != nil {
		respondWithError(c, invalid)
		return
	}

	reply, err := h.assistant.Reply(c.Request.Context(), req.Message, req.History, req.Snapshot)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Success: true, Reply: reply})
}
