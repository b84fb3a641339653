package handler

import (
	"net/http"
	"strings"

	"observatoire/internal/model"
	"observatoire/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles conversational HTTP requests.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message must not be empty"})
		return
	}

	c.JSON(http.StatusOK, h.chatService.Reply(c.Request.Context(), req.Message))
}
