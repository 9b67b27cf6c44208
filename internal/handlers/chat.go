package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"careerguide/internal/chat"
	"careerguide/internal/models"
)

// ChatHandler handles chat messages.
type ChatHandler struct {
	responder *chat.Responder
	logger    *slog.Logger
}

// NewChatHandler creates a new chat handler. A nil logger uses slog.Default().
func NewChatHandler(responder *chat.Responder, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{responder: responder, logger: logger}
}

// Chat answers a single message. It always responds 200 with a reply; an
// unreadable body is treated as an empty message.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req models.ChatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		h.logger.DebugContext(c.Context(), "unreadable chat body", "request_id", requestid.FromContext(c), "error", err)
		req = models.ChatRequest{}
	}

	reply := h.responder.Reply(c.Context(), req.Message)

	h.logger.InfoContext(c.Context(), "chat reply",
		"request_id", requestid.FromContext(c),
		"source", reply.Source,
		"keyword", reply.Keyword,
	)

	return c.JSON(models.ChatResponse{Response: reply.Text})
}
