package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nibashhq/marketplace-api/internal/dto"
)

// SystemPrompt is the fixed persona sent with every chat completion.
const SystemPrompt = "You are Nibash Assistant, a friendly expert on furniture, interior design, and home improvement."

// ChatHandler proxies user messages to the completion API. Unlike the rest of
// the API it answers {reply} on both success and failure, which is what the
// mobile client expects.
type ChatHandler struct {
	completer ChatCompleter
}

// NewChatHandler constructs a ChatHandler.
func NewChatHandler(completer ChatCompleter) *ChatHandler {
	return &ChatHandler{completer: completer}
}

// Chat handles POST /api/chat requests.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ChatReply{Reply: "No message provided."})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, dto.ChatReply{Reply: "No message provided."})
	}

	reply, err := h.completer.Complete(c.Request().Context(), req.Message)
	if err != nil {
		log.Printf("chat completion: %v", err)
		if errors.Is(err, ErrChatUpstream) {
			return c.JSON(http.StatusInternalServerError, dto.ChatReply{Reply: "OpenAI API returned an error."})
		}
		return c.JSON(http.StatusInternalServerError, dto.ChatReply{Reply: "Sorry, something went wrong on the server."})
	}
	if reply == "" {
		reply = "No reply"
	}

	return c.JSON(http.StatusOK, dto.ChatReply{Reply: reply})
}
