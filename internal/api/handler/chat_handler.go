package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// ChatHandler relays chat messages to the completion provider.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat forwards one user message and returns the generated text. Provider
// failures surface as a generic 500 with no provider internals.
//
// @Summary      Chat with the assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "User message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  statusError
// @Router       /chat/ [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, map[string]string{"error": "Invalid request method"})
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil || req.UserMessage == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No message provided"})
	}

	reply, err := h.service.Reply(c.Request().Context(), req.UserMessage)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "No message provided"})
		}
		return internalError(c)
	}
	return c.JSON(http.StatusOK, chatResponse{Response: reply})
}
