package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// ChatService relays a single user message to the completion provider.
// Provider errors are logged and replaced with a generic failure so no
// provider internals reach the caller.
type ChatService struct {
	completer ports.ChatCompleter
	logger    zerolog.Logger
}

func NewChatService(completer ports.ChatCompleter, logger zerolog.Logger) *ChatService {
	return &ChatService{completer: completer, logger: logger}
}

// Reply returns the generated text for one user message.
func (s *ChatService) Reply(ctx context.Context, userMessage string) (string, error) {
	if userMessage == "" {
		return "", domain.ErrBadRequest
	}
	text, err := s.completer.Complete(ctx, userMessage)
	if err != nil {
		s.logger.Error().Err(err).Msg("chat completion failed")
		return "", domain.ErrDownstream
	}
	return text, nil
}
