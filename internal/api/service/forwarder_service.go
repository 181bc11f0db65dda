package service

import (
	"context"
	"datachat"
	"datachat/pkg"

	"github.com/rs/zerolog"
)

type ForwarderService struct {
	chat   pkg.ChatCompleter
	logger zerolog.Logger
}

func NewForwarderService(chat pkg.ChatCompleter) *ForwarderService {
	return &ForwarderService{
		chat:   chat,
		logger: datachat.Logger,
	}
}

// Forward sends prompt unchanged as a single user message and returns the
// model reply verbatim.
func (s *ForwarderService) Forward(ctx context.Context, prompt string) (string, error) {
	reply, err := s.chat.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Msg("Chat completion failed")
		return "", newError(KindUpstream, err)
	}
	return reply, nil
}
