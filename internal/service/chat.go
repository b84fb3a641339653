package service

import (
	"context"

	"observatoire/internal/model"
	"observatoire/internal/repository"

	"github.com/google/uuid"
)

// ChatService answers one user message at a time: extract the intent,
// compose the reply, log the exchange. No conversation state is kept.
type ChatService struct {
	extractor *IntentExtractor
	composer  *ResponseComposer
	repo      *repository.PostgresRepository
}

// NewChatService creates a chat service. The repository may be nil, in
// which case exchanges are not logged.
func NewChatService(
	extractor *IntentExtractor,
	composer *ResponseComposer,
	repo *repository.PostgresRepository,
) *ChatService {
	return &ChatService{
		extractor: extractor,
		composer:  composer,
		repo:      repo,
	}
}

// Reply processes one message and returns the composed reply with its
// exchange id. Logging happens off the request path.
func (s *ChatService) Reply(ctx context.Context, message string) model.ChatResponse {
	intent := s.extractor.Extract(message)
	reply := s.composer.Compose(message, intent)

	id := uuid.NewString()
	if s.repo != nil {
		go func() {
			_ = s.repo.LogChat(context.Background(), id, message, intent)
		}()
	}

	return model.ChatResponse{
		ChatID:        id,
		ComposedReply: reply,
	}
}
