package assistant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/domain/entity"
)

// RecentTurnLimit is how many turns the chat view shows.
const RecentTurnLimit = 4

// GetConversationInput represents the input for reading the chat log.
type GetConversationInput struct {
	UserID uuid.UUID
}

// GetConversationOutput represents the most recent conversation turns.
type GetConversationOutput struct {
	Turns []entity.ConversationTurn
}

// GetConversationUseCase reads the tail of the assistant chat log.
type GetConversationUseCase struct {
	conversationLog adapter.ConversationLog
}

// NewGetConversationUseCase creates a new GetConversationUseCase instance.
func NewGetConversationUseCase(conversationLog adapter.ConversationLog) *GetConversationUseCase {
	return &GetConversationUseCase{
		conversationLog: conversationLog,
	}
}

// Execute returns up to RecentTurnLimit most-recent turns, oldest first.
func (uc *GetConversationUseCase) Execute(ctx context.Context, input GetConversationInput) (*GetConversationOutput, error) {
	turns, err := uc.conversationLog.Recent(ctx, input.UserID, RecentTurnLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation log: %w", err)
	}
	return &GetConversationOutput{Turns: turns}, nil
}
