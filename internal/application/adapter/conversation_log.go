// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/domain/entity"
)

// ConversationLog stores the append-only assistant chat log per user.
type ConversationLog interface {
	// Append adds a turn to the end of the user's log.
	Append(ctx context.Context, userID uuid.UUID, turn entity.ConversationTurn) error

	// Recent returns up to limit most-recent turns, oldest first.
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.ConversationTurn, error)
}
