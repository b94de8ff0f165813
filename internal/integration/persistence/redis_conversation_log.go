package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/domain/entity"
)

// conversationLogMaxTurns caps how much chat history is retained per user.
const conversationLogMaxTurns = 100

// redisConversationLog implements adapter.ConversationLog on a Redis list.
type redisConversationLog struct {
	client *redis.Client
}

// NewRedisConversationLog creates a new Redis-backed conversation log.
func NewRedisConversationLog(client *redis.Client) adapter.ConversationLog {
	return &redisConversationLog{
		client: client,
	}
}

func conversationKey(userID uuid.UUID) string {
	return "conversation:" + userID.String()
}

// Append adds a turn to the end of the user's log and trims old history.
func (l *redisConversationLog) Append(ctx context.Context, userID uuid.UUID, turn entity.ConversationTurn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation turn: %w", err)
	}

	key := conversationKey(userID)
	pipe := l.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -conversationLogMaxTurns, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append conversation turn: %w", err)
	}
	return nil
}

// Recent returns up to limit most-recent turns, oldest first.
func (l *redisConversationLog) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.ConversationTurn, error) {
	if limit <= 0 {
		return nil, nil
	}

	raw, err := l.client.LRange(ctx, conversationKey(userID), int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation log: %w", err)
	}

	turns := make([]entity.ConversationTurn, 0, len(raw))
	for _, item := range raw {
		var turn entity.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal conversation turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}
