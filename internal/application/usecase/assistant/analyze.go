// Package assistant contains the natural-language budget assistant use cases.
package assistant

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/domain/entity"
	domainerror "github.com/walletwise/backend/internal/domain/error"
)

// Fixed assistant messages for the degraded paths. The two fallback
// paths (no credential, oracle failure) must behave identically apart
// from the wording of the message.
const (
	// MessageOracleNotConfigured is returned when no oracle credential is set.
	MessageOracleNotConfigured = "The AI assistant is not configured, so I used quick pattern matching on your message instead. Set a Gemini API key to enable smarter replies."

	// MessageOracleFailed is returned when the oracle call fails at runtime.
	MessageOracleFailed = "Sorry, I could not reach the AI assistant right now. I extracted what I could from your message instead."
)

// recentTransactionsInPrompt caps how many transactions are included in
// the oracle prompt.
const recentTransactionsInPrompt = 10

// AnalyzeMessageInput represents the input for analyzing a user message.
type AnalyzeMessageInput struct {
	UserID uuid.UUID
	Text   string
}

// AnalyzeMessageOutput represents the assistant's reply.
type AnalyzeMessageOutput struct {
	Message string
	Draft   *entity.BudgetDraft
	Action  Action
}

// AnalyzeMessageUseCase drives one assistant exchange: classify the
// intent, ask the completion oracle with budget context, and recover
// structured fields deterministically.
type AnalyzeMessageUseCase struct {
	completion      adapter.CompletionService
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	conversationLog adapter.ConversationLog
	now             func() time.Time
}

// NewAnalyzeMessageUseCase creates a new AnalyzeMessageUseCase instance.
func NewAnalyzeMessageUseCase(
	completion adapter.CompletionService,
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	conversationLog adapter.ConversationLog,
) *AnalyzeMessageUseCase {
	return &AnalyzeMessageUseCase{
		completion:      completion,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		conversationLog: conversationLog,
		now:             time.Now,
	}
}

// Execute analyzes the user's message. The structured draft always
// comes from the deterministic extractor over the original user text,
// never from the oracle reply; the oracle only supplies the
// conversational message. Oracle failure and missing configuration both
// degrade to a fixed message plus the deterministic extraction, so the
// user's input is never silently dropped.
func (uc *AnalyzeMessageUseCase) Execute(ctx context.Context, input AnalyzeMessageInput) (*AnalyzeMessageOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, domainerror.NewAssistantError(
			domainerror.ErrCodeEmptyMessage,
			"message must not be empty",
			domainerror.ErrEmptyMessage,
		)
	}

	output := &AnalyzeMessageOutput{
		Draft:  ExtractBudgetDraft(input.Text),
		Action: ClassifyAction(input.Text),
	}

	if !uc.completion.IsAvailable() {
		output.Message = MessageOracleNotConfigured
	} else {
		reply, err := uc.completion.Complete(ctx, buildSystemPrompt(uc.gatherContext(ctx, input.UserID)), input.Text)
		if err != nil {
			slog.Warn("Completion oracle call failed, falling back to deterministic extraction",
				"user_id", input.UserID,
				"error", err,
			)
			output.Message = MessageOracleFailed
		} else {
			output.Message = reply
		}
	}

	uc.appendTurns(ctx, input.UserID, input.Text, output.Message)

	return output, nil
}

// gatherContext collects the budget state for the oracle prompt. Fetch
// failures degrade to a sparser prompt rather than failing the exchange.
func (uc *AnalyzeMessageUseCase) gatherContext(ctx context.Context, userID uuid.UUID) promptContext {
	var pc promptContext

	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		slog.Warn("Failed to fetch budgets for assistant prompt", "user_id", userID, "error", err)
	} else if len(budgets) > 0 {
		pc.TotalIncome = budgets[0].TotalIncome
		pc.Allocations = budgets[0].Allocations
	}

	transactions, err := uc.transactionRepo.FindRecentByUser(ctx, userID, recentTransactionsInPrompt)
	if err != nil {
		slog.Warn("Failed to fetch transactions for assistant prompt", "user_id", userID, "error", err)
	} else {
		pc.RecentTransactions = transactions
	}

	return pc
}

// appendTurns records the exchange in the conversation log. Logging
// failures are not surfaced to the user.
func (uc *AnalyzeMessageUseCase) appendTurns(ctx context.Context, userID uuid.UUID, userText, assistantText string) {
	now := uc.now().UTC()
	turns := []entity.ConversationTurn{
		{Speaker: entity.SpeakerUser, Text: userText, At: now},
		{Speaker: entity.SpeakerAssistant, Text: assistantText, At: now},
	}
	for _, turn := range turns {
		if err := uc.conversationLog.Append(ctx, userID, turn); err != nil {
			slog.Warn("Failed to append conversation turn", "user_id", userID, "error", err)
			return
		}
	}
}
