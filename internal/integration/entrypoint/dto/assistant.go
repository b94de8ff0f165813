package dto

import (
	"time"

	"github.com/walletwise/backend/internal/application/usecase/assistant"
	"github.com/walletwise/backend/internal/domain/entity"
)

// AnalyzeMessageRequest represents the request body for an assistant exchange.
type AnalyzeMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// BudgetDraftResponse is the sparse budget extracted from a message.
// Absent fields are omitted so clients can merge without clobbering.
type BudgetDraftResponse struct {
	Income      *string           `json:"income,omitempty"`
	Expenses    map[string]string `json:"expenses,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

// AnalyzeMessageResponse represents the assistant's reply.
type AnalyzeMessageResponse struct {
	Message string               `json:"message"`
	Action  string               `json:"action"`
	Draft   *BudgetDraftResponse `json:"draft,omitempty"`
}

// ConversationTurnResponse is one chat turn in API responses.
type ConversationTurnResponse struct {
	Speaker string    `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

// ConversationResponse wraps the recent conversation turns.
type ConversationResponse struct {
	Turns []ConversationTurnResponse `json:"turns"`
}

// ToAnalyzeMessageResponse converts an assistant output to its API
// representation.
func ToAnalyzeMessageResponse(output *assistant.AnalyzeMessageOutput) AnalyzeMessageResponse {
	resp := AnalyzeMessageResponse{
		Message: output.Message,
		Action:  string(output.Action),
	}
	if !output.Draft.IsEmpty() {
		resp.Draft = toBudgetDraftResponse(output.Draft)
	}
	return resp
}

func toBudgetDraftResponse(draft *entity.BudgetDraft) *BudgetDraftResponse {
	resp := &BudgetDraftResponse{Suggestions: draft.Suggestions}
	if draft.Income != nil {
		income := draft.Income.String()
		resp.Income = &income
	}
	if len(draft.Expenses) > 0 {
		resp.Expenses = make(map[string]string, len(draft.Expenses))
		for key, amount := range draft.Expenses {
			resp.Expenses[key] = amount.String()
		}
	}
	return resp
}

// ToConversationResponse converts conversation turns to their API
// representation.
func ToConversationResponse(turns []entity.ConversationTurn) ConversationResponse {
	resp := ConversationResponse{
		Turns: make([]ConversationTurnResponse, len(turns)),
	}
	for i, turn := range turns {
		resp.Turns[i] = ConversationTurnResponse{
			Speaker: string(turn.Speaker),
			Text:    turn.Text,
			At:      turn.At,
		}
	}
	return resp
}
