package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walletwise/backend/internal/application/usecase/assistant"
	domainerror "github.com/walletwise/backend/internal/domain/error"
	"github.com/walletwise/backend/internal/integration/entrypoint/dto"
	"github.com/walletwise/backend/internal/integration/entrypoint/middleware"
)

// AssistantController handles assistant chat endpoints.
type AssistantController struct {
	analyzeUseCase      *assistant.AnalyzeMessageUseCase
	conversationUseCase *assistant.GetConversationUseCase
}

// NewAssistantController creates a new assistant controller instance.
func NewAssistantController(
	analyzeUseCase *assistant.AnalyzeMessageUseCase,
	conversationUseCase *assistant.GetConversationUseCase,
) *AssistantController {
	return &AssistantController{
		analyzeUseCase:      analyzeUseCase,
		conversationUseCase: conversationUseCase,
	}
}

// Analyze handles POST /assistant/analyze requests.
func (c *AssistantController) Analyze(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.AnalyzeMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Message is required",
			Code:  string(domainerror.ErrCodeEmptyMessage),
		})
		return
	}

	output, err := c.analyzeUseCase.Execute(ctx.Request.Context(), assistant.AnalyzeMessageInput{
		UserID: userID,
		Text:   req.Message,
	})
	if err != nil {
		var astErr *domainerror.AssistantError
		if errors.As(err, &astErr) && astErr.Code == domainerror.ErrCodeEmptyMessage {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: astErr.Message,
				Code:  string(astErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyzeMessageResponse(output))
}

// GetConversation handles GET /assistant/conversation requests.
func (c *AssistantController) GetConversation(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.conversationUseCase.Execute(ctx.Request.Context(), assistant.GetConversationInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConversationResponse(output.Turns))
}
