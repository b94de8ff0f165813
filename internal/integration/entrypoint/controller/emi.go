package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletwise/backend/internal/application/usecase/emi"
	domainerror "github.com/walletwise/backend/internal/domain/error"
	"github.com/walletwise/backend/internal/integration/entrypoint/dto"
	"github.com/walletwise/backend/internal/integration/entrypoint/middleware"
)

// EMIController handles EMI endpoints.
type EMIController struct {
	createUseCase        *emi.CreateEMIUseCase
	listUseCase          *emi.ListEMIsUseCase
	recordPaymentUseCase *emi.RecordPaymentUseCase
	deleteUseCase        *emi.DeleteEMIUseCase
}

// NewEMIController creates a new EMI controller instance.
func NewEMIController(
	createUseCase *emi.CreateEMIUseCase,
	listUseCase *emi.ListEMIsUseCase,
	recordPaymentUseCase *emi.RecordPaymentUseCase,
	deleteUseCase *emi.DeleteEMIUseCase,
) *EMIController {
	return &EMIController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
		deleteUseCase:        deleteUseCase,
	}
}

// Create handles POST /emis requests.
func (c *EMIController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateEMIRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), emi.CreateEMIInput{
		UserID:        userID,
		Lender:        req.Lender,
		MonthlyAmount: decimal.NewFromFloat(req.MonthlyAmount),
		TotalMonths:   req.TotalMonths,
		NextDueDate:   req.NextDueDate,
	})
	if err != nil {
		c.handleEMIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEMIResponse(output.EMI))
}

// List handles GET /emis requests.
func (c *EMIController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), emi.ListEMIsInput{UserID: userID})
	if err != nil {
		c.handleEMIError(ctx, err)
		return
	}

	resp := dto.EMIListResponse{
		EMIs: make([]dto.EMIResponse, len(output.EMIs)),
	}
	for i, e := range output.EMIs {
		resp.EMIs[i] = dto.ToEMIResponse(e)
	}
	ctx.JSON(http.StatusOK, resp)
}

// RecordPayment handles POST /emis/:id/payments requests.
func (c *EMIController) RecordPayment(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	emiID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid EMI ID",
			Code:  string(domainerror.ErrCodeEMINotFound),
		})
		return
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), emi.RecordPaymentInput{
		UserID: userID,
		EMIID:  emiID,
	})
	if err != nil {
		c.handleEMIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEMIResponse(output.EMI))
}

// Delete handles DELETE /emis/:id requests.
func (c *EMIController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	emiID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid EMI ID",
			Code:  string(domainerror.ErrCodeEMINotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), emi.DeleteEMIInput{
		UserID: userID,
		EMIID:  emiID,
	}); err != nil {
		c.handleEMIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "EMI deleted"})
}

// handleEMIError maps EMI errors to HTTP responses.
func (c *EMIController) handleEMIError(ctx *gin.Context, err error) {
	var emiErr *domainerror.EMIError
	if errors.As(err, &emiErr) {
		statusCode := http.StatusBadRequest
		switch emiErr.Code {
		case domainerror.ErrCodeEMINotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeEMISettled:
			statusCode = http.StatusConflict
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: emiErr.Message,
			Code:  string(emiErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
