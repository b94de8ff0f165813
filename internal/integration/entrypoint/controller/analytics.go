package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walletwise/backend/internal/application/usecase/analytics"
	"github.com/walletwise/backend/internal/integration/entrypoint/dto"
	"github.com/walletwise/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles spending-analytics endpoints.
type AnalyticsController struct {
	reportUseCase *analytics.GetSpendingReportUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(reportUseCase *analytics.GetSpendingReportUseCase) *AnalyticsController {
	return &AnalyticsController{
		reportUseCase: reportUseCase,
	}
}

// GetSpendingReport handles GET /analytics/spending requests. The
// period query parameter selects the reporting window and defaults to
// the current month.
func (c *AnalyticsController) GetSpendingReport(ctx *gin.Context) {
	output, ok := c.buildReport(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSpendingReportResponse(output))
}

// ExportCSV handles GET /analytics/spending/export requests, streaming
// the category totals of the selected period as a CSV attachment.
func (c *AnalyticsController) ExportCSV(ctx *gin.Context) {
	output, ok := c.buildReport(ctx)
	if !ok {
		return
	}

	csv := analytics.ExportCategoryTotalsCSV(output.Report.CategoryTotals)
	ctx.Header("Content-Disposition", `attachment; filename="spending.csv"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(csv))
}

func (c *AnalyticsController) buildReport(ctx *gin.Context) (*analytics.GetSpendingReportOutput, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return nil, false
	}

	period := analytics.PeriodKey(ctx.DefaultQuery("period", string(analytics.PeriodCurrent)))

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), analytics.GetSpendingReportInput{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return nil, false
	}
	return output, true
}
