package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "smartwealth/internal/errors"
	"smartwealth/internal/services"
)

// ReportHandler handles aggregated reporting requests
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary handles the monthly dashboard summary
// @Summary     Monthly summary
// @Description Get the total balance, income, expense, and savings rate for a month
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month in YYYY-MM format (defaults to current month)"
// @Success     200 {object} services.MonthlySummary "Summary figures"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		month, err = time.Parse("2006-01", raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month: "+raw))
			return
		}
	}

	summary, err := h.reportService.GetMonthlySummary(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetCategoryBreakdown handles the per-category expense breakdown
// @Summary     Expense breakdown
// @Description Get the total spent per expense category, with the top category
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.ExpenseBreakdown "Per-category totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/categories [get]
func (h *ReportHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.reportService.GetExpenseBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// GetMonthlySeries handles the per-month income/expense series
// @Summary     Monthly series
// @Description Get income/expense pairs per month for a year, omitting inactive months
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Year (defaults to current year)"
// @Success     200 {array} report.MonthActivity "Active months"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlySeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year: "+raw))
			return
		}
	}

	series, err := h.reportService.GetMonthlySeries(userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}
