package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "smartwealth/internal/errors"
	"smartwealth/internal/models"
	"smartwealth/internal/pagination"
	"smartwealth/internal/services"
)

// Placeholders rendered when a transaction references a deleted account or
// category.
const (
	unknownAccountName = "Unknown account"
	uncategorizedName  = "Uncategorized"
)

// TransactionHandler handles transaction requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for recording a
// transaction. Amount is a positive magnitude in minor currency units; the
// direction comes from the type.
type CreateTransactionRequest struct {
	AccountID  string  `json:"account_id" binding:"required"`
	CategoryID *string `json:"category_id"`
	Type       string  `json:"type" binding:"required,transaction_type"`
	Amount     int64   `json:"amount" binding:"required,gt=0"`
	Note       string  `json:"note" binding:"max=500"`
	Date       string  `json:"date"`
}

// TransactionResponse represents a transaction in the response. AccountName
// and CategoryName fall back to placeholders when the referenced record has
// been deleted.
type TransactionResponse struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	AccountName  string    `json:"account_name"`
	CategoryID   *string   `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name"`
	Type         string    `json:"type"`
	Amount       int64     `json:"amount"`
	Note         string    `json:"note"`
	Date         time.Time `json:"date"`
}

func toTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:           tx.ID,
		AccountID:    tx.AccountID,
		AccountName:  unknownAccountName,
		CategoryID:   tx.CategoryID,
		CategoryName: uncategorizedName,
		Type:         string(tx.Type),
		Amount:       tx.Amount,
		Note:         tx.Note,
		Date:         tx.Date,
	}
	if tx.Account != nil {
		resp.AccountName = tx.Account.Name
	}
	if tx.Category != nil {
		resp.CategoryName = tx.Category.Name
	}
	return resp
}

func toTransactionPage(resp *pagination.PageResponse[models.Transaction]) pagination.PageResponse[TransactionResponse] {
	transactions := make([]TransactionResponse, 0, len(resp.Data))
	for i := range resp.Data {
		transactions = append(transactions, toTransactionResponse(&resp.Data[i]))
	}
	return pagination.PageResponse[TransactionResponse]{
		Data:       transactions,
		Page:       resp.Page,
		PageSize:   resp.PageSize,
		TotalItems: resp.TotalItems,
		TotalPages: resp.TotalPages,
	}
}

// transactionFilterFromQuery parses the optional filter query parameters
// shared by the transaction list endpoints.
func transactionFilterFromQuery(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if from := c.Query("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return filter, err
		}
		filter.FromDate = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return filter, err
		}
		filter.ToDate = &t
	}
	if txType := c.Query("type"); txType != "" {
		if txType != string(models.TransactionTypeIncome) && txType != string(models.TransactionTypeExpense) {
			return filter, apperrors.ErrInvalidTransactionType
		}
		parsed := models.TransactionType(txType)
		filter.Type = &parsed
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		filter.CategoryID = &categoryID
	}
	return filter, nil
}

// CreateTransaction handles recording a new transaction
// @Summary     Record a transaction
// @Description Record an income or expense transaction and adjust the account balance
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
	}

	tx, err := h.transactionService.CreateTransaction(
		userID,
		req.AccountID,
		req.CategoryID,
		models.TransactionType(req.Type),
		req.Amount,
		req.Note,
		date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Reload with associations so the response carries resolved names.
	created, err := h.transactionService.GetTransactionByID(userID, tx.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTransactionResponse(created))
}

// GetUserTransactions handles listing the user's transactions
// @Summary     List transactions
// @Description Get a paginated, filtered list of all the user's transactions, newest first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(20)
// @Param       from query string false "Earliest date (YYYY-MM-DD or RFC3339)"
// @Param       to query string false "Latest date (YYYY-MM-DD or RFC3339)"
// @Param       type query string false "Filter by type (income/expense)"
// @Param       category_id query string false "Filter by category"
// @Success     200 {object} pagination.PageResponse[TransactionResponse] "List of transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := transactionFilterFromQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.transactionService.GetUserTransactions(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionPage(resp))
}

// GetTransactionByID handles retrieving a single transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(tx))
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete transaction
// @Description Delete a transaction and reverse its effect on the account balance
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
