package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/covid-banking-ledger/internal/api/service"
	"github.com/covid-banking-ledger/internal/domain/account"
	"github.com/covid-banking-ledger/internal/domain/shared"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	bank   service.BankService
	logger *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, bank service.BankService) *TransactionHandler {
	return &TransactionHandler{
		bank:   bank,
		logger: logger,
	}
}

// Create executes a deposit or withdrawal against an account. The operation
// is validated, executed and persisted before the response is written; there
// is no pending state.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		h.logger.Error("invalid account ID", "account_id", req.AccountID, "error", err)
		RespondBadRequest(c, "Invalid account ID")
		return
	}

	occurringOn, ok := parseOptionalDate(c, req.OccurringOn)
	if !ok {
		return
	}

	var tx account.Transaction
	switch req.Type {
	case "DEPOSIT":
		tx, err = h.bank.Deposit(c.Request.Context(), accountID, req.Amount, occurringOn)
	case "WITHDRAWAL":
		method := shared.WithdrawalMethod(req.Method)
		if method == "" {
			method = shared.WithdrawalMethodTransfer
		}
		tx, err = h.bank.Withdraw(c.Request.Context(), accountID, req.Amount, method, occurringOn)
	default:
		RespondBadRequest(c, "Invalid transaction type")
		return
	}
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapTransactionToResponse(tx))
}

// GetByID retrieves transaction details by ID, returning 404 if not found
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "transaction")
	if !ok {
		return
	}

	tx, found := h.bank.Transaction(c.Request.Context(), id)
	if !found {
		RespondNotFound(c, "Transaction not found")
		return
	}

	RespondOK(c, mapTransactionToResponse(tx))
}

// List retrieves every transaction in recording order
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.bank.AllTransactions(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	response := TransactionListResponse{Transactions: make([]TransactionResponse, 0, len(txs))}
	for _, tx := range txs {
		response.Transactions = append(response.Transactions, mapTransactionToResponse(tx))
	}
	RespondOK(c, response)
}
