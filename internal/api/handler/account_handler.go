package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/covid-banking-ledger/internal/api/service"
	"github.com/covid-banking-ledger/internal/domain/shared"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	bank   service.BankService
	logger *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, bank service.BankService) *AccountHandler {
	return &AccountHandler{
		bank:   bank,
		logger: logger,
	}
}

// Open handles opening a new account, validating the tier and the optional
// opening deposit
func (h *AccountHandler) Open(c *gin.Context) {
	var req OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	openedOn, ok := parseOptionalDate(c, req.OpenedOn)
	if !ok {
		return
	}

	details, tx, err := h.bank.OpenAccount(c.Request.Context(), shared.AccountType(req.Type), req.InitialDeposit, openedOn)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	response := OpenAccountResponse{Account: mapAccountToResponse(details)}
	if tx != nil {
		txResponse := mapTransactionToResponse(*tx)
		response.InitialTransaction = &txResponse
	}
	RespondCreated(c, response)
}

// GetByID retrieves an account by its ID, returning 404 if it was never
// opened or has been closed
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "account")
	if !ok {
		return
	}

	details, err := h.bank.AccountDetails(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondOK(c, mapAccountToResponse(details))
}

// List retrieves every live account in recording order
func (h *AccountHandler) List(c *gin.Context) {
	details, err := h.bank.AllAccounts(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	response := AccountListResponse{Accounts: make([]AccountResponse, 0, len(details))}
	for _, d := range details {
		response.Accounts = append(response.Accounts, mapAccountToResponse(d))
	}
	RespondOK(c, response)
}

// Close handles closing an account. Any remaining balance is withdrawn as a
// terminal debit, returned in the response.
func (h *AccountHandler) Close(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "account")
	if !ok {
		return
	}

	// The body is optional; absence means "close today".
	var req CloseAccountRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Error("invalid request body", "error", err)
			RespondBadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}
	occurringOn, ok := parseOptionalDate(c, req.OccurringOn)
	if !ok {
		return
	}

	tx, err := h.bank.CloseAccount(c.Request.Context(), id, occurringOn)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	response := CloseAccountResponse{AccountID: id.String()}
	if tx != nil {
		txResponse := mapTransactionToResponse(*tx)
		response.BalanceWithdrawal = &txResponse
	}
	RespondOK(c, response)
}

// Transactions retrieves an account's transaction history in recording
// order. History survives closing, so this works for closed accounts too.
func (h *AccountHandler) Transactions(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "account")
	if !ok {
		return
	}

	txs, err := h.bank.AccountTransactions(c.Request.Context(), id)
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

// parseUUIDParam parses the :id path parameter, responding 400 on failure.
func parseUUIDParam(c *gin.Context, logger *slog.Logger, entity string) (uuid.UUID, bool) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		logger.Error("invalid "+entity+" ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid "+entity+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalDate parses a "2006-01-02" date, treating empty as the zero
// date (which the service resolves to the clock's current date).
func parseOptionalDate(c *gin.Context, raw string) (shared.Date, bool) {
	if raw == "" {
		return shared.Date{}, true
	}
	d, err := shared.ParseDate(raw)
	if err != nil {
		RespondBadRequest(c, err.Error())
		return shared.Date{}, false
	}
	return d, true
}
