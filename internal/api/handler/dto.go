package handler

import (
	"github.com/shopspring/decimal"

	"github.com/covid-banking-ledger/internal/api/service"
	"github.com/covid-banking-ledger/internal/domain/account"
)

// OpenAccountRequest represents a request to open a new account
type OpenAccountRequest struct {
	Type           string          `json:"type" binding:"required,oneof=FOREIGN RESTRICTED RESTRICTED_COMPANY"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
	OpenedOn       string          `json:"opened_on,omitempty"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	OpenedOn string `json:"opened_on"`
	Balance  string `json:"balance"`
}

// OpenAccountResponse carries the new account plus its opening credit, if any
type OpenAccountResponse struct {
	Account            AccountResponse      `json:"account"`
	InitialTransaction *TransactionResponse `json:"initial_transaction,omitempty"`
}

// AccountListResponse represents a list of accounts in API responses
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// CreateTransactionRequest represents a deposit or withdrawal request
type CreateTransactionRequest struct {
	AccountID   string          `json:"account_id" binding:"required,uuid"`
	Type        string          `json:"type" binding:"required,oneof=DEPOSIT WITHDRAWAL"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method,omitempty" binding:"omitempty,oneof=ATM TRANSFER"`
	OccurringOn string          `json:"occurring_on,omitempty"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	Kind       string `json:"kind"`
	Amount     string `json:"amount"`
	OccurredOn string `json:"occurred_on"`
}

// TransactionListResponse represents a list of transactions in API responses
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CloseAccountRequest carries the optional closing date
type CloseAccountRequest struct {
	OccurringOn string `json:"occurring_on,omitempty"`
}

// CloseAccountResponse reports the outcome of closing an account
type CloseAccountResponse struct {
	AccountID         string               `json:"account_id"`
	BalanceWithdrawal *TransactionResponse `json:"balance_withdrawal,omitempty"`
}

// ClockResponse represents the simulated current date
type ClockResponse struct {
	CurrentDate string `json:"current_date"`
}

// SetClockRequest moves the simulated current date
type SetClockRequest struct {
	CurrentDate string `json:"current_date" binding:"required"`
}

func mapAccountToResponse(d service.AccountDetails) AccountResponse {
	return AccountResponse{
		ID:       d.ID.String(),
		Type:     string(d.Type),
		OpenedOn: d.OpenedOn.String(),
		Balance:  d.Balance.String(),
	}
}

func mapTransactionToResponse(tx account.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         tx.ID.String(),
		AccountID:  tx.AccountID.String(),
		Kind:       string(tx.Kind),
		Amount:     tx.Amount.String(),
		OccurredOn: tx.OccurredOn.String(),
	}
}
