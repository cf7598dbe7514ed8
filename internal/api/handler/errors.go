package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/covid-banking-ledger/internal/domain/account"
	"github.com/covid-banking-ledger/internal/domain/ledger"
)

// policyCodes maps each business-rule sentinel to its stable API error code.
var policyCodes = []struct {
	err  error
	code string
}{
	{account.ErrInsufficientFunds, "INSUFFICIENT_FUNDS"},
	{account.ErrDailyWithdrawalLimit, "DAILY_WITHDRAWAL_LIMIT_EXCEEDED"},
	{account.ErrATMWithdrawalNotAllowed, "ATM_WITHDRAWAL_NOT_ALLOWED"},
	{account.ErrClosingCompanyAccount, "CLOSING_COMPANY_ACCOUNT_FORBIDDEN"},
	{account.ErrOpenAccountPolicy, "OPEN_ACCOUNT_POLICY_VIOLATION"},
}

// respondDomainError translates core errors into HTTP responses: missing
// accounts become 404, contract violations 400, business-rule rejections 422
// with a stable code, and anything else (persistence failures included) 500.
func respondDomainError(c *gin.Context, logger *slog.Logger, err error) {
	var notFound ledger.ErrAccountNotFound
	if errors.As(err, &notFound) {
		RespondNotFound(c, notFound.Error())
		return
	}

	var unknownType account.ErrUnknownAccountType
	if errors.As(err, &unknownType) {
		RespondBadRequest(c, unknownType.Error())
		return
	}

	if errors.Is(err, account.ErrInvalidAmount) {
		RespondBadRequest(c, err.Error())
		return
	}

	if errors.Is(err, account.ErrPolicy) {
		for _, pc := range policyCodes {
			if errors.Is(err, pc.err) {
				RespondUnprocessable(c, pc.code, err.Error())
				return
			}
		}
		RespondUnprocessable(c, "ACCOUNT_POLICY_VIOLATION", err.Error())
		return
	}

	logger.Error("unexpected error handling request", "path", c.Request.URL.Path, "error", err)
	RespondInternalError(c)
}
