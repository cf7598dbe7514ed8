package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/covid-banking-ledger/internal/api/service"
	"github.com/covid-banking-ledger/internal/domain/shared"
)

// ClockHandler exposes the simulated business date, letting operators replay
// operations on chosen days.
type ClockHandler struct {
	bank   service.BankService
	logger *slog.Logger
}

// NewClockHandler creates a new clock handler
func NewClockHandler(logger *slog.Logger, bank service.BankService) *ClockHandler {
	return &ClockHandler{
		bank:   bank,
		logger: logger,
	}
}

// Get returns the simulated current date
func (h *ClockHandler) Get(c *gin.Context) {
	RespondOK(c, ClockResponse{CurrentDate: h.bank.CurrentDate().String()})
}

// Set moves the simulated current date
func (h *ClockHandler) Set(c *gin.Context) {
	var req SetClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	d, err := shared.ParseDate(req.CurrentDate)
	if err != nil {
		RespondBadRequest(c, err.Error())
		return
	}

	h.bank.SetCurrentDate(d)
	RespondOK(c, ClockResponse{CurrentDate: d.String()})
}
