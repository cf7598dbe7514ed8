package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/covid-banking-ledger/internal/domain/shared"
)

func TestClockHandler_Get(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	mockService := new(MockBankService)
	handler := NewClockHandler(logger, mockService)
	mockService.On("CurrentDate").Return(shared.NewDate(2020, time.April, 1))

	router := setupTestRouter()
	router.GET("/clock", handler.Get)

	req, _ := http.NewRequest(http.MethodGet, "/clock", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	responseBody := decodeData[ClockResponse](t, rr.Body.Bytes())
	assert.Equal(t, "2020-04-01", responseBody.CurrentDate)
	mockService.AssertExpectations(t)
}

func TestClockHandler_Set(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockBankService)
		handler := NewClockHandler(logger, mockService)
		mockService.On("SetCurrentDate", shared.NewDate(2020, time.April, 2)).Return()

		router := setupTestRouter()
		router.PUT("/clock", handler.Set)

		req, _ := http.NewRequest(http.MethodPut, "/clock", bytes.NewBufferString(`{"current_date":"2020-04-02"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		responseBody := decodeData[ClockResponse](t, rr.Body.Bytes())
		assert.Equal(t, "2020-04-02", responseBody.CurrentDate)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingDate", func(t *testing.T) {
		mockService := new(MockBankService)
		handler := NewClockHandler(logger, mockService)

		router := setupTestRouter()
		router.PUT("/clock", handler.Set)

		req, _ := http.NewRequest(http.MethodPut, "/clock", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("MalformedDate", func(t *testing.T) {
		mockService := new(MockBankService)
		handler := NewClockHandler(logger, mockService)

		router := setupTestRouter()
		router.PUT("/clock", handler.Set)

		req, _ := http.NewRequest(http.MethodPut, "/clock", bytes.NewBufferString(`{"current_date":"02/04/2020"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})
}
