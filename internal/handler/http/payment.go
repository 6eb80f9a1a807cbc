package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Console(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// Record implements PaymentHandler.
func (h *PaymentHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req payment.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.paymentService.Record(r.Context(), req)
	if err != nil {
		slog.Error("Record payment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payment recorded", created)
}

// List implements PaymentHandler.
func (h *PaymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payments)
}

// Console implements PaymentHandler.
func (h *PaymentHandlerImpl) Console(w http.ResponseWriter, r *http.Request) {
	rows, err := h.paymentService.Console(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}
