package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/siteledger/siteledger-backend-go/internal/handler/http/response"
	"github.com/siteledger/siteledger-backend-go/internal/service/report"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	MonthlyAll(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	PayslipText(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Monthly implements ReportHandler. ?month=YYYY-MM is required.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	result, err := h.reportService.Monthly(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MonthlyAll implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyAll(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	results, err := h.reportService.MonthlyAll(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// Payslip implements ReportHandler.
func (h *ReportHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	slip, err := h.reportService.Payslip(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, slip)
}

// PayslipText implements ReportHandler. Returns the rendered document as
// plain text for download or printing.
func (h *ReportHandlerImpl) PayslipText(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	text, err := h.reportService.PayslipText(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
