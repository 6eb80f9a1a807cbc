package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	MarkPresent(w http.ResponseWriter, r *http.Request)
	MarkAbsent(w http.ResponseWriter, r *http.Request)
	MarkLate(w http.ResponseWriter, r *http.Request)
	MarkOvertime(w http.ResponseWriter, r *http.Request)
	MarkHalfDay(w http.ResponseWriter, r *http.Request)
	MarkCustom(w http.ResponseWriter, r *http.Request)
	WeekGrid(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// MarkPresent implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkPresent(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.MarkPresent(r.Context(), req)
	if err != nil {
		slog.Error("MarkPresent service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

// MarkAbsent implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkAbsent(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.MarkAbsent(r.Context(), req)
	if err != nil {
		slog.Error("MarkAbsent service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

// MarkLate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkLate(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.MarkLate(r.Context(), req)
	if err != nil {
		slog.Error("MarkLate service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

// MarkOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkOvertime(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.MarkOvertime(r.Context(), req)
	if err != nil {
		slog.Error("MarkOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

// MarkHalfDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkHalfDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkHalfDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.MarkHalfDay(r.Context(), req)
	if err != nil {
		slog.Error("MarkHalfDay service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

// MarkCustom implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkCustom(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkCustomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.MarkCustom(r.Context(), req)
	if err != nil {
		slog.Error("MarkCustom service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

// WeekGrid implements AttendanceHandler. ?day=YYYY-MM-DD selects the week;
// default is the current week.
func (h *AttendanceHandlerImpl) WeekGrid(w http.ResponseWriter, r *http.Request) {
	grid, err := h.attendanceService.WeekGrid(r.Context(), r.URL.Query().Get("day"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, grid)
}

// ListByEmployee implements AttendanceHandler. ?from and ?to bound the range.
func (h *AttendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	records, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}
