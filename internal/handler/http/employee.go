package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/handler/http/response"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/validator"
	"github.com/siteledger/siteledger-backend-go/internal/service/file"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler. Accepts multipart form data so the photo
// can ride along with the fields.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	// Cap parse memory at the photo limit plus form overhead.
	if err := r.ParseMultipartForm(file.MaxPhotoSize + 64*1024); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := employee.CreateEmployeeRequest{
		Name:          r.FormValue("name"),
		Designation:   r.FormValue("designation"),
		ContactNumber: r.FormValue("contact_number"),
	}

	if wage, ok := validator.ParseAmount(r.FormValue("daily_wage")); ok {
		req.DailyWage = wage
	}

	if f, header, err := r.FormFile("photo"); err == nil {
		defer f.Close()
		req.File = f
		req.FileHeader = header
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", created)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}
