package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
	"github.com/siteledger/siteledger-backend-go/internal/handler/http/response"
)

type VehicleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AddFuel(w http.ResponseWriter, r *http.Request)
	ListFuel(w http.ResponseWriter, r *http.Request)
	DeleteFuel(w http.ResponseWriter, r *http.Request)
}

type VehicleHandlerImpl struct {
	vehicleService vehicle.VehicleService
}

func NewVehicleHandler(vehicleService vehicle.VehicleService) VehicleHandler {
	return &VehicleHandlerImpl{vehicleService: vehicleService}
}

// Create implements VehicleHandler.
func (h *VehicleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicle.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.vehicleService.CreateVehicle(r.Context(), req)
	if err != nil {
		slog.Error("Create vehicle service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Vehicle created", created)
}

// List implements VehicleHandler.
func (h *VehicleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicleService.ListVehicles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, vehicles)
}

// AddFuel implements VehicleHandler.
func (h *VehicleHandlerImpl) AddFuel(w http.ResponseWriter, r *http.Request) {
	var req vehicle.AddFuelRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.vehicleService.AddFuelRecord(r.Context(), req)
	if err != nil {
		slog.Error("Add fuel record service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Fuel record added", created)
}

// ListFuel implements VehicleHandler.
func (h *VehicleHandlerImpl) ListFuel(w http.ResponseWriter, r *http.Request) {
	records, err := h.vehicleService.ListFuelRecords(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// DeleteFuel implements VehicleHandler.
func (h *VehicleHandlerImpl) DeleteFuel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.vehicleService.DeleteFuelRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Fuel record deleted", nil)
}
