package advance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
)

type AdvanceServiceImpl struct {
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
	hub          *sse.Hub
}

func NewAdvanceService(
	advanceRepo advance.AdvanceRepository,
	employeeRepo employee.EmployeeRepository,
	hub *sse.Hub,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
		hub:          hub,
	}
}

// Create implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	date, err := dateutil.ParseDay(req.Date)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	adv := advance.Advance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Amount:       req.Amount,
		Date:         date,
		Description:  req.Description,
	}

	created, err := s.advanceRepo.Create(ctx, adv)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to create advance: %w", err)
	}

	s.publishSnapshot(ctx)

	return toResponse(created), nil
}

// List implements advance.AdvanceService.
func (s *AdvanceServiceImpl) List(ctx context.Context) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, adv := range advances {
		responses = append(responses, toResponse(adv))
	}

	return responses, nil
}

// Delete implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.advanceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishSnapshot(ctx)

	return nil
}

func (s *AdvanceServiceImpl) publishSnapshot(ctx context.Context) {
	advances, err := s.List(ctx)
	if err != nil {
		slog.Warn("failed to build advances snapshot", "error", err)
		return
	}
	s.hub.Publish(sse.CollectionAdvances, sse.Event{
		Collection: sse.CollectionAdvances,
		Event:      sse.EventSnapshot,
		Data:       advances,
	})
}

func toResponse(adv advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:           adv.ID,
		EmployeeID:   adv.EmployeeID,
		EmployeeName: adv.EmployeeName,
		Amount:       adv.Amount,
		Date:         dateutil.FormatDay(adv.Date),
		Description:  adv.Description,
		CreatedAt:    adv.CreatedAt.Format(time.RFC3339),
	}
}
