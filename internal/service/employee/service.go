package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/payroll"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
	"github.com/siteledger/siteledger-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	fileService    file.FileService
	calc           payroll.Calculator
	hub            *sse.Hub
	now            func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	fileService file.FileService,
	calc payroll.Calculator,
	hub *sse.Hub,
	now func() time.Time,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		fileService:    fileService,
		calc:           calc,
		hub:            hub,
		now:            now,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		Name:          req.Name,
		Designation:   req.Designation,
		ContactNumber: req.ContactNumber,
		DailyWage:     req.DailyWage,
	}

	if req.File != nil && req.FileHeader != nil {
		url, err := s.fileService.UploadEmployeePhoto(ctx, req.File, req.FileHeader)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.PhotoURL = &url
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.publishSnapshot(ctx)

	return toResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeSummaryResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	weekStart := dateutil.CurrentWeek(s.now())
	records, err := s.attendanceRepo.ListByWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]employee.EmployeeSummaryResponse, 0, len(employees))
	for _, emp := range employees {
		week := s.calc.WeekSummary(emp, records, advances, weekStart)
		summaries = append(summaries, employee.EmployeeSummaryResponse{
			EmployeeResponse: toResponse(emp),
			WeekStart:        dateutil.FormatDay(week.WeekStart),
			DaysWorked:       week.DaysWorked,
			WeekWages:        week.Wages,
			WeekAdvances:     week.Advances,
			WeeklyBalance:    week.Balance,
		})
	}

	return summaries, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishSnapshot(ctx)

	return nil
}

func (s *EmployeeServiceImpl) publishSnapshot(ctx context.Context) {
	summaries, err := s.List(ctx)
	if err != nil {
		slog.Warn("failed to build employees snapshot", "error", err)
		return
	}
	s.hub.Publish(sse.CollectionEmployees, sse.Event{
		Collection: sse.CollectionEmployees,
		Event:      sse.EventSnapshot,
		Data:       summaries,
	})
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		Designation:   emp.Designation,
		ContactNumber: emp.ContactNumber,
		DailyWage:     emp.DailyWage,
		PhotoURL:      emp.PhotoURL,
		CreatedAt:     emp.CreatedAt.Format(time.RFC3339),
	}
}
