package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/payroll"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
)

type PaymentServiceImpl struct {
	paymentRepo    payment.PaymentRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	calc           payroll.Calculator
	hub            *sse.Hub
	now            func() time.Time
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	calc payroll.Calculator,
	hub *sse.Hub,
	now func() time.Time,
) payment.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:    paymentRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		calc:           calc,
		hub:            hub,
		now:            now,
	}
}

// Record implements payment.PaymentService. The ledger is append-only;
// negative amounts are compensating entries.
func (s *PaymentServiceImpl) Record(ctx context.Context, req payment.RecordPaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	date, err := dateutil.ParseDay(req.PaymentDate)
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("invalid payment date: %w", err)
	}

	p := payment.SalaryPayment{
		EmployeeID:  emp.ID,
		Amount:      req.Amount,
		PaymentDate: date,
		Description: req.Description,
	}

	created, err := s.paymentRepo.Create(ctx, p)
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to record payment: %w", err)
	}

	s.publishSnapshot(ctx)

	return toResponse(created), nil
}

// List implements payment.PaymentService.
func (s *PaymentServiceImpl) List(ctx context.Context) ([]payment.PaymentResponse, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, toResponse(p))
	}

	return responses, nil
}

// Console implements payment.PaymentService. Every row uses the same
// remaining-balance formula as the monthly report.
func (s *PaymentServiceImpl) Console(ctx context.Context) ([]payment.ConsoleResponse, error) {
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
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]payment.ConsoleResponse, 0, len(employees))
	for _, emp := range employees {
		week := s.calc.WeekSummary(emp, records, advances, weekStart)

		paid := decimal.Zero
		for _, p := range payments {
			if p.EmployeeID == emp.ID && dateutil.WeekStart(p.PaymentDate).Equal(weekStart) {
				paid = paid.Add(p.Amount)
			}
		}

		var breakdown []payment.AdvanceBreakdown
		for _, adv := range advances {
			if adv.EmployeeID == emp.ID && dateutil.WeekStart(adv.Date).Equal(weekStart) {
				breakdown = append(breakdown, payment.AdvanceBreakdown{
					ID:          adv.ID,
					Amount:      adv.Amount,
					Date:        dateutil.FormatDay(adv.Date),
					Description: adv.Description,
				})
			}
		}

		remaining := payroll.RemainingBalance(week.Wages, week.Advances, paid)

		rows = append(rows, payment.ConsoleResponse{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			WeekStart:    dateutil.FormatDay(weekStart),
			DaysWorked:   week.DaysWorked,
			WeekWages:    week.Wages,
			WeekAdvances: week.Advances,
			SalaryPaid:   paid,
			Remaining:    remaining,
			Status:       payment.StatusFor(remaining),
			Advances:     breakdown,
		})
	}

	return rows, nil
}

func (s *PaymentServiceImpl) publishSnapshot(ctx context.Context) {
	rows, err := s.Console(ctx)
	if err != nil {
		slog.Warn("failed to build payments snapshot", "error", err)
		return
	}
	s.hub.Publish(sse.CollectionPayments, sse.Event{
		Collection: sse.CollectionPayments,
		Event:      sse.EventSnapshot,
		Data:       rows,
	})
}

func toResponse(p payment.SalaryPayment) payment.PaymentResponse {
	return payment.PaymentResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		Amount:      p.Amount,
		PaymentDate: dateutil.FormatDay(p.PaymentDate),
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
