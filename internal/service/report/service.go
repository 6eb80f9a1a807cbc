package report

import (
	"context"
	"fmt"
	"time"

	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/payroll"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/validator"
)

var ErrInvalidMonth = fmt.Errorf("month must be in YYYY-MM format")

type ReportService interface {
	// Monthly builds one employee's report for a YYYY-MM month.
	Monthly(ctx context.Context, employeeID, month string) (payroll.MonthlyReport, error)
	// MonthlyAll builds every employee's report for the month.
	MonthlyAll(ctx context.Context, month string) ([]payroll.MonthlyReport, error)
	Payslip(ctx context.Context, employeeID, month string) (payroll.Payslip, error)
	PayslipText(ctx context.Context, employeeID, month string) (string, error)
}

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	paymentRepo    payment.PaymentRepository
	calc           payroll.Calculator
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	paymentRepo payment.PaymentRepository,
	calc payroll.Calculator,
) ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		paymentRepo:    paymentRepo,
		calc:           calc,
	}
}

// Monthly implements ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, employeeID, month string) (payroll.MonthlyReport, error) {
	year, m, err := parseMonth(month)
	if err != nil {
		return payroll.MonthlyReport{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.MonthlyReport{}, err
	}

	return s.build(ctx, emp, year, m)
}

// MonthlyAll implements ReportService.
func (s *ReportServiceImpl) MonthlyAll(ctx context.Context, month string) ([]payroll.MonthlyReport, error) {
	year, m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]payroll.MonthlyReport, 0, len(employees))
	for _, emp := range employees {
		report, err := s.build(ctx, emp, year, m)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// Payslip implements ReportService.
func (s *ReportServiceImpl) Payslip(ctx context.Context, employeeID, month string) (payroll.Payslip, error) {
	year, m, err := parseMonth(month)
	if err != nil {
		return payroll.Payslip{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	report, err := s.build(ctx, emp, year, m)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return payroll.BuildPayslip(emp, report), nil
}

// PayslipText implements ReportService.
func (s *ReportServiceImpl) PayslipText(ctx context.Context, employeeID, month string) (string, error) {
	slip, err := s.Payslip(ctx, employeeID, month)
	if err != nil {
		return "", err
	}
	return slip.RenderText(), nil
}

func (s *ReportServiceImpl) build(ctx context.Context, emp employee.Employee, year int, month time.Month) (payroll.MonthlyReport, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return payroll.MonthlyReport{}, err
	}
	advances, err := s.advanceRepo.List(ctx)
	if err != nil {
		return payroll.MonthlyReport{}, err
	}
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return payroll.MonthlyReport{}, err
	}

	return s.calc.BuildMonthlyReport(emp, records, advances, payments, year, month), nil
}

func parseMonth(month string) (int, time.Month, error) {
	t, ok := validator.IsValidMonth(month)
	if !ok {
		return 0, 0, ErrInvalidMonth
	}
	return t.Year(), t.Month(), nil
}
