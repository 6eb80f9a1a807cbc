package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
)

// EditWindow bounds which dates an admin may mark. The original deployment
// allowed only the current day on the main grid and the current week on the
// weekly grid; both behaviors ship as policy values.
type EditWindow string

const (
	EditWindowTodayOnly   EditWindow = "today-only"
	EditWindowCurrentWeek EditWindow = "current-week"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	editWindow     EditWindow
	hub            *sse.Hub
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	editWindow EditWindow,
	hub *sse.Hub,
	now func() time.Time,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		editWindow:     editWindow,
		hub:            hub,
		now:            now,
	}
}

// MarkPresent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkPresent(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	return s.mark(ctx, req.EmployeeID, req.Date, attendance.ActionMarkPresent, decimal.Zero, decimal.Zero)
}

// MarkAbsent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	return s.mark(ctx, req.EmployeeID, req.Date, attendance.ActionMarkAbsent, decimal.Zero, decimal.Zero)
}

// MarkLate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkLate(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	return s.mark(ctx, req.EmployeeID, req.Date, attendance.ActionMarkLate, decimal.Zero, decimal.Zero)
}

// MarkOvertime implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkOvertime(ctx context.Context, req attendance.MarkOvertimeRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	return s.mark(ctx, req.EmployeeID, req.Date, attendance.ActionMarkOvertime, decimal.Zero, req.Hours)
}

// MarkHalfDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkHalfDay(ctx context.Context, req attendance.MarkHalfDayRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	return s.mark(ctx, req.EmployeeID, req.Date, attendance.ActionMarkHalfDay, req.Amount, decimal.Zero)
}

// MarkCustom implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkCustom(ctx context.Context, req attendance.MarkCustomRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	return s.mark(ctx, req.EmployeeID, req.Date, attendance.ActionMarkCustom, req.Amount, decimal.Zero)
}

// mark applies one action to the (employee, date) cell, enforcing the edit
// window and the one-record-per-day invariant. The last action wins.
func (s *AttendanceServiceImpl) mark(ctx context.Context, employeeID, dateStr string, action attendance.MarkAction, amount, hours decimal.Decimal) (attendance.RecordResponse, error) {
	date, err := dateutil.ParseDay(dateStr)
	if err != nil {
		return attendance.RecordResponse{}, attendance.ErrDateNotEditable
	}

	if !s.editable(date) {
		return attendance.RecordResponse{}, attendance.ErrDateNotEditable
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	var current attendance.DayStatus
	if existing != nil {
		current = existing.Status
	}

	target, err := attendance.Transition(current, action)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec := attendance.Record{
		EmployeeID:    employeeID,
		Date:          date,
		WeekStart:     dateutil.WeekStart(date),
		Status:        target,
		CustomAmount:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		OvertimeRate:  decimal.Zero,
	}

	switch target {
	case attendance.StatusOvertime:
		rec.OvertimeHours = hours
		rec.OvertimeRate = attendance.OvertimeRate(emp.DailyWage)
		rec.CustomAmount = attendance.OvertimeAmount(emp.DailyWage, hours)
	case attendance.StatusHalfDay, attendance.StatusCustom:
		rec.CustomAmount = amount
	}

	if err := rec.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if existing != nil {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		if err := s.attendanceRepo.Update(ctx, rec); err != nil {
			return attendance.RecordResponse{}, err
		}
	} else {
		rec, err = s.attendanceRepo.Create(ctx, rec)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
	}

	s.publishSnapshot(ctx)

	return toRecordResponse(rec), nil
}

func (s *AttendanceServiceImpl) editable(date time.Time) bool {
	now := s.now()
	switch s.editWindow {
	case EditWindowCurrentWeek:
		return dateutil.WeekStart(date).Equal(dateutil.CurrentWeek(now))
	default:
		return dateutil.SameDay(date, now)
	}
}

// WeekGrid implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) WeekGrid(ctx context.Context, dayOf string) (attendance.WeekGridResponse, error) {
	anchor := s.now()
	if dayOf != "" {
		parsed, err := dateutil.ParseDay(dayOf)
		if err != nil {
			return attendance.WeekGridResponse{}, fmt.Errorf("invalid day: %w", err)
		}
		anchor = parsed
	}

	weekStart := dateutil.WeekStart(anchor)
	weekEnd := dateutil.WeekEnd(weekStart)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.WeekGridResponse{}, err
	}
	records, err := s.attendanceRepo.ListByWeek(ctx, weekStart)
	if err != nil {
		return attendance.WeekGridResponse{}, err
	}

	days := make([]string, 0, 7)
	for d := weekStart; !d.After(weekEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, dateutil.FormatDay(d))
	}

	byEmployee := make(map[string]map[string]attendance.RecordResponse)
	for _, rec := range records {
		if byEmployee[rec.EmployeeID] == nil {
			byEmployee[rec.EmployeeID] = make(map[string]attendance.RecordResponse)
		}
		byEmployee[rec.EmployeeID][dateutil.FormatDay(rec.Date)] = toRecordResponse(rec)
	}

	rows := make([]attendance.WeekGridRow, 0, len(employees))
	for _, emp := range employees {
		cells := byEmployee[emp.ID]
		if cells == nil {
			cells = make(map[string]attendance.RecordResponse)
		}
		rows = append(rows, attendance.WeekGridRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			DailyWage:    emp.DailyWage,
			Records:      cells,
		})
	}

	return attendance.WeekGridResponse{
		WeekStart: dateutil.FormatDay(weekStart),
		WeekEnd:   dateutil.FormatDay(weekEnd),
		Days:      days,
		Rows:      rows,
	}, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID, from, to string) ([]attendance.RecordResponse, error) {
	fromDay, err := dateutil.ParseDay(from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}
	toDay, err := dateutil.ParseDay(to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %w", err)
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}

	return responses, nil
}

func (s *AttendanceServiceImpl) publishSnapshot(ctx context.Context) {
	grid, err := s.WeekGrid(ctx, "")
	if err != nil {
		slog.Warn("failed to build attendance snapshot", "error", err)
		return
	}
	s.hub.Publish(sse.CollectionAttendance, sse.Event{
		Collection: sse.CollectionAttendance,
		Event:      sse.EventSnapshot,
		Data:       grid,
	})
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Date:          dateutil.FormatDay(rec.Date),
		WeekStart:     dateutil.FormatDay(rec.WeekStart),
		Status:        string(rec.Status),
		CustomAmount:  rec.CustomAmount,
		OvertimeHours: rec.OvertimeHours,
		OvertimeRate:  rec.OvertimeRate,
	}
}
