package attendance

import "context"

type AttendanceService interface {
	MarkPresent(ctx context.Context, req MarkRequest) (RecordResponse, error)
	MarkAbsent(ctx context.Context, req MarkRequest) (RecordResponse, error)
	// MarkLate requires the day to be marked already.
	MarkLate(ctx context.Context, req MarkRequest) (RecordResponse, error)
	MarkOvertime(ctx context.Context, req MarkOvertimeRequest) (RecordResponse, error)
	MarkHalfDay(ctx context.Context, req MarkHalfDayRequest) (RecordResponse, error)
	MarkCustom(ctx context.Context, req MarkCustomRequest) (RecordResponse, error)

	// WeekGrid returns the attendance grid for the week containing dayOf
	// (YYYY-MM-DD); an empty dayOf means the current week.
	WeekGrid(ctx context.Context, dayOf string) (WeekGridResponse, error)

	// ListByEmployee returns one employee's records in [from, to] inclusive.
	ListByEmployee(ctx context.Context, employeeID, from, to string) ([]RecordResponse, error)
}
