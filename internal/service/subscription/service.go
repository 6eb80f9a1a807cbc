package subscription

import (
	"context"
	"errors"

	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/domain/vehicle"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
)

var ErrUnknownCollection = errors.New("unknown collection")

// SubscriptionService bridges the SSE hub and the read services: it resolves
// the initial snapshot a new subscriber receives before live updates start.
type SubscriptionService interface {
	Snapshot(ctx context.Context, collection string) (interface{}, error)
	Subscribe(collection string) (chan sse.Event, func(), error)
}

type SubscriptionServiceImpl struct {
	hub               *sse.Hub
	employeeService   employee.EmployeeService
	attendanceService attendance.AttendanceService
	advanceService    advance.AdvanceService
	paymentService    payment.PaymentService
	vehicleService    vehicle.VehicleService
}

func NewSubscriptionService(
	hub *sse.Hub,
	employeeService employee.EmployeeService,
	attendanceService attendance.AttendanceService,
	advanceService advance.AdvanceService,
	paymentService payment.PaymentService,
	vehicleService vehicle.VehicleService,
) SubscriptionService {
	return &SubscriptionServiceImpl{
		hub:               hub,
		employeeService:   employeeService,
		attendanceService: attendanceService,
		advanceService:    advanceService,
		paymentService:    paymentService,
		vehicleService:    vehicleService,
	}
}

// Snapshot implements SubscriptionService.
func (s *SubscriptionServiceImpl) Snapshot(ctx context.Context, collection string) (interface{}, error) {
	switch collection {
	case sse.CollectionEmployees:
		return s.employeeService.List(ctx)
	case sse.CollectionAttendance:
		return s.attendanceService.WeekGrid(ctx, "")
	case sse.CollectionAdvances:
		return s.advanceService.List(ctx)
	case sse.CollectionPayments:
		return s.paymentService.Console(ctx)
	case sse.CollectionVehicles:
		return s.vehicleService.ListVehicles(ctx)
	case sse.CollectionFuel:
		return s.vehicleService.ListFuelRecords(ctx)
	default:
		return nil, ErrUnknownCollection
	}
}

// Subscribe implements SubscriptionService.
func (s *SubscriptionServiceImpl) Subscribe(collection string) (chan sse.Event, func(), error) {
	if !sse.ValidCollection(collection) {
		return nil, nil, ErrUnknownCollection
	}
	ch, cleanup := s.hub.Subscribe(collection)
	return ch, cleanup, nil
}
