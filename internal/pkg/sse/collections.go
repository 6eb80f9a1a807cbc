package sse

// Collection names clients may subscribe to. Each write to a collection
// publishes a fresh snapshot under its name.
const (
	CollectionEmployees  = "employees"
	CollectionAttendance = "attendance"
	CollectionAdvances   = "advances"
	CollectionPayments   = "salary_payments"
	CollectionVehicles   = "vehicles"
	CollectionFuel       = "fuel_records"
)

// EventSnapshot is the only event type: the full current record list.
const EventSnapshot = "snapshot"

func ValidCollection(name string) bool {
	switch name {
	case CollectionEmployees, CollectionAttendance, CollectionAdvances,
		CollectionPayments, CollectionVehicles, CollectionFuel:
		return true
	}
	return false
}
