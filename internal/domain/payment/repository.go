package payment

import "context"

// PaymentRepository is append-only: no update, no delete. Corrections are
// compensating entries.
type PaymentRepository interface {
	Create(ctx context.Context, p SalaryPayment) (SalaryPayment, error)
	// List returns every payment, newest first.
	List(ctx context.Context) ([]SalaryPayment, error)
}
