package payment

import "context"

type PaymentService interface {
	Record(ctx context.Context, req RecordPaymentRequest) (PaymentResponse, error)
	List(ctx context.Context) ([]PaymentResponse, error)
	// Console returns one settlement row per employee for the current week.
	Console(ctx context.Context) ([]ConsoleResponse, error)
}
