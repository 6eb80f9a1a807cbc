package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
)

type paymentRepository struct {
	mu       sync.RWMutex
	payments []payment.SalaryPayment
}

func NewPaymentRepository() payment.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(_ context.Context, p payment.SalaryPayment) (payment.SalaryPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	r.payments = append(r.payments, p)

	return p, nil
}

func (r *paymentRepository) List(_ context.Context) ([]payment.SalaryPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]payment.SalaryPayment, len(r.payments))
	copy(payments, r.payments)
	sort.Slice(payments, func(i, j int) bool {
		if !payments[i].PaymentDate.Equal(payments[j].PaymentDate) {
			return payments[i].PaymentDate.After(payments[j].PaymentDate)
		}
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})

	return payments, nil
}
