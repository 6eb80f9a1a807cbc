package postgresql

import (
	"context"
	"fmt"

	"github.com/siteledger/siteledger-backend-go/internal/domain/payment"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/database"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create implements payment.PaymentRepository.
func (r *paymentRepository) Create(ctx context.Context, p payment.SalaryPayment) (payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_payments (employee_id, amount, payment_date, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID,
		p.Amount,
		p.PaymentDate,
		p.Description,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return payment.SalaryPayment{}, fmt.Errorf("failed to create salary payment: %w", err)
	}

	return p, nil
}

// List implements payment.PaymentRepository.
func (r *paymentRepository) List(ctx context.Context) ([]payment.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, payment_date, description, created_at
		FROM salary_payments
		ORDER BY payment_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.SalaryPayment
	for rows.Next() {
		var p payment.SalaryPayment
		if err := rows.Scan(
			&p.ID,
			&p.EmployeeID,
			&p.Amount,
			&p.PaymentDate,
			&p.Description,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read salary payments: %w", err)
	}

	return payments, nil
}
