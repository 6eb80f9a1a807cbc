package postgresql

import (
	"context"
	"fmt"

	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (employee_id, employee_name, amount, date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		adv.EmployeeID,
		adv.EmployeeName,
		adv.Amount,
		adv.Date,
		adv.Description,
	).Scan(&adv.ID, &adv.CreatedAt)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return adv, nil
}

// List implements advance.AdvanceRepository.
func (r *advanceRepository) List(ctx context.Context) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_name, amount, date, description, created_at
		FROM advances
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var adv advance.Advance
		if err := rows.Scan(
			&adv.ID,
			&adv.EmployeeID,
			&adv.EmployeeName,
			&adv.Amount,
			&adv.Date,
			&adv.Description,
			&adv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, adv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read advances: %w", err)
	}

	return advances, nil
}

// Delete implements advance.AdvanceRepository.
func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}
