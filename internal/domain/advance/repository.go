package advance

import "context"

type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)
	// List returns every advance, newest first.
	List(ctx context.Context) ([]Advance, error)
	Delete(ctx context.Context, id string) error
}
