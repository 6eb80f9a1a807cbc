package advance

import "context"

type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	List(ctx context.Context) ([]AdvanceResponse, error)
	Delete(ctx context.Context, id string) error
}
