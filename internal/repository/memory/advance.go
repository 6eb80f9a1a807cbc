package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/siteledger/siteledger-backend-go/internal/domain/advance"
)

type advanceRepository struct {
	mu       sync.RWMutex
	advances map[string]advance.Advance
}

func NewAdvanceRepository() advance.AdvanceRepository {
	return &advanceRepository{advances: make(map[string]advance.Advance)}
}

func (r *advanceRepository) Create(_ context.Context, adv advance.Advance) (advance.Advance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	adv.ID = uuid.NewString()
	adv.CreatedAt = time.Now().UTC()
	r.advances[adv.ID] = adv

	return adv, nil
}

func (r *advanceRepository) List(_ context.Context) ([]advance.Advance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	advances := make([]advance.Advance, 0, len(r.advances))
	for _, adv := range r.advances {
		advances = append(advances, adv)
	}
	sort.Slice(advances, func(i, j int) bool {
		if !advances[i].Date.Equal(advances[j].Date) {
			return advances[i].Date.After(advances[j].Date)
		}
		return advances[i].CreatedAt.After(advances[j].CreatedAt)
	})

	return advances, nil
}

func (r *advanceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.advances[id]; !ok {
		return advance.ErrAdvanceNotFound
	}
	delete(r.advances, id)

	return nil
}
