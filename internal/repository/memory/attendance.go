package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/siteledger/siteledger-backend-go/internal/domain/attendance"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
)

type attendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Record
}

func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepository{records: make(map[string]attendance.Record)}
}

func (r *attendanceRepository) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Mirror the database upsert: a second create for the same
	// (employee, date) rewrites the existing record.
	for id, existing := range r.records {
		if existing.EmployeeID == rec.EmployeeID && dateutil.SameDay(existing.Date, rec.Date) {
			rec.ID = id
			rec.CreatedAt = existing.CreatedAt
			rec.UpdatedAt = time.Now().UTC()
			r.records[id] = rec
			return rec, nil
		}
	}

	now := time.Now().UTC()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.records[rec.ID] = rec

	return rec, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && dateutil.SameDay(rec.Date, date) {
			found := rec
			return &found, nil
		}
	}

	return nil, nil
}

func (r *attendanceRepository) Update(_ context.Context, rec attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[rec.ID]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	r.records[rec.ID] = rec

	return nil
}

func (r *attendanceRepository) List(_ context.Context) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.filter(func(attendance.Record) bool { return true })
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	return records, nil
}

func (r *attendanceRepository) ListByWeek(_ context.Context, weekStart time.Time) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.filter(func(rec attendance.Record) bool {
		return rec.WeekStart.Equal(weekStart)
	})
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

func (r *attendanceRepository) ListByEmployee(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.filter(func(rec attendance.Record) bool {
		if rec.EmployeeID != employeeID {
			return false
		}
		day := dateutil.Truncate(rec.Date)
		return !day.Before(dateutil.Truncate(from)) && !day.After(dateutil.Truncate(to))
	})
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

// filter must be called with the lock held.
func (r *attendanceRepository) filter(keep func(attendance.Record) bool) []attendance.Record {
	var records []attendance.Record
	for _, rec := range r.records {
		if keep(rec) {
			records = append(records, rec)
		}
	}
	return records
}
