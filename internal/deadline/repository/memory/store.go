package memory

import (
	"context"
	"fmt"
	"sync"

	"study-planner/internal/deadline/repository"
	"study-planner/internal/model"
)

// Store keeps deadlines in a slice for the lifetime of a session.
type Store struct {
	mu      sync.RWMutex
	records []model.Deadline
}

var _ repository.Repository = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

func (s *Store) Append(ctx context.Context, d model.Deadline) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, d)
	return len(s.records) - 1, nil
}

func (s *Store) Update(ctx context.Context, opt repository.UpdateOptions) (model.Deadline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(opt.Index); err != nil {
		return model.Deadline{}, err
	}

	rec := &s.records[opt.Index]
	if opt.Course != nil {
		rec.Course = *opt.Course
	}
	if opt.Date != nil {
		rec.Date = *opt.Date
	}
	return *rec, nil
}

func (s *Store) Remove(ctx context.Context, index int) (model.Deadline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return model.Deadline{}, err
	}

	removed := s.records[index]
	s.records = append(s.records[:index], s.records[index+1:]...)
	return removed, nil
}

func (s *Store) All(ctx context.Context) ([]model.Deadline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Deadline, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Store) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// checkIndex must be called with the lock held.
func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%w: %d (len %d)", repository.ErrIndexOutOfRange, index, len(s.records))
	}
	return nil
}
