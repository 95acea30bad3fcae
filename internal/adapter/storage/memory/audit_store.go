package memory

import (
	"context"
	"sync"

	"federation-payments/internal/core/domain"
)

// AuditStore implements ports.AuditRepository in memory, for the memory
// storage driver.
type AuditStore struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func NewAuditStore() *AuditStore {
	return &AuditStore{}
}

func (s *AuditStore) Create(_ context.Context, log *domain.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *log)
	return nil
}

// Entries returns a copy of the recorded entries in insertion order.
func (s *AuditStore) Entries() []domain.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditLog(nil), s.entries...)
}
