package store

import (
	"context"
	"sync"

	"github.com/haeyanglab/searep/internal/marine"
)

// Memory is an in-process report store, used in tests and as the default
// when no database is configured.
type Memory struct {
	mu      sync.RWMutex
	reports map[string]marine.Report
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{reports: make(map[string]marine.Report)}
}

func (m *Memory) Put(_ context.Context, report marine.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[report.ReportID] = report
	return nil
}

func (m *Memory) Get(_ context.Context, reportID string) (marine.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	report, ok := m.reports[reportID]
	if !ok {
		return marine.Report{}, ErrNotFound
	}
	return report, nil
}
