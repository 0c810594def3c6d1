// Package store persists assembled reports. Reports are written exactly
// once at submission time and only ever read afterwards, so both
// implementations are simple keyed maps: one in memory, one on SQLite.
package store

import (
	"context"
	"errors"

	"github.com/haeyanglab/searep/internal/marine"
)

// ErrNotFound is returned when no report exists under the requested ID.
var ErrNotFound = errors.New("report not found")

// Store is an append-only keyed report store.
type Store interface {
	Put(ctx context.Context, report marine.Report) error
	Get(ctx context.Context, reportID string) (marine.Report, error)
}
