package limits

import (
	"context"
	"maps"
	"sync"
)

// inMemSource implements the Source interface using an in-memory limit table.
type inMemSource struct {
	mu    sync.RWMutex
	table Table
}

// NewInMemSource returns an in-memory Source with a deep copy of the given table.
func NewInMemSource(table Table) Source {
	tableCopy := make(Table, len(table))
	for tier, tierLimits := range table {
		tableCopy[tier] = maps.Clone(tierLimits)
	}

	return &inMemSource{
		table: tableCopy,
	}
}

// NewDefaultSource returns a Source serving the CortexCloud quota table.
func NewDefaultSource() Source {
	return NewInMemSource(DefaultTable())
}

// Load returns a copy of the limit table from memory.
// The returned table is not protected by the mutex after return.
func (s *inMemSource) Load(ctx context.Context) (Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tableCopy := make(Table, len(s.table))
	for tier, tierLimits := range s.table {
		tableCopy[tier] = maps.Clone(tierLimits)
	}
	return tableCopy, nil
}
