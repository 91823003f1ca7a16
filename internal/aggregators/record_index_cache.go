package aggregators

import (
	"context"
	"sync"

	"function-insights/internal/shared/loggers"
	"function-insights/internal/stores"
)

// RecordIndexCache keeps one immutable RecordIndex per user so repeated stats
// requests do not re-read and re-group every stored batch.
//
//go:generate mockgen -source=record_index_cache.go -destination=./mocks/record_index_cache_mock.go -package=mocks
type RecordIndexCache interface {
	// Get returns the user's index, loading it from the record store on a miss.
	Get(ctx context.Context, userID string) (*RecordIndex, error)
	// Invalidate drops the user's index; the next Get reloads it.
	Invalidate(userID string)
}

type recordIndexCache struct {
	recordStore stores.InvocationRecordStore

	mu      sync.RWMutex
	entries map[string]*RecordIndex
	// generations is bumped by Invalidate. A load only installs its result if
	// the generation it started under is still current.
	generations map[string]uint64
}

func NewRecordIndexCache(recordStore stores.InvocationRecordStore) RecordIndexCache {
	return &recordIndexCache{
		recordStore: recordStore,
		entries:     make(map[string]*RecordIndex),
		generations: make(map[string]uint64),
	}
}

func (c *recordIndexCache) Get(ctx context.Context, userID string) (*RecordIndex, error) {
	c.mu.RLock()
	idx, ok := c.entries[userID]
	generation := c.generations[userID]
	c.mu.RUnlock()
	if ok {
		metricIndexCacheLookupsTotal.WithLabelValues(lookupHit).Inc()
		return idx, nil
	}
	metricIndexCacheLookupsTotal.WithLabelValues(lookupMiss).Inc()

	records, err := c.recordStore.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx = NewRecordIndex(RecordSlice(records))

	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldUserID, userID).
		Int(loggers.FieldRecordCount, idx.Len()).
		Msgf("built record index, skipped %d malformed records", idx.Skipped())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[userID] == generation {
		if current, ok := c.entries[userID]; ok {
			// a concurrent miss already installed an index for this generation
			return current, nil
		}
		c.entries[userID] = idx
		metricIndexCacheUsers.Set(float64(len(c.entries)))
	}
	return idx, nil
}

func (c *recordIndexCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[userID]++
	delete(c.entries, userID)
	metricIndexCacheInvalidationsTotal.Inc()
	metricIndexCacheUsers.Set(float64(len(c.entries)))
}
