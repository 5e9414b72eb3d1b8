package apiclient

import (
	"context"
	"sync"
	"sync/atomic"
)

// SeqFetcher serializes overlapping list fetches with a latest-wins rule.
// Every Fetch is tagged with a monotonically increasing sequence number;
// a response whose sequence is no longer the newest is discarded, so the
// applied result always corresponds to the most recently issued request even
// when responses arrive out of order.
type SeqFetcher[T any] struct {
	seq     atomic.Uint64
	applyMu sync.Mutex
	applied uint64
}

func NewSeqFetcher[T any]() *SeqFetcher[T] {
	return &SeqFetcher[T]{}
}

// Fetch runs fn and hands its result to apply unless a newer Fetch has been
// issued or applied in the meantime. Returns true when the result was
// applied, false when it was discarded as stale. Errors from fn are returned
// as-is and never applied.
func (s *SeqFetcher[T]) Fetch(ctx context.Context, fn func(ctx context.Context) (T, error), apply func(T)) (bool, error) {
	seq := s.seq.Add(1)

	result, err := fn(ctx)
	if err != nil {
		return false, err
	}

	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	// Stale if a newer request was issued while we were in flight, or a newer
	// response already landed.
	if seq < s.seq.Load() || seq <= s.applied {
		return false, nil
	}

	s.applied = seq
	apply(result)
	return true, nil
}
