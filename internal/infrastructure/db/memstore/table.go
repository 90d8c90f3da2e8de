// Package memstore implements the repository ports with in-process maps.
// Each entity kind gets its own keyed table with a process-lifetime id
// counter. Records are stored and returned by value, so callers always hold
// snapshots and can never mutate store state through a returned record.
package memstore

import "sync"

// table is the generic keyed collection backing one entity kind.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1}
}

// insert assigns the next id (strictly increasing, never reused even after
// deletes), stores the record, and returns the stored value.
func (t *table[T]) insert(rec T, withID func(T, int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	rec = withID(rec, id)
	t.rows[id] = rec
	return rec
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.rows[id]
	return rec, ok
}

// update applies merge to the stored record and writes the result back.
func (t *table[T]) update(id int64, merge func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	rec = merge(rec)
	t.rows[id] = rec
	return rec, true
}

// delete reports whether a record was removed. A second delete of the same
// id returns false without error.
func (t *table[T]) delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, rec := range t.rows {
		out = append(out, rec)
	}
	return out
}

// find returns the first record matching pred. Iteration order is
// unspecified; callers must use predicates with at most one match.
func (t *table[T]) find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, rec := range t.rows {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) filter(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []T
	for _, rec := range t.rows {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}
