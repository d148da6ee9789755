package event

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/flexo/backend/internal/domain/shared"
)

// table is never mutated after it is published
type table struct {
	byType map[string][]shared.EventHandler
	all    []shared.EventHandler
}

// Subscriptions maps event types to handlers. Readers see an immutable
// snapshot, so dispatch never waits on Subscribe.
type Subscriptions struct {
	write sync.Mutex
	cur   atomic.Pointer[table]
}

func NewSubscriptions() *Subscriptions {
	s := &Subscriptions{}
	s.cur.Store(&table{byType: map[string][]shared.EventHandler{}})
	return s
}

// update copies the current table, lets edit change the copy and
// publishes it
func (s *Subscriptions) update(edit func(*table)) {
	s.write.Lock()
	defer s.write.Unlock()
	old := s.cur.Load()
	next := &table{
		byType: make(map[string][]shared.EventHandler, len(old.byType)),
		all:    slices.Clone(old.all),
	}
	for k, v := range old.byType {
		next.byType[k] = slices.Clone(v)
	}
	edit(next)
	s.cur.Store(next)
}

// Add subscribes h to the given types, or to every event when none are given
func (s *Subscriptions) Add(h shared.EventHandler, eventTypes ...string) {
	s.update(func(t *table) {
		if len(eventTypes) == 0 {
			t.all = append(t.all, h)
			return
		}
		for _, et := range eventTypes {
			t.byType[et] = append(t.byType[et], h)
		}
	})
}

// Remove drops h from every type and from the catch-all list
func (s *Subscriptions) Remove(h shared.EventHandler) {
	same := func(x shared.EventHandler) bool { return x == h }
	s.update(func(t *table) {
		t.all = slices.DeleteFunc(t.all, same)
		for et, hs := range t.byType {
			if hs = slices.DeleteFunc(hs, same); len(hs) == 0 {
				delete(t.byType, et)
			} else {
				t.byType[et] = hs
			}
		}
	})
}

// For lists the handlers of eventType first, then the catch-all ones.
// The result may share memory with the table; do not write to it.
func (s *Subscriptions) For(eventType string) []shared.EventHandler {
	t := s.cur.Load()
	typed := t.byType[eventType]
	switch {
	case len(t.all) == 0:
		return slices.Clip(typed)
	case len(typed) == 0:
		return slices.Clip(t.all)
	}
	return append(slices.Clip(typed), t.all...)
}

// Count is the number of distinct handlers
func (s *Subscriptions) Count() int {
	t := s.cur.Load()
	seen := make(map[shared.EventHandler]struct{}, len(t.all))
	for _, h := range t.all {
		seen[h] = struct{}{}
	}
	for _, hs := range t.byType {
		for _, h := range hs {
			seen[h] = struct{}{}
		}
	}
	return len(seen)
}
