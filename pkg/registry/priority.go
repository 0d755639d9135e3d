package registry

import (
	"sort"
	"sync"

	"github.com/arthur-debert/fdl/pkg/errors"
)

// PriorityList keeps named items ordered by ascending priority. It backs the
// command registry: handlers are scanned in priority order and the first
// whose predicate matches wins. Names are unique across the list.
type PriorityList[T any] struct {
	mu    sync.RWMutex
	items []prioritized[T]
	names map[string]struct{}
}

type prioritized[T any] struct {
	name     string
	priority int
	item     T
}

// NewPriorityList creates an empty PriorityList
func NewPriorityList[T any]() *PriorityList[T] {
	return &PriorityList[T]{
		names: make(map[string]struct{}),
	}
}

// Add inserts an item with the given priority. Lower priorities are scanned
// first. Ties are broken by insertion order.
func (p *PriorityList[T]) Add(name string, priority int, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "priority list name cannot be empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.names[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	p.names[name] = struct{}{}
	p.items = append(p.items, prioritized[T]{name: name, priority: priority, item: item})
	sort.SliceStable(p.items, func(i, j int) bool {
		return p.items[i].priority < p.items[j].priority
	})
	return nil
}

// Scan calls fn for each item in ascending priority order until fn returns
// true (the item claimed the input). It reports whether any item matched.
func (p *PriorityList[T]) Scan(fn func(item T) bool) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, it := range p.items {
		if fn(it.item) {
			return true
		}
	}
	return false
}

// Len returns the number of registered items
func (p *PriorityList[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}

// Names returns the registered names in scan order
func (p *PriorityList[T]) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.items))
	for _, it := range p.items {
		names = append(names, it.name)
	}
	return names
}
