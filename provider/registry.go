// Package provider manages the set of available booru board adapters.
package provider

import (
	"sync"

	"github.com/boorusan-cli/boorusan/booru"
	"github.com/boorusan-cli/boorusan/log"
)

// Registry owns the registered adapters and tracks the current selection.
//
// It is constructed explicitly and passed where needed; there is no process
// global. The current pointer is guarded so a fetch started just before a
// selection change observes either the old or the new provider, never a
// torn value.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]booru.Provider
	order     []string
	current   booru.Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]booru.Provider)}
}

// Register adds an adapter under its Name. Registration is idempotent per
// key: the first registration wins and later duplicates are silently ignored.
func (r *Registry) Register(p booru.Provider) {
	if p == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.providers[name]; exists {
		log.Debugf("registry: duplicate registration for %s ignored", name)
		return
	}

	r.providers[name] = p
	r.order = append(r.order, name)
	log.Infof("registry: registered provider %s", name)
}

// Select makes the named adapter current. Selecting an unknown key leaves
// the current selection unchanged and reports failure.
func (r *Registry) Select(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.providers[name]
	if !ok {
		log.Warnf("registry: select failed, unknown provider %s", name)
		return false
	}

	r.current = p
	return true
}

// Get returns the adapter registered under the given key.
func (r *Registry) Get(name string) (booru.Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	return p, ok
}

// Current returns the currently selected adapter, if any.
func (r *Registry) Current() (booru.Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.current, r.current != nil
}

// Names returns the registered provider keys in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// DisplayNames returns the human-readable provider titles in registration order.
func (r *Registry) DisplayNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, key := range r.order {
		names = append(names, r.providers[key].DisplayName())
	}
	return names
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.providers)
}

// CheckAll probes every registered provider concurrently and returns one
// Status per registry key. Each probe is isolated: a panic or failure in one
// provider never prevents the others' results.
func (r *Registry) CheckAll() map[string]booru.Status {
	r.mu.RLock()
	snapshot := make(map[string]booru.Provider, len(r.providers))
	for name, p := range r.providers {
		snapshot[name] = p
	}
	r.mu.RUnlock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]booru.Status, len(snapshot))
	)

	for name, p := range snapshot {
		wg.Add(1)
		go func(name string, p booru.Provider) {
			defer wg.Done()

			status := probe(p)

			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, p)
	}

	wg.Wait()
	return results
}

// probe runs one status check, converting a panic into a failed status so a
// misbehaving adapter cannot take down the fan-out.
func probe(p booru.Provider) (status booru.Status) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("registry: status check panic for %s: %v", p.Name(), rec)
			status = booru.StatusFailed("status check failed unexpectedly")
		}
	}()

	return p.Status()
}
