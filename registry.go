package overload

import (
	"fmt"
	"sync"

	"github.com/xraph/overload/signature"
)

// Registry maps group names to ordered candidate sequences. Order is
// registration order and determines match priority; sequences only ever
// grow. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	groups map[string][]*signature.Candidate
}

// NewRegistry creates an empty registry. Most callers use [DefaultRegistry]
// through the package-level [Register]; an explicit registry (injected with
// [WithRegistry]) keeps dispatch state local instead of process-wide.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string][]*signature.Candidate),
	}
}

// DefaultRegistry is the process-wide registry used when no registry is
// injected. It is initialized empty and lives for the duration of the
// process; there is no teardown.
var DefaultRegistry = NewRegistry()

// Register appends cand to the sequence for name, creating the group on
// first use. It never fails. Sequences are copy-on-append: slices handed out
// by Lookup are never mutated in place, so a dispatch iterating a snapshot
// is unaffected by concurrent registrations.
func (r *Registry) Register(name string, cand *signature.Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur := r.groups[name]
	next := make([]*signature.Candidate, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = cand
	r.groups[name] = next
}

// Lookup returns the current candidate sequence for name, in registration
// order. The returned slice is a stable snapshot. Returns an error wrapping
// [ErrUnknownGroup] if name was never registered.
func (r *Registry) Lookup(name string) ([]*signature.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cands, ok := r.groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
	return cands, nil
}

// Names returns all registered group names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	return names
}
