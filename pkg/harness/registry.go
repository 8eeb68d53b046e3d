package harness

import "fmt"

// Factory produces a fresh, undefined suite instance. The registry never
// owns instances; callers own what a factory returns.
type Factory func() Instance

// Registry maps suite names to factories. Enumeration order is registration
// order, so runs are deterministic regardless of suite names. Duplicate
// names are rejected at both layers (suite names here, case names in Suite)
// because a collision always means two authors picked the same name.
type Registry struct {
	names   []string
	entries map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Factory)}
}

// Add registers a factory under a suite name. Names must be non-empty and
// unique; a violation panics.
func (r *Registry) Add(name string, factory Factory) {
	if name == "" {
		panic("harness: suite name must not be empty")
	}
	if _, ok := r.entries[name]; ok {
		panic(fmt.Sprintf("harness: duplicate suite name %q", name))
	}
	r.names = append(r.names, name)
	r.entries[name] = factory
}

// Names returns the registered suite names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Factory returns the factory registered under name.
func (r *Registry) Factory(name string) (Factory, bool) {
	f, ok := r.entries[name]
	return f, ok
}

// Len returns the number of registered suites.
func (r *Registry) Len() int {
	return len(r.names)
}

// DefaultRegistry collects suites registered from init functions. It is
// populated entirely before main begins and read-only during a run, so no
// locking is needed.
var DefaultRegistry = NewRegistry()

// Register adds a suite to DefaultRegistry. Call it from an init function
// in the file defining the suite so linking the file into a binary is
// enough to make the suite discoverable:
//
//	func init() {
//		harness.Register("Math", func() harness.Instance { return &mathSuite{} })
//	}
func Register(name string, factory Factory) {
	DefaultRegistry.Add(name, factory)
}
