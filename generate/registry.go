package generate

import "fmt"

// NameRegistry keeps scale names globally unique within a single generation
// run. It is created fresh per run and never shared across runs, so
// repeated runs and tests cannot leak names into each other.
type NameRegistry struct {
	used map[string]bool
}

// NewNameRegistry creates an empty registry.
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{used: make(map[string]bool)}
}

// Claim registers and returns base if it is still free, otherwise the first
// free "base 2", "base 3", ... suffix.
func (r *NameRegistry) Claim(base string) string {
	if !r.used[base] {
		r.used[base] = true
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s %d", base, n)
		if !r.used[candidate] {
			r.used[candidate] = true
			return candidate
		}
	}
}

// Has reports whether a name has been claimed.
func (r *NameRegistry) Has(name string) bool {
	return r.used[name]
}

// Len returns the number of claimed names.
func (r *NameRegistry) Len() int {
	return len(r.used)
}
