package slugger

import "strconv"

// Registry tracks every slug handed out during one migration run and
// disambiguates collisions with a numeric suffix. It is plain process-local
// state: construct one per run, pass it explicitly, and discard it at exit.
// It is not safe for concurrent use and is never seeded from slugs persisted
// by earlier runs.
type Registry struct {
	counts map[string]int
}

// NewRegistry returns an empty run-scoped registry.
func NewRegistry() *Registry {
	return &Registry{counts: make(map[string]int)}
}

// Allocate slugifies the label and returns a slug unseen so far this run.
// The first request for a slug returns it unchanged; the Nth repeat returns
// "slug-N" with N counting from 2.
func (r *Registry) Allocate(label string) string {
	slug := Slugify(label)
	r.counts[slug]++
	if n := r.counts[slug]; n > 1 {
		return slug + "-" + strconv.Itoa(n)
	}
	return slug
}

// Len reports how many distinct base slugs the registry has seen.
func (r *Registry) Len() int {
	return len(r.counts)
}
