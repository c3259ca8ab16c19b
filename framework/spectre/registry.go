package spectre

// Registry is the explicitly owned collection of runnable cases for one test
// run context. It replaces any notion of implicit process-wide registration:
// the driver creates it, case modules register into it, and the driver runs
// it. Registration order is run order.
type Registry struct {
	cases  []*Case
	seen   map[*Case]bool
	loaded bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[*Case]bool)}
}

// Register adds a case to the registry exactly once. Registering the same
// case again is a no-op, so a case appears once no matter how many times it
// is referenced. Returns the case for chaining.
func (r *Registry) Register(c *Case) *Case {
	if c == nil || r.seen[c] {
		return c
	}
	r.seen[c] = true
	r.cases = append(r.cases, c)
	return c
}

// Cases returns the registered cases in registration order.
func (r *Registry) Cases() []*Case {
	return append([]*Case(nil), r.cases...)
}

// RunAll runs every registered case with the given options and concatenates
// the per-case result lists in order.
func (r *Registry) RunAll(opts RunOptions) []Result {
	var results []Result
	for _, c := range r.cases {
		results = append(results, c.Run(opts)...)
	}
	return results
}

// LoadOnce gates the external test-definition loader. The first call invokes
// the loader and returns true (plus any loader error); every later call is a
// no-op returning false. The flag is set before the loader runs, so even a
// failed load is not retried implicitly.
func (r *Registry) LoadOnce(loader func() error) (bool, error) {
	if r.loaded {
		return false, nil
	}
	r.loaded = true
	if loader == nil {
		return true, nil
	}
	return true, loader()
}
