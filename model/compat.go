package model

// CompatProbe is the result of checking one dependency: a kernel
// interface path or an external binary on PATH.
type CompatProbe struct {
	Name      string
	Available bool
	Detail    string // resolved path, or the reason it is missing
}

// CompatStatus holds the dry-run probe results in display order.
type CompatStatus struct {
	Probes []CompatProbe
}

// Get returns the probe with the given name.
func (s CompatStatus) Get(name string) (CompatProbe, bool) {
	for _, p := range s.Probes {
		if p.Name == name {
			return p, true
		}
	}
	return CompatProbe{}, false
}

// Supported reports whether the bare minimum for collection is present.
// Without procfs there is nothing to fall back to.
func (s CompatStatus) Supported() bool {
	p, ok := s.Get("procfs")
	return ok && p.Available
}
