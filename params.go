package lti

import "sort"

// Params holds the named parameters of a single request. A name maps to at
// most one value: setting a name that already exists overwrites the previous
// value. A Params instance is owned by the code path processing one request
// and is not safe for concurrent mutation.
type Params map[string]string

// Set stores value under name, replacing any existing value.
func (p Params) Set(name, value string) {
	p[name] = value
}

// Get returns the value stored under name, or the empty string when unset.
// An absent name is a normal condition, not an error.
func (p Params) Get(name string) string {
	return p[name]
}

// Has reports whether name is currently set.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Delete removes name from the set. Deleting an absent name is a no-op.
func (p Params) Delete(name string) {
	delete(p, name)
}

// Keys returns the currently set names, sorted for deterministic iteration.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for name := range p {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the set.
func (p Params) Clone() Params {
	clone := make(Params, len(p))
	for name, value := range p {
		clone[name] = value
	}
	return clone
}
