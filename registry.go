package swift

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Registry maps field names to their pattern triples. The built-in
// table covers the common transaction fields; callers extend or
// override it at runtime, including from a JSON document, so new
// field definitions do not require a code change.
type Registry struct {
	mu     sync.RWMutex
	fields map[string]PatternTriple
}

// defaultPatterns is the built-in field table.
var defaultPatterns = map[string]PatternTriple{
	"20":  {Parser: "S", Components: "S", Validator: "16x"},
	"21":  {Parser: "S", Components: "S", Validator: "16x"},
	"23B": {Parser: "S", Components: "S", Validator: "4!c"},
	"70":  {Parser: "S", Components: "S", Validator: "35x"},
	"72":  {Parser: "S", Components: "S", Validator: "35x"},
	"77B": {Parser: "S", Components: "S", Validator: "35x"},
	"108": {Parser: "S", Components: "S", Validator: "16x"},
	"111": {Parser: "N", Components: "N", Validator: "3!n"},
	"113": {Parser: "S", Components: "S", Validator: "4x"},
	"118": {Parser: "S", Components: "L", Validator: "<BOOL>"},
	"119": {Parser: "S", Components: "S", Validator: "8c"},
	"121": {Parser: "S", Components: "S", Validator: "36x"},
	"132": {Parser: "SN", Components: "cN", Validator: "1!a5!n"},
	"177": {Parser: "N", Components: "N", Validator: "10!n"},
	"451": {Parser: "N", Components: "N", Validator: "1!n"},
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[string]PatternTriple)}
}

// DefaultRegistry creates a registry pre-populated with the built-in
// field table. Each call returns an independent copy, so callers may
// override entries freely.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, pt := range defaultPatterns {
		r.fields[name] = pt
	}
	return r
}

// Register adds or replaces a field definition.
func (r *Registry) Register(name string, pt PatternTriple) {
	r.mu.Lock()
	r.fields[name] = pt
	r.mu.Unlock()
}

// Lookup returns the pattern triple for a field name.
func (r *Registry) Lookup(name string) (PatternTriple, bool) {
	r.mu.RLock()
	pt, ok := r.fields[name]
	r.mu.RUnlock()
	return pt, ok
}

// Names returns the registered field names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Size returns the number of registered field definitions.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fields)
}

// LoadJSON merges field definitions from a JSON document of the form
// {"20": {"parser": "S", "components": "S", "validator": "16x"}, ...}
// into the registry, replacing existing entries with the same name.
// Entries with an empty parser pattern are rejected.
func (r *Registry) LoadJSON(src io.Reader) error {
	var doc map[string]PatternTriple
	if err := json.NewDecoder(src).Decode(&doc); err != nil {
		return fmt.Errorf("decode field registry: %w", err)
	}

	for name, pt := range doc {
		if pt.Parser == "" {
			return fmt.Errorf("field %q: %w: empty parser pattern", name, ErrInvalidPattern)
		}
		if !validTagName(name) {
			return fmt.Errorf("field %q: %w: invalid field name", name, ErrInvalidPattern)
		}
	}

	r.mu.Lock()
	for name, pt := range doc {
		r.fields[name] = pt
	}
	r.mu.Unlock()
	return nil
}

// Clone creates an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := NewRegistry()
	for name, pt := range r.fields {
		clone.fields[name] = pt
	}
	return clone
}
