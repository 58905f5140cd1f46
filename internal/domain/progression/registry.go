package progression

import (
	"errors"
	"fmt"
)

// ErrDuplicateGate is returned when registering an id that already exists in
// a registry without overwrite enabled.
var ErrDuplicateGate = errors.New("duplicate gate id")

// RegistryConfig tunes registry behavior. AllowOverwrite replaces an existing
// definition in place (keeping its registration order) instead of failing;
// it exists for hot-reload setups and should stay off in production wiring.
type RegistryConfig struct {
	AllowOverwrite bool
}

// Registry is the in-memory catalogue of gate definitions. It is populated
// once at startup and read-only afterwards; it holds no evaluation logic and
// must not be mutated concurrently with evaluation.
type Registry struct {
	gates          map[GateID]GateDefinition
	order          []GateID
	allowOverwrite bool
}

func NewRegistry() *Registry {
	return NewRegistryWithConfig(RegistryConfig{})
}

func NewRegistryWithConfig(cfg RegistryConfig) *Registry {
	return &Registry{
		gates:          map[GateID]GateDefinition{},
		allowOverwrite: cfg.AllowOverwrite,
	}
}

// Register adds one gate definition. Registering a duplicate id is a
// configuration error unless the registry allows overwrites.
func (r *Registry) Register(gate GateDefinition) error {
	if gate.ID == "" {
		return errors.New("gate id must not be empty")
	}
	if _, exists := r.gates[gate.ID]; exists {
		if !r.allowOverwrite {
			return fmt.Errorf("%w: %s", ErrDuplicateGate, gate.ID)
		}
		r.gates[gate.ID] = gate
		return nil
	}
	r.gates[gate.ID] = gate
	r.order = append(r.order, gate.ID)
	return nil
}

// RegisterAll registers gates in order, stopping at the first failure. The
// registry may be left partially populated on error; callers treat that as
// fatal at startup.
func (r *Registry) RegisterAll(gates []GateDefinition) error {
	for _, gate := range gates {
		if err := r.Register(gate); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the definition for an id. Unknown ids are not an error.
func (r *Registry) Get(id GateID) (GateDefinition, bool) {
	gate, ok := r.gates[id]
	return gate, ok
}

// GetAll returns every registered gate in registration order.
func (r *Registry) GetAll() []GateDefinition {
	out := make([]GateDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.gates[id])
	}
	return out
}

// GetByType returns the gates of one type, in registration order.
func (r *Registry) GetByType(gateType GateType) []GateDefinition {
	out := []GateDefinition{}
	for _, id := range r.order {
		if gate := r.gates[id]; gate.Type == gateType {
			out = append(out, gate)
		}
	}
	return out
}

// MetadataFilter is a partial metadata match: zero-valued fields are ignored,
// supplied fields must match exactly, and queried tags must all be present.
type MetadataFilter struct {
	Icon     string
	Category string
	Tags     []string
}

func (f MetadataFilter) isEmpty() bool {
	return f.Icon == "" && f.Category == "" && len(f.Tags) == 0
}

func (f MetadataFilter) matches(m *GateMetadata) bool {
	if f.isEmpty() {
		return true
	}
	if m == nil {
		return false
	}
	if f.Icon != "" && m.Icon != f.Icon {
		return false
	}
	if f.Category != "" && m.Category != f.Category {
		return false
	}
	for _, want := range f.Tags {
		found := false
		for _, tag := range m.Tags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FindByMetadata returns the gates whose metadata matches the filter, in
// registration order. Gates without metadata never match a non-empty filter.
func (r *Registry) FindByMetadata(filter MetadataFilter) []GateDefinition {
	out := []GateDefinition{}
	for _, id := range r.order {
		if gate := r.gates[id]; filter.matches(gate.Metadata) {
			out = append(out, gate)
		}
	}
	return out
}

// Len returns the number of registered gates.
func (r *Registry) Len() int {
	return len(r.order)
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.gates = map[GateID]GateDefinition{}
	r.order = nil
}
