package params

import (
	"iter"
	"slices"

	"github.com/speakeasy-api/querystyle/errors"
	"github.com/speakeasy-api/querystyle/sequencedmap"
)

const (
	// ErrDuplicateParameter is returned when two parameters share a name and location.
	ErrDuplicateParameter = errors.Error("duplicate parameter")
	// ErrMissingValue is returned when a parameter has no value bound to it.
	ErrMissingValue = errors.Error("no value for parameter")
)

// Key identifies a parameter within a Set.
type Key struct {
	Name string
	In   ParameterIn
}

// Set is an ordered collection of validated parameters.
type Set struct {
	params *sequencedmap.Map[Key, *Parameter]
}

// NewSet validates params and collects them in the order given.
func NewSet(params ...*Parameter) (*Set, error) {
	s := &Set{params: sequencedmap.New[Key, *Parameter]()}
	for _, p := range params {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add validates p and appends it to the set.
func (s *Set) Add(p *Parameter) error {
	if err := p.Validate(); err != nil {
		return err
	}
	key := Key{Name: p.Name, In: p.In}
	if s.params.Has(key) {
		return ErrDuplicateParameter.Wrapf("%s in %s", p.Name, p.In)
	}
	s.params.Set(key, p)
	return nil
}

// Len returns the number of parameters in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return sequencedmap.Len(s.params)
}

// Get returns the parameter with the given name and location.
func (s *Set) Get(name string, in ParameterIn) (*Parameter, bool) {
	if s == nil {
		return nil, false
	}
	return s.params.Get(Key{Name: name, In: in})
}

// All iterates the parameters in insertion order.
func (s *Set) All() iter.Seq[*Parameter] {
	return func(yield func(*Parameter) bool) {
		if s == nil {
			return
		}
		for p := range s.params.Values() {
			if !yield(p) {
				return
			}
		}
	}
}

// Bind pairs each parameter with the value lookup returns for its name. Parameters
// without a value are left out. The bindings are grouped by location in the order of
// Locations, keeping insertion order within a location.
func (s *Set) Bind(lookup func(name string) (any, bool)) []Binding {
	var bindings []Binding
	for _, in := range Locations {
		for p := range s.All() {
			if p.In != in {
				continue
			}
			v, ok := lookup(p.Name)
			if !ok {
				continue
			}
			bindings = append(bindings, Binding{Parameter: p, Value: v})
		}
	}
	return bindings
}

// Unbound returns the keys of the parameters in the set that none of bindings refer to,
// in insertion order.
func (s *Set) Unbound(bindings []Binding) []Key {
	if s == nil {
		return nil
	}
	rest := sequencedmap.From(s.params.All())
	for _, b := range bindings {
		if b.Parameter != nil {
			rest.Delete(Key{Name: b.Parameter.Name, In: b.Parameter.In})
		}
	}
	return slices.Collect(rest.Keys())
}
