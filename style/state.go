package style

// State tracks where an encoder is within the value being encoded. Every encode call
// owns one State, starting at StateOuter.
type State uint8

const (
	// StateOuter is outside any container. It is also the state after a successful encode.
	StateOuter State = iota
	// StateInnerFirst is inside a container before any member has been written.
	StateInnerFirst
	// StateInnerNext is inside a container after at least one member has been written.
	StateInnerNext
)

func (s State) String() string {
	switch s {
	case StateOuter:
		return "outer"
	case StateInnerFirst:
		return "inner-first"
	case StateInnerNext:
		return "inner-next"
	default:
		return "unknown"
	}
}

// IsOuter reports whether no container is open.
func (s State) IsOuter() bool {
	return s == StateOuter
}

// Enter opens a container. Only one container may be open at a time.
func (s *State) Enter() error {
	if *s != StateOuter {
		return ErrUnsupportedNesting
	}
	*s = StateInnerFirst
	return nil
}

// Next records that a member is about to be written and reports whether it is the first.
func (s *State) Next() (first bool) {
	first = *s == StateInnerFirst
	*s = StateInnerNext
	return first
}

// Close closes the open container. A container without members cannot be represented.
func (s *State) Close() error {
	if *s == StateInnerFirst {
		return ErrUnsupportedValue
	}
	*s = StateOuter
	return nil
}
