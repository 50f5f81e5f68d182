package filter

import "fmt"

// At most one dropdown is open at a time. Opening one closes the other;
// any interaction outside the filter bar dismisses it.

// Toggle opens d, closing any other dropdown. Toggling the open dropdown
// closes it.
func (s *State) Toggle(d Dimension) error {
	switch d {
	case Division, District, Subject:
	default:
		return fmt.Errorf("toggle %q: %w", d, ErrUnknownDimension)
	}
	if s.Open == d {
		s.Open = None
		return nil
	}
	s.Open = d
	return nil
}

// Dismiss closes whichever dropdown is open.
func (s *State) Dismiss() {
	s.Open = None
}

// IsOpen reports whether d is the expanded dropdown.
func (s State) IsOpen(d Dimension) bool {
	return d != None && s.Open == d
}

// AnyOpen reports whether some dropdown is expanded.
func (s State) AnyOpen() bool {
	return s.Open != None
}
