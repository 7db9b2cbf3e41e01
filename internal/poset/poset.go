// Package poset provides a partially ordered set over comparable
// elements. Order is strict: an element never compares before or after
// itself, and elements with no recorded relation are incomparable.
package poset

import "fmt"

// OrderViolationError reports an order constraint that contradicts the
// relations already recorded.
type OrderViolationError struct {
	Before, After string
}

func (e *OrderViolationError) Error() string {
	return fmt.Sprintf("order violation: %s already precedes %s", e.Before, e.After)
}

// UnknownElementError reports an order constraint over an element that
// was never added to the set.
type UnknownElementError struct {
	Element string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unknown element: %s", e.Element)
}

// PartiallyOrderedSet records strict order constraints between elements
// and answers reachability queries in constant time. The transitive
// closure is maintained incrementally as constraints are added.
type PartiallyOrderedSet[T comparable] struct {
	elements map[T]struct{}
	// before[a] holds every element strictly less than a.
	before map[T]map[T]struct{}
	// after[a] holds every element strictly greater than a.
	after map[T]map[T]struct{}
}

// NewPartiallyOrderedSet returns an empty set.
func NewPartiallyOrderedSet[T comparable]() *PartiallyOrderedSet[T] {
	return &PartiallyOrderedSet[T]{
		elements: make(map[T]struct{}),
		before:   make(map[T]map[T]struct{}),
		after:    make(map[T]map[T]struct{}),
	}
}

// Len returns the number of elements in the set.
func (p *PartiallyOrderedSet[T]) Len() int {
	return len(p.elements)
}

// Contains reports whether elem has been added to the set.
func (p *PartiallyOrderedSet[T]) Contains(elem T) bool {
	_, ok := p.elements[elem]
	return ok
}

// AddElement adds elem with no order constraints. Adding an element
// twice is a no-op.
func (p *PartiallyOrderedSet[T]) AddElement(elem T) {
	if p.Contains(elem) {
		return
	}
	p.elements[elem] = struct{}{}
	p.before[elem] = make(map[T]struct{})
	p.after[elem] = make(map[T]struct{})
}

// AddOrder records the constraint lesser < greater. Both elements must
// already be in the set. A constraint that contradicts the recorded
// relations, including lesser == greater, returns an
// *OrderViolationError and leaves the set unchanged.
func (p *PartiallyOrderedSet[T]) AddOrder(lesser, greater T) error {
	if !p.Contains(lesser) {
		return &UnknownElementError{Element: fmt.Sprint(lesser)}
	}
	if !p.Contains(greater) {
		return &UnknownElementError{Element: fmt.Sprint(greater)}
	}

	if lesser == greater || p.isBefore(greater, lesser) {
		return &OrderViolationError{
			Before: fmt.Sprint(greater),
			After:  fmt.Sprint(lesser),
		}
	}

	// Fold the new edge into the closure: everything at or before lesser
	// precedes everything at or after greater.
	for x := range p.withBefore(lesser) {
		for y := range p.withAfter(greater) {
			p.before[y][x] = struct{}{}
			p.after[x][y] = struct{}{}
		}
	}

	return nil
}

// IsLessThan reports whether a strictly precedes b. Both elements must
// be in the set; querying an element that was never added panics.
func (p *PartiallyOrderedSet[T]) IsLessThan(a, b T) bool {
	p.mustContain(a)
	p.mustContain(b)
	return p.isBefore(a, b)
}

// IsGreaterThan reports whether a strictly follows b. Both elements must
// be in the set; querying an element that was never added panics.
func (p *PartiallyOrderedSet[T]) IsGreaterThan(a, b T) bool {
	p.mustContain(a)
	p.mustContain(b)
	return p.isBefore(b, a)
}

func (p *PartiallyOrderedSet[T]) mustContain(elem T) {
	if !p.Contains(elem) {
		panic(&UnknownElementError{Element: fmt.Sprint(elem)})
	}
}

func (p *PartiallyOrderedSet[T]) isBefore(a, b T) bool {
	_, ok := p.before[b][a]
	return ok
}

// withBefore returns elem together with every element before it.
func (p *PartiallyOrderedSet[T]) withBefore(elem T) map[T]struct{} {
	set := make(map[T]struct{}, len(p.before[elem])+1)
	set[elem] = struct{}{}
	for x := range p.before[elem] {
		set[x] = struct{}{}
	}
	return set
}

// withAfter returns elem together with every element after it.
func (p *PartiallyOrderedSet[T]) withAfter(elem T) map[T]struct{} {
	set := make(map[T]struct{}, len(p.after[elem])+1)
	set[elem] = struct{}{}
	for x := range p.after[elem] {
		set[x] = struct{}{}
	}
	return set
}
