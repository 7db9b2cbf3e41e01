// Package ir holds the small set of values shared between the AST and later
// compiler stages: unique identifiers, core data types, and type qualifiers.
package ir

import (
	"fmt"
	"sync/atomic"
)

// idCounter is process-wide so identifiers are never reused, even across
// independent conversion sessions running concurrently.
var idCounter atomic.Uint64

// ID is the unique identity of an Identifier.
type ID uint64

// Identifier refers to a named entity. Identity lives in the id alone; the
// name hint exists for diagnostics and must never participate in equality.
type Identifier struct {
	id   ID
	hint string
}

// NewIdentifier allocates a fresh identifier with a globally unique id.
// Two calls never produce equal identifiers, even with identical hints.
func NewIdentifier(hint string) *Identifier {
	return &Identifier{id: ID(idCounter.Add(1)), hint: hint}
}

// ID returns the unique id.
func (i *Identifier) ID() ID { return i.id }

// Hint returns the human-readable name hint.
func (i *Identifier) Hint() string { return i.hint }

// Equal reports whether both identifiers refer to the same entity.
func (i *Identifier) Equal(other *Identifier) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.id == other.id
}

// String renders the identifier for debug output.
func (i *Identifier) String() string {
	return fmt.Sprintf("%s#%d", i.hint, i.id)
}
