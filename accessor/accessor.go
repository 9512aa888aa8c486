// Package accessor binds named, statically typed accessors to fixed JSON
// Pointer paths. One Accessor value couples a path with a Go value type and
// gives every call site typed reads and writes for that one location, instead
// of string paths and ad-hoc coercion spread through the codebase.
//
// Accessors own no document state and perform no locking. Concurrent use on
// the same document needs caller-supplied synchronization; accessors on
// different documents are independent.
package accessor

import (
	"json-accessor/pointer"
	"json-accessor/value"
)

// Accessor is the binding of one JSON Pointer path to one Go value type. It
// is immutable after construction; define one per addressed field, usually as
// a package-level variable.
type Accessor[T any] struct {
	ptr pointer.Pointer
}

// New builds an accessor for the given RFC 6901 path.
func New[T any](path string) (Accessor[T], error) {
	p, err := pointer.Parse(path)
	if err != nil {
		return Accessor[T]{}, err
	}
	return Accessor[T]{ptr: p}, nil
}

// Define is New for statically known paths; it panics on malformed input so
// accessors can be declared as package-level variables.
func Define[T any](path string) Accessor[T] {
	a, err := New[T](path)
	if err != nil {
		panic(err)
	}
	return a
}

// Path returns the literal pointer string the accessor was defined with.
func (a Accessor[T]) Path() string { return a.ptr.String() }

// Read resolves the path and converts the addressed node to T. A missing
// segment reports pointer.ErrNotFound, a node of the wrong kind reports
// value.ErrTypeMismatch; both match with errors.Is.
func (a Accessor[T]) Read(doc any) (T, error) {
	node, err := a.ptr.Get(doc)
	if err != nil {
		var zero T
		return zero, err
	}
	return value.As[T](node)
}

// MustRead is Read for call sites that treat the path as structurally
// guaranteed to exist; it panics on any failure.
func (a Accessor[T]) MustRead(doc any) T {
	v, err := a.Read(doc)
	if err != nil {
		panic(err)
	}
	return v
}

// Write overwrites the addressed node with v and reports true. It never
// creates intermediate structure: when any segment is missing the document is
// left untouched and Write reports false. The value must have a JSON form;
// one that does not (a channel, a cycle) is a programming error and panics.
func (a Accessor[T]) Write(doc *any, v T) bool {
	slot, err := a.ptr.Resolve(doc)
	if err != nil {
		return false
	}

	node, err := value.Normalize(v)
	if err != nil {
		panic(err)
	}
	slot.Set(node)
	return true
}

// WriteNull overwrites the addressed node with JSON null. Writing null is an
// explicit act, distinct from leaving the node untouched. Like Write it never
// creates structure and reports false on a missing segment.
func (a Accessor[T]) WriteNull(doc *any) bool {
	slot, err := a.ptr.Resolve(doc)
	if err != nil {
		return false
	}
	slot.Set(nil)
	return true
}

// Emplace resolves the path, creating every missing intermediate level, sets
// the terminal node to v and returns a live slot for it. It fails only when
// an existing node on the path has an incompatible kind, or when v has no
// JSON form; in both cases the error matches value.ErrTypeMismatch and the
// document is modified only in the former case's successfully grown prefix.
func (a Accessor[T]) Emplace(doc *any, v T) (pointer.Slot, error) {
	node, err := value.Normalize(v)
	if err != nil {
		return pointer.Slot{}, err
	}

	slot, err := a.ptr.Materialize(doc)
	if err != nil {
		return pointer.Slot{}, err
	}
	slot.Set(node)
	return slot, nil
}

// EmplaceNull is Emplace with an explicit JSON null.
func (a Accessor[T]) EmplaceNull(doc *any) (pointer.Slot, error) {
	slot, err := a.ptr.Materialize(doc)
	if err != nil {
		return pointer.Slot{}, err
	}
	slot.Set(nil)
	return slot, nil
}

// Reference resolves the path without creating or converting anything and
// returns a live slot for direct inspection or mutation of the node. The
// second result reports whether the path resolved.
func (a Accessor[T]) Reference(doc *any) (pointer.Slot, bool) {
	slot, err := a.ptr.Resolve(doc)
	if err != nil {
		return pointer.Slot{}, false
	}
	return slot, true
}
