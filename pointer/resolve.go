package pointer

import (
	pkgerrors "github.com/pkg/errors"

	"json-accessor/value"
)

// Slot is a live handle to one addressable location in a document: the root,
// an object member, or an array element. Mutations through Set are visible to
// every later resolution of the same location. A Slot stays valid as long as
// its enclosing container is not replaced wholesale.
type Slot struct {
	load  func() any
	store func(any)
}

// Value returns the node currently held in the slot.
func (s Slot) Value() any { return s.load() }

// Set replaces the node held in the slot.
func (s Slot) Set(v any) { s.store(v) }

// Kind reports the runtime kind of the node currently held in the slot.
func (s Slot) Kind() value.Kind { return value.KindOf(s.load()) }

func rootSlot(doc *any) Slot {
	return Slot{
		load:  func() any { return *doc },
		store: func(v any) { *doc = v },
	}
}

func memberSlot(obj map[string]any, key string) Slot {
	return Slot{
		load:  func() any { return obj[key] },
		store: func(v any) { obj[key] = v },
	}
}

func elementSlot(arr []any, i int) Slot {
	return Slot{
		load:  func() any { return arr[i] },
		store: func(v any) { arr[i] = v },
	}
}

// Get resolves the pointer against a document and returns the addressed node.
// Any missing segment, including descent into a scalar, reports ErrNotFound.
func (p Pointer) Get(doc any) (any, error) {
	cur := doc
	for _, tok := range p.tokens {
		slot, err := p.child(cur, tok)
		if err != nil {
			return nil, err
		}
		cur = slot.Value()
	}
	return cur, nil
}

// Resolve walks the pointer without creating anything and returns a live slot
// for the addressed location.
func (p Pointer) Resolve(doc *any) (Slot, error) {
	slot := rootSlot(doc)
	for _, tok := range p.tokens {
		next, err := p.child(slot.Value(), tok)
		if err != nil {
			return Slot{}, err
		}
		slot = next
	}
	return slot, nil
}

func (p Pointer) child(cur any, tok string) (Slot, error) {
	switch node := cur.(type) {
	default:
		return Slot{}, pkgerrors.Wrapf(ErrNotFound, "%s: cannot descend into %s with token %q", p.raw, value.KindOf(cur), tok)

	case map[string]any:
		if _, ok := node[tok]; !ok {
			return Slot{}, pkgerrors.Wrapf(ErrNotFound, "%s: no member %q", p.raw, tok)
		}
		return memberSlot(node, tok), nil

	case []any:
		i, ok := arrayIndex(tok)
		if !ok {
			return Slot{}, pkgerrors.Wrapf(ErrNotFound, "%s: %q is not an array index", p.raw, tok)
		}
		if i == pastEnd || i >= len(node) {
			return Slot{}, pkgerrors.Wrapf(ErrNotFound, "%s: index %q out of range for length %d", p.raw, tok, len(node))
		}
		return elementSlot(node, i), nil
	}
}

// Materialize walks the pointer, creating every missing level along the way:
// object members for name tokens, arrays for index tokens ("-" appends, index
// gaps are padded with nulls). After it returns, the full path exists; a
// freshly created terminal node holds null until Set is called on the slot.
// Materialize fails only when an existing node on the path has a kind the
// next token cannot descend into, reported as value.ErrTypeMismatch.
func (p Pointer) Materialize(doc *any) (Slot, error) {
	slot := rootSlot(doc)
	for _, tok := range p.tokens {
		next, err := p.grow(slot, tok)
		if err != nil {
			return Slot{}, err
		}
		slot = next
	}
	return slot, nil
}

func (p Pointer) grow(slot Slot, tok string) (Slot, error) {
	cur := slot.Value()

	// a null level is replaced by a container; the token form picks which
	if cur == nil {
		if i, ok := arrayIndex(tok); ok {
			idx := i
			if i == pastEnd {
				idx = 0
			}
			arr := make([]any, idx+1)
			slot.Set(arr)
			return elementSlot(arr, idx), nil
		}

		obj := map[string]any{tok: nil}
		slot.Set(obj)
		return memberSlot(obj, tok), nil
	}

	switch node := cur.(type) {
	default:
		return Slot{}, pkgerrors.Wrapf(value.ErrTypeMismatch, "%s: segment %q already holds a %s", p.raw, tok, value.KindOf(cur))

	case map[string]any:
		if _, ok := node[tok]; !ok {
			node[tok] = nil
		}
		return memberSlot(node, tok), nil

	case []any:
		i, ok := arrayIndex(tok)
		if !ok {
			return Slot{}, pkgerrors.Wrapf(value.ErrTypeMismatch, "%s: %q is not an array index", p.raw, tok)
		}
		idx := i
		if i == pastEnd {
			idx = len(node)
		}
		if idx >= len(node) {
			grown := append(node, make([]any, idx+1-len(node))...)
			slot.Set(grown)
			return elementSlot(grown, idx), nil
		}
		return elementSlot(node, idx), nil
	}
}
