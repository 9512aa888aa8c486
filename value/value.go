// Package value is the dynamic JSON layer the accessors are built on.
// Documents are plain decoded trees (map[string]any, []any, float64, string,
// bool, nil); this package classifies nodes and converts between those trees
// and statically typed Go values.
package value

import (
	"errors"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
)

// ErrTypeMismatch reports that a JSON node cannot be represented as the
// requested Go type, or the other way around.
var ErrTypeMismatch = errors.New("json value does not match the requested type")

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Parse decodes JSON text into the generic document representation.
func Parse(data []byte) (any, error) {
	var doc any
	if err := codec.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Dump encodes a document back to JSON text.
func Dump(doc any) ([]byte, error) {
	return codec.Marshal(doc)
}

// Normalize converts an arbitrary Go value into the generic document
// representation by round-tripping it through the codec. Values with no JSON
// form (channels, functions, cycles) report ErrTypeMismatch.
func Normalize(v any) (any, error) {
	raw, err := codec.Marshal(v)
	if err != nil {
		return nil, pkgerrors.Wrapf(ErrTypeMismatch, "%T has no json form: %s", v, err)
	}

	var out any
	if err := codec.Unmarshal(raw, &out); err != nil {
		return nil, pkgerrors.Wrapf(ErrTypeMismatch, "%T has no json form: %s", v, err)
	}
	return out, nil
}

// As converts a generic document node to T. A null node converts only to
// interface and pointer targets (yielding nil); for every other target null
// is a mismatch, as is any node whose kind the codec cannot map onto T.
func As[T any](v any) (T, error) {
	var out T

	if v == nil {
		switch reflect.TypeFor[T]().Kind() {
		default:
			return out, pkgerrors.Wrapf(ErrTypeMismatch, "cannot read null as %T", out)
		case reflect.Interface, reflect.Ptr:
			return out, nil
		}
	}

	raw, err := codec.Marshal(v)
	if err != nil {
		return out, pkgerrors.Wrapf(ErrTypeMismatch, "%T has no json form: %s", v, err)
	}
	if err := codec.Unmarshal(raw, &out); err != nil {
		return out, pkgerrors.Wrapf(ErrTypeMismatch, "cannot read %s as %T: %s", KindOf(v), out, err)
	}
	return out, nil
}
