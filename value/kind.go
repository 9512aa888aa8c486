package value

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the runtime kind of a decoded JSON node.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// KindOf reports the kind of a node in the generic document representation.
// Values outside that representation (ints, structs, custom types) report the
// invalid zero kind; run them through Normalize first.
func KindOf(v any) Kind {
	switch v.(type) {
	default:
		return 0
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}
}

// IsContainer reports whether the kind can hold child nodes.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindObject
}

// IsScalar reports whether the kind is a leaf value, including null.
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindNull, KindBool, KindNumber, KindString:
		return true
	}
}
