// Package pointer implements RFC 6901 JSON Pointers over decoded JSON
// documents, with read-only, must-exist and create-missing resolution.
package pointer

import (
	"errors"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrMalformedPointer = errors.New("malformed json pointer")
	ErrNotFound         = errors.New("json pointer target not found")
)

const separator = "/"

// Pointer is a parsed JSON Pointer. The zero value (and the empty string)
// addresses the whole document.
type Pointer struct {
	tokens []string
	raw    string
}

// Parse validates and tokenizes an RFC 6901 pointer: an empty string, or a
// sequence of /-prefixed reference tokens with ~0 and ~1 escapes.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Pointer{}, nil
	}
	if !strings.HasPrefix(s, separator) {
		return Pointer{}, pkgerrors.Wrapf(ErrMalformedPointer, "%q does not start with %q", s, separator)
	}

	parts := strings.Split(s[1:], separator)
	tokens := make([]string, len(parts))
	for i, part := range parts {
		tok, err := unescape(part)
		if err != nil {
			return Pointer{}, err
		}
		tokens[i] = tok
	}
	return Pointer{tokens: tokens, raw: s}, nil
}

// MustParse is Parse for statically known pointers; it panics on malformed
// input.
func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the literal pointer text the Pointer was parsed from.
func (p Pointer) String() string { return p.raw }

// Tokens returns a copy of the decoded reference tokens.
func (p Pointer) Tokens() []string {
	out := make([]string, len(p.tokens))
	copy(out, p.tokens)
	return out
}

func unescape(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}

	var b strings.Builder
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			b.WriteByte(tok[i])
			continue
		}

		i++
		if i == len(tok) {
			return "", pkgerrors.Wrapf(ErrMalformedPointer, "token %q ends with a bare ~", tok)
		}
		switch tok[i] {
		default:
			return "", pkgerrors.Wrapf(ErrMalformedPointer, "invalid escape ~%c in token %q", tok[i], tok)
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		}
	}
	return b.String(), nil
}

// pastEnd is the array index meaning of the "-" token.
const pastEnd = -1

// arrayIndex decodes a reference token as an array index: "-" or a canonical
// base-10 integer with no leading zeros.
func arrayIndex(tok string) (int, bool) {
	if tok == "-" {
		return pastEnd, true
	}
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}
