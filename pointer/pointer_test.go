package pointer_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-accessor/pointer"
	"json-accessor/value"
)

func parse(t *testing.T, src string) any {
	t.Helper()

	doc, err := value.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func dump(t *testing.T, doc any) string {
	t.Helper()

	raw, err := value.Dump(doc)
	require.NoError(t, err)
	return string(raw)
}

func ExamplePointer_Tokens() {
	p := pointer.MustParse("/a~1b/m~0n/0")
	fmt.Println(p.Tokens())
	fmt.Println(p.String())

	// Output:
	// [a/b m~n 0]
	// /a~1b/m~0n/0
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("root", func(t *testing.T) {
		t.Parallel()

		p, err := pointer.Parse("")
		require.NoError(t, err)
		assert.Empty(t, p.Tokens())
		assert.Equal(t, "", p.String())
	})

	t.Run("tokens", func(t *testing.T) {
		t.Parallel()

		p, err := pointer.Parse("/user/name")
		require.NoError(t, err)
		assert.Equal(t, []string{"user", "name"}, p.Tokens())

		// "/" addresses the member with the empty-string key
		p, err = pointer.Parse("/")
		require.NoError(t, err)
		assert.Equal(t, []string{""}, p.Tokens())
	})

	t.Run("escapes", func(t *testing.T) {
		t.Parallel()

		p, err := pointer.Parse("/a~1b/m~0n")
		require.NoError(t, err)
		assert.Equal(t, []string{"a/b", "m~n"}, p.Tokens())
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		for _, src := range []string{"user", "/a~", "/a~2b"} {
			_, err := pointer.Parse(src)
			assert.ErrorIs(t, err, pointer.ErrMalformedPointer, "input %q", src)
		}

		assert.Panics(t, func() { pointer.MustParse("oops") })
	})

	t.Run("tokens are a copy", func(t *testing.T) {
		t.Parallel()

		p := pointer.MustParse("/a/b")
		p.Tokens()[0] = "mutated"
		assert.Equal(t, []string{"a", "b"}, p.Tokens())
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	doc := parse(t, `{"user":{"name":"Alice","tags":["x","y"]}}`)

	t.Run("hits", func(t *testing.T) {
		t.Parallel()

		v, err := pointer.MustParse("/user/name").Get(doc)
		require.NoError(t, err)
		assert.Equal(t, "Alice", v)

		v, err = pointer.MustParse("/user/tags/1").Get(doc)
		require.NoError(t, err)
		assert.Equal(t, "y", v)

		v, err = pointer.MustParse("").Get(doc)
		require.NoError(t, err)
		assert.Equal(t, doc, v)
	})

	t.Run("misses", func(t *testing.T) {
		t.Parallel()

		for _, src := range []string{
			"/user/missing",
			"/user/tags/5",
			"/user/tags/-",
			"/user/tags/01",
			"/user/tags/x",
			"/user/name/deep",
			"/0",
		} {
			_, err := pointer.MustParse(src).Get(doc)
			assert.ErrorIs(t, err, pointer.ErrNotFound, "pointer %q", src)
		}
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("root slot", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `{"a":1}`)
		slot, err := pointer.MustParse("").Resolve(&doc)
		require.NoError(t, err)
		assert.Equal(t, value.KindObject, slot.Kind())

		slot.Set("replaced")
		assert.Equal(t, "replaced", doc)
	})

	t.Run("member slot", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `{"user":{"name":"Alice"}}`)
		slot, err := pointer.MustParse("/user/name").Resolve(&doc)
		require.NoError(t, err)
		assert.Equal(t, value.KindString, slot.Kind())
		assert.Equal(t, "Alice", slot.Value())

		slot.Set("Bob")
		assert.JSONEq(t, `{"user":{"name":"Bob"}}`, dump(t, doc))
	})

	t.Run("element slot", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `{"tags":["x","y"]}`)
		slot, err := pointer.MustParse("/tags/0").Resolve(&doc)
		require.NoError(t, err)

		slot.Set("z")
		assert.JSONEq(t, `{"tags":["z","y"]}`, dump(t, doc))
	})

	t.Run("missing segment", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `{}`)
		_, err := pointer.MustParse("/user/name").Resolve(&doc)
		assert.ErrorIs(t, err, pointer.ErrNotFound)
		assert.JSONEq(t, `{}`, dump(t, doc))
	})
}

func TestMaterialize(t *testing.T) {
	t.Parallel()

	t.Run("creates object chain", func(t *testing.T) {
		t.Parallel()

		var doc any
		slot, err := pointer.MustParse("/user/name").Materialize(&doc)
		require.NoError(t, err)
		assert.Equal(t, value.KindNull, slot.Kind())
		assert.JSONEq(t, `{"user":{"name":null}}`, dump(t, doc))

		slot.Set("Alice")
		assert.JSONEq(t, `{"user":{"name":"Alice"}}`, dump(t, doc))

		spew.Dump(doc)
	})

	t.Run("index tokens create arrays", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `{}`)
		slot, err := pointer.MustParse("/list/2").Materialize(&doc)
		require.NoError(t, err)

		slot.Set(true)
		assert.JSONEq(t, `{"list":[null,null,true]}`, dump(t, doc))
	})

	t.Run("dash appends", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `{"list":[1]}`)
		slot, err := pointer.MustParse("/list/-").Materialize(&doc)
		require.NoError(t, err)

		slot.Set(float64(2))
		assert.JSONEq(t, `{"list":[1,2]}`, dump(t, doc))
	})

	t.Run("existing structure is reused", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `{"user":{"name":"Alice","age":23}}`)
		slot, err := pointer.MustParse("/user/name").Materialize(&doc)
		require.NoError(t, err)

		slot.Set("Bob")
		assert.JSONEq(t, `{"user":{"name":"Bob","age":23}}`, dump(t, doc))
	})

	t.Run("scalar on the path", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `{"user":"flat"}`)
		_, err := pointer.MustParse("/user/name").Materialize(&doc)
		assert.ErrorIs(t, err, value.ErrTypeMismatch)

		doc = parse(t, `{"list":[]}`)
		_, err = pointer.MustParse("/list/x").Materialize(&doc)
		assert.ErrorIs(t, err, value.ErrTypeMismatch)
	})
}
