package field_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-laravel-query/field"
)

type address struct {
	City string `json:"city"`
}

type Base struct {
	ID int `json:"id"`
}

type user struct {
	Base
	Name     string   `json:"name"`
	Email    string   // untagged
	Address  *address `json:"address"`
	Password string   `json:"-"`
	secret   string
}

type priceMap map[string]float64

// custom implements field.Accessor.
type custom struct{}

func (custom) Field(name string) (any, bool) {
	if name == "answer" {
		return 42, true
	}
	return nil, false
}

func (custom) Fields() []string { return []string{"answer"} }

func TestResolveMap(t *testing.T) {
	rec := map[string]any{"price": 450, "note": nil}

	v, err := field.Resolve(rec, "price")
	require.NoError(t, err)
	assert.Equal(t, 450, v)

	v, err = field.Resolve(rec, "note")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = field.Resolve(rec, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, field.ErrNotFound))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestResolveTypedMap(t *testing.T) {
	v, err := field.Resolve(priceMap{"a": 1.5}, "a")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = field.Resolve(map[string]int{"q": 3}, "q")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestResolveStruct(t *testing.T) {
	u := user{Base: Base{ID: 7}, Name: "Ada", Email: "ada@example.com", Password: "x", secret: "y"}

	cases := []struct {
		name string
		want any
	}{
		{"name", "Ada"},
		{"Name", "Ada"},
		{"NAME", "Ada"},
		{"Email", "ada@example.com"},
		{"email", "ada@example.com"},
		{"id", 7},
	}
	for _, tc := range cases {
		v, err := field.Resolve(u, tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, v, tc.name)
	}

	for _, hidden := range []string{"Password", "secret", "Base"} {
		_, err := field.Resolve(u, hidden)
		assert.ErrorIs(t, err, field.ErrNotFound, hidden)
	}

	// Pointers resolve like values.
	v, err := field.Resolve(&u, "name")
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)
}

func TestResolveSelf(t *testing.T) {
	v, err := field.Resolve(42, "")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = field.Resolve(42, "price")
	assert.ErrorIs(t, err, field.ErrNotFound)

	_, err = field.Resolve(nil, "price")
	assert.ErrorIs(t, err, field.ErrNotFound)
}

func TestResolveAccessor(t *testing.T) {
	v, err := field.Resolve(custom{}, "answer")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestResolveDotPath(t *testing.T) {
	rec := map[string]any{
		"user": map[string]any{
			"name":    "Alice",
			"address": &address{City: "London"},
		},
		"a.b": "literal",
	}

	v, err := field.Resolve(rec, "user.address.city")
	require.NoError(t, err)
	assert.Equal(t, "London", v)

	// A literal key containing a dot wins over the path walk.
	v, err = field.Resolve(rec, "a.b")
	require.NoError(t, err)
	assert.Equal(t, "literal", v)

	_, err = field.Resolve(rec, "user.address.zip")
	assert.ErrorIs(t, err, field.ErrNotFound)
}

func TestResolveJSONPath(t *testing.T) {
	rec := map[string]any{
		"name": "Alice",
		"tags": []any{"admin", "ops"},
		"meta": map[string]any{"age": 30.0},
	}

	v, err := field.Resolve(rec, "$.tags[1]")
	require.NoError(t, err)
	assert.Equal(t, "ops", v)

	v, err = field.Resolve(rec, "$.meta.age")
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)

	v, err = field.Resolve(user{Name: "Bob"}, "$.name")
	require.NoError(t, err)
	assert.Equal(t, "Bob", v)

	_, err = field.Resolve(rec, "$.missing")
	assert.ErrorIs(t, err, field.ErrNotFound)
}

func TestCompileInvalidPath(t *testing.T) {
	_, err := field.Compile("$[")
	assert.ErrorIs(t, err, field.ErrInvalidPath)
}

func TestResolveOrNil(t *testing.T) {
	rec := map[string]any{"a": 1}
	v, err := field.ResolveOrNil(rec, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = field.ResolveOrNil(rec, "b")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = field.ResolveOrNil(rec, "$.b")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = field.ResolveOrNil(rec, "$[")
	assert.ErrorIs(t, err, field.ErrInvalidPath)
	assert.True(t, field.Has(rec, "a"))
	assert.False(t, field.Has(rec, "b"))
}

func TestIsNil(t *testing.T) {
	var p *address
	var m map[string]any
	assert.True(t, field.IsNil(nil))
	assert.True(t, field.IsNil(p))
	assert.True(t, field.IsNil(m))
	assert.False(t, field.IsNil(0))
	assert.False(t, field.IsNil(""))
}

func TestToMap(t *testing.T) {
	m, err := field.ToMap(user{Base: Base{ID: 1}, Name: "Ada", Email: "e"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"id":      1,
		"name":    "Ada",
		"Email":   "e",
		"address": (*address)(nil),
	}, m)

	src := map[string]any{"k": "v"}
	m, err = field.ToMap(src)
	require.NoError(t, err)
	m["k"] = "changed"
	assert.Equal(t, "v", src["k"], "ToMap must copy")

	_, err = field.ToMap(3)
	assert.ErrorIs(t, err, field.ErrUnsupportedRecord)
}

func TestFields(t *testing.T) {
	acc, ok := field.Of(map[string]any{"b": 1, "a": 2})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, acc.Fields())

	acc, ok = field.Of(user{})
	require.True(t, ok)
	assert.Equal(t, []string{"id", "name", "Email", "address"}, acc.Fields())

	_, ok = field.Of([]int{1})
	assert.False(t, ok)
}
