package field_test

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-query/field"
)

func ExampleResolve() {
	type city struct {
		Name string `json:"name"`
	}
	rec := map[string]any{
		"user": map[string]any{"city": city{Name: "London"}},
		"tags": []any{"a", "b"},
	}

	v, _ := field.Resolve(rec, "user.city.name")
	fmt.Println(v)

	v, _ = field.Resolve(rec, "$.tags[0]")
	fmt.Println(v)

	_, err := field.Resolve(rec, "user.zip")
	fmt.Println(err)
	// Output:
	// London
	// a
	// field "user.zip" on map[string]interface {}: field: not found
}
