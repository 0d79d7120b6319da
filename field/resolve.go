package field

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/pkg/errors"
)

// Resolve returns the value named name on record.
//
// The empty name resolves to record itself. Names beginning with "$" are
// evaluated as JSONPath expressions. A name containing dots is first tried
// as a literal key and then walked segment by segment through nested
// records:
//
//	Resolve(map[string]any{"user": map[string]any{"city": "London"}}, "user.city")
//	// → "London", nil
//
// Resolve fails with an error wrapping [ErrNotFound] when the name does not
// exist on the record.
func Resolve(record any, name string) (any, error) {
	if name == "" {
		return record, nil
	}
	if strings.HasPrefix(name, "$") {
		return resolvePath(record, name)
	}
	if v, ok := lookup(record, name); ok {
		return v, nil
	}
	if strings.Contains(name, ".") {
		if v, ok := walk(record, strings.Split(name, ".")); ok {
			return v, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "field %q on %T", name, record)
}

// ResolveOrNil is like [Resolve] but returns nil for an absent field.
// Explicit nil and absence are indistinguishable to the caller. Errors
// other than [ErrNotFound], such as a malformed path, are returned.
func ResolveOrNil(record any, name string) (any, error) {
	v, err := Resolve(record, name)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return v, err
}

// Has reports whether name resolves on record.
func Has(record any, name string) bool {
	_, err := Resolve(record, name)
	return err == nil
}

// IsNil reports whether v is nil or a nil pointer, map, slice, func,
// channel or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func lookup(record any, name string) (any, bool) {
	acc, ok := Of(record)
	if !ok {
		return nil, false
	}
	return acc.Field(name)
}

// walk descends through nested records one segment at a time.
func walk(record any, segments []string) (any, bool) {
	current := record
	for _, seg := range segments {
		next, ok := lookup(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// ─────────────────────────────────────────────────────────────────────────────
// JSONPath
// ─────────────────────────────────────────────────────────────────────────────

var paths struct {
	mu       sync.RWMutex
	compiled map[string]gval.Evaluable
}

var pathLanguage = gval.Full(jsonpath.PlaceholderExtension())

func init() {
	paths.compiled = make(map[string]gval.Evaluable)
}

// Compile parses a JSONPath expression and caches the result. Later calls
// to [Resolve] with the same expression reuse the compiled form.
func Compile(expr string) (gval.Evaluable, error) {
	paths.mu.RLock()
	eval, ok := paths.compiled[expr]
	paths.mu.RUnlock()
	if ok {
		return eval, nil
	}
	eval, err := pathLanguage.NewEvaluable(expr)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPath, "%q: %v", expr, err)
	}
	paths.mu.Lock()
	paths.compiled[expr] = eval
	paths.mu.Unlock()
	return eval, nil
}

func resolvePath(record any, expr string) (any, error) {
	eval, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	doc := record
	if acc, ok := Of(record); ok {
		if _, isMap := record.(map[string]any); !isMap {
			doc, _ = ToMap(acc)
		}
	}
	v, err := eval(context.Background(), doc)
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "path %q on %T: %v", expr, record, err)
	}
	return v, nil
}
