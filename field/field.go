package field

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Accessor is the capability every record adapter provides: look up one
// named value and list the names available.
//
// Record types that want full control over field resolution implement
// Accessor themselves; [Of] returns them unchanged.
type Accessor interface {
	// Field returns the value stored under name and whether it exists.
	Field(name string) (any, bool)

	// Fields returns the names Field can resolve, in a stable order.
	Fields() []string
}

// Of returns the Accessor for record, selecting the map-backed or the
// property-backed adapter. It reports false for records with no named
// fields (scalars, slices, nil).
func Of(record any) (Accessor, bool) {
	switch r := record.(type) {
	case nil:
		return nil, false
	case Accessor:
		return r, true
	case map[string]any:
		return Map(r), true
	}

	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String || v.IsNil() {
			return nil, false
		}
		return reflectMap{v}, true
	case reflect.Struct:
		return object{v: v, idx: indexOf(v.Type())}, true
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Map adapters
// ─────────────────────────────────────────────────────────────────────────────

// Map adapts a map[string]any record.
type Map map[string]any

// Field implements [Accessor].
func (m Map) Field(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Fields implements [Accessor]. Names are sorted.
func (m Map) Fields() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// reflectMap adapts any other map whose key kind is string
// (map[string]int, map[Name]string, ...).
type reflectMap struct{ v reflect.Value }

func (m reflectMap) Field(name string) (any, bool) {
	key := reflect.ValueOf(name).Convert(m.v.Type().Key())
	val := m.v.MapIndex(key)
	if !val.IsValid() {
		return nil, false
	}
	return val.Interface(), true
}

func (m reflectMap) Fields() []string {
	names := make([]string, 0, m.v.Len())
	for _, k := range m.v.MapKeys() {
		names = append(names, k.String())
	}
	slices.Sort(names)
	return names
}

// ─────────────────────────────────────────────────────────────────────────────
// Struct adapter
// ─────────────────────────────────────────────────────────────────────────────

// structIndex maps the names of one struct type to field index paths.
type structIndex struct {
	names  []string         // declaration order, json name when tagged
	exact  map[string][]int // json tag names and Go field names
	folded map[string][]int // lower-cased Go field names
}

var indexCache sync.Map // reflect.Type -> *structIndex

func indexOf(t reflect.Type) *structIndex {
	if idx, ok := indexCache.Load(t); ok {
		return idx.(*structIndex)
	}
	idx := &structIndex{
		exact:  make(map[string][]int),
		folded: make(map[string][]int),
	}
	// Tag names win over Go names, so they are indexed in a first pass.
	var fields []reflect.StructField
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || isEmbeddedStruct(f) {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == "-" {
			continue
		}
		fields = append(fields, f)
		if tag == "" {
			idx.names = append(idx.names, f.Name)
			continue
		}
		idx.names = append(idx.names, tag)
		idx.exact[tag] = f.Index
	}
	for _, f := range fields {
		if _, ok := idx.exact[f.Name]; !ok {
			idx.exact[f.Name] = f.Index
		}
		lower := strings.ToLower(f.Name)
		if _, ok := idx.folded[lower]; !ok {
			idx.folded[lower] = f.Index
		}
	}
	actual, _ := indexCache.LoadOrStore(t, idx)
	return actual.(*structIndex)
}

func isEmbeddedStruct(f reflect.StructField) bool {
	if !f.Anonymous {
		return false
	}
	t := f.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// object adapts a struct value; properties are read through reflection.
type object struct {
	v   reflect.Value
	idx *structIndex
}

func (o object) Field(name string) (any, bool) {
	path, ok := o.idx.exact[name]
	if !ok {
		path, ok = o.idx.folded[strings.ToLower(name)]
	}
	if !ok {
		return nil, false
	}
	fv, err := o.v.FieldByIndexErr(path)
	if err != nil {
		// Promoted through a nil embedded pointer.
		return nil, true
	}
	return fv.Interface(), true
}

func (o object) Fields() []string {
	out := make([]string, len(o.idx.names))
	copy(out, o.idx.names)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToMap returns the named fields of record as a new map[string]any.
// Struct records are keyed by their json tag names (Go names when untagged).
func ToMap(record any) (map[string]any, error) {
	acc, ok := Of(record)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedRecord, "%T", record)
	}
	names := acc.Fields()
	out := make(map[string]any, len(names))
	for _, name := range names {
		v, _ := acc.Field(name)
		out[name] = v
	}
	return out, nil
}

