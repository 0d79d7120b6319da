package compare

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// family groups Go kinds the way the comparison rules see them.
type family int

const (
	famNil family = iota
	famBool
	famInt
	famFloat
	famString
	famTime
	famOther
)

func familyOf(v any) family {
	if v == nil {
		return famNil
	}
	switch v.(type) {
	case time.Time:
		return famTime
	case json.Number:
		return famString
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return famBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return famInt
	case reflect.Float32, reflect.Float64:
		return famFloat
	case reflect.String:
		return famString
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if reflect.ValueOf(v).IsNil() {
			return famNil
		}
	}
	return famOther
}

// rank orders families for the cross-type natural ordering.
func (f family) rank() int {
	switch f {
	case famNil:
		return 0
	case famBool:
		return 1
	case famInt, famFloat:
		return 2
	case famString:
		return 3
	case famTime:
		return 4
	}
	return 5
}

// rankOf is the rank of v itself: numeric strings rank with numbers.
func rankOf(v any, f family) int {
	if f == famString && IsNumeric(v) {
		return famInt.rank()
	}
	return f.rank()
}

// Integer is an integer of any width and signedness, held as sign and
// magnitude so that int64 and uint64 values compare without loss.
type Integer struct {
	Neg bool
	Mag uint64
}

// ToInteger returns v as an exact Integer if it is an integer or a string
// holding a base-10 integer within the int64/uint64 range.
func ToInteger(v any) (Integer, bool) {
	switch familyOf(v) {
	case famInt:
		rv := reflect.ValueOf(v)
		if rv.CanInt() {
			return integerOf(rv.Int()), true
		}
		return Integer{Mag: rv.Uint()}, true
	case famString:
		s := strings.TrimSpace(stringOf(v))
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return integerOf(n), true
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Integer{Mag: u}, true
		}
	}
	return Integer{}, false
}

func integerOf(n int64) Integer {
	if n < 0 {
		// -(n+1) cannot overflow for math.MinInt64.
		return Integer{Neg: true, Mag: uint64(-(n + 1)) + 1}
	}
	return Integer{Mag: uint64(n)}
}

// Cmp returns -1, 0 or +1 depending on whether i is less than, equal to or
// greater than j.
func (i Integer) Cmp(j Integer) int {
	switch {
	case i.Neg && !j.Neg:
		return -1
	case !i.Neg && j.Neg:
		return 1
	}
	c := 0
	switch {
	case i.Mag < j.Mag:
		c = -1
	case i.Mag > j.Mag:
		c = 1
	}
	if i.Neg {
		return -c
	}
	return c
}

// Float reports whether i converts to float64 without rounding and
// returns the converted value.
func (i Integer) Float() (float64, bool) {
	f := float64(i.Mag)
	if f >= math.Exp2(64) || uint64(f) != i.Mag {
		return 0, false
	}
	if i.Neg {
		f = -f
	}
	return f, true
}

// ToNumber converts v to float64 if it is a number or a numeric string.
// Booleans and nil are not numbers.
func ToNumber(v any) (float64, bool) {
	switch familyOf(v) {
	case famInt, famFloat:
	case famString:
		s := strings.TrimSpace(stringOf(v))
		f, err := cast.ToFloat64E(s)
		if s == "" || err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return f, !math.IsNaN(f)
	}
	// Named numeric types fall outside cast's type switch.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), !math.IsNaN(rv.Float())
	}
	return 0, false
}

// IsNumeric reports whether [ToNumber] succeeds for v.
func IsNumeric(v any) bool {
	_, ok := ToNumber(v)
	return ok
}

func stringOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}

func truthy(v any) bool {
	switch familyOf(v) {
	case famNil:
		return false
	case famBool:
		return reflect.ValueOf(v).Bool()
	case famInt, famFloat:
		f, _ := ToNumber(v)
		return f != 0
	case famString:
		s := stringOf(v)
		return s != "" && s != "0"
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality
// ─────────────────────────────────────────────────────────────────────────────

// LooseEqual reports whether a and b are equal after coercion:
//
//   - nil equals only nil
//   - if either side is a bool, both sides compare by truthiness
//   - integers and integer strings compare exactly
//   - other numbers and numeric strings compare numerically
//   - strings compare by value
//   - anything else compares with reflect.DeepEqual
func LooseEqual(a, b any) bool {
	fa, fb := familyOf(a), familyOf(b)
	switch {
	case fa == famNil || fb == famNil:
		return fa == fb
	case fa == famBool || fb == famBool:
		return truthy(a) == truthy(b)
	}
	if c, ok := cmpNumbers(a, b); ok {
		return c == 0
	}
	if fa == famString && fb == famString {
		return stringOf(a) == stringOf(b)
	}
	if fa == famTime && fb == famTime {
		return a.(time.Time).Equal(b.(time.Time))
	}
	return reflect.DeepEqual(a, b)
}

// StrictEqual reports whether a and b have the same type family and value.
// All integer kinds form one family and both float kinds another, so
// int32(5) is identical to int64(5) while 5 is not identical to 5.0.
func StrictEqual(a, b any) bool {
	fa, fb := familyOf(a), familyOf(b)
	if fa != fb {
		return false
	}
	switch fa {
	case famNil:
		return true
	case famBool:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case famInt:
		ia, _ := ToInteger(a)
		ib, _ := ToInteger(b)
		return ia == ib
	case famFloat:
		return reflect.ValueOf(a).Float() == reflect.ValueOf(b).Float()
	case famString:
		return stringOf(a) == stringOf(b)
	case famTime:
		return a.(time.Time).Equal(b.(time.Time))
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Order returns -1, 0 or +1 depending on whether a sorts before, with or
// after b in natural order.
//
// Integers and integer strings compare exactly, other numbers and numeric
// strings numerically, other strings lexicographically, booleans false
// before true and times chronologically. Numeric strings rank as numbers, so
// "2" < "10" < "1a". Values of different kinds order as nil < bool < number
// < string < time < everything else; values of an unknown kind compare by
// their fmt representation.
func Order(a, b any) int {
	if c, ok := cmpNumbers(a, b); ok {
		return c
	}
	fa, fb := familyOf(a), familyOf(b)
	ra, rb := rankOf(a, fa), rankOf(b, fb)
	if ra != rb {
		return cmpInt(ra, rb)
	}
	switch {
	case fa == famNil:
		return 0
	case fa == famBool:
		return cmpInt(boolInt(reflect.ValueOf(a).Bool()), boolInt(reflect.ValueOf(b).Bool()))
	case ra == famInt.rank():
		// Reached only when one side is NaN.
		return cmpFloat(floatOrNaN(a), floatOrNaN(b))
	}
	switch fa {
	case famString:
		return strings.Compare(stringOf(a), stringOf(b))
	case famTime:
		return a.(time.Time).Compare(b.(time.Time))
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// cmpNumbers compares a and b if both are numbers or numeric strings.
// Integers are never rounded through float64.
func cmpNumbers(a, b any) (int, bool) {
	ia, aInt := ToInteger(a)
	ib, bInt := ToInteger(b)
	if aInt && bInt {
		return ia.Cmp(ib), true
	}
	na, ok := ToNumber(a)
	if !ok {
		return 0, false
	}
	nb, ok := ToNumber(b)
	if !ok {
		return 0, false
	}
	switch {
	case aInt:
		return cmpIntegerFloat(ia, nb), true
	case bInt:
		return -cmpIntegerFloat(ib, na), true
	}
	return cmpFloat(na, nb), true
}

func cmpIntegerFloat(i Integer, x float64) int {
	if f, ok := i.Float(); ok {
		return cmpFloat(f, x)
	}
	// |i| >= 2^53 here, so any float of smaller magnitude compares the same
	// after rounding and any float of larger magnitude is integral.
	switch {
	case x >= math.Exp2(64):
		return -1
	case x <= -math.Exp2(64):
		return 1
	case math.Abs(x) < math.Exp2(53):
		f := float64(i.Mag)
		if i.Neg {
			f = -f
		}
		return cmpFloat(f, x)
	}
	return i.Cmp(Integer{Neg: x < 0, Mag: uint64(math.Abs(x))})
}

func floatOrNaN(v any) float64 {
	if f, ok := ToNumber(v); ok {
		return f
	}
	return math.NaN()
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	// NaN sorts first.
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return -1
	}
	return 1
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
