// Package compare evaluates relational operators between scalar values.
//
// Two notions of equality are supported. Loose equality coerces numeric
// strings, so "500" equals 500; strict equality requires the same type
// family and value, so "500" is not identical to 500 and 500 is not identical
// to 500.0.
//
// Operators are a closed enumeration. Parse the operator string once with
// [ParseOperator] and apply the resulting [Operator] to as many value pairs
// as needed:
//
//	op, err := compare.ParseOperator(">=")
//	if err != nil {
//	    return err // wraps compare.ErrInvalidOperator
//	}
//	op.Apply(price, 100)
package compare

import "github.com/pkg/errors"

// ErrInvalidOperator is returned for an operator string that is not one of
// =, ==, !=, <>, <, >, <=, >=, ===, !==.
var ErrInvalidOperator = errors.New("compare: invalid operator")

// Operator is a relational operator.
type Operator int

// Supported operators.
const (
	Equal          Operator = iota + 1 // = or ==, loose
	NotEqual                           // != or <>, loose
	Less                               // <
	Greater                            // >
	LessOrEqual                        // <=
	GreaterOrEqual                     // >=
	Identical                          // ===, strict
	NotIdentical                       // !==, strict
)

var operatorSymbols = map[string]Operator{
	"=":   Equal,
	"==":  Equal,
	"!=":  NotEqual,
	"<>":  NotEqual,
	"<":   Less,
	">":   Greater,
	"<=":  LessOrEqual,
	">=":  GreaterOrEqual,
	"===": Identical,
	"!==": NotIdentical,
}

var operatorFuncs = [...]func(left, right any) bool{
	Equal:          LooseEqual,
	NotEqual:       func(l, r any) bool { return !LooseEqual(l, r) },
	Less:           func(l, r any) bool { return Order(l, r) < 0 },
	Greater:        func(l, r any) bool { return Order(l, r) > 0 },
	LessOrEqual:    func(l, r any) bool { return Order(l, r) <= 0 },
	GreaterOrEqual: func(l, r any) bool { return Order(l, r) >= 0 },
	Identical:      StrictEqual,
	NotIdentical:   func(l, r any) bool { return !StrictEqual(l, r) },
}

// ParseOperator returns the Operator for symbol.
func ParseOperator(symbol string) (Operator, error) {
	op, ok := operatorSymbols[symbol]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidOperator, "%q", symbol)
	}
	return op, nil
}

// Valid reports whether o is one of the declared operators.
func (o Operator) Valid() bool {
	return o >= Equal && o <= NotIdentical
}

// Apply evaluates left o right. It panics if o is not [Operator.Valid];
// operators obtained from [ParseOperator] always are.
func (o Operator) Apply(left, right any) bool {
	return operatorFuncs[o](left, right)
}

// String returns the canonical symbol of o.
func (o Operator) String() string {
	switch o {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case Less:
		return "<"
	case Greater:
		return ">"
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	case Identical:
		return "==="
	case NotIdentical:
		return "!=="
	}
	return "Operator(?)"
}

// Compare parses symbol and evaluates left symbol right.
//
//	compare.Compare("=", "500", 500)   // true, nil
//	compare.Compare("===", "500", 500) // false, nil
//	compare.Compare("~", 1, 1)         // false, ErrInvalidOperator
func Compare(symbol string, left, right any) (bool, error) {
	op, err := ParseOperator(symbol)
	if err != nil {
		return false, err
	}
	return op.Apply(left, right), nil
}
