package match

import (
	"fmt"
	"unicode"

	"github.com/hasbyte1/go-laravel-query/field"
)

// Like matches records whose field matches an SQL LIKE pattern.
//
// '%' matches any run of characters (including none), '_' matches exactly
// one character and '\' makes the next character literal. Matching is
// case-insensitive and anchored at both ends. Non-string values are matched
// against their fmt representation; nil never matches.
//
//	match.Like("name", "%doe%")  // "John Doe", "Jane Doe"
//	match.Like("code", "A_1")    // "AB1", "ax1"
func Like(name, pattern string) Predicate {
	compiled := compileLike(pattern)
	return func(record any) (bool, error) {
		v, err := field.Resolve(record, name)
		if err != nil {
			return false, err
		}
		if field.IsNil(v) {
			return false, nil
		}
		return compiled.match(fold(toString(v))), nil
	}
}

// NotLike is the negation of [Like]. A nil value does not match NotLike
// either.
func NotLike(name, pattern string) Predicate {
	compiled := compileLike(pattern)
	return func(record any) (bool, error) {
		v, err := field.Resolve(record, name)
		if err != nil {
			return false, err
		}
		if field.IsNil(v) {
			return false, nil
		}
		return !compiled.match(fold(toString(v))), nil
	}
}

// MatchLike reports whether s matches pattern under the rules of [Like].
func MatchLike(s, pattern string) bool {
	return compileLike(pattern).match(fold(s))
}

type likeToken struct {
	kind byte // 'l' literal, '_' one, '%' any
	r    rune
}

type likePattern []likeToken

func compileLike(pattern string) likePattern {
	runes := fold(pattern)
	out := make(likePattern, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == '\\' && i+1 < len(runes):
			i++
			out = append(out, likeToken{kind: 'l', r: runes[i]})
		case r == '%':
			// Collapse runs of '%'.
			if n := len(out); n > 0 && out[n-1].kind == '%' {
				continue
			}
			out = append(out, likeToken{kind: '%'})
		case r == '_':
			out = append(out, likeToken{kind: '_'})
		default:
			out = append(out, likeToken{kind: 'l', r: r})
		}
	}
	return out
}

// match runs the classic greedy wildcard scan with single-point
// backtracking to the most recent '%'.
func (p likePattern) match(s []rune) bool {
	si, pi := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		if pi < len(p) {
			switch t := p[pi]; {
			case t.kind == '%':
				star, mark = pi, si
				pi++
				continue
			case t.kind == '_' || t.r == s[si]:
				si++
				pi++
				continue
			}
		}
		if star < 0 {
			return false
		}
		pi = star + 1
		mark++
		si = mark
	}
	for pi < len(p) && p[pi].kind == '%' {
		pi++
	}
	return pi == len(p)
}

func fold(s string) []rune {
	out := []rune(s)
	for i, r := range out {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
