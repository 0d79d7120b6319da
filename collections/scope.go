package collections

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-laravel-query/match"
)

// ScopeFunc builds a reusable predicate from call-time arguments.
//
// Scopes are independent of the record type, so one registration serves
// every Collection[T] instantiation. A ScopeFunc that returns neither a
// predicate nor an error fails the call with [ErrInvalidArgument].
type ScopeFunc func(args ...any) (match.Predicate, error)

// scopeRegistry is the package-level, goroutine-safe scope store.
var scopeRegistry struct {
	mu     sync.RWMutex
	scopes map[string]ScopeFunc
}

func init() {
	scopeRegistry.scopes = make(map[string]ScopeFunc)
}

// RegisterScope adds a named scope to the global registry.
// If a scope with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
// Example – a scope that keeps records above a minimum price:
//
//	collections.RegisterScope("priceAbove", func(args ...any) (match.Predicate, error) {
//	    return match.Where("price", ">", args[0])
//	})
//
//	res, err := orders.Scope("priceAbove", 500)
func RegisterScope(name string, fn ScopeFunc) {
	scopeRegistry.mu.Lock()
	defer scopeRegistry.mu.Unlock()
	scopeRegistry.scopes[name] = fn
}

// HasScope reports whether a scope with the given name is registered.
func HasScope(name string) bool {
	scopeRegistry.mu.RLock()
	defer scopeRegistry.mu.RUnlock()
	_, ok := scopeRegistry.scopes[name]
	return ok
}

// FlushScopes removes all registered scopes.
// Intended for use in tests.
func FlushScopes() {
	scopeRegistry.mu.Lock()
	defer scopeRegistry.mu.Unlock()
	scopeRegistry.scopes = make(map[string]ScopeFunc)
}

// buildScope looks up name and builds its predicate with args.
func buildScope(name string, args ...any) (match.Predicate, error) {
	scopeRegistry.mu.RLock()
	fn, ok := scopeRegistry.scopes[name]
	scopeRegistry.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrScopeNotFound, "%q", name)
	}
	p, err := fn(args...)
	if err == nil && p == nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "scope %q built no predicate", name)
	}
	return p, err
}
