// Package field resolves named values on records of any shape.
//
// A record is whatever a Collection holds: a map with string keys, a struct
// (or pointer to one), a value implementing [Accessor], or a plain scalar.
// [Of] picks the adapter once per record with a single type check, so the
// rest of the query engine never branches on record representation.
//
// # Names
//
//	field.Resolve(user, "name")                // map key or struct property
//	field.Resolve(user, "address.city")        // dot path through nested records
//	field.Resolve(user, "$.tags[0]")           // JSONPath expression
//	field.Resolve(42, "")                      // "" is the record itself
//
// Struct properties are matched by json tag name first, then by Go field
// name, then case-insensitively.
//
// # Absence
//
// [Resolve] fails with [ErrNotFound] when a name does not exist.
// [ResolveOrNil] treats absence as nil but still reports a malformed path;
// it backs the nullable matchers only.
package field
