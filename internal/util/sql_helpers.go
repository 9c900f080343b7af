package util

import (
	"database/sql"
)

// NullFromPtr maps a nil pointer to SQL NULL. Zero values stay non-NULL, so
// a group id or answer value of 0 survives a round trip.
func NullFromPtr[T any](v *T) sql.Null[T] {
	if v == nil {
		return sql.Null[T]{}
	}
	return sql.Null[T]{V: *v, Valid: true}
}

func PtrFromNull[T any](n sql.Null[T]) *T {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}

// NullIfEmpty stores free-text columns ("" from the API) as NULL.
func NullIfEmpty(s string) sql.Null[string] {
	return sql.Null[string]{V: s, Valid: s != ""}
}
