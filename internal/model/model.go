// Package model defines the stored entities (users, characters, planets and
// favorites) and the fixed-shape values they serialize to.
//
// Every entity implements Serializer with its own response type, so handlers
// never hand raw rows to the JSON encoder.
package model

// Serializer converts a stored entity into its transport representation.
type Serializer[T any] interface {
	Serialize() T
}

// SerializeAll maps a slice of entities to their serialized form.
//
// The result is never nil, so an empty table encodes as [] rather than null.
//
//	users := model.SerializeAll[model.UserResponse](rows)
func SerializeAll[T any, E Serializer[T]](items []E) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, item.Serialize())
	}
	return out
}

// All lists every entity, in dependency order, for schema auto-migration.
func All() []any {
	return []any{
		&User{},
		&Character{},
		&Planet{},
		&Favorite{},
	}
}
