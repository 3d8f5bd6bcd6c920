package tsg

import (
	"reflect"
)

// Qualify builds a fully qualified label "<Owner>.<name>" from the type of
// owner, for groups that are labeled by hand rather than through a Builder.
func Qualify(owner any, name string) string {
	t := reflect.TypeOf(owner)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return name
	}
	return t.Name() + "." + name
}

// Intersperse returns items with sep between each pair of neighbours.
func Intersperse[T any](items []T, sep T) []T {
	if len(items) == 0 {
		return nil
	}
	out := make([]T, 0, 2*len(items)-1)
	out = append(out, items[0])
	for _, it := range items[1:] {
		out = append(out, sep, it)
	}
	return out
}
