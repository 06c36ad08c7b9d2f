// Package types holds the closed set of static types of the language.
package types

type Type int

const (
	NULL Type = iota
	NUM
	BOOL
	TEXT
)

// Typed is implemented by every node that resolves to a static type
type Typed interface {
	Type() Type
}

func (ty Type) String() string {
	switch ty {
	case NULL:
		return "Null"
	case NUM:
		return "Num"
	case BOOL:
		return "Bool"
	case TEXT:
		return "Text"
	default:
		return "Unknown"
	}
}

// OneOf reports whether ty is a member of allowed
func (ty Type) OneOf(allowed ...Type) bool {
	for _, candidate := range allowed {
		if ty == candidate {
			return true
		}
	}
	return false
}
