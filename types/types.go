// Package types implements the process-wide registry of the scripting
// language's primitive types.
//
// There is a small closed set of primitive types. Each is a canonical
// singleton: two Type values are equal if and only if they are the same
// pointer, so callers compare types with == rather than by name.
package types

// Kind identifies one of the primitive types.
type Kind int

//nolint:revive
const (
	Null Kind = iota
	Integer
	Float
	String
	Key
	Vector
	Quaternion
	List
	Error
	numKinds
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "void"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Key:
		return "key"
	case Vector:
		return "vector"
	case Quaternion:
		return "rotation"
	case List:
		return "list"
	case Error:
		return "error"
	default:
		return "?"
	}
}

// Type is a canonical, interned primitive type. Compare Type values with ==.
type Type struct {
	kind Kind
}

// Kind returns the type's underlying kind, recovering what get(kind)
// originally produced.
func (t *Type) Kind() Kind { return t.kind }

func (t *Type) String() string { return t.kind.String() }

// IsNumeric reports whether t is integer or float.
func (t *Type) IsNumeric() bool {
	return t.kind == Integer || t.kind == Float
}

var registry [numKinds]*Type

func init() {
	for k := Kind(0); k < numKinds; k++ {
		registry[k] = &Type{kind: k}
	}
}

// Get returns the canonical singleton Type for the given kind.
func Get(kind Kind) *Type {
	return registry[kind]
}

// ByName resolves one of the textual type names used in source and in the
// builtin manifest grammar (e.g. "integer", "rotation") to its Type. It
// reports an unknown name by returning nil.
func ByName(name string) *Type {
	switch name {
	case "void":
		return Get(Null)
	case "integer":
		return Get(Integer)
	case "float":
		return Get(Float)
	case "string":
		return Get(String)
	case "key":
		return Get(Key)
	case "vector":
		return Get(Vector)
	case "rotation", "quaternion":
		return Get(Quaternion)
	case "list":
		return Get(List)
	default:
		return nil
	}
}
