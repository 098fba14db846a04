package constant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kasl-lang/kasl/types"
)

// Cast converts an Integer to another primitive type. integer -> vector and
// integer -> quaternion have no sensible constant form and return nil.
func (i *Integer) Cast(target *types.Type) Value {
	switch target.Kind() {
	case types.Integer:
		return i.Copy()
	case types.Float:
		return &Float{V: float32(i.V)}
	case types.String:
		return &String{V: strconv.FormatInt(int64(i.V), 10)}
	case types.Key:
		return &String{V: strconv.FormatInt(int64(i.V), 10), IsKey: true}
	case types.List:
		return &List{Elements: []Value{i.Copy()}}
	default:
		return nil
	}
}

// Cast converts a Float to another primitive type. Integer truncation
// follows the language's historical toward-zero rule.
func (f *Float) Cast(target *types.Type) Value {
	switch target.Kind() {
	case types.Float:
		return f.Copy()
	case types.Integer:
		return &Integer{V: int32(f.V)}
	case types.String:
		return &String{V: strconv.FormatFloat(float64(f.V), 'g', -1, 32)}
	case types.List:
		return &List{Elements: []Value{f.Copy()}}
	default:
		return nil
	}
}

// Cast converts a String/Key to another primitive type. string -> integer
// and string -> float parse leniently, matching the runtime's forgiving
// numeric-literal scanning: a prefix parse failure yields zero rather than
// an unfoldable result, since the runtime never raises a cast error here.
func (s *String) Cast(target *types.Type) Value {
	switch target.Kind() {
	case types.String:
		return &String{V: s.V}
	case types.Key:
		return &String{V: s.V, IsKey: true}
	case types.Integer:
		n, _ := strconv.ParseInt(strings.TrimSpace(leadingNumeric(s.V, false)), 10, 32)
		return &Integer{V: int32(n)}
	case types.Float:
		v, _ := strconv.ParseFloat(strings.TrimSpace(leadingNumeric(s.V, true)), 32)
		return &Float{V: float32(v)}
	case types.List:
		return &List{Elements: []Value{s.Copy()}}
	case types.Vector:
		return parseVectorLiteral(s.V)
	case types.Quaternion:
		return parseQuaternionLiteral(s.V)
	default:
		return nil
	}
}

// leadingNumeric returns the longest numeric-looking prefix of s, used by
// the lenient string->integer/float casts.
func leadingNumeric(s string, allowFloat bool) string {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if allowFloat && i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i == start {
		return "0"
	}
	return s[:i]
}

func parseVectorLiteral(s string) Value {
	var x, y, z float32
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	if n, _ := fmt.Sscanf(s, "%f, %f, %f", &x, &y, &z); n != 3 {
		return nil
	}
	return &Vector{X: x, Y: y, Z: z}
}

func parseQuaternionLiteral(s string) Value {
	var x, y, z, w float32
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	if n, _ := fmt.Sscanf(s, "%f, %f, %f, %f", &x, &y, &z, &w); n != 4 {
		return nil
	}
	return &Quaternion{X: x, Y: y, Z: z, S: w}
}

// Cast converts a Vector to string/list only; there is no constant-foldable
// vector -> number conversion.
func (v *Vector) Cast(target *types.Type) Value {
	switch target.Kind() {
	case types.Vector:
		return v.Copy()
	case types.String:
		return &String{V: v.Inspect()}
	case types.List:
		return &List{Elements: []Value{v.Copy()}}
	default:
		return nil
	}
}

// Cast converts a Quaternion to string/list only.
func (q *Quaternion) Cast(target *types.Type) Value {
	switch target.Kind() {
	case types.Quaternion:
		return q.Copy()
	case types.String:
		return &String{V: q.Inspect()}
	case types.List:
		return &List{Elements: []Value{q.Copy()}}
	default:
		return nil
	}
}

// Cast converts a List to string only (list element-wise casts aren't part
// of the constant-folding surface); list -> list is the identity.
func (l *List) Cast(target *types.Type) Value {
	switch target.Kind() {
	case types.List:
		return l.Copy()
	case types.String:
		return &String{V: l.Inspect()}
	default:
		return nil
	}
}
