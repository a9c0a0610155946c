// Package field defines the advisory type tags carried by ER entity fields.
//
// The tag set is closed for well-known types, but deliberately not enforced:
// a hand-edited diagram may carry any type text, and the parser preserves it
// verbatim so the diagram still renders. Known() distinguishes the two.
package field

import "strings"

// Type is the textual type tag of an entity field.
type Type string

// Known type tags.
const (
	TypeString    Type = "string"
	TypeInt       Type = "int"
	TypeFloat     Type = "float"
	TypeBool      Type = "bool"
	TypeDatetime  Type = "datetime"
	TypeUUID      Type = "uuid"
	TypeText      Type = "text"
	TypeNumber    Type = "number"
	TypeVarchar   Type = "varchar"
	TypeJSON      Type = "json"
	TypeTimestamp Type = "timestamp"
)

var known = map[Type]struct{}{
	TypeString:    {},
	TypeInt:       {},
	TypeFloat:     {},
	TypeBool:      {},
	TypeDatetime:  {},
	TypeUUID:      {},
	TypeText:      {},
	TypeNumber:    {},
	TypeVarchar:   {},
	TypeJSON:      {},
	TypeTimestamp: {},
}

// Known reports if the tag belongs to the closed well-known set. Unknown
// tags are legal and are carried through unchanged.
func (t Type) Known() bool {
	_, ok := known[t]
	return ok
}

// String returns the tag text.
func (t Type) String() string { return string(t) }

// Types returns the well-known tags in a fixed order.
func Types() []Type {
	return []Type{
		TypeString, TypeInt, TypeFloat, TypeBool, TypeDatetime, TypeUUID,
		TypeText, TypeNumber, TypeVarchar, TypeJSON, TypeTimestamp,
	}
}

// Simplify maps a verbose SQL data-type name to its diagram tag. Types with
// no simpler spelling come back unchanged, lowercased.
func Simplify(dataType string) Type {
	dt := strings.ToLower(strings.TrimSpace(dataType))
	switch {
	case dt == "integer", dt == "int4", dt == "serial":
		return TypeInt
	case dt == "bigint", dt == "int8", dt == "bigserial":
		return "bigint"
	case dt == "smallint", dt == "int2":
		return "smallint"
	case strings.HasPrefix(dt, "character varying"), strings.HasPrefix(dt, "varchar"), strings.HasPrefix(dt, "nvarchar"):
		return TypeVarchar
	case strings.HasPrefix(dt, "character"), strings.HasPrefix(dt, "char"):
		return "char"
	case dt == "text", dt == "clob":
		return TypeText
	case strings.HasPrefix(dt, "timestamp with time zone"):
		return "timestamptz"
	case strings.HasPrefix(dt, "timestamp"), dt == "datetime":
		return TypeTimestamp
	case strings.HasPrefix(dt, "time"):
		return "time"
	case dt == "date":
		return "date"
	case dt == "boolean", dt == "bool":
		return TypeBool
	case strings.HasPrefix(dt, "numeric"), strings.HasPrefix(dt, "decimal"):
		return TypeNumber
	case dt == "real", dt == "float", dt == "double", dt == "double precision":
		return TypeFloat
	case dt == "json", dt == "jsonb":
		return TypeJSON
	case dt == "uuid":
		return TypeUUID
	case dt == "bytea", dt == "blob":
		return "blob"
	default:
		return Type(dt)
	}
}
