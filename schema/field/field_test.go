package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/draft/schema/field"
)

func TestKnown(t *testing.T) {
	t.Parallel()

	for _, typ := range field.Types() {
		assert.True(t, typ.Known(), "type %q", typ)
	}
	assert.False(t, field.Type("decimal128").Known())
	assert.False(t, field.Type("").Known())
}

func TestSimplify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want field.Type
	}{
		{"integer", field.TypeInt},
		{"INTEGER", field.TypeInt},
		{"bigint", "bigint"},
		{"character varying(255)", field.TypeVarchar},
		{"varchar(80)", field.TypeVarchar},
		{"text", field.TypeText},
		{"timestamp without time zone", field.TypeTimestamp},
		{"timestamp with time zone", "timestamptz"},
		{"datetime", field.TypeTimestamp},
		{"boolean", field.TypeBool},
		{"numeric(10,2)", field.TypeNumber},
		{"double precision", field.TypeFloat},
		{"jsonb", field.TypeJSON},
		{"uuid", field.TypeUUID},
		{"blob", "blob"},
		// No simpler spelling: preserved, lowercased.
		{"GEOMETRY", "geometry"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, field.Simplify(tt.in), "input %q", tt.in)
	}
}
