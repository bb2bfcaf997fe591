package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

func TestErrors_Structure(t *testing.T) {
	originalErr := errors.New("permission denied")

	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		vars int
	}{
		{"create", CreateTableError("weapons", originalErr), errcode.SchemaCreateError, 1},
		{"index", IndexError("weapons", originalErr), errcode.SchemaIndexError, 1},
		{"drop", DropTableError("weapons", originalErr), errcode.SchemaDropError, 1},
		{"sequence", DropSequenceError("weapons_weapon_id_seq", originalErr), errcode.SchemaDropError, 1},
		{"clear", ClearTableError("weapons", originalErr), errcode.SchemaClearError, 1},
		{"migrate", MigrateSchemaError(originalErr), errcode.SchemaMigrateError, 0},
		{"gorm", GORMConnectionError(originalErr), errcode.SchemaGORMConnectionError, 0},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.NotEmpty(t, gnErr.Msg, v.msg)
		assert.Len(t, gnErr.Vars, v.vars, v.msg)
		assert.ErrorIs(t, gnErr.Err, originalErr, v.msg)
	}
}

func TestMigrateUnsupportedError(t *testing.T) {
	err := MigrateUnsupportedError("sqlite")
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SchemaMigrateUnsupportedError, gnErr.Code)
	assert.Equal(t, []any{"sqlite"}, gnErr.Vars)
}
