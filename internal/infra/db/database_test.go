//go:build unit

package db

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"bookingmx/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySchema(t *testing.T) {
	fsys := fstest.MapFS{
		"pg/002_add_index.sql":      {Data: []byte("CREATE INDEX x;")},
		"pg/001_initial_schema.sql": {Data: []byte("CREATE TABLE reservations;")},
	}

	t.Run("executes files in name order", func(t *testing.T) {
		var executed []string
		err := applySchema(fsys, "pg", func(sql string) error {
			executed = append(executed, sql)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"CREATE TABLE reservations;", "CREATE INDEX x;"}, executed)
	})

	t.Run("stops at the first failing file", func(t *testing.T) {
		calls := 0
		err := applySchema(fsys, "pg", func(string) error {
			calls++
			return errors.New("syntax error")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pg/001_initial_schema.sql")
		assert.Equal(t, 1, calls)
	})

	t.Run("missing directory", func(t *testing.T) {
		err := applySchema(fsys, "nope", func(string) error { return nil })
		require.Error(t, err)
	})
}

func TestEmbeddedMigrations(t *testing.T) {
	cases := []struct {
		dir  string
		fsys fs.FS
	}{
		{dir: "postgres", fsys: migrations.Postgres},
		{dir: "mysql", fsys: migrations.MySQL},
	}

	for _, tc := range cases {
		t.Run(tc.dir, func(t *testing.T) {
			var executed []string
			err := applySchema(tc.fsys, tc.dir, func(sql string) error {
				executed = append(executed, sql)
				return nil
			})
			require.NoError(t, err)
			require.NotEmpty(t, executed)
			assert.Contains(t, executed[0], "CREATE TABLE IF NOT EXISTS reservations")
		})
	}
}
