package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "dsn")
	assert.Error(t, err)
}

func TestOpenSQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "yoga.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var enabled int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"yoga.db", "yoga.db?_pragma=foreign_keys(1)"},
		{"file:yoga.db?_pragma=busy_timeout(5000)", "file:yoga.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"},
		{"file:yoga.db?_pragma=foreign_keys(0)", "file:yoga.db?_pragma=foreign_keys(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func TestMigrateUnsupportedDriver(t *testing.T) {
	assert.Error(t, Migrate(nil, "oracle"))
}

func TestIsDuplicateEntryError(t *testing.T) {
	assert.False(t, isDuplicateEntryError(nil))
	assert.False(t, isDuplicateEntryError(ErrUserNotFound))
	assert.True(t, isDuplicateEntryError(errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'uk_users_email'")))
	assert.True(t, isDuplicateEntryError(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")))
}
