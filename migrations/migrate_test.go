package migrations

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)
	require.Error(t, err)
	assert.EqualError(t, err, "migration error: db is nil")
}

func TestMigrate_BrokenConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose begins by inspecting its version table
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}
