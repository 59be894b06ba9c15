package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateMySQLErrorNumber(t *testing.T) {
	err := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'users.username'"}
	assert.True(t, IsDuplicate(err))
	assert.True(t, IsDuplicate(fmt.Errorf("create user: %w", err)))
	assert.False(t, IsForeignKey(err))
}

func TestIsForeignKeyMySQLErrorNumbers(t *testing.T) {
	insert := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}
	del := &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}
	assert.True(t, IsForeignKey(insert))
	assert.True(t, IsForeignKey(del))
	assert.False(t, IsDuplicate(insert))
}

func TestStringFallbacks(t *testing.T) {
	// sqlite wording, as seen under the test driver
	assert.True(t, IsDuplicate(errors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, IsForeignKey(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, IsIntegrityViolation(errors.New("connection refused")))
}

func TestNilError(t *testing.T) {
	assert.False(t, IsDuplicate(nil))
	assert.False(t, IsForeignKey(nil))
	assert.False(t, IsIntegrityViolation(nil))
}
