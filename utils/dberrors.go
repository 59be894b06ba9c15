package utils

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers for integrity violations.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// IsDuplicate reports whether err is a unique-key violation.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrDuplicateEntry
	}
	// sqlite (tests) and drivers that only expose text
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate entry") || strings.Contains(lc, "unique constraint")
}

// IsForeignKey reports whether err is a foreign-key violation, either a
// dangling reference on insert or a restricted delete.
func IsForeignKey(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrRowIsReferenced || myErr.Number == mysqlErrNoReferencedRow
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// IsIntegrityViolation covers both cases; handlers map it to 409.
func IsIntegrityViolation(err error) bool {
	return IsDuplicate(err) || IsForeignKey(err)
}
