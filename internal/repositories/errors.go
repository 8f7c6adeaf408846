package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/learnhowtocode/backend/internal/apperrors"
)

const mysqlErrDuplicateEntry = 1062

// isDuplicateKey reports whether err is a MySQL unique constraint violation
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

// duplicateOr translates a unique constraint violation into conflict,
// wrapping the driver error, and returns any other error unchanged
func duplicateOr(err error, conflict *apperrors.Error) error {
	if isDuplicateKey(err) {
		return conflict.Wrap(err)
	}
	return err
}
