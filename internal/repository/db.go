package repository

import (
	"database/sql"
	"errors"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/lib/pq"
)

const pqUniqueViolation = pq.ErrorCode("23505")

type dbConn interface {
	qrm.Queryable
	qrm.Executable
}

// run against the caller's tx when there is one so checks and writes
// in a service call see the same snapshot
func pickDb(db *sql.DB, tx *sql.Tx) dbConn {
	if tx != nil {
		return tx
	}
	return db
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
