package engine

import (
	"database/sql/driver"
	"errors"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// IsTransient reports whether the error looks like a connection-level
// hiccup worth retrying. Constraint violations and coercion failures
// are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1205, 1213: // lock wait timeout, deadlock
			return true
		}
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08": // connection exception
			return true
		case "57": // operator intervention (admin shutdown, crash recovery)
			return true
		}
		return false
	}
	return false
}

// IsPermission reports whether the error is a privilege failure, which
// is fatal for the affected table but never retried.
func IsPermission(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1044, 1045, 1142, 1227: // access denied variants
			return true
		}
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42501" // insufficient_privilege
	}
	return false
}
