package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || hasPGCode(err, "23505") {
		return true
	}

	// MySQL (error code 1062)
	if strings.Contains(err.Error(), "Error 1062") {
		return true
	}

	// SQLite (error code 2067)
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return true
	}

	return false
}

func IsLockTimeout(err error) bool {
	return hasPGCode(err, "55P03")
}

func IsSerializationFailure(err error) bool {
	return hasPGCode(err, "40001")
}

// IsConnectionErr reports SQLSTATE class 08 failures.
func IsConnectionErr(err error) bool {
	code := pgCode(err)
	return len(code) == 5 && strings.HasPrefix(code, "08")
}

func hasPGCode(err error, code string) bool {
	return err != nil && pgCode(err) == code
}

// pgCode returns the SQLSTATE from either the pgx driver used by gorm or lib/pq used by
// golang-migrate.
func pgCode(err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
