package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrSchemaMismatch     = errors.New("schema mismatch")
)

// NewDatabaseError creates a new database error with details about the operation.
// The result's Error() is meant to be shown to the operator as is.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	// Check for common database errors and provide more specific messages
	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "column") && (strings.Contains(errStr, "does not exist") || strings.Contains(errStr, "could not find")):
			return &ApiErr{
				StatusCode: http.StatusBadGateway,
				err:        ErrSchemaMismatch,
				Details:    fmt.Sprintf("%s: %s", details, errStr),
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    fmt.Sprintf("Unable to connect to database: %s", errStr),
				Cause:      cause,
			}
		}
		details = fmt.Sprintf("%s: %s", details, errStr)
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func IsSchemaMismatch(err error) bool {
	return errors.Is(err, ErrSchemaMismatch)
}
