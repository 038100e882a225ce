package errorutil

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a failure.
type Kind string

const (
	KindMissingParameter Kind = "MissingParameter"
	KindInvalidDate      Kind = "InvalidDate"
	KindInvalidRange     Kind = "InvalidRange"
	KindNotFound         Kind = "NotFound"
	KindDataAccess       Kind = "DataAccessError"
	KindTimeout          Kind = "TimeoutError"
	KindUnclassified     Kind = "UnclassifiedError"
)

// Categories rendered in the "error" field of failure envelopes.
const (
	CategoryBadRequest       = "Bad request"
	CategoryNotFound         = "Not found"
	CategoryConnectionFailed = "Database connection failed"
	CategoryTimeout          = "Request timeout"
	CategoryInternal         = "Internal server error"

	messageConnectionFailed = "Unable to connect to database. Please check your credentials."
	messageTimeout          = "Database query exceeded timeout limit"
	messageUnexpected       = "An unexpected error occurred"
)

// DomainError standardizes application errors.
type DomainError struct {
	Kind       Kind
	Category   string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(kind Kind, category, message string, status int) *DomainError {
	return &DomainError{Kind: kind, Category: category, Message: message, HTTPStatus: status}
}

func NewMissingParameter(message string) error {
	return NewDomainError(KindMissingParameter, CategoryBadRequest, message, http.StatusBadRequest)
}

func NewInvalidDate(message string) error {
	return NewDomainError(KindInvalidDate, CategoryBadRequest, message, http.StatusBadRequest)
}

func NewInvalidRange(message string) error {
	return NewDomainError(KindInvalidRange, CategoryBadRequest, message, http.StatusBadRequest)
}

func NewNotFound(message string) error {
	return NewDomainError(KindNotFound, CategoryNotFound, message, http.StatusNotFound)
}

func NewInternalError(err error) error {
	return &DomainError{
		Kind:       KindUnclassified,
		Category:   CategoryInternal,
		Message:    messageUnexpected,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// Classify converts any error into a DomainError. Typed driver errors are
// inspected first; message matching is the fallback. In production the
// message of an unclassified failure is replaced by a generic one.
func Classify(err error, production bool) *DomainError {
	if err == nil {
		return nil
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	switch {
	case isConnectionFailure(err):
		return &DomainError{
			Kind:       KindDataAccess,
			Category:   CategoryConnectionFailed,
			Message:    messageConnectionFailed,
			HTTPStatus: http.StatusInternalServerError,
			Err:        err,
		}
	case isTimeout(err):
		return &DomainError{
			Kind:       KindTimeout,
			Category:   CategoryTimeout,
			Message:    messageTimeout,
			HTTPStatus: http.StatusGatewayTimeout,
			Err:        err,
		}
	}

	message := err.Error()
	if production {
		message = messageUnexpected
	}
	return &DomainError{
		Kind:       KindUnclassified,
		Category:   CategoryInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// mysql: ER_DBACCESS_DENIED_ERROR, ER_ACCESS_DENIED_ERROR, ER_ACCESS_DENIED_NO_PASSWORD_ERROR.
var mysqlAccessDenied = map[uint16]struct{}{1044: {}, 1045: {}, 1698: {}}

func isConnectionFailure(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		_, denied := mysqlAccessDenied[myErr.Number]
		return denied
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 28: invalid authorization specification
		return strings.HasPrefix(pgErr.Code, "28")
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && !opErr.Timeout() {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Login failed") || strings.Contains(msg, "Access denied")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "57014" {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 3024 {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}
