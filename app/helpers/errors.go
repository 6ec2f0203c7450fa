package helpers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Sentinel validation errors raised by the service layer before anything
// touches the database.
var (
	ErrNoImages     = errors.New("product must have at least one image")
	ErrNoItems      = errors.New("order must contain at least one item")
	ErrInvalidID    = errors.New("invalid id")
	ErrUnsupported  = errors.New("unsupported model")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// MySQL server error numbers the translator recognizes.
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrColumnNoNull   = 1048
	mysqlErrNoDefault      = 1364
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// ToHTTPError is the single funnel every handler sends failures through.
// It translates service and driver errors into a stable status + message
// pair; anything unrecognized becomes a generic 500 and the full error is
// logged server-side. Check-constraint violations (including an order
// status outside the enum) deliberately fall through to 500 with the
// driver message, matching the behavior the storefront has always had.
func ToHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, ErrNoImages),
		errors.Is(err, ErrNoItems),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrUnsupported):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return NewHTTPError(http.StatusConflict, "duplicate value for a unique field")
		case mysqlErrColumnNoNull, mysqlErrNoDefault:
			return NewHTTPError(http.StatusBadRequest, "missing required field")
		}
		log.Printf("❌ Unhandled database error %d: %v", mysqlErr.Number, mysqlErr)
		return NewHTTPError(http.StatusInternalServerError, mysqlErr.Message)
	}

	log.Printf("❌ Unhandled error: %v", err)
	return NewHTTPError(http.StatusInternalServerError, "internal server error")
}
