package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Catalog errors
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrBookAlreadyExists = errors.New("book already exists")
	ErrNewsNotFound      = errors.New("news not found")
)

// Borrow ledger errors
var (
	ErrBorrowNotFound     = errors.New("borrow not found")
	ErrDailyLimitReached  = errors.New("daily borrow limit reached")
	ErrAlreadyBorrowing   = errors.New("already borrowing this book")
	ErrWeeklyLimitReached = errors.New("weekly borrow limit reached")
	ErrAlreadyReturned    = errors.New("borrow already returned")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrSelfManagement    = errors.New("cannot manage own account")
	ErrInvalidRole       = errors.New("invalid role")
	ErrUserHasBorrows    = errors.New("user still holds borrowed books")
)

// Kind classifies a rejected operation
type Kind int

const (
	// KindNotFound means the addressed record does not exist
	KindNotFound Kind = iota + 1
	// KindRuleViolation means a business rule refused the operation
	KindRuleViolation
)

// RejectedError is a failure whose Message is safe to show to end users.
// Anything that is not a RejectedError is treated as unexpected.
type RejectedError struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *RejectedError) Error() string {
	if e.cause != nil {
		return e.cause.Error() + ": " + e.Message
	}
	return e.Message
}

func (e *RejectedError) Unwrap() error {
	return e.cause
}

// NotFound builds a rejection for a missing record
func NotFound(cause error, message string) error {
	return &RejectedError{Kind: KindNotFound, Message: message, cause: cause}
}

// RuleViolation builds a rejection for a business rule
func RuleViolation(cause error, message string) error {
	return &RejectedError{Kind: KindRuleViolation, Message: message, cause: cause}
}

// AsRejected extracts a RejectedError from err
func AsRejected(err error) (*RejectedError, bool) {
	var rej *RejectedError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
