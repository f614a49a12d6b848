package httperr

import "errors"

// Kind classifies a BusinessError for HTTP status mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindInvalidState
	KindConflict
	KindNotFound
	KindPermission
	KindUnauthorized
)

// BusinessError is a domain rule violation with a stable code and a short,
// user-safe message. Internal causes stay in logs, never in the message.
type BusinessError struct {
	Code    string
	Kind    Kind
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return BusinessError{Code: code, Kind: KindValidation, Message: message}
}

func ErrInvalidState(code, message string) error {
	return BusinessError{Code: code, Kind: KindInvalidState, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Code: code, Kind: KindConflict, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Code: code, Kind: KindNotFound, Message: message}
}

func ErrPermission(code, message string) error {
	return BusinessError{Code: code, Kind: KindPermission, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
