package httperr

import "errors"

// BusinessError is a recoverable domain condition identified by a stable
// code. Use cases and repositories raise it; handlers translate it into an
// HTTP status and a human-readable message.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
