package httperr

import "errors"

// BusinessError identifica uma falha de regra de negócio por código;
// a causa original (ex.: erro do driver) fica encadeada para o log.
type BusinessError struct {
	Code  string
	cause error
}

func (e BusinessError) Error() string {
	if e.cause != nil {
		return e.Code + ": " + e.cause.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.cause
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessCause(code string, cause error) error {
	return BusinessError{Code: code, cause: cause}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
