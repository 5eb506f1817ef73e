package errs

import (
	"errors"
	"net/http"
)

// Authentication Errors
var (
	ErrInvalidAccessCode = errors.New("invalid access code")
	ErrMissingToken      = errors.New("missing access token")
	ErrInvalidToken      = errors.New("invalid access token")
)

func NewInvalidAccessCodeError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidAccessCode,
		Details:    "Kode akses salah.",
		Field:      "accessCode",
	}
}

func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "Missing access token",
		Field:      "authorization",
	}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Invalid access token",
		Field:      "authorization",
	}
}

func IsInvalidAccessCode(err error) bool {
	return errors.Is(err, ErrInvalidAccessCode)
}
