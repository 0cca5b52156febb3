package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidCreds   = errors.New("Usuario o contraseña incorrectos")
	ErrDependencyDown = errors.New("dependency unavailable")
)
