package user

import "errors"

var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrNoEmployeeProfile       = errors.New("no employee profile is linked to this account")
	ErrInvalidRole             = errors.New("invalid role")
)
