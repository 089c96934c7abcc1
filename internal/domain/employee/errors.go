package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeNumberExists   = errors.New("employee number already exists")
	ErrEmailExists            = errors.New("email already registered")
	ErrInvalidSalary          = errors.New("salary must be a non-negative number")
	ErrFutureDateNotAllowed   = errors.New("date cannot be in the future")
	ErrDepartmentLookupFailed = errors.New("department lookup failed")
)
