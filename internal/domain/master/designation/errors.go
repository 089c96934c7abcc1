package designation

import "errors"

var (
	ErrDesignationNotFound    = errors.New("designation not found")
	ErrDesignationTitleExists = errors.New("designation with this title already exists")
	ErrDesignationInUse       = errors.New("designation is still assigned to employees")
)
