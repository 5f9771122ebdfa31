package position

import "errors"

var (
	ErrPositionNotFound     = errors.New("position not found")
	ErrCodeExists           = errors.New("position code already exists in this department")
	ErrSuperiorNotFound     = errors.New("superior position not found")
	ErrSuperiorWrongCompany = errors.New("superior position belongs to a different company")
	ErrHierarchyCycle       = errors.New("position hierarchy would contain a cycle")
	ErrDepartmentMismatch   = errors.New("department does not belong to the given company")
)
