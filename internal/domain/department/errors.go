package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrCodeExists         = errors.New("department code already exists in this company")
	ErrParentNotFound     = errors.New("parent department not found")
	ErrParentWrongCompany = errors.New("parent department belongs to a different company")
	ErrHierarchyCycle     = errors.New("department hierarchy would contain a cycle")
)
