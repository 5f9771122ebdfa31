package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrNoEmployeeForAccount  = errors.New("no employee found for account")
	ErrDNIExists             = errors.New("DNI already registered")
	ErrEmployeeCodeExists    = errors.New("employee code already exists in this company")
	ErrDepartmentMismatch    = errors.New("department does not belong to the employee's company")
	ErrPositionMismatch      = errors.New("position does not belong to the employee's department")
	ErrTerminationBeforeHire = errors.New("termination date must be after hire date")
	ErrEmployeeInactive      = errors.New("employee is inactive")
)
