package attendance

import "errors"

// Attendance domain errors
var (
	// Marking errors
	ErrInvalidQRCode     = errors.New("invalid or inactive QR code")
	ErrWrongCompany      = errors.New("not authorized to mark at this location")
	ErrMarkedTooRecently = errors.New("marked too recently; wait at least 5 minutes")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrQRCodeNotFound = errors.New("QR code not found")
	ErrQRCodeExists   = errors.New("QR code string already exists")
)
