package attendance

import (
	"context"

	"github.com/google/uuid"

	"github.com/asistpro/asistencia-backend-go/internal/domain/attendance"
)

// ActiveQRCodes implements attendance.AttendanceService. Employees only ever
// see the marking points of their own company.
func (s *AttendanceServiceImpl) ActiveQRCodes(ctx context.Context) ([]attendance.QRCodeResponse, error) {
	employeeData, err := s.callerEmployee(ctx)
	if err != nil {
		return nil, err
	}

	codes, err := s.QRCodeRepository.ListActiveByCompany(ctx, employeeData.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.QRCodeResponse, 0, len(codes))
	for _, qr := range codes {
		responses = append(responses, attendance.ToQRCodeResponse(qr))
	}

	return responses, nil
}

// CreateQRCode implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateQRCode(ctx context.Context, req attendance.CreateQRCodeRequest) (attendance.QRCodeResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.QRCodeResponse{}, err
	}

	code := uuid.NewString()
	if req.Code != nil {
		code = *req.Code
	}

	created, err := s.QRCodeRepository.Create(ctx, attendance.QRCode{
		CompanyID: req.CompanyID,
		Label:     req.Label,
		Code:      code,
		Location:  req.Location,
		Active:    true,
	})
	if err != nil {
		return attendance.QRCodeResponse{}, err
	}

	return s.GetQRCode(ctx, created.ID)
}

// ListQRCodes implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListQRCodes(ctx context.Context, companyID string, onlyActive bool) ([]attendance.QRCodeResponse, error) {
	codes, err := s.QRCodeRepository.List(ctx, companyID, onlyActive)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.QRCodeResponse, 0, len(codes))
	for _, qr := range codes {
		responses = append(responses, attendance.ToQRCodeResponse(qr))
	}

	return responses, nil
}

// GetQRCode implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetQRCode(ctx context.Context, id string) (attendance.QRCodeResponse, error) {
	qr, err := s.QRCodeRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.QRCodeResponse{}, err
	}

	return attendance.ToQRCodeResponse(qr), nil
}

// UpdateQRCode implements attendance.AttendanceService. The code string and
// owning company are immutable; only label, location and the active flag
// change.
func (s *AttendanceServiceImpl) UpdateQRCode(ctx context.Context, id string, req attendance.UpdateQRCodeRequest) (attendance.QRCodeResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.QRCodeResponse{}, err
	}

	qr, err := s.QRCodeRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.QRCodeResponse{}, err
	}

	qr.Label = req.Label
	qr.Location = req.Location
	if req.Active != nil {
		qr.Active = *req.Active
	}

	if err := s.QRCodeRepository.Update(ctx, qr); err != nil {
		return attendance.QRCodeResponse{}, err
	}

	return s.GetQRCode(ctx, id)
}

// DeleteQRCode implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteQRCode(ctx context.Context, id string) error {
	return s.QRCodeRepository.Delete(ctx, id)
}
