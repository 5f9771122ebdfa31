package directory

import (
	"context"
	"fmt"

	"github.com/asistpro/asistencia-backend-go/internal/domain/department"
	"github.com/asistpro/asistencia-backend-go/internal/domain/position"
)

type PositionServiceImpl struct {
	position.PositionRepository
	department.DepartmentRepository
}

func NewPositionService(positionRepository position.PositionRepository, departmentRepository department.DepartmentRepository) position.PositionService {
	return &PositionServiceImpl{
		PositionRepository:   positionRepository,
		DepartmentRepository: departmentRepository,
	}
}

// Create implements position.PositionService.
func (s *PositionServiceImpl) Create(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	departmentData, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return position.PositionResponse{}, err
	}
	if departmentData.CompanyID != req.CompanyID {
		return position.PositionResponse{}, position.ErrDepartmentMismatch
	}

	if req.ReportsToID != nil {
		superior, err := s.PositionRepository.GetByID(ctx, *req.ReportsToID)
		if err != nil {
			return position.PositionResponse{}, position.ErrSuperiorNotFound
		}
		if superior.CompanyID != req.CompanyID {
			return position.PositionResponse{}, position.ErrSuperiorWrongCompany
		}
	}

	created, err := s.PositionRepository.Create(ctx, position.Position{
		CompanyID:    req.CompanyID,
		DepartmentID: req.DepartmentID,
		ReportsToID:  req.ReportsToID,
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Active:       true,
	})
	if err != nil {
		return position.PositionResponse{}, err
	}

	return s.GetByID(ctx, created.ID)
}

// GetByID implements position.PositionService.
func (s *PositionServiceImpl) GetByID(ctx context.Context, id string) (position.PositionResponse, error) {
	positionData, err := s.PositionRepository.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}

	level, err := s.positionLevel(ctx, positionData)
	if err != nil {
		return position.PositionResponse{}, err
	}
	positionData.Level = level

	count, err := s.PositionRepository.CountActiveHolders(ctx, id)
	if err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to count holders: %w", err)
	}
	positionData.ActiveHolders = count

	return position.ToResponse(positionData), nil
}

// List implements position.PositionService.
func (s *PositionServiceImpl) List(ctx context.Context, companyID string, departmentID string, onlyActive bool) ([]position.PositionResponse, error) {
	positions, err := s.PositionRepository.List(ctx, companyID, departmentID, onlyActive)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		level, err := s.positionLevel(ctx, p)
		if err != nil {
			return nil, err
		}
		p.Level = level
		responses = append(responses, position.ToResponse(p))
	}

	return responses, nil
}

// Subordinates implements position.PositionService.
func (s *PositionServiceImpl) Subordinates(ctx context.Context, id string) ([]position.PositionResponse, error) {
	if _, err := s.PositionRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}

	subordinates, err := s.PositionRepository.ListSubordinates(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(subordinates))
	for _, p := range subordinates {
		responses = append(responses, position.ToResponse(p))
	}

	return responses, nil
}

// Update implements position.PositionService.
func (s *PositionServiceImpl) Update(ctx context.Context, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	positionData, err := s.PositionRepository.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}

	if req.ReportsToID != nil {
		if err := s.checkNoCycle(ctx, positionData, *req.ReportsToID); err != nil {
			return position.PositionResponse{}, err
		}
	}

	positionData.ReportsToID = req.ReportsToID
	positionData.Name = req.Name
	positionData.Code = req.Code
	positionData.Description = req.Description
	positionData.SalaryMin = req.SalaryMin
	positionData.SalaryMax = req.SalaryMax
	if req.Active != nil {
		positionData.Active = *req.Active
	}

	if err := s.PositionRepository.Update(ctx, positionData); err != nil {
		return position.PositionResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements position.PositionService. A position still held by
// active employees is deactivated instead of removed.
func (s *PositionServiceImpl) Delete(ctx context.Context, id string) error {
	positionData, err := s.PositionRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.PositionRepository.CountActiveHolders(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count holders: %w", err)
	}
	if count > 0 {
		positionData.Active = false
		return s.PositionRepository.Update(ctx, positionData)
	}

	return s.PositionRepository.Delete(ctx, id)
}

// checkNoCycle rejects a reporting change that would make target its own
// superior, directly or transitively.
func (s *PositionServiceImpl) checkNoCycle(ctx context.Context, target position.Position, newSuperiorID string) error {
	if newSuperiorID == target.ID {
		return position.ErrHierarchyCycle
	}

	superior, err := s.PositionRepository.GetByID(ctx, newSuperiorID)
	if err != nil {
		return position.ErrSuperiorNotFound
	}
	if superior.CompanyID != target.CompanyID {
		return position.ErrSuperiorWrongCompany
	}

	current := superior
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		if current.ReportsToID == nil {
			return nil
		}
		if *current.ReportsToID == target.ID {
			return position.ErrHierarchyCycle
		}
		current, err = s.PositionRepository.GetByID(ctx, *current.ReportsToID)
		if err != nil {
			return fmt.Errorf("failed to walk position hierarchy: %w", err)
		}
	}

	return position.ErrHierarchyCycle
}

// positionLevel counts superiors: a top position is level 0.
func (s *PositionServiceImpl) positionLevel(ctx context.Context, p position.Position) (int, error) {
	level := 0
	current := p
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		if current.ReportsToID == nil {
			return level, nil
		}
		superior, err := s.PositionRepository.GetByID(ctx, *current.ReportsToID)
		if err != nil {
			return 0, fmt.Errorf("failed to walk position hierarchy: %w", err)
		}
		level++
		current = superior
	}

	return level, nil
}
