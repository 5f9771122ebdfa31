package directory

import (
	"context"
	"fmt"

	"github.com/asistpro/asistencia-backend-go/internal/domain/company"
	"github.com/asistpro/asistencia-backend-go/internal/domain/department"
)

// maxHierarchyDepth bounds the ancestor walks so corrupt data can never spin
// them forever.
const maxHierarchyDepth = 32

type DepartmentServiceImpl struct {
	department.DepartmentRepository
	company.CompanyRepository
}

func NewDepartmentService(departmentRepository department.DepartmentRepository, companyRepository company.CompanyRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepository,
		CompanyRepository:    companyRepository,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if _, err := s.CompanyRepository.GetByID(ctx, req.CompanyID); err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.ParentID != nil {
		parent, err := s.DepartmentRepository.GetByID(ctx, *req.ParentID)
		if err != nil {
			return department.DepartmentResponse{}, department.ErrParentNotFound
		}
		if parent.CompanyID != req.CompanyID {
			return department.DepartmentResponse{}, department.ErrParentWrongCompany
		}
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		CompanyID:   req.CompanyID,
		ParentID:    req.ParentID,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Active:      true,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.GetByID(ctx, created.ID)
}

// GetByID implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	departmentData, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	level, err := s.departmentLevel(ctx, departmentData)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	departmentData.Level = level

	count, err := s.DepartmentRepository.CountActiveEmployees(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}
	departmentData.ActiveEmployees = count

	return department.ToResponse(departmentData), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context, companyID string, onlyActive bool) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx, companyID, onlyActive)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		level, err := s.departmentLevel(ctx, d)
		if err != nil {
			return nil, err
		}
		d.Level = level
		responses = append(responses, department.ToResponse(d))
	}

	return responses, nil
}

// Children implements department.DepartmentService.
func (s *DepartmentServiceImpl) Children(ctx context.Context, id string) ([]department.DepartmentResponse, error) {
	if _, err := s.DepartmentRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}

	children, err := s.DepartmentRepository.ListChildren(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(children))
	for _, d := range children {
		responses = append(responses, department.ToResponse(d))
	}

	return responses, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	departmentData, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.ParentID != nil {
		if err := s.checkNoCycle(ctx, departmentData, *req.ParentID); err != nil {
			return department.DepartmentResponse{}, err
		}
	}

	departmentData.ParentID = req.ParentID
	departmentData.Name = req.Name
	departmentData.Code = req.Code
	departmentData.Description = req.Description
	if req.Active != nil {
		departmentData.Active = *req.Active
	}

	if err := s.DepartmentRepository.Update(ctx, departmentData); err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements department.DepartmentService. A department with active
// employees is deactivated instead of removed.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	departmentData, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.DepartmentRepository.CountActiveEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		departmentData.Active = false
		return s.DepartmentRepository.Update(ctx, departmentData)
	}

	return s.DepartmentRepository.Delete(ctx, id)
}

// checkNoCycle rejects a reparenting that would make target its own ancestor.
// The walk happens at write time so the stored hierarchy is always a forest.
func (s *DepartmentServiceImpl) checkNoCycle(ctx context.Context, target department.Department, newParentID string) error {
	if newParentID == target.ID {
		return department.ErrHierarchyCycle
	}

	parent, err := s.DepartmentRepository.GetByID(ctx, newParentID)
	if err != nil {
		return department.ErrParentNotFound
	}
	if parent.CompanyID != target.CompanyID {
		return department.ErrParentWrongCompany
	}

	current := parent
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		if current.ParentID == nil {
			return nil
		}
		if *current.ParentID == target.ID {
			return department.ErrHierarchyCycle
		}
		current, err = s.DepartmentRepository.GetByID(ctx, *current.ParentID)
		if err != nil {
			return fmt.Errorf("failed to walk department hierarchy: %w", err)
		}
	}

	return department.ErrHierarchyCycle
}

// departmentLevel counts ancestors: a root department is level 0.
func (s *DepartmentServiceImpl) departmentLevel(ctx context.Context, d department.Department) (int, error) {
	level := 0
	current := d
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		if current.ParentID == nil {
			return level, nil
		}
		parent, err := s.DepartmentRepository.GetByID(ctx, *current.ParentID)
		if err != nil {
			return 0, fmt.Errorf("failed to walk department hierarchy: %w", err)
		}
		level++
		current = parent
	}

	return level, nil
}
