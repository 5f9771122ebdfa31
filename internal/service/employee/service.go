package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/asistpro/asistencia-backend-go/internal/domain/company"
	"github.com/asistpro/asistencia-backend-go/internal/domain/department"
	"github.com/asistpro/asistencia-backend-go/internal/domain/employee"
	"github.com/asistpro/asistencia-backend-go/internal/domain/position"
	"github.com/asistpro/asistencia-backend-go/internal/domain/user"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/database"
	"github.com/asistpro/asistencia-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	company.CompanyRepository
	department.DepartmentRepository
	position.PositionRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
	departmentRepository department.DepartmentRepository,
	positionRepository position.PositionRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		UserRepository:       userRepository,
		CompanyRepository:    companyRepository,
		DepartmentRepository: departmentRepository,
		PositionRepository:   positionRepository,
	}
}

// Register implements employee.EmployeeService. Employee and account are
// created in one transaction: either both exist afterwards or neither does.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.RegisterEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.RegisterEmployeeResponse{}, err
	}

	companyData, err := s.CompanyRepository.GetByID(ctx, req.CompanyID)
	if err != nil {
		return employee.RegisterEmployeeResponse{}, err
	}
	if !companyData.Active {
		return employee.RegisterEmployeeResponse{}, company.ErrCompanyInactive
	}

	departmentData, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return employee.RegisterEmployeeResponse{}, err
	}
	if departmentData.CompanyID != req.CompanyID {
		return employee.RegisterEmployeeResponse{}, employee.ErrDepartmentMismatch
	}

	positionData, err := s.PositionRepository.GetByID(ctx, req.PositionID)
	if err != nil {
		return employee.RegisterEmployeeResponse{}, err
	}
	if positionData.DepartmentID != req.DepartmentID {
		return employee.RegisterEmployeeResponse{}, employee.ErrPositionMismatch
	}

	if _, err := s.EmployeeRepository.GetByDNI(ctx, req.DNI); err == nil {
		return employee.RegisterEmployeeResponse{}, employee.ErrDNIExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.RegisterEmployeeResponse{}, fmt.Errorf("failed to check DNI: %w", err)
	}

	// The DNI doubles as the account username.
	if _, err := s.UserRepository.GetByLogin(ctx, req.DNI); err == nil {
		return employee.RegisterEmployeeResponse{}, user.ErrUsernameExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return employee.RegisterEmployeeResponse{}, fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.RegisterEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	birthDate, _ := time.Parse("2006-01-02", req.BirthDate)
	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	accountEmail := req.DNI + "@empresa.com"
	if req.AccountEmail != nil {
		accountEmail = *req.AccountEmail
	}
	accountActive := true
	if req.AccountActive != nil {
		accountActive = *req.AccountActive
	}

	var createdEmployee employee.Employee
	var createdUser user.User

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		createdEmployee, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			CompanyID:     req.CompanyID,
			DepartmentID:  req.DepartmentID,
			PositionID:    req.PositionID,
			FirstNames:    req.FirstNames,
			LastNames:     req.LastNames,
			DNI:           req.DNI,
			BirthDate:     birthDate,
			Phone:         req.Phone,
			PersonalEmail: req.PersonalEmail,
			Address:       req.Address,
			EmployeeCode:  req.EmployeeCode,
			HireDate:      hireDate,
			Salary:        req.Salary,
			ShiftType:     employee.ShiftType(req.ShiftType),
			RestDay:       employee.RestDay(req.RestDay),
			Active:        true,
		})
		if err != nil {
			return err
		}

		createdUser, err = s.UserRepository.Create(txCtx, user.User{
			EmployeeID:   &createdEmployee.ID,
			Username:     req.DNI,
			Email:        accountEmail,
			PasswordHash: string(passwordHash),
			FirstName:    req.FirstNames,
			LastName:     req.LastNames,
			Active:       accountActive,
			IsAdmin:      false,
		})
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return employee.RegisterEmployeeResponse{}, err
	}

	return employee.RegisterEmployeeResponse{
		Employee: employee.RegisteredEmployee{
			ID:           createdEmployee.ID,
			DNI:          createdEmployee.DNI,
			FullName:     createdEmployee.FullName(),
			EmployeeCode: createdEmployee.EmployeeCode,
			Company:      companyData.LegalName,
			Department:   departmentData.Name,
			Position:     positionData.Name,
		},
		User: employee.RegisteredUser{
			ID:       createdUser.ID,
			Username: createdUser.Username,
			Email:    createdUser.Email,
			Active:   createdUser.Active,
		},
	}, nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	employeeData, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(employeeData), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}

	return responses, total, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	employeeData, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	departmentData, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if departmentData.CompanyID != employeeData.CompanyID {
		return employee.EmployeeResponse{}, employee.ErrDepartmentMismatch
	}

	positionData, err := s.PositionRepository.GetByID(ctx, req.PositionID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if positionData.DepartmentID != req.DepartmentID {
		return employee.EmployeeResponse{}, employee.ErrPositionMismatch
	}

	employeeData.DepartmentID = req.DepartmentID
	employeeData.PositionID = req.PositionID
	employeeData.FirstNames = req.FirstNames
	employeeData.LastNames = req.LastNames
	employeeData.Phone = req.Phone
	employeeData.PersonalEmail = req.PersonalEmail
	employeeData.Address = req.Address
	employeeData.Salary = req.Salary
	employeeData.ShiftType = employee.ShiftType(req.ShiftType)
	employeeData.RestDay = employee.RestDay(req.RestDay)
	if req.Active != nil {
		employeeData.Active = *req.Active
	}

	if req.TerminationDate != nil {
		terminationDate, err := time.Parse("2006-01-02", *req.TerminationDate)
		if err == nil {
			if terminationDate.Before(employeeData.HireDate) {
				return employee.EmployeeResponse{}, employee.ErrTerminationBeforeHire
			}
			employeeData.TerminationDate = &terminationDate
			employeeData.TerminationReason = req.TerminationReason
			employeeData.Active = false
		}
	} else {
		employeeData.TerminationDate = nil
		employeeData.TerminationReason = nil
	}

	if err := s.EmployeeRepository.Update(ctx, employeeData); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements employee.EmployeeService. Deleting an employee is a soft
// termination: the row stays for attendance history and the linked account,
// if any, is deactivated in the same transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	employeeData, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	employeeData.Active = false
	if employeeData.TerminationDate == nil {
		employeeData.TerminationDate = &now
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if err := s.EmployeeRepository.Update(txCtx, employeeData); err != nil {
			return err
		}

		account, err := s.UserRepository.GetByEmployeeID(txCtx, id)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return nil
			}
			return err
		}

		account.Active = false
		return s.UserRepository.Update(txCtx, account)
	})
}
