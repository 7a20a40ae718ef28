package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/talentflow/hr-backend-go/internal/domain/employee"
	"github.com/talentflow/hr-backend-go/internal/pkg/clock"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// ========== ONBOARDING ==========

func (s *EmployeeServiceImpl) Onboard(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate := s.clock.Now()
	if req.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", req.JoinDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
		}
		joinDate = parsed
	}

	emp := employee.Employee{
		Name:        req.Name,
		Designation: req.Designation,
		Department:  req.Department,
		Email:       req.Email,
		Phone:       req.Phone,
		BasicSalary: req.BasicSalary,
		Status:      employee.StatusActive,
		JoinDate:    joinDate,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// ========== QUERIES ==========

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employee.ToResponses(employees), nil
}

func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	return employee.ToResponses(employees), nil
}

// ========== UPDATES ==========

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(updated), nil
}

// Deactivate soft-deletes the employee. Records referencing the employee stay
// intact; the batch payroll roster simply stops including them.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !emp.IsActive() {
		return employee.EmployeeResponse{}, employee.ErrAlreadyInactive
	}

	emp.Status = employee.StatusInactive

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return employee.ToResponse(updated), nil
}
