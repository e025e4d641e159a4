package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dateJoined, err := time.Parse("2006-01-02", req.DateJoined)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse date_joined: %w", err)
	}

	status := employee.StatusActive
	if req.Status != nil {
		status = employee.Status(*req.Status)
	}

	emp := employee.Employee{
		EmpCode:    req.EmpCode,
		Name:       req.Name,
		Status:     status,
		Email:      req.Email,
		Department: req.Department,
		Role:       req.Role,
		Salary:     req.Salary,
		DateJoined: dateJoined,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService. The stored record is
// loaded first and nil request fields keep their stored values.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.DateJoined != nil {
		dateJoined, err := time.Parse("2006-01-02", *req.DateJoined)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse date_joined: %w", err)
		}
		emp.DateJoined = dateJoined
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}
