package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/talentflow/hr-backend-go/internal/domain/employee"
)

type employeeRepo struct {
	s *Store
}

func (r *employeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	now := r.s.now()
	emp.ID = uuid.NewString()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	r.s.employees[emp.ID] = emp
	return emp, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	emp, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]employee.Employee, 0, len(r.s.employees))
	for _, emp := range r.s.employees {
		if emp.IsActive() {
			result = append(result, emp)
		}
	}
	sortEmployees(result)
	return result, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]employee.Employee, 0, len(r.s.employees))
	for _, emp := range r.s.employees {
		result = append(result, emp)
	}
	sortEmployees(result)
	return result, nil
}

func (r *employeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.employees[emp.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	for id, existing := range r.s.employees {
		if id != emp.ID && existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	emp.CreatedAt = stored.CreatedAt
	emp.UpdatedAt = r.s.now()

	r.s.employees[emp.ID] = emp
	return emp, nil
}

// sortEmployees orders by name for stable listings.
func sortEmployees(employees []employee.Employee) {
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].Name == employees[j].Name {
			return employees[i].ID < employees[j].ID
		}
		return employees[i].Name < employees[j].Name
	})
}
