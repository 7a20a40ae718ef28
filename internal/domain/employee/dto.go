package employee

import (
	"github.com/shopspring/decimal"
	"github.com/talentflow/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	Department  string          `json:"department"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	JoinDate    string          `json:"join_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number is not valid",
		})
	}

	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if !validator.IsEmpty(r.JoinDate) {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Designation *string          `json:"designation,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	Department  string          `json:"department"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Status      string          `json:"status"`
	JoinDate    string          `json:"join_date"`
}

func ToResponse(e Employee) EmployeeResponse {
	joinDate := ""
	if !e.JoinDate.IsZero() {
		joinDate = e.JoinDate.Format("2006-01-02")
	}

	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Designation: e.Designation,
		Department:  e.Department,
		Email:       e.Email,
		Phone:       e.Phone,
		BasicSalary: e.BasicSalary,
		Status:      string(e.Status),
		JoinDate:    joinDate,
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, ToResponse(e))
	}
	return result
}
