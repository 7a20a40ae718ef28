package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	Name        string
	Designation string
	Department  string
	Email       string
	Phone       string
	BasicSalary decimal.Decimal
	Status      Status
	JoinDate    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
