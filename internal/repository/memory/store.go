// Package memory provides an in-memory record store implementing every
// repository interface. It backs the service tests and local development
// without a database; the postgresql package is the production counterpart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/talentflow/hr-backend-go/internal/domain/attendance"
	"github.com/talentflow/hr-backend-go/internal/domain/employee"
	"github.com/talentflow/hr-backend-go/internal/domain/leave"
	"github.com/talentflow/hr-backend-go/internal/domain/payroll"
)

type Store struct {
	mu sync.RWMutex
	// txMu serializes WithinTransaction callers so a decide-and-debit
	// sequence observes a consistent store.
	txMu sync.Mutex

	employees      map[string]employee.Employee
	configuration  *payroll.PayrollConfiguration
	payrollRecords map[string]payroll.PayrollRecord
	// payrollByPeriod indexes record IDs by employeeID|month|year, the
	// uniqueness key behind idempotent processing.
	payrollByPeriod map[string]string
	attendance      map[string]attendance.AttendanceRecord
	// attendanceByDay indexes record IDs by employeeID|date.
	attendanceByDay map[string]string
	leaveRequests   map[string]leave.LeaveRequest
	// balances is keyed by employeeID|leaveType.
	balances map[string]leave.LeaveBalance
}

func NewStore() *Store {
	return &Store{
		employees:       make(map[string]employee.Employee),
		payrollRecords:  make(map[string]payroll.PayrollRecord),
		payrollByPeriod: make(map[string]string),
		attendance:      make(map[string]attendance.AttendanceRecord),
		attendanceByDay: make(map[string]string),
		leaveRequests:   make(map[string]leave.LeaveRequest),
		balances:        make(map[string]leave.LeaveBalance),
	}
}

// WithinTransaction serializes fn against other transactions. There is no
// rollback; callers read and validate before the first write, matching how
// the services use it.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

// The per-domain repositories share the Store's data and lock.

func (s *Store) Employees() employee.EmployeeRepository { return &employeeRepo{s: s} }

func (s *Store) Payroll() payroll.PayrollRepository { return &payrollRepo{s: s} }

func (s *Store) Attendance() attendance.AttendanceRepository { return &attendanceRepo{s: s} }

func (s *Store) LeaveRequests() leave.LeaveRequestRepository { return &leaveRequestRepo{s: s} }

func (s *Store) LeaveBalances() leave.LeaveBalanceRepository { return &leaveBalanceRepo{s: s} }

func (s *Store) now() time.Time {
	return time.Now().UTC()
}

// employeeName resolves the joined name field. Callers hold at least a read
// lock.
func (s *Store) employeeName(id string) *string {
	if emp, ok := s.employees[id]; ok {
		name := emp.Name
		return &name
	}
	return nil
}
