package leave

import "time"

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "Sick Leave"
	LeaveTypeAnnual    LeaveType = "Annual Leave"
	LeaveTypeCasual    LeaveType = "Casual Leave"
	LeaveTypeMaternity LeaveType = "Maternity Leave"
	LeaveTypePaternity LeaveType = "Paternity Leave"
)

// LeaveTypes lists every recognised leave type, in the order balances are
// reported.
var LeaveTypes = []LeaveType{
	LeaveTypeSick,
	LeaveTypeAnnual,
	LeaveTypeCasual,
	LeaveTypeMaternity,
	LeaveTypePaternity,
}

func IsValidLeaveType(t string) bool {
	for _, lt := range LeaveTypes {
		if string(lt) == t {
			return true
		}
	}
	return false
}

type LeaveRequestStatus string

const (
	LeaveStatusPending  LeaveRequestStatus = "Pending"
	LeaveStatusApproved LeaveRequestStatus = "Approved"
	LeaveStatusRejected LeaveRequestStatus = "Rejected"
)

type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveType   LeaveType
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Reason      string
	Status      LeaveRequestStatus
	AppliedDate time.Time
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EmployeeName *string
}

// IsPending reports whether the request is still awaiting a decision.
func (r *LeaveRequest) IsPending() bool {
	return r.Status == LeaveStatusPending
}

type LeaveBalance struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	Allocated  int
	Used       int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Available is the number of days the employee can still take.
func (b *LeaveBalance) Available() int {
	return b.Allocated - b.Used
}
