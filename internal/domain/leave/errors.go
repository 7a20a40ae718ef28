package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveBalanceNotFound = errors.New("leave balance not found")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrAlreadyDecided       = errors.New("leave request already decided")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
)
