package leave

import "time"

type LeaveType string

const (
	LeaveTypeCasual LeaveType = "CASUAL"
	LeaveTypeSick   LeaveType = "SICK"
	LeaveTypeEarned LeaveType = "EARNED"
	LeaveTypeUnpaid LeaveType = "UNPAID"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// Leave is one leave application. Records are created Pending and decided
// exactly once in the intended flow, though approve/reject do not guard
// against re-deciding an already-decided record.
type Leave struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveStatus
	AppliedOn  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// TypeCount is one bucket of the type distribution analytics.
type TypeCount struct {
	LeaveType LeaveType `json:"leave_type"`
	Total     int64     `json:"total"`
}

// MonthCount is one bucket of the monthly trend analytics, keyed by the
// calendar month of the leave's start date.
type MonthCount struct {
	Month int   `json:"month"`
	Total int64 `json:"total"`
}
