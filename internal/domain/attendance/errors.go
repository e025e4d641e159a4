package attendance

import "errors"

var (
	// ErrNoOpenCheckIn means a check-out was attempted with no open
	// check-in record for the employee.
	ErrNoOpenCheckIn = errors.New("no active check-in found")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
