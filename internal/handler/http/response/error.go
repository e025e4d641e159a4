package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/attendance"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/employee"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/leave"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/payroll"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoOpenCheckIn):
		BadRequest(w, "No active check-in found", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave application not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrNoPayrollForPeriod):
		NotFound(w, "No payroll generated for this period")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
