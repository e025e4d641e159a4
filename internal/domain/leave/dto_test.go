package leave

import (
	"testing"

	"github.com/cloudhrms/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validApplyRequest() ApplyLeaveRequest {
	return ApplyLeaveRequest{
		EmployeeCode: "EMP001",
		LeaveType:    "SICK",
		StartDate:    "2026-07-10",
		EndDate:      "2026-07-12",
		Reason:       "Fever",
	}
}

func TestApplyLeaveRequestValid(t *testing.T) {
	req := validApplyRequest()
	assert.NoError(t, req.Validate())
}

func TestApplyLeaveRequestInvalidFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ApplyLeaveRequest)
		field  string
	}{
		{"missing employee", func(r *ApplyLeaveRequest) { r.EmployeeCode = "" }, "employee"},
		{"unknown leave type", func(r *ApplyLeaveRequest) { r.LeaveType = "SABBATICAL" }, "leave_type"},
		{"lowercase leave type", func(r *ApplyLeaveRequest) { r.LeaveType = "sick" }, "leave_type"},
		{"bad start date", func(r *ApplyLeaveRequest) { r.StartDate = "10-07-2026" }, "start_date"},
		{"bad end date", func(r *ApplyLeaveRequest) { r.EndDate = "" }, "end_date"},
		{"missing reason", func(r *ApplyLeaveRequest) { r.Reason = "   " }, "reason"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validApplyRequest()
			c.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

// The workflow accepts an end date before the start date; only format is
// checked.
func TestApplyLeaveRequestAllowsReversedRange(t *testing.T) {
	req := validApplyRequest()
	req.StartDate = "2026-07-12"
	req.EndDate = "2026-07-10"

	assert.NoError(t, req.Validate())
}
