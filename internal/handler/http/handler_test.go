package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/hr-backend-go/internal/config"
	"github.com/talentflow/hr-backend-go/internal/domain/notification"
	"github.com/talentflow/hr-backend-go/internal/pkg/clock"
	"github.com/talentflow/hr-backend-go/internal/repository/memory"
	attendanceService "github.com/talentflow/hr-backend-go/internal/service/attendance"
	employeeService "github.com/talentflow/hr-backend-go/internal/service/employee"
	leaveService "github.com/talentflow/hr-backend-go/internal/service/leave"
	payrollService "github.com/talentflow/hr-backend-go/internal/service/payroll"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	clk := clock.NewFixed(time.Date(2024, 3, 4, 9, 45, 0, 0, time.UTC))
	notifier := notification.NoopSink{}

	employeeSvc := employeeService.NewEmployeeService(store.Employees(), clk)
	payrollSvc := payrollService.NewPayrollService(store.Payroll(), store.Employees(), store, clk, notifier)
	attendanceSvc := attendanceService.NewAttendanceService(store.Attendance(), store.Employees(), clk, notifier)
	leaveSvc := leaveService.NewLeaveService(store.LeaveRequests(), store.LeaveBalances(), store.Employees(), store, clk, notifier)

	return NewRouter(
		config.AppConfig{Env: "test", AllowedOrigins: []string{"*"}},
		NewEmployeeHandler(employeeSvc),
		NewPayrollHandler(payrollSvc),
		NewAttendanceHandler(attendanceSvc),
		NewLeaveHandler(leaveSvc),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

// Response mirrors the envelope emitted by the response package.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error,omitempty"`
}

func createTestEmployee(t *testing.T, router http.Handler) string {
	t.Helper()

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/employees", map[string]interface{}{
		"name":         "Asha Verma",
		"designation":  "Engineer",
		"department":   "Engineering",
		"email":        "asha@example.com",
		"basic_salary": "70000",
		"join_date":    "2024-01-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var emp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &emp))
	require.NotEmpty(t, emp.ID)
	return emp.ID
}

func TestCreateEmployee(t *testing.T) {
	router := newTestRouter(t)
	createTestEmployee(t, router)
}

func TestCreateEmployee_ValidationError(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/employees", map[string]interface{}{
		"name":  "",
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "name")
	assert.Contains(t, resp.Error.Details, "email")
}

func TestGetEmployee_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := doJSON(t, router, http.MethodGet, "/api/v1/employees/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestClockInTwice_Conflict(t *testing.T) {
	router := newTestRouter(t)
	empID := createTestEmployee(t, router)

	body := map[string]interface{}{"employee_id": empID}

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/attendance/clock-in", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/attendance/clock-in", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
}

func TestClockIn_LateAfterThreshold(t *testing.T) {
	router := newTestRouter(t)
	empID := createTestEmployee(t, router)

	// The test clock is fixed at 09:45, past the 09:30 threshold.
	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/attendance/clock-in",
		map[string]interface{}{"employee_id": empID})
	require.Equal(t, http.StatusCreated, rec.Code)

	var record struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &record))
	assert.Equal(t, "Late", record.Status)
}

func TestDailyStatus_CurrentAndPastDay(t *testing.T) {
	router := newTestRouter(t)
	empID := createTestEmployee(t, router)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/attendance/clock-in",
		map[string]interface{}{"employee_id": empID})
	require.Equal(t, http.StatusCreated, rec.Code)

	var state struct {
		Kind string `json:"kind"`
	}

	rec, resp := doJSON(t, router, http.MethodGet, "/api/v1/attendance/employees/"+empID+"/day", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &state))
	assert.Equal(t, "open", state.Kind)

	rec, resp = doJSON(t, router, http.MethodGet, "/api/v1/attendance/employees/"+empID+"/day?date=2024-03-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &state))
	assert.Equal(t, "not_clocked_in", state.Kind)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/attendance/employees/"+empID+"/day?date=bad", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessPayrollPeriod(t *testing.T) {
	router := newTestRouter(t)
	createTestEmployee(t, router)

	body := map[string]interface{}{"period_month": 3, "period_year": 2024}

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/payroll/process", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		CreatedCount int `json:"created_count"`
		SkippedCount int `json:"skipped_count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, 1, result.CreatedCount)

	// Idempotent re-run.
	rec, resp = doJSON(t, router, http.MethodPost, "/api/v1/payroll/process", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, 0, result.CreatedCount)
	assert.Equal(t, 1, result.SkippedCount)
}

func TestReprocessWithoutConfirmation_BadRequest(t *testing.T) {
	router := newTestRouter(t)
	empID := createTestEmployee(t, router)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/payroll/process",
		map[string]interface{}{"period_month": 3, "period_year": 2024})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/payroll/reprocess", map[string]interface{}{
		"employee_id":  empID,
		"period_month": 3,
		"period_year":  2024,
		"confirm":      false,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestLeaveFlow(t *testing.T) {
	router := newTestRouter(t)
	empID := createTestEmployee(t, router)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/leave/balances", map[string]interface{}{
		"employee_id": empID,
		"leave_type":  "Annual Leave",
		"allocated":   20,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/leave/requests", map[string]interface{}{
		"employee_id": empID,
		"leave_type":  "Annual Leave",
		"start_date":  "2024-12-15",
		"end_date":    "2024-12-20",
		"reason":      "family event",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var request struct {
		ID   string `json:"id"`
		Days int    `json:"days"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &request))
	assert.Equal(t, 6, request.Days)

	rec, resp = doJSON(t, router, http.MethodPost, "/api/v1/leave/requests/"+request.ID+"/decision",
		map[string]interface{}{"approve": true})
	require.Equal(t, http.StatusOK, rec.Code)

	var decided struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &decided))
	assert.Equal(t, "Approved", decided.Status)

	// Second decision conflicts.
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/leave/requests/"+request.ID+"/decision",
		map[string]interface{}{"approve": false})
	assert.Equal(t, http.StatusConflict, rec.Code)
}
