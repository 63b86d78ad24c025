package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
	"github.com/peoplehr/hr_ops_app/internal/dto"
	"github.com/peoplehr/hr_ops_app/internal/handlers"
	"github.com/peoplehr/hr_ops_app/internal/platform/config"
	"github.com/peoplehr/hr_ops_app/internal/utils"
)

// --- Mock EngineService ---
type MockEngineService struct {
	mock.Mock
}

func (m *MockEngineService) CheckIn(ctx context.Context, identity domain.Identity, employeeID string, ts time.Time) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, identity, employeeID, ts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockEngineService) CheckOut(ctx context.Context, identity domain.Identity, employeeID string, ts time.Time) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, identity, employeeID, ts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockEngineService) ListAttendance(ctx context.Context, identity domain.Identity, employeeID string, limit int, nextToken *string) ([]domain.AttendanceRecord, *string, error) {
	args := m.Called(ctx, identity, employeeID, limit, nextToken)
	var records []domain.AttendanceRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.AttendanceRecord)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return records, token, args.Error(2)
}

func (m *MockEngineService) GetEmployeeLeaveBalances(ctx context.Context, identity domain.Identity, employeeID string) ([]domain.LeaveBalance, error) {
	args := m.Called(ctx, identity, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveBalance), args.Error(1)
}

func (m *MockEngineService) DeductLeave(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string, units decimal.Decimal, notes string) (*domain.LeaveBalance, error) {
	args := m.Called(ctx, identity, employeeID, leaveTypeID, units, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveBalance), args.Error(1)
}

func (m *MockEngineService) CreditLeave(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string, units decimal.Decimal, notes string) (*domain.LeaveBalance, error) {
	args := m.Called(ctx, identity, employeeID, leaveTypeID, units, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveBalance), args.Error(1)
}

func (m *MockEngineService) AllocateLeave(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string, allocated decimal.Decimal) (*domain.LeaveBalance, error) {
	args := m.Called(ctx, identity, employeeID, leaveTypeID, allocated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveBalance), args.Error(1)
}

func (m *MockEngineService) ListLeaveEntries(ctx context.Context, identity domain.Identity, employeeID, leaveTypeID string) ([]domain.LeaveEntry, error) {
	args := m.Called(ctx, identity, employeeID, leaveTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveEntry), args.Error(1)
}

func (m *MockEngineService) GetEmployeeMetrics(ctx context.Context, identity domain.Identity, employeeID string, period domain.Period) (*domain.EmployeeMetrics, error) {
	args := m.Called(ctx, identity, employeeID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeMetrics), args.Error(1)
}

func (m *MockEngineService) GetAdminMetrics(ctx context.Context, identity domain.Identity, period domain.Period, filters domain.MetricsFilters) (*domain.AdminMetrics, error) {
	args := m.Called(ctx, identity, period, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminMetrics), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.EngineSvcFacade = (*MockEngineService)(nil)

// --- Test Suite ---
type AttendanceHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockEngine *MockEngineService
	jwtSecret  string
}

// generateTestToken creates a signed JWT carrying the employee id and role.
func (suite *AttendanceHandlerTestSuite) generateTestToken(employeeID string, role domain.Role) string {
	token, err := utils.GenerateJWT(employeeID, string(role), suite.jwtSecret, time.Hour, "hrops-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *AttendanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockEngine = new(MockEngineService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		IsProduction:   true, // no swagger routes in tests
		LoginRateLimit: "10-M",
	}
	services := &portssvc.ServiceContainer{Engine: suite.mockEngine}
	handlers.RegisterRoutes(suite.router, cfg, services, nil)
}

// --- Test Cases ---

func (suite *AttendanceHandlerTestSuite) TestCheckIn_Success() {
	employeeID := uuid.NewString()
	checkIn := time.Now().Add(-time.Minute)
	record := &domain.AttendanceRecord{
		RecordID:    uuid.NewString(),
		EmployeeID:  employeeID,
		Date:        domain.DateOf(checkIn),
		CheckInTime: &checkIn,
		Status:      domain.CheckedIn,
	}

	suite.mockEngine.On("CheckIn",
		mock.Anything,
		domain.Identity{EmployeeID: employeeID, Role: domain.RoleEmployee},
		employeeID,
		mock.AnythingOfType("time.Time"),
	).Return(record, nil).Once()

	// Empty body: employee id and timestamp default to the caller and now
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(employeeID, domain.RoleEmployee))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.AttendanceRecordResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(record.RecordID, body.RecordID)
	suite.Equal(string(domain.CheckedIn), string(body.Status))
	suite.mockEngine.AssertExpectations(suite.T())
}

func (suite *AttendanceHandlerTestSuite) TestCheckIn_DuplicateConflict() {
	employeeID := uuid.NewString()

	suite.mockEngine.On("CheckIn", mock.Anything, mock.Anything, employeeID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrDuplicateCheckIn).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(employeeID, domain.RoleEmployee))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AttendanceHandlerTestSuite) TestCheckIn_ForOtherEmployeeForbidden() {
	callerID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mockEngine.On("CheckIn",
		mock.Anything,
		domain.Identity{EmployeeID: callerID, Role: domain.RoleEmployee},
		targetID,
		mock.AnythingOfType("time.Time"),
	).Return(nil, fmt.Errorf("%w: cannot check in for another employee", apperrors.ErrForbidden)).Once()

	payload, _ := json.Marshal(dto.CheckInRequest{EmployeeID: &targetID})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(callerID, domain.RoleEmployee))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *AttendanceHandlerTestSuite) TestCheckOut_NoActiveCheckInConflict() {
	employeeID := uuid.NewString()

	suite.mockEngine.On("CheckOut", mock.Anything, mock.Anything, employeeID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNoActiveCheckIn).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/attendance/check-out", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(employeeID, domain.RoleEmployee))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AttendanceHandlerTestSuite) TestListAttendance_Success() {
	employeeID := uuid.NewString()
	nextToken := "opaque-token"
	records := []domain.AttendanceRecord{
		{RecordID: uuid.NewString(), EmployeeID: employeeID, Status: domain.CheckedOut},
	}

	suite.mockEngine.On("ListAttendance", mock.Anything, mock.Anything, employeeID, 10, (*string)(nil)).
		Return(records, &nextToken, nil).Once()

	url := fmt.Sprintf("/api/v1/attendance/%s?limit=10", employeeID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(employeeID, domain.RoleEmployee))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListAttendanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Records, 1)
	suite.Require().NotNil(body.NextToken)
	suite.Equal(nextToken, *body.NextToken)
	suite.mockEngine.AssertExpectations(suite.T())
}

func (suite *AttendanceHandlerTestSuite) TestCheckIn_MissingTokenUnauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEngine.AssertNotCalled(suite.T(), "CheckIn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestAttendanceHandler(t *testing.T) {
	suite.Run(t, new(AttendanceHandlerTestSuite))
}
