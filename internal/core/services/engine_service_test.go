package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
	"github.com/peoplehr/hr_ops_app/internal/core/services"
)

// MockAttendanceSvc is a mock type for the AttendanceSvcFacade interface
type MockAttendanceSvc struct {
	mock.Mock
}

func (m *MockAttendanceSvc) CheckIn(ctx context.Context, employeeID string, ts time.Time) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID, ts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceSvc) CheckOut(ctx context.Context, employeeID string, ts time.Time) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID, ts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceSvc) ListAttendance(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.AttendanceRecord, *string, error) {
	args := m.Called(ctx, employeeID, limit, nextToken)
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

// MockLeaveSvc is a mock type for the LeaveSvcFacade interface
type MockLeaveSvc struct {
	mock.Mock
}

func (m *MockLeaveSvc) GetBalance(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveBalance, error) {
	args := m.Called(ctx, employeeID, leaveTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveBalance), args.Error(1)
}

func (m *MockLeaveSvc) Deduct(ctx context.Context, employeeID, leaveTypeID string, units decimal.Decimal, actorID, notes string) (*domain.LeaveBalance, error) {
	args := m.Called(ctx, employeeID, leaveTypeID, units, actorID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveBalance), args.Error(1)
}

func (m *MockLeaveSvc) Credit(ctx context.Context, employeeID, leaveTypeID string, units decimal.Decimal, actorID, notes string) (*domain.LeaveBalance, error) {
	args := m.Called(ctx, employeeID, leaveTypeID, units, actorID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveBalance), args.Error(1)
}

func (m *MockLeaveSvc) ListBalancesForEmployee(ctx context.Context, employeeID string) ([]domain.LeaveBalance, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveBalance), args.Error(1)
}

func (m *MockLeaveSvc) Allocate(ctx context.Context, employeeID, leaveTypeID string, allocated decimal.Decimal, actorID string) (*domain.LeaveBalance, error) {
	args := m.Called(ctx, employeeID, leaveTypeID, allocated, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveBalance), args.Error(1)
}

func (m *MockLeaveSvc) ListEntries(ctx context.Context, employeeID, leaveTypeID string) ([]domain.LeaveEntry, error) {
	args := m.Called(ctx, employeeID, leaveTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveEntry), args.Error(1)
}

// MockReportingSvc is a mock type for the ReportingSvcFacade interface
type MockReportingSvc struct {
	mock.Mock
}

func (m *MockReportingSvc) EmployeeMetrics(ctx context.Context, employeeID string, period domain.Period) (*domain.EmployeeMetrics, error) {
	args := m.Called(ctx, employeeID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeMetrics), args.Error(1)
}

func (m *MockReportingSvc) AdminMetrics(ctx context.Context, period domain.Period, filters domain.MetricsFilters) (*domain.AdminMetrics, error) {
	args := m.Called(ctx, period, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminMetrics), args.Error(1)
}

// --- Test Suite Setup ---

type EngineServiceTestSuite struct {
	suite.Suite
	mockAttendance *MockAttendanceSvc
	mockLeave      *MockLeaveSvc
	mockReporting  *MockReportingSvc
	service        portssvc.EngineSvcFacade

	employee domain.Identity
	admin    domain.Identity
	other    string
}

func (suite *EngineServiceTestSuite) SetupTest() {
	suite.mockAttendance = new(MockAttendanceSvc)
	suite.mockLeave = new(MockLeaveSvc)
	suite.mockReporting = new(MockReportingSvc)
	suite.service = services.NewEngineService(suite.mockAttendance, suite.mockLeave, suite.mockReporting, 5*time.Second)

	suite.employee = domain.Identity{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee}
	suite.admin = domain.Identity{EmployeeID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.other = uuid.NewString()
}

// --- Test Cases ---

func (suite *EngineServiceTestSuite) TestCheckIn_SelfAllowed() {
	ts := time.Now()
	record := &domain.AttendanceRecord{RecordID: uuid.NewString(), EmployeeID: suite.employee.EmployeeID, Status: domain.CheckedIn}

	suite.mockAttendance.On("CheckIn", mock.Anything, suite.employee.EmployeeID, ts).Return(record, nil).Once()

	got, err := suite.service.CheckIn(context.Background(), suite.employee, suite.employee.EmployeeID, ts)

	suite.Require().NoError(err)
	suite.Equal(record, got)
	suite.mockAttendance.AssertExpectations(suite.T())
}

func (suite *EngineServiceTestSuite) TestCheckIn_OtherEmployeeForbidden() {
	got, err := suite.service.CheckIn(context.Background(), suite.employee, suite.other, time.Now())

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAttendance.AssertNotCalled(suite.T(), "CheckIn", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EngineServiceTestSuite) TestCheckIn_AdminMayActForAnyone() {
	ts := time.Now()
	record := &domain.AttendanceRecord{RecordID: uuid.NewString(), EmployeeID: suite.other}

	suite.mockAttendance.On("CheckIn", mock.Anything, suite.other, ts).Return(record, nil).Once()

	got, err := suite.service.CheckIn(context.Background(), suite.admin, suite.other, ts)

	suite.Require().NoError(err)
	suite.Equal(record, got)
}

func (suite *EngineServiceTestSuite) TestDeductLeave_ActorIsCaller() {
	units := decimal.NewFromInt(1)
	balance := &domain.LeaveBalance{EmployeeID: suite.other}

	// The audit actor is the verified caller, not the target employee
	suite.mockLeave.On("Deduct", mock.Anything, suite.other, "lt-annual", units, suite.admin.EmployeeID, "note").Return(balance, nil).Once()

	got, err := suite.service.DeductLeave(context.Background(), suite.admin, suite.other, "lt-annual", units, "note")

	suite.Require().NoError(err)
	suite.Equal(balance, got)
	suite.mockLeave.AssertExpectations(suite.T())
}

func (suite *EngineServiceTestSuite) TestDeductLeave_OtherEmployeeForbidden() {
	got, err := suite.service.DeductLeave(context.Background(), suite.employee, suite.other, "lt-annual", decimal.NewFromInt(1), "")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *EngineServiceTestSuite) TestAllocateLeave_RequiresAdmin() {
	got, err := suite.service.AllocateLeave(context.Background(), suite.employee, suite.employee.EmployeeID, "lt-annual", decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLeave.AssertNotCalled(suite.T(), "Allocate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EngineServiceTestSuite) TestAllocateLeave_AdminAllowed() {
	allocated := decimal.NewFromInt(24)
	balance := &domain.LeaveBalance{EmployeeID: suite.other, Allocated: allocated, Version: 1}

	suite.mockLeave.On("Allocate", mock.Anything, suite.other, "lt-sick", allocated, suite.admin.EmployeeID).Return(balance, nil).Once()

	got, err := suite.service.AllocateLeave(context.Background(), suite.admin, suite.other, "lt-sick", allocated)

	suite.Require().NoError(err)
	suite.Equal(balance, got)
	suite.mockLeave.AssertExpectations(suite.T())
}

func (suite *EngineServiceTestSuite) TestListLeaveEntries_SelfAllowed() {
	entries := []domain.LeaveEntry{{EntryID: uuid.NewString(), EmployeeID: suite.employee.EmployeeID}}

	suite.mockLeave.On("ListEntries", mock.Anything, suite.employee.EmployeeID, "lt-annual").Return(entries, nil).Once()

	got, err := suite.service.ListLeaveEntries(context.Background(), suite.employee, suite.employee.EmployeeID, "lt-annual")

	suite.Require().NoError(err)
	suite.Equal(entries, got)
	suite.mockLeave.AssertExpectations(suite.T())
}

func (suite *EngineServiceTestSuite) TestListLeaveEntries_OtherEmployeeForbidden() {
	got, err := suite.service.ListLeaveEntries(context.Background(), suite.employee, suite.other, "")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLeave.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EngineServiceTestSuite) TestGetAdminMetrics_RequiresAdmin() {
	period := domain.Period{From: time.Now().AddDate(0, 0, -7), To: time.Now()}

	got, err := suite.service.GetAdminMetrics(context.Background(), suite.employee, period, domain.MetricsFilters{})

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockReporting.AssertNotCalled(suite.T(), "AdminMetrics", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EngineServiceTestSuite) TestGetEmployeeMetrics_SelfAllowed() {
	period := domain.Period{From: time.Now().AddDate(0, 0, -7), To: time.Now()}
	metrics := &domain.EmployeeMetrics{EmployeeID: suite.employee.EmployeeID, DaysPresent: 5}

	suite.mockReporting.On("EmployeeMetrics", mock.Anything, suite.employee.EmployeeID, period).Return(metrics, nil).Once()

	got, err := suite.service.GetEmployeeMetrics(context.Background(), suite.employee, suite.employee.EmployeeID, period)

	suite.Require().NoError(err)
	suite.Equal(metrics, got)
}

func (suite *EngineServiceTestSuite) TestStoreDeadline_MapsToStorageTimeout() {
	ts := time.Now()
	wrapped := fmt.Errorf("query canceled: %w", context.DeadlineExceeded)

	suite.mockAttendance.On("CheckIn", mock.Anything, suite.employee.EmployeeID, ts).Return(nil, wrapped).Once()

	got, err := suite.service.CheckIn(context.Background(), suite.employee, suite.employee.EmployeeID, ts)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrStorageTimeout)
}

func (suite *EngineServiceTestSuite) TestStoreError_PassesThroughUnmapped() {
	ts := time.Now()

	suite.mockAttendance.On("CheckIn", mock.Anything, suite.employee.EmployeeID, ts).Return(nil, apperrors.ErrDuplicateCheckIn).Once()

	_, err := suite.service.CheckIn(context.Background(), suite.employee, suite.employee.EmployeeID, ts)

	suite.ErrorIs(err, apperrors.ErrDuplicateCheckIn)
	suite.NotErrorIs(err, apperrors.ErrStorageTimeout)
}

func (suite *EngineServiceTestSuite) TestOperationContextCarriesDeadline() {
	ts := time.Now()
	record := &domain.AttendanceRecord{RecordID: uuid.NewString()}

	suite.mockAttendance.On("CheckIn", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= 5*time.Second
	}), suite.employee.EmployeeID, ts).Return(record, nil).Once()

	_, err := suite.service.CheckIn(context.Background(), suite.employee, suite.employee.EmployeeID, ts)

	suite.Require().NoError(err)
	suite.mockAttendance.AssertExpectations(suite.T())
}

func TestEngineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EngineServiceTestSuite))
}
