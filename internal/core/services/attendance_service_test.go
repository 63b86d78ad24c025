package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
	"github.com/peoplehr/hr_ops_app/internal/core/services"
)

// MockAttendanceRepository is a mock type for the AttendanceRepositoryWithTx interface
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) CreateCheckIn(ctx context.Context, record domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) CompleteCheckOut(ctx context.Context, employeeID string, date time.Time, checkOutTime time.Time, updatedBy string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID, date, checkOutTime, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindRecordByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) ListRecordsByEmployee(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.AttendanceRecord, *string, error) {
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

func (m *MockAttendanceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAttendanceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAttendanceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAttendanceRepository
	service  portssvc.AttendanceSvcFacade
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAttendanceRepository)
	suite.service = services.NewAttendanceService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AttendanceServiceTestSuite) TestCheckIn_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	ts := time.Date(2025, 6, 2, 9, 15, 0, 0, time.Local)

	suite.mockRepo.On("CreateCheckIn", ctx, mock.MatchedBy(func(r domain.AttendanceRecord) bool {
		return r.EmployeeID == employeeID &&
			r.Status == domain.CheckedIn &&
			r.Date.Equal(domain.DateOf(ts)) &&
			r.CheckInTime != nil && r.CheckInTime.Equal(ts) &&
			r.CheckOutTime == nil
	})).Return(nil).Once()

	record, err := suite.service.CheckIn(ctx, employeeID, ts)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.NotEmpty(record.RecordID)
	suite.Equal(domain.CheckedIn, record.Status)
	suite.Equal(employeeID, record.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_DuplicateSameDay() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockRepo.On("CreateCheckIn", ctx, mock.AnythingOfType("domain.AttendanceRecord")).Return(apperrors.ErrDuplicateCheckIn).Once()

	record, err := suite.service.CheckIn(ctx, employeeID, time.Now())

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrDuplicateCheckIn)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_ClosedDayNotReopened() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	// A day that already reached CHECKED_OUT rejects a new check-in as
	// completed, not as a duplicate check-in.
	suite.mockRepo.On("CreateCheckIn", ctx, mock.AnythingOfType("domain.AttendanceRecord")).Return(apperrors.ErrAlreadyCompleted).Once()

	record, err := suite.service.CheckIn(ctx, employeeID, time.Now())

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrAlreadyCompleted)
	suite.NotErrorIs(err, apperrors.ErrDuplicateCheckIn)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_DayFollowsEventTimestamp() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	// An event stamped just before midnight belongs to that day even if the
	// request is processed after midnight.
	ts := time.Date(2025, 6, 2, 23, 59, 30, 0, time.Local)

	suite.mockRepo.On("CreateCheckIn", ctx, mock.MatchedBy(func(r domain.AttendanceRecord) bool {
		return r.Date.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local))
	})).Return(nil).Once()

	_, err := suite.service.CheckIn(ctx, employeeID, ts)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckIn_ValidationErrors() {
	ctx := context.Background()

	_, err := suite.service.CheckIn(ctx, "", time.Now())
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CheckIn(ctx, uuid.NewString(), time.Time{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "CreateCheckIn", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	checkIn := time.Date(2025, 6, 2, 9, 0, 0, 0, time.Local)
	checkOut := time.Date(2025, 6, 2, 17, 30, 0, 0, time.Local)

	closed := &domain.AttendanceRecord{
		RecordID:     uuid.NewString(),
		EmployeeID:   employeeID,
		Date:         domain.DateOf(checkOut),
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
		Status:       domain.CheckedOut,
	}

	suite.mockRepo.On("CompleteCheckOut", ctx, employeeID, domain.DateOf(checkOut), checkOut, employeeID).Return(closed, nil).Once()

	record, err := suite.service.CheckOut(ctx, employeeID, checkOut)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckedOut, record.Status)
	suite.True(record.Hours().Equal(decimal.NewFromFloat(8.5)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_WithoutCheckIn() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockRepo.On("CompleteCheckOut", ctx, employeeID, mock.Anything, mock.Anything, employeeID).Return(nil, apperrors.ErrNoActiveCheckIn).Once()

	record, err := suite.service.CheckOut(ctx, employeeID, time.Now())

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrNoActiveCheckIn)
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_AtCheckInInstant() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	ts := time.Date(2025, 6, 2, 9, 0, 0, 0, time.Local)

	// A check-out stamped at exactly the check-in time never closes the day.
	suite.mockRepo.On("CompleteCheckOut", ctx, employeeID, domain.DateOf(ts), ts, employeeID).Return(nil, apperrors.ErrInvalidOrdering).Once()

	record, err := suite.service.CheckOut(ctx, employeeID, ts)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrInvalidOrdering)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCheckOut_AlreadyCompleted() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockRepo.On("CompleteCheckOut", ctx, employeeID, mock.Anything, mock.Anything, employeeID).Return(nil, apperrors.ErrAlreadyCompleted).Once()

	_, err := suite.service.CheckOut(ctx, employeeID, time.Now())

	suite.ErrorIs(err, apperrors.ErrAlreadyCompleted)
}

func (suite *AttendanceServiceTestSuite) TestListAttendance_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	token := "next-page"
	expected := []domain.AttendanceRecord{
		{RecordID: uuid.NewString(), EmployeeID: employeeID, Status: domain.CheckedOut},
		{RecordID: uuid.NewString(), EmployeeID: employeeID, Status: domain.CheckedIn},
	}

	suite.mockRepo.On("ListRecordsByEmployee", ctx, employeeID, 20, (*string)(nil)).Return(expected, &token, nil).Once()

	records, nextToken, err := suite.service.ListAttendance(ctx, employeeID, 20, nil)

	suite.Require().NoError(err)
	suite.Equal(expected, records)
	suite.Require().NotNil(nextToken)
	suite.Equal(token, *nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
