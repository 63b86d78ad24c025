package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Attendance AttendanceSvcFacade
	Leave      LeaveSvcFacade
	LeaveType  LeaveTypeSvcFacade
	Employee   EmployeeSvcFacade
	Reporting  ReportingSvcFacade
	Engine     EngineSvcFacade

	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
