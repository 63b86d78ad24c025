package services

import (
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
	"github.com/peoplehr/hr_ops_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Attendance = NewAttendanceService(repos.AttendanceRepo)
	container.Leave = NewLeaveService(repos.LeaveRepo, repos.LeaveTypeRepo)
	container.LeaveType = NewLeaveTypeService(repos.LeaveTypeRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.LeaveRepo)

	// The engine facade owns authorization and the per-op store deadline;
	// everything above stays identity-agnostic.
	container.Engine = NewEngineService(container.Attendance, container.Leave, container.Reporting, cfg.StoreOpTimeout)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
