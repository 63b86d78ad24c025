package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	attendanceRepo := newPgxAttendanceRepository(dbPool)
	leaveRepo := newPgxLeaveRepository(dbPool)
	leaveTypeRepo := newPgxLeaveTypeRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AttendanceRepo: attendanceRepo,
		LeaveRepo:      leaveRepo,
		LeaveTypeRepo:  leaveTypeRepo,
		EmployeeRepo:   employeeRepo,
		ReportingRepo:  reportingRepo,
	}
}
