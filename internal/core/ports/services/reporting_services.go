package services

import (
	"context"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// ReportingSvcFacade is the metrics aggregator: read-only rollups for the
// dashboards. No side effects; tolerates slightly stale reads.
type ReportingSvcFacade interface {
	// EmployeeMetrics returns the self-scoped attendance summary plus a
	// current leave balances snapshot.
	EmployeeMetrics(ctx context.Context, employeeID string, period domain.Period) (*domain.EmployeeMetrics, error)

	// AdminMetrics returns the org-wide rollup: aggregate counts only.
	AdminMetrics(ctx context.Context, period domain.Period, filters domain.MetricsFilters) (*domain.AdminMetrics, error)
}
