package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peoplehr/hr_ops_app/internal/apperrors"
	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	portsrepo "github.com/peoplehr/hr_ops_app/internal/core/ports/repositories"
	portssvc "github.com/peoplehr/hr_ops_app/internal/core/ports/services"
)

// leaveTypeService reads leave type reference data.
type leaveTypeService struct {
	BaseService
	leaveTypeRepo portsrepo.LeaveTypeReader
}

// NewLeaveTypeService creates a new leave type service.
func NewLeaveTypeService(repo portsrepo.LeaveTypeReader) portssvc.LeaveTypeSvcFacade {
	return &leaveTypeService{leaveTypeRepo: repo}
}

var _ portssvc.LeaveTypeSvcFacade = (*leaveTypeService)(nil)

// GetLeaveType retrieves one leave type by ID.
func (s *leaveTypeService) GetLeaveType(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error) {
	if leaveTypeID == "" {
		return nil, fmt.Errorf("%w: leaveTypeID is required", apperrors.ErrValidation)
	}
	leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, leaveTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find leave type", slog.String("leave_type_id", leaveTypeID))
		}
		return nil, err
	}
	return leaveType, nil
}

// ListLeaveTypes retrieves all leave types.
func (s *leaveTypeService) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	leaveTypes, err := s.leaveTypeRepo.ListLeaveTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leave types")
		return nil, err
	}
	return leaveTypes, nil
}
