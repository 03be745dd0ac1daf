package leave

import (
	"context"
	"fmt"

	"go-hrms/internal/employee"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/clock"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/mailer"

	"go.uber.org/zap"
)

// Directory is the slice of the employee store the ledger needs: name and
// email resolution for applicants.
type Directory interface {
	FindByID(id int) (employee.Employee, bool)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, id int, status, approverName string) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id int) (LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID int) ([]LeaveResponse, error)
	GetPending(ctx context.Context) ([]LeaveResponse, error)
}

type service struct {
	store     Store
	directory Directory
	clk       clock.Clock
	mail      *mailer.Mailer
	logger    *zap.Logger
}

func NewService(store Store, directory Directory, clk clock.Clock, mail *mailer.Mailer, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		store:     store,
		directory: directory,
		clk:       clk,
		mail:      mail,
		logger:    l,
	}
}

func (s *service) Apply(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("apply leave requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", req.EmployeeID),
		zap.String("type", req.Type),
	)

	name := req.EmployeeName
	if name == "" {
		if e, ok := s.directory.FindByID(req.EmployeeID); ok {
			name = e.Name
		}
	}

	created := s.store.Insert(Leave{
		EmployeeID:   req.EmployeeID,
		EmployeeName: name,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		Status:       StatusPending,
		AppliedOn:    clock.Today(s.clk),
	})

	s.logger.Info("apply leave success",
		zap.String("request_id", rid),
		zap.Int("leave_id", created.ID),
	)
	return mapToResponse(created), nil
}

// Decide moves a request to Approved or Rejected and stamps the approver
// and decision date. The transition is not guarded: deciding an already
// decided request overwrites the previous approver and date, which is the
// ledger's documented behavior. It is logged so repeats are visible.
func (s *service) Decide(ctx context.Context, id int, status, approverName string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide leave requested",
		zap.String("request_id", rid),
		zap.Int("leave_id", id),
		zap.String("status", status),
	)

	l, ok := s.store.FindByID(id)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	if l.Status != StatusPending {
		s.logger.Warn("re-deciding an already decided leave",
			zap.Int("leave_id", id),
			zap.String("previous_status", l.Status),
			zap.String("previous_approver", l.ApprovedBy),
			zap.String("approver", approverName),
		)
	}

	l.Status = status
	l.ApprovedBy = approverName
	l.ApprovedOn = clock.Today(s.clk)

	if !s.store.Save(l) {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	// Decision mail is best-effort and must not hold up the response.
	go s.notify(l)
	s.logger.Info("decide leave success",
		zap.String("request_id", rid),
		zap.Int("leave_id", id),
		zap.String("status", status),
	)
	return mapToResponse(l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	return mapToListResponse(s.store.FindAll()), nil
}

func (s *service) GetByID(ctx context.Context, id int) (LeaveResponse, error) {
	l, ok := s.store.FindByID(id)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(l), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID int) ([]LeaveResponse, error) {
	all := s.store.FindAll()
	filtered := make([]Leave, 0, len(all))
	for _, l := range all {
		if l.EmployeeID == employeeID {
			filtered = append(filtered, l)
		}
	}
	return mapToListResponse(filtered), nil
}

func (s *service) GetPending(ctx context.Context) ([]LeaveResponse, error) {
	all := s.store.FindAll()
	filtered := make([]Leave, 0, len(all))
	for _, l := range all {
		if l.Status == StatusPending {
			filtered = append(filtered, l)
		}
	}
	return mapToListResponse(filtered), nil
}

func (s *service) notify(l Leave) {
	e, ok := s.directory.FindByID(l.EmployeeID)
	if !ok {
		return
	}
	s.mail.Send(
		e.Email,
		fmt.Sprintf("Leave request %s", l.Status),
		fmt.Sprintf("Your %s request (%s to %s) was %s by %s.",
			l.Type, l.StartDate, l.EndDate, l.Status, l.ApprovedBy),
	)
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Type:         l.Type,
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
		Reason:       l.Reason,
		Status:       l.Status,
		AppliedOn:    l.AppliedOn,
		ApprovedBy:   l.ApprovedBy,
		ApprovedOn:   l.ApprovedOn,
	}
}

func mapToListResponse(list []Leave) []LeaveResponse {
	res := make([]LeaveResponse, len(list))
	for i, l := range list {
		res[i] = mapToResponse(l)
	}
	return res
}
