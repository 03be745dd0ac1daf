package employee

import (
	"context"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
	Departments(ctx context.Context) ([]string, error)
	GetByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error)
}

type service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{store: store, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department", req.Department),
	)

	// Status is always written as Active on creation; duplicate emails are
	// accepted silently, matching the directory's contract.
	created := s.store.Insert(Employee{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Role:       req.Role,
		Status:     StatusActive,
		JoinDate:   req.JoinDate,
		Avatar:     req.Avatar,
		Manager:    req.Manager,
		Address:    req.Address,
		Skills:     req.Skills,
		Projects:   req.Projects,
		Salary:     req.Salary,
	})

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", created.ID),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	return mapToListResponse(s.store.FindAll()), nil
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int("employee_id", id))

	e, ok := s.store.FindByID(id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(e), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.Int("employee_id", id))

	e, ok := s.store.FindByID(id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	mergeEmployee(&e, req)
	if !s.store.Save(e) {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("update employee success", zap.Int("employee_id", id))
	return mapToResponse(e), nil
}

// Delete removes the directory record only. Leave and attendance records
// referencing the employee are deliberately left in place; they keep
// rendering through their denormalized name copies.
func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete employee requested", zap.Int("employee_id", id))

	if !s.store.Remove(id) {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("delete employee success", zap.Int("employee_id", id))
	return nil
}

// Departments returns the distinct department values in first-seen order.
func (s *service) Departments(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range s.store.FindAll() {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	return out, nil
}

func (s *service) GetByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error) {
	all := s.store.FindAll()
	filtered := make([]Employee, 0, len(all))
	for _, e := range all {
		if e.Department == department {
			filtered = append(filtered, e)
		}
	}
	return mapToListResponse(filtered), nil
}

func mergeEmployee(e *Employee, req UpdateEmployeeRequest) {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Role != nil {
		e.Role = *req.Role
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.JoinDate != nil {
		e.JoinDate = *req.JoinDate
	}
	if req.Avatar != nil {
		e.Avatar = *req.Avatar
	}
	if req.Manager != nil {
		e.Manager = *req.Manager
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.Skills != nil {
		e.Skills = *req.Skills
	}
	if req.Projects != nil {
		e.Projects = *req.Projects
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Role:       e.Role,
		Status:     e.Status,
		JoinDate:   e.JoinDate,
		Avatar:     e.Avatar,
		Manager:    e.Manager,
		Address:    e.Address,
		Skills:     e.Skills,
		Projects:   e.Projects,
		Salary:     e.Salary,
	}
}

func mapToListResponse(list []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(list))
	for i, e := range list {
		res[i] = mapToResponse(e)
	}
	return res
}
