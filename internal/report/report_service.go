package report

import (
	"context"
	"fmt"

	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// The report service only reads, so it takes the narrowest slice of each
// store.
type (
	EmployeeSource interface {
		FindAll() []employee.Employee
	}
	LeaveSource interface {
		FindAll() []leave.Leave
	}
	AttendanceSource interface {
		FindAll() []attendance.Attendance
	}
)

type Service interface {
	Dashboard(ctx context.Context) (DashboardResponse, error)
	Breakdowns(ctx context.Context) (BreakdownsResponse, error)
	Export(ctx context.Context) (*excelize.File, error)
}

type service struct {
	employees  EmployeeSource
	leaves     LeaveSource
	attendance AttendanceSource
	stats      attendance.Service
	sf         *singleflight.Group
	logger     *zap.Logger
}

func NewService(
	employees EmployeeSource,
	leaves LeaveSource,
	att AttendanceSource,
	stats attendance.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		employees:  employees,
		leaves:     leaves,
		attendance: att,
		stats:      stats,
		sf:         &singleflight.Group{},
		logger:     l,
	}
}

// Dashboard aggregates the landing-page counters. Concurrent requests
// collapse onto a single computation via singleflight; everything is read
// from the same snapshots, so sharing one result is safe.
func (s *service) Dashboard(ctx context.Context) (DashboardResponse, error) {
	v, err, _ := s.sf.Do("dashboard", func() (interface{}, error) {
		emps := s.employees.FindAll()

		active := 0
		departments := make(map[string]struct{})
		for _, e := range emps {
			if e.Status == employee.StatusActive {
				active++
			}
			departments[e.Department] = struct{}{}
		}

		pending := 0
		for _, l := range s.leaves.FindAll() {
			if l.Status == leave.StatusPending {
				pending++
			}
		}

		attStats, err := s.stats.Stats(ctx, 0, "", "")
		if err != nil {
			return DashboardResponse{}, err
		}

		return DashboardResponse{
			TotalEmployees:  len(emps),
			ActiveEmployees: active,
			Departments:     len(departments),
			PendingLeaves:   pending,
			AttendanceRate:  attStats.PresentPercentage,
		}, nil
	})
	if err != nil {
		return DashboardResponse{}, err
	}
	return v.(DashboardResponse), nil
}

func (s *service) Breakdowns(ctx context.Context) (BreakdownsResponse, error) {
	v, err, _ := s.sf.Do("breakdowns", func() (interface{}, error) {
		emps := s.employees.FindAll()
		leaves := s.leaves.FindAll()

		// Department order follows first appearance in the directory.
		deptOrder := make([]string, 0)
		deptCounts := make(map[string]int)
		for _, e := range emps {
			if _, ok := deptCounts[e.Department]; !ok {
				deptOrder = append(deptOrder, e.Department)
			}
			deptCounts[e.Department]++
		}
		byDepartment := make([]NameCount, 0, len(deptOrder))
		for _, d := range deptOrder {
			byDepartment = append(byDepartment, NameCount{Name: d, Value: deptCounts[d]})
		}

		byType := make([]NameCount, 0, len(leave.Types))
		for _, t := range leave.Types {
			count := 0
			for _, l := range leaves {
				if l.Type == t {
					count++
				}
			}
			byType = append(byType, NameCount{Name: t, Value: count})
		}

		byStatus := make([]NameCount, 0, 3)
		for _, st := range []string{leave.StatusApproved, leave.StatusPending, leave.StatusRejected} {
			count := 0
			for _, l := range leaves {
				if l.Status == st {
					count++
				}
			}
			byStatus = append(byStatus, NameCount{Name: st, Value: count})
		}

		attStats, err := s.stats.Stats(ctx, 0, "", "")
		if err != nil {
			return BreakdownsResponse{}, err
		}
		overview := []NameCount{
			{Name: "Present", Value: attStats.PresentCount},
			{Name: "Absent", Value: attStats.AbsentCount},
			{Name: "Late", Value: attStats.LateCount},
		}

		return BreakdownsResponse{
			EmployeesByDepartment: byDepartment,
			LeavesByType:          byType,
			LeavesByStatus:        byStatus,
			AttendanceOverview:    overview,
		}, nil
	})
	if err != nil {
		return BreakdownsResponse{}, err
	}
	return v.(BreakdownsResponse), nil
}

// Export renders the three collections as a workbook, one sheet each.
func (s *service) Export(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := s.writeEmployeeSheet(f); err != nil {
		return nil, err
	}
	if err := s.writeLeaveSheet(f); err != nil {
		return nil, err
	}
	if err := s.writeAttendanceSheet(f); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	s.logger.Info("report export generated")
	return f, nil
}

func (s *service) writeEmployeeSheet(f *excelize.File) error {
	const sheet = "Employees"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{
		"ID", "Name", "Email", "Department", "Role", "Status", "Join Date", "Manager", "Salary",
	}); err != nil {
		return err
	}
	for i, e := range s.employees.FindAll() {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{
			e.ID, e.Name, e.Email, e.Department, e.Role, e.Status, e.JoinDate, e.Manager, e.Salary,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) writeLeaveSheet(f *excelize.File) error {
	const sheet = "Leaves"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{
		"ID", "Employee ID", "Employee", "Type", "Start Date", "End Date", "Status", "Applied On", "Approved By", "Approved On",
	}); err != nil {
		return err
	}
	for i, l := range s.leaves.FindAll() {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{
			l.ID, l.EmployeeID, l.EmployeeName, l.Type, l.StartDate, l.EndDate, l.Status, l.AppliedOn, l.ApprovedBy, l.ApprovedOn,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) writeAttendanceSheet(f *excelize.File) error {
	const sheet = "Attendance"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{
		"ID", "Employee ID", "Employee", "Date", "Check In", "Check Out", "Status", "Work Hours",
	}); err != nil {
		return err
	}
	for i, a := range s.attendance.FindAll() {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{
			a.ID, a.EmployeeID, a.EmployeeName, a.Date, a.CheckIn, a.CheckOut, a.Status, a.WorkHours,
		}); err != nil {
			return err
		}
	}
	return nil
}
