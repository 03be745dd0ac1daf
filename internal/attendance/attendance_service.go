package attendance

import (
	"context"
	"math"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/shared/clock"
	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	MarkPresent(ctx context.Context, req MarkPresentRequest) (AttendanceResponse, error)
	MarkAbsent(ctx context.Context, req MarkAbsentRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID int) ([]AttendanceResponse, error)
	GetByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
	Stats(ctx context.Context, employeeID int, startDate, endDate string) (StatsResponse, error)
}

type service struct {
	store  Store
	clk    clock.Clock
	logger *zap.Logger
}

func NewService(store Store, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{store: store, clk: clk, logger: l}
}

// MarkPresent upserts the record for (employeeId, today). Today is read
// from the clock at call time, never supplied by the caller.
//
// When a record already exists, only check-out and work hours change:
// check-out becomes the given time or the current time of day, and hours
// are recomputed from the STORED check-in. When none exists, a new Present
// record is inserted with check-in = given time or now; hours stay zero
// until a later check-out call.
func (s *service) MarkPresent(ctx context.Context, req MarkPresentRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	today := clock.Today(s.clk)
	s.logger.Debug("mark present requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", req.EmployeeID),
		zap.String("date", today),
	)

	if existing, ok := s.store.FindByEmployeeAndDate(req.EmployeeID, today); ok {
		checkOut := req.CheckOut
		if checkOut == "" {
			checkOut = clock.TimeOfDay(s.clk)
		}

		hours, err := workHours(existing.CheckIn, checkOut)
		if err != nil {
			return AttendanceResponse{}, err
		}

		existing.CheckOut = checkOut
		existing.WorkHours = hours
		if !s.store.Save(existing) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}

		s.logger.Info("mark present updated existing record",
			zap.String("request_id", rid),
			zap.Int("attendance_id", existing.ID),
		)
		return mapToResponse(existing), nil
	}

	checkIn := req.CheckIn
	if checkIn == "" {
		checkIn = clock.TimeOfDay(s.clk)
	}

	created := s.store.Insert(Attendance{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Date:         today,
		CheckIn:      checkIn,
		Status:       StatusPresent,
	})

	s.logger.Info("mark present inserted record",
		zap.String("request_id", rid),
		zap.Int("attendance_id", created.ID),
	)
	return mapToResponse(created), nil
}

// MarkAbsent upserts the record for (employeeId, date), forcing Absent and
// wiping any check-in/check-out already recorded for that day.
func (s *service) MarkAbsent(ctx context.Context, req MarkAbsentRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("mark absent requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)

	if existing, ok := s.store.FindByEmployeeAndDate(req.EmployeeID, req.Date); ok {
		existing.Status = StatusAbsent
		existing.CheckIn = ""
		existing.CheckOut = ""
		existing.WorkHours = 0
		if !s.store.Save(existing) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}

		s.logger.Info("mark absent updated existing record",
			zap.String("request_id", rid),
			zap.Int("attendance_id", existing.ID),
		)
		return mapToResponse(existing), nil
	}

	created := s.store.Insert(Attendance{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Date:         req.Date,
		Status:       StatusAbsent,
	})

	s.logger.Info("mark absent inserted record",
		zap.String("request_id", rid),
		zap.Int("attendance_id", created.ID),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	return mapToListResponse(s.store.FindAll()), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID int) ([]AttendanceResponse, error) {
	all := s.store.FindAll()
	filtered := make([]Attendance, 0, len(all))
	for _, a := range all {
		if a.EmployeeID == employeeID {
			filtered = append(filtered, a)
		}
	}
	return mapToListResponse(filtered), nil
}

func (s *service) GetByDate(ctx context.Context, date string) ([]AttendanceResponse, error) {
	all := s.store.FindAll()
	filtered := make([]Attendance, 0, len(all))
	for _, a := range all {
		if a.Date == date {
			filtered = append(filtered, a)
		}
	}
	return mapToListResponse(filtered), nil
}

// Stats aggregates over the log, optionally narrowed to one employee
// (employeeID > 0) and an inclusive date range (both bounds set). Dates
// compare lexically, which is sound for ISO YYYY-MM-DD strings.
func (s *service) Stats(ctx context.Context, employeeID int, startDate, endDate string) (StatsResponse, error) {
	records := s.store.FindAll()

	filtered := make([]Attendance, 0, len(records))
	for _, a := range records {
		if employeeID > 0 && a.EmployeeID != employeeID {
			continue
		}
		if startDate != "" && endDate != "" && (a.Date < startDate || a.Date > endDate) {
			continue
		}
		filtered = append(filtered, a)
	}

	stats := StatsResponse{TotalRecords: len(filtered)}
	for _, a := range filtered {
		switch a.Status {
		case StatusPresent:
			stats.PresentCount++
			if a.CheckIn > lateThreshold {
				stats.LateCount++
			}
		case StatusAbsent:
			stats.AbsentCount++
		}
	}

	if stats.TotalRecords > 0 {
		stats.PresentPercentage = float64(stats.PresentCount) / float64(stats.TotalRecords) * 100
		stats.AbsentPercentage = float64(stats.AbsentCount) / float64(stats.TotalRecords) * 100
	}
	if stats.PresentCount > 0 {
		stats.LatePercentage = float64(stats.LateCount) / float64(stats.PresentCount) * 100
	}

	return stats, nil
}

// workHours is the check-out minus check-in span in hours, rounded to two
// decimals. A record with no check-in (marked absent earlier the same day)
// yields zero hours rather than an error.
func workHours(checkIn, checkOut string) (float64, error) {
	if checkIn == "" {
		return 0, nil
	}

	start, err := time.Parse(clock.TimeLayout, checkIn)
	if err != nil {
		return 0, attendanceerrors.ErrInvalidTime
	}
	end, err := time.Parse(clock.TimeLayout, checkOut)
	if err != nil {
		return 0, attendanceerrors.ErrInvalidTime
	}

	hours := end.Sub(start).Hours()
	return math.Round(hours*100) / 100, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse(a)
}

func mapToListResponse(list []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(list))
	for i, a := range list {
		res[i] = mapToResponse(a)
	}
	return res
}
