package leave

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/employee"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/clock"
	"go-hrms/internal/shared/mailer"

	"github.com/stretchr/testify/assert"
)

func fixedClock(day string) clock.Clock {
	t, _ := time.Parse(clock.DateLayout, day)
	return clock.Fixed{T: t}
}

func newTestService(seed []Leave, day string) Service {
	return NewService(
		NewStore(seed),
		employee.NewStore(employee.SeedData()),
		fixedClock(day),
		nil,
	)
}

func TestService_ApplyStartsPending(t *testing.T) {
	svc := newTestService(nil, "2024-02-01")
	ctx := context.Background()

	resp, err := svc.Apply(ctx, CreateLeaveRequest{
		EmployeeID: 1,
		Type:       "Vacation",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-05",
		Reason:     "Spring break",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, "2024-02-01", resp.AppliedOn)
	// name resolved from the directory when the request omits it
	assert.Equal(t, "John Doe", resp.EmployeeName)
}

func TestService_ApplyKeepsProvidedName(t *testing.T) {
	svc := newTestService(nil, "2024-02-01")

	resp, err := svc.Apply(context.Background(), CreateLeaveRequest{
		EmployeeID:   99,
		EmployeeName: "Contractor",
		Type:         "Sick Leave",
		StartDate:    "2024-02-02",
		EndDate:      "2024-02-03",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Contractor", resp.EmployeeName)
}

func TestService_DecideStampsApproverAndDate(t *testing.T) {
	svc := newTestService(SeedData(), "2024-02-10")
	ctx := context.Background()

	resp, err := svc.Decide(ctx, 4, StatusApproved, "Jane Smith")
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.Equal(t, "Jane Smith", resp.ApprovedBy)
	assert.Equal(t, "2024-02-10", resp.ApprovedOn)

	pending, err := svc.GetPending(ctx)
	assert.NoError(t, err)
	assert.Empty(t, pending)
}

func TestService_DecideAgainOverwrites(t *testing.T) {
	svc := newTestService(SeedData(), "2024-02-10")
	ctx := context.Background()

	_, err := svc.Decide(ctx, 4, StatusApproved, "Jane Smith")
	assert.NoError(t, err)

	resp, err := svc.Decide(ctx, 4, StatusRejected, "Michael Johnson")
	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, resp.Status)
	assert.Equal(t, "Michael Johnson", resp.ApprovedBy)
}

func TestService_DecideSurvivesUndeliverableMail(t *testing.T) {
	t.Setenv("SMTP_HOST", "127.0.0.1")
	t.Setenv("SMTP_PORT", "1")

	svc := NewService(
		NewStore(SeedData()),
		employee.NewStore(employee.SeedData()),
		fixedClock("2024-02-10"),
		mailer.FromEnv(nil),
	)

	// the notification dial fails off the request path; the decision
	// itself lands regardless
	resp, err := svc.Decide(context.Background(), 4, StatusApproved, "Jane Smith")
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)

	stored, err := svc.GetByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, stored.Status)
}

func TestService_DecideUnknownID(t *testing.T) {
	svc := newTestService(SeedData(), "2024-02-10")

	_, err := svc.Decide(context.Background(), 99, StatusApproved, "Jane Smith")
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}

func TestService_GetByEmployee(t *testing.T) {
	svc := newTestService(SeedData(), "2024-02-10")

	resp, err := svc.GetByEmployee(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	for _, l := range resp {
		assert.Equal(t, 1, l.EmployeeID)
	}
}

func TestService_GetPendingFromSeed(t *testing.T) {
	svc := newTestService(SeedData(), "2024-02-10")

	pending, err := svc.GetPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, 4, pending[0].ID)
}
