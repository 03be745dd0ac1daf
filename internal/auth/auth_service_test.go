package auth_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go-hrms/internal/auth"
	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/clock"

	"github.com/stretchr/testify/assert"
)

type fakeAudit struct {
	mu      sync.Mutex
	actions []string
}

func (f *fakeAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, entry.Action)
}

func newTestService(t *testing.T, sessionPath string) (auth.Service, *fakeAudit) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	audit := &fakeAudit{}
	svc := auth.NewService(
		auth.NewFileSessionStore(sessionPath),
		clock.Fixed{T: time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)},
		audit,
	)
	return svc, audit
}

func TestService_LoginDemoAccounts(t *testing.T) {
	svc, audit := newTestService(t, filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	token, resp, err := svc.Login(ctx, "admin@example.com", "admin123", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, rbac.RoleAdmin, resp.Role)
	assert.True(t, svc.IsAdmin())

	_, resp, err = svc.Login(ctx, "employee@example.com", "employee123", false)
	assert.NoError(t, err)
	assert.Equal(t, rbac.RoleEmployee, resp.Role)
	assert.False(t, svc.IsAdmin())

	assert.Equal(t, []string{"LOGIN", "LOGIN"}, audit.actions)
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t, filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	// unknown account and wrong password fail with the same error
	_, _, err := svc.Login(ctx, "nobody@example.com", "admin123", false)
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "admin@example.com", "wrong", false)
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	_, err = svc.Me(ctx)
	assert.ErrorIs(t, err, autherrors.ErrNotAuthenticated)
}

func TestService_RememberMeSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	svc, _ := newTestService(t, path)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "admin@example.com", "admin123", true)
	assert.NoError(t, err)

	// a new service over the same slot restores the identity
	restored, _ := newTestService(t, path)
	me, err := restored.Me(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", me.Email)
	assert.True(t, restored.IsAdmin())
}

func TestService_LoginWithoutRememberMeLeavesNoSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	svc, _ := newTestService(t, path)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "admin@example.com", "admin123", false)
	assert.NoError(t, err)

	restored, _ := newTestService(t, path)
	_, err = restored.Me(ctx)
	assert.ErrorIs(t, err, autherrors.ErrNotAuthenticated)
}

func TestService_MeReflectsLatestLogin(t *testing.T) {
	svc, _ := newTestService(t, filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "admin@example.com", "admin123", false)
	assert.NoError(t, err)

	// the identity slot holds one identity; a second login replaces it
	_, _, err = svc.Login(ctx, "employee@example.com", "employee123", false)
	assert.NoError(t, err)

	me, err := svc.Me(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "employee@example.com", me.Email)
	assert.False(t, svc.IsAdmin())
}

func TestService_LogoutClearsIdentityAndSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	svc, audit := newTestService(t, path)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "employee@example.com", "employee123", true)
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(ctx))

	_, err = svc.Me(ctx)
	assert.ErrorIs(t, err, autherrors.ErrNotAuthenticated)
	assert.Equal(t, []string{"LOGIN", "LOGOUT"}, audit.actions)

	// the remembered slot is gone too
	restored, _ := newTestService(t, path)
	_, err = restored.Me(ctx)
	assert.ErrorIs(t, err, autherrors.ErrNotAuthenticated)
}
