package auth

import (
	"context"
	"os"
	"sync"
	"time"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, email, password string, rememberMe bool) (token string, resp AuthResponse, err error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (AuthResponse, error)
	IsAdmin() bool
}

// service holds at most one authenticated identity. States are Anonymous
// and Authenticated(role): login is the only way in, logout the only way
// out, and the role never changes within a session.
type service struct {
	accounts []account
	session  SessionStore
	clk      clock.Clock
	audit    bootstrap.AuditLogger
	logger   *zap.Logger

	mu      sync.RWMutex
	current *Identity
}

func NewService(session SessionStore, clk clock.Clock, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}

	accounts := make([]account, 0, len(demoAccounts))
	for _, a := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			l.Fatal("hash demo credential failed", zap.Error(err))
		}
		accounts = append(accounts, account{Identity: a.Identity, passwordHash: hash})
	}

	s := &service{
		accounts: accounts,
		session:  session,
		clk:      clk,
		audit:    audit,
		logger:   l,
	}

	// Restore a remembered identity before the first request is served.
	if identity, ok := session.Get(); ok {
		s.current = &identity
		l.Info("restored remembered session",
			zap.Int("user_id", identity.ID),
			zap.String("role", identity.Role),
		)
	}

	return s
}

func (s *service) Login(ctx context.Context, email, password string, rememberMe bool) (string, AuthResponse, error) {
	s.logger.Debug("login requested", zap.String("email", email))

	var matched *account
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			matched = &s.accounts[i]
			break
		}
	}
	if matched == nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(matched.passwordHash, []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	identity := matched.Identity

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()

	if rememberMe {
		if err := s.session.Set(identity); err != nil {
			// The login itself succeeded; a broken slot only loses the
			// remember-me convenience.
			s.logger.Warn("persist session failed", zap.Error(err))
		}
	}

	token, err := s.generateToken(identity, 24*time.Hour)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LOGIN",
		Message: "User logged in",
		Meta: map[string]any{
			"user_id":  identity.ID,
			"role":     identity.Role,
			"remember": rememberMe,
		},
	})
	s.logger.Info("login success",
		zap.Int("user_id", identity.ID),
		zap.String("role", identity.Role),
	)

	return token, mapToResponse(identity), nil
}

func (s *service) Logout(ctx context.Context) error {
	s.mu.Lock()
	prev := s.current
	s.current = nil
	s.mu.Unlock()

	if err := s.session.Clear(); err != nil {
		s.logger.Warn("clear session slot failed", zap.Error(err))
	}

	meta := map[string]any{}
	if prev != nil {
		meta["user_id"] = prev.ID
	}
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LOGOUT",
		Message: "User logged out",
		Meta:    meta,
	})
	s.logger.Info("logout success")
	return nil
}

// Me reports the process-wide identity slot, not the caller's token: with
// two sessions live at once, the most recent login wins. Per-request
// identity comes from the JWT claims the auth middleware loads into the
// gin context.
func (s *service) Me(ctx context.Context) (AuthResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return AuthResponse{}, autherrors.ErrNotAuthenticated
	}
	return mapToResponse(*s.current), nil
}

func (s *service) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current != nil && s.current.Role == rbac.RoleAdmin
}

func (s *service) generateToken(identity Identity, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": identity.ID,
		"name":    identity.Name,
		"email":   identity.Email,
		"role":    identity.Role,
		"exp":     s.clk.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(i Identity) AuthResponse {
	return AuthResponse{
		ID:     i.ID,
		Name:   i.Name,
		Email:  i.Email,
		Role:   i.Role,
		Avatar: i.Avatar,
	}
}
