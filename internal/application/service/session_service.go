package service

import (
	"context"
	"log"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/internal/domain/gateway"
	"github.com/lotuspos/counter/internal/infrastructure/localstore"
	"github.com/lotuspos/counter/pkg/apperror"
)

// reportRole is the JWT role claim required for the report screen.
const reportRole = "counterAdmin"

// SessionService owns the terminal's persisted sessions: the employee
// token used on every backend call and the report token gating the sales
// report. It also serves as the backend client's token source.
type SessionService struct {
	store *localstore.SessionStore
	auth  gateway.AuthGateway
}

func NewSessionService(store *localstore.SessionStore, auth gateway.AuthGateway) *SessionService {
	return &SessionService{store: store, auth: auth}
}

// SetAuthGateway wires the backend login gateway after construction. The
// backend client needs this service as its token source, so one of the
// two has to be attached late.
func (s *SessionService) SetAuthGateway(auth gateway.AuthGateway) {
	s.auth = auth
}

// Login authenticates the employee against the backend and persists the
// issued token.
func (s *SessionService) Login(ctx context.Context, username, password string) error {
	token, err := s.auth.EmployeeLogin(ctx, username, password)
	if err != nil {
		return err
	}
	if token == "" {
		return apperror.ErrUnauthorized
	}
	return s.store.Save(ctx, entity.SessionKindEmployee, token)
}

// Logout discards the employee session.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, entity.SessionKindEmployee)
}

// HasSession reports whether an employee token is stored.
func (s *SessionService) HasSession(ctx context.Context) bool {
	token, err := s.store.Load(ctx, entity.SessionKindEmployee)
	if err != nil {
		log.Printf("session: load employee token: %v", err)
		return false
	}
	return token != ""
}

// EmployeeToken returns the stored employee token, or "" when logged out.
// Implements the backend client's TokenSource.
func (s *SessionService) EmployeeToken(ctx context.Context) string {
	token, err := s.store.Load(ctx, entity.SessionKindEmployee)
	if err != nil {
		log.Printf("session: load employee token: %v", err)
		return ""
	}
	return token
}

// ReportLogin authenticates the counter account and persists the report
// token.
func (s *SessionService) ReportLogin(ctx context.Context, username, password string) error {
	token, err := s.auth.ReportLogin(ctx, username, password)
	if err != nil {
		return err
	}
	if token == "" {
		return apperror.ErrUnauthorized
	}
	return s.store.Save(ctx, entity.SessionKindReport, token)
}

// ReportLogout discards the report session.
func (s *SessionService) ReportLogout(ctx context.Context) error {
	return s.store.Delete(ctx, entity.SessionKindReport)
}

// CheckReportAccess verifies that a report token is stored and carries the
// counter-admin role claim. The token is issued and signed by the backend;
// the terminal only inspects the claim.
func (s *SessionService) CheckReportAccess(ctx context.Context) error {
	token, err := s.store.Load(ctx, entity.SessionKindReport)
	if err != nil {
		return err
	}
	if token == "" {
		return apperror.ErrNoSession
	}
	return checkReportClaim(token)
}

func checkReportClaim(token string) error {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return apperror.ErrReportAccess
	}
	role, _ := claims["role"].(string)
	if role != reportRole {
		return apperror.ErrReportAccess
	}
	return nil
}
