package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotuspos/counter/internal/infrastructure/localstore"
	"github.com/lotuspos/counter/pkg/apperror"
)

func newSessions(t *testing.T, backend *fakeBackend) *SessionService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := localstore.Open(dsn)
	require.NoError(t, err)
	return NewSessionService(localstore.NewSessionStore(db), backend)
}

func signedToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role})
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoginPersistsEmployeeToken(t *testing.T) {
	svc := newSessions(t, &fakeBackend{employeeToken: "emp-token"})
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "cashier", "pw"))
	assert.True(t, svc.HasSession(ctx))
	assert.Equal(t, "emp-token", svc.EmployeeToken(ctx))

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.HasSession(ctx))
	assert.Empty(t, svc.EmployeeToken(ctx))
}

func TestLoginEmptyTokenIsUnauthorized(t *testing.T) {
	svc := newSessions(t, &fakeBackend{employeeToken: ""})
	err := svc.Login(context.Background(), "cashier", "pw")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestCheckReportAccessRequiresToken(t *testing.T) {
	svc := newSessions(t, &fakeBackend{})
	err := svc.CheckReportAccess(context.Background())
	assert.ErrorIs(t, err, apperror.ErrNoSession)
}

func TestCheckReportAccessAcceptsCounterAdmin(t *testing.T) {
	token := signedToken(t, "counterAdmin")
	svc := newSessions(t, &fakeBackend{reportToken: token})
	ctx := context.Background()

	require.NoError(t, svc.ReportLogin(ctx, "counter", "pw"))
	assert.NoError(t, svc.CheckReportAccess(ctx))
}

func TestCheckReportAccessRejectsOtherRoles(t *testing.T) {
	token := signedToken(t, "waiter")
	svc := newSessions(t, &fakeBackend{reportToken: token})
	ctx := context.Background()

	require.NoError(t, svc.ReportLogin(ctx, "counter", "pw"))
	err := svc.CheckReportAccess(ctx)
	assert.ErrorIs(t, err, apperror.ErrReportAccess)
}

func TestCheckReportAccessRejectsMalformedToken(t *testing.T) {
	svc := newSessions(t, &fakeBackend{reportToken: "not-a-jwt"})
	ctx := context.Background()

	require.NoError(t, svc.ReportLogin(ctx, "counter", "pw"))
	err := svc.CheckReportAccess(ctx)
	assert.ErrorIs(t, err, apperror.ErrReportAccess)
}
