package gateway

import "context"

// AuthGateway defines backend login operations. Both return the issued
// token; verification happens on the backend.
type AuthGateway interface {
	EmployeeLogin(ctx context.Context, username, password string) (string, error)
	ReportLogin(ctx context.Context, username, password string) (string, error)
}
