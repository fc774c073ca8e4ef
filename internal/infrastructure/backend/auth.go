package backend

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// EmployeeLogin exchanges credentials for the employee session token.
func (c *Client) EmployeeLogin(ctx context.Context, username, password string) (string, error) {
	var out loginResponse
	body := loginRequest{Username: username, Password: password}
	if err := c.request(ctx, http.MethodPost, "/employee/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ReportLogin exchanges counter credentials for the report access token.
// The backend issues a JWT whose role claim gates the report screen.
func (c *Client) ReportLogin(ctx context.Context, username, password string) (string, error) {
	var out loginResponse
	body := loginRequest{Username: username, Password: password}
	if err := c.request(ctx, http.MethodPost, "/counter/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}
