package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"mediguard/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User *userPayload `json:"user"`
}

// userPayload tolerates numeric as well as string ids.
type userPayload struct {
	ID    json.RawMessage `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return resp.toUser()
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	var resp authResponse
	req := signupRequest{Name: name, Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return resp.toUser()
}

func (r authResponse) toUser() (*models.User, error) {
	if r.User == nil {
		return nil, fmt.Errorf("%w: missing user", ErrMalformedResponse)
	}
	return &models.User{
		ID:    flexibleID(r.User.ID),
		Name:  r.User.Name,
		Email: r.User.Email,
	}, nil
}

func flexibleID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
