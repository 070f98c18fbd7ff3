package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access string `json:"access"`
}

// Login exchanges credentials for an access token. The caller decides where
// to store it.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req := c.anonymous(ctx).SetBody(loginRequest{Email: email, Password: password})
	resp, err := c.execute(req, http.MethodPost, "/api/user/login/", "log in")
	if err != nil {
		return "", err
	}

	var out loginResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if out.Access == "" {
		return "", fmt.Errorf("login response missing access token")
	}
	return out.Access, nil
}

// SignupUser registers a new account. The server validates the field set; a
// 400 surfaces as a RequestError carrying the validation body.
func (c *Client) SignupUser(ctx context.Context, signup domain.Signup) error {
	req := c.anonymous(ctx).SetBody(signup)
	_, err := c.execute(req, http.MethodPost, "/api/user/signup/", "sign up")
	return err
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	req, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(req, http.MethodGet, "/api/user/", "load profile")
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &user, nil
}
