// Package api is the typed client for the Timepiece REST collaborator. It
// owns request shaping, bearer-token injection, and error mapping; it never
// retries and never caches responses.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/session"
)

type Client struct {
	rc      *resty.Client
	session session.Store
	breaker *gobreaker.CircuitBreaker[*resty.Response]
}

func New(baseURL string, timeout time.Duration, store session.Store) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetTransport(otelhttp.NewTransport(http.DefaultTransport))

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	// The breaker guards transport-level failures only; HTTP error statuses
	// are mapped after the call. It fails fast once the collaborator is
	// clearly down, it never retries.
	breaker := gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:    "timepiece-api",
		Timeout: 30 * time.Second,
	})

	return &Client{rc: rc, session: store, breaker: breaker}
}

// bearer builds a request carrying the current session token. The token is
// re-read from the store on every call; nothing caches it in memory.
func (c *Client) bearer(ctx context.Context) (*resty.Request, error) {
	token, err := c.session.Token()
	if err != nil {
		return nil, err
	}
	return c.rc.R().SetContext(ctx).SetAuthToken(token), nil
}

func (c *Client) anonymous(ctx context.Context) *resty.Request {
	return c.rc.R().SetContext(ctx)
}

func (c *Client) execute(req *resty.Request, method, path, action string) (*resty.Response, error) {
	resp, err := c.breaker.Execute(func() (*resty.Response, error) {
		return req.Execute(method, path)
	})
	if err != nil {
		return nil, &RequestError{Action: action, Err: err}
	}
	if err := checkStatus(resp, action); err != nil {
		return nil, err
	}
	return resp, nil
}

func checkStatus(resp *resty.Response, action string) error {
	switch {
	case resp.StatusCode() == http.StatusUnauthorized, resp.StatusCode() == http.StatusForbidden:
		// Treated optimistically as "not logged in"; the server is the sole
		// arbiter of token validity.
		return ErrUnauthorized
	case resp.IsError():
		return &RequestError{Action: action, Status: resp.StatusCode(), Body: string(resp.Body())}
	default:
		return nil
	}
}
