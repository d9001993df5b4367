// Package restapi is the single gateway to the remote REST backend.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Session is the part of the request session the gateway needs
type Session interface {
	Token() string
	Clear()
	Notify(level domain.NoticeLevel, message string)
}

// Client sends JSON requests to the backend on behalf of a session
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for baseURL. A zero timeout leaves the
// transport default in place.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	return &Client{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger.Named("restapi"),
	}, nil
}

// Do performs one request. found is false for the absence outcomes: 204,
// 404 and 401 (the last also clears the session). Every other non-2xx
// returns an *APIError; network and decode failures wrap ErrTransport.
func (c *Client) Do(ctx context.Context, sess Session, method, path string, body, out any) (bool, error) {
	start := time.Now()
	target := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		backendRequestsTotal.WithLabelValues(method, "error").Inc()
		c.logger.Error("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		sess.Notify(domain.NoticeError, MsgGenericFailure)
		return false, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	backendRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	backendDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusNoContent, resp.StatusCode == http.StatusNotFound:
		return false, nil

	case resp.StatusCode == http.StatusUnauthorized:
		sess.Clear()
		sess.Notify(domain.NoticeError, MsgSessionExpired)
		return false, nil

	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			sess.Notify(domain.NoticeError, MsgGenericFailure)
			return false, fmt.Errorf("%w: read body: %v", ErrTransport, err)
		}
		if out == nil || len(bytes.TrimSpace(raw)) == 0 {
			return true, nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			c.logger.Warn("backend returned non-JSON body",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode))
			sess.Notify(domain.NoticeError, MsgGenericFailure)
			return false, fmt.Errorf("%w: decode response: %v", ErrTransport, err)
		}
		return true, nil
	}

	apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(resp)}
	c.logger.Warn("backend rejected request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", apiErr.Message))
	sess.Notify(domain.NoticeError, apiErr.Message)
	return false, apiErr
}

// Request is the typed form of Do; nil means the backend reported absence
func Request[T any](ctx context.Context, c *Client, sess Session, method, path string, body any) (*T, error) {
	out := new(T)
	found, err := c.Do(ctx, sess, method, path, body, out)
	if err != nil || !found {
		return nil, err
	}
	return out, nil
}

type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message json.RawMessage `json:"message"`
}

func errorMessage(resp *http.Response) string {
	fallback := fmt.Sprintf("Request failed with status %d", resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fallback
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	for _, field := range []json.RawMessage{body.Detail, body.Message} {
		if msg := flatten(field); msg != "" {
			return msg
		}
	}
	return fallback
}

// flatten accepts a string or a list of strings
func flatten(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, " ")
	}
	return ""
}
