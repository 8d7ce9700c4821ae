// Package client is the single gateway for all backend calls. Every domain
// request funnels through Client.Do, which attaches the bearer credential,
// normalises response bodies, raises typed failures, and centrally
// intercepts authentication failures so no individual caller handles a
// rejected credential itself.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Bilalabbasid/CRM-sub000/internal/api/metrics"
	"github.com/Bilalabbasid/CRM-sub000/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// authFailurePatterns are the message fragments that mark a response as a
// credential failure even when its status is not 401. Matched
// case-insensitively against the server message. Only phrasings that name
// the credential itself belong here: role-denial wording ("not authorized",
// "forbidden") is an authorization failure and must never log the user out.
var authFailurePatterns = []string{
	"invalid token",
	"token expired",
	"expired token",
	"jwt",
}

// Options configures a Client. BaseURL is used as-is; run it through
// ResolveBaseURL first when deriving it from the environment.
type Options struct {
	BaseURL    string
	Store      ports.CredentialStore
	Navigator  ports.Navigator
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client is the API gateway. It is safe for concurrent use; in-flight
// requests are independent and are never coalesced or cancelled beyond
// their own context.
type Client struct {
	base  string
	http  *http.Client
	store ports.CredentialStore
	nav   ports.Navigator
	log   zerolog.Logger

	mu    sync.RWMutex
	token string
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		base:  strings.TrimSuffix(opts.BaseURL, "/"),
		http:  hc,
		store: opts.Store,
		nav:   opts.Navigator,
		log:   opts.Logger,
	}
}

// SetToken replaces the held credential and is the only mutation path into
// the credential store outside the session manager's own flows. A non-empty
// token is persisted; an empty token clears the store. Store failures are
// logged, not returned: a broken store degrades to "not logged in" on the
// next start rather than failing the current operation.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	var err error
	if token == "" {
		err = c.store.Clear()
	} else {
		err = c.store.Save(token)
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("credential store write failed")
	}
}

// Token returns the currently held credential, empty when anonymous.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Do performs one API call. body (when non-nil) is marshalled as JSON; out
// (when non-nil) receives the decoded success body. A success body that is
// not valid JSON degrades when out is an *Envelope, which receives
// {"raw": <text>}; a typed out gets an *APIError carrying the raw envelope
// so a broken body cannot pass for an empty record.
//
// Failures are always *APIError. A 401, or a message matching
// authFailurePatterns, additionally clears the credential store and
// navigates to the login entry point before the error is returned.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: "encode request body: " + err.Error()}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, metricPath(path), "transport_error").Inc()
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, metricPath(path), "transport_error").Inc()
		return &APIError{Message: "read response body: " + err.Error()}
	}

	elapsed := time.Since(start)
	metrics.RequestsTotal.WithLabelValues(method, metricPath(path), strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(method, metricPath(path)).Observe(elapsed.Seconds())
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("api call")

	env := parseEnvelope(text)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{
			Message:  env.ServerMessage(),
			Status:   resp.StatusCode,
			Response: env,
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		c.intercept(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(text, out); err != nil {
		if raw, ok := out.(*Envelope); ok {
			*raw = env
			return nil
		}
		c.log.Warn().Str("path", path).Msg("malformed success body")
		return &APIError{
			Message:  "decode response body: " + err.Error(),
			Status:   resp.StatusCode,
			Response: env,
		}
	}
	return nil
}

// intercept applies the central auth-failure policy: clear the credential,
// then send the user to login. Both effects are idempotent, so concurrent
// failing requests that each reach here are safe no-ops after the first.
func (c *Client) intercept(apiErr *APIError) {
	var reason string
	switch {
	case apiErr.Status == http.StatusUnauthorized:
		reason = "unauthorized"
	case matchesAuthFailure(apiErr.Message):
		reason = "token_pattern"
	default:
		return
	}

	metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
	c.log.Warn().
		Int("status", apiErr.Status).
		Str("reason", reason).
		Msg("credential rejected; forcing re-authentication")

	c.SetToken("")
	if c.nav != nil {
		c.nav.ToLogin()
	}
}

func matchesAuthFailure(message string) bool {
	lower := strings.ToLower(message)
	for _, pattern := range authFailurePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

func parseEnvelope(text []byte) Envelope {
	var env Envelope
	if len(text) == 0 {
		return Envelope{}
	}
	if err := json.Unmarshal(text, &env); err != nil {
		return Envelope{"raw": string(text)}
	}
	return env
}

// metricPath reduces a request path to its leading resource segment so
// metric label cardinality stays bounded regardless of entity IDs.
func metricPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return "/" + trimmed
}
