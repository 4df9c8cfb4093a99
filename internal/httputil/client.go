// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP client construction shared by the AI backends.
package httputil

import (
	"net/http"
	"time"

	"github.com/pdiddy/notescript/pkg/types"
)

// DefaultTimeout bounds the single remote model call. There is no retry or
// cancellation beyond this; the call blocks until it returns or times out.
const DefaultTimeout = 120 * time.Second

// NewClient builds an *http.Client applying cfg's timeout and User-Agent.
// Zero-value fields fall back to DefaultTimeout and no User-Agent override.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{Timeout: timeout}
	if cfg.UserAgent != "" {
		client.Transport = &userAgentTransport{
			agent: cfg.UserAgent,
			next:  http.DefaultTransport,
		}
	}
	return client
}

// userAgentTransport stamps a User-Agent header on requests that lack one.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.agent)
	}
	return t.next.RoundTrip(req)
}
