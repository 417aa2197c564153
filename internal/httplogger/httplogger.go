// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package httplogger provides a http.RoundTripper middleware that logs HTTP
// requests and responses.
//
// It wraps an existing http.RoundTripper and logs information about each
// request and response: the start time, URL, method, status code (if
// available), and any errors.
package httplogger

import (
	"net/http"
	"strings"
	"time"

	"go.astrophena.name/telegram/internal/logger"
)

// New creates a new http.RoundTripper that logs information about HTTP
// requests and responses through logf. If t is nil, http.DefaultTransport is
// used.
func New(t http.RoundTripper, logf logger.Logf) http.RoundTripper {
	if t == nil {
		t = http.DefaultTransport
	}
	return &loggingTransport{transport: t, logf: logf}
}

type loggingTransport struct {
	transport http.RoundTripper
	logf      logger.Logf
}

func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	t.logf("HTTP: %s + %s %s", timeFormat(start), r.Method, r.URL)

	resp, err := t.transport.RoundTrip(r)

	last := r.URL.Path
	if i := strings.LastIndex(last, "/"); i >= 0 {
		last = last[i:]
	}
	display := last
	if resp != nil {
		display += " " + resp.Status
	}
	if err != nil {
		display += " error: " + err.Error()
	}
	now := time.Now()
	t.logf("HTTP: %s - %s (%.3fs)", timeFormat(now), display, now.Sub(start).Seconds())

	return resp, err
}

func timeFormat(t time.Time) string {
	return t.Format("15:04:05.000")
}
