// Package request provides utilities for making HTTP requests.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.astrophena.name/telegram/internal/version"
)

// DefaultClient is a [http.Client] with nice defaults.
var DefaultClient = &http.Client{
	Timeout: 10 * time.Second,
}

// Params defines the parameters needed for making an HTTP request.
type Params struct {
	// Method is the HTTP method (GET, POST, etc.) for the request.
	Method string
	// URL is the target URL of the request.
	URL string
	// Headers is a map of key-value pairs for additional request headers.
	Headers map[string]string
	// Body is any data to be sent in the request body. It will be marshaled to
	// JSON.
	Body any
	// Form is a multipart/form-data request body. Mutually exclusive with
	// Body.
	Form *Form
	// HTTPClient is an optional custom HTTP client object to use for the request.
	// If not provided, DefaultClient will be used.
	HTTPClient *http.Client
	// Scrubber is an optional strings.Replacer that scrubs unwanted data from
	// error messages.
	Scrubber *strings.Replacer
}

// Form is a multipart/form-data request body.
//
// The zero value is an empty form ready for use.
type Form struct {
	parts []formPart
}

type formPart struct {
	name     string
	value    string
	filename string
	data     []byte
}

// Set adds a plain field with the given name and value to the form.
func (f *Form) Set(name, value string) {
	f.parts = append(f.parts, formPart{name: name, value: value})
}

// AddFile adds a file part with the given field name, file name and contents
// to the form.
func (f *Form) AddFile(name, filename string, data []byte) {
	f.parts = append(f.parts, formPart{name: name, filename: filename, data: data})
}

// Empty reports whether the form has no parts.
func (f *Form) Empty() bool { return f == nil || len(f.parts) == 0 }

func (f *Form) encode() (body *bytes.Buffer, contentType string, err error) {
	body = new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	for _, part := range f.parts {
		if part.data == nil {
			if err := mw.WriteField(part.name, part.value); err != nil {
				return nil, "", err
			}
			continue
		}
		w, err := mw.CreateFormFile(part.name, part.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return body, mw.FormDataContentType(), nil
}

// StatusError is returned by [Make] when the response status code is not 200
// OK. It retains the response body so that callers can recover
// application-level errors the server delivers with a failure status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %q: want 200, got %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

type scrubbedError struct {
	err      error
	scrubber *strings.Replacer
}

func (se *scrubbedError) Error() string {
	if se.scrubber != nil {
		return se.scrubber.Replace(se.err.Error())
	}
	return se.err.Error()
}

func (se *scrubbedError) Unwrap() error { return se.err }

func scrubErr(err error, scrubber *strings.Replacer) error {
	return &scrubbedError{err: err, scrubber: scrubber}
}

// Scrub wraps err so that its message is passed through scrubber. The
// original error remains available via errors.Unwrap.
func Scrub(err error, scrubber *strings.Replacer) error {
	return scrubErr(err, scrubber)
}

// Make makes an HTTP request with the provided parameters and unmarshals the
// JSON response body into the specified type.
//
// The request body is JSON (marshaled from p.Body) unless p.Form is set, in
// which case it is multipart/form-data.
func Make[Response any](ctx context.Context, p Params) (Response, error) {
	var resp Response

	var (
		br          io.Reader
		contentType string
	)
	switch {
	case !p.Form.Empty():
		body, ct, err := p.Form.encode()
		if err != nil {
			return resp, scrubErr(err, p.Scrubber)
		}
		br, contentType = body, ct
	case p.Body != nil:
		data, err := json.Marshal(p.Body)
		if err != nil {
			return resp, scrubErr(err, p.Scrubber)
		}
		br, contentType = bytes.NewReader(data), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, p.Method, p.URL, br)
	if err != nil {
		return resp, scrubErr(err, p.Scrubber)
	}

	for k, v := range p.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", UserAgent())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	httpc := DefaultClient
	if p.HTTPClient != nil {
		httpc = p.HTTPClient
	}

	res, err := httpc.Do(req)
	if err != nil {
		return resp, scrubErr(err, p.Scrubber)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return resp, scrubErr(err, p.Scrubber)
	}

	if res.StatusCode != http.StatusOK {
		return resp, scrubErr(&StatusError{
			Method:     p.Method,
			URL:        p.URL,
			StatusCode: res.StatusCode,
			Body:       b,
		}, p.Scrubber)
	}

	if err := json.Unmarshal(b, &resp); err != nil {
		return resp, scrubErr(err, p.Scrubber)
	}

	return resp, nil
}

// UserAgent returns a user agent string by combining the version information
// and a special URL leading to bot information page.
func UserAgent() string {
	return "telegram/" + version.Version() + " (+https://astrophena.name/bleep-bloop)"
}
