// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package telegram provides a typed client for the Telegram Bot API.
//
// To use this package, create a [Client] with the bot token you got from
// @BotFather, then call the method you need:
//
//	c := &telegram.Client{Token: token}
//	msg, err := c.SendMessage(ctx, telegram.SendMessageOpts{
//		ChatID: chatID,
//		Text:   "Hello!",
//	})
//
// Every method performs a single POST to
// https://api.telegram.org/bot<token>/<method> and unwraps the standard
// {ok, result} envelope. API-level failures (ok: false) are returned as
// [*Error]; transport failures are returned as ordinary errors. There are no
// retries: rate limiting is reported back through [ResponseParameters] and
// acting on it is up to the caller.
//
// Methods that accept files choose the request encoding per call: raw
// contents (see [Upload]) are sent as multipart/form-data, file identifiers
// and URLs (see [FileID] and [FileURL]) as JSON.
package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.astrophena.name/telegram/internal/httplogger"
	"go.astrophena.name/telegram/internal/logger"
	"go.astrophena.name/telegram/internal/request"
)

const defaultBaseURL = "https://api.telegram.org"

// Client is a Telegram Bot API client.
//
// The zero value is not usable; Token must be set. Fields must not be
// modified after the first call. Methods are safe for concurrent use: the
// client holds no mutable state across calls.
type Client struct {
	// Token is the bot token used for authentication. Required.
	Token string
	// HTTPClient is an optional custom HTTP client object to use for requests.
	// If not provided, request.DefaultClient will be used.
	HTTPClient *http.Client
	// BaseURL is an optional Bot API server URL. If not provided,
	// https://api.telegram.org is used. Useful for tests and local Bot API
	// servers.
	BaseURL string
	// Logf is an optional logger. If set, every outbound HTTP request and
	// response is traced through it, with the token scrubbed.
	Logf logger.Logf

	initOnce sync.Once
	httpc    *http.Client
	pollc    *http.Client
	scrubber *strings.Replacer
}

func (c *Client) init() {
	c.scrubber = strings.NewReplacer(c.Token, "[EXPUNGED]")

	httpc := request.DefaultClient
	if c.HTTPClient != nil {
		httpc = c.HTTPClient
	}
	if c.Logf != nil {
		logf := logger.Logf(func(format string, args ...any) {
			c.Logf("%s", c.scrubber.Replace(fmt.Sprintf(format, args...)))
		})
		hc := *httpc
		hc.Transport = httplogger.New(httpc.Transport, logf)
		httpc = &hc
	}
	c.httpc = httpc

	// Long polls must be able to outlive the client timeout; they are
	// bounded by a context deadline instead (see Client.GetUpdates).
	pc := *httpc
	pc.Timeout = 0
	c.pollc = &pc
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}
	return defaultBaseURL
}

func (c *Client) apiURL(method string) string {
	return c.baseURL() + "/bot" + c.Token + "/" + method
}

// response is the envelope in which the Bot API wraps every reply.
type response[Result any] struct {
	OK          bool                `json:"ok"`
	Result      Result              `json:"result,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// filer is implemented by Opts types whose fields may carry file uploads. It
// reports the file-carrying fields keyed by their wire names.
type filer interface {
	files() map[string]*InputFile
}

func hasUpload(f filer) bool {
	for _, in := range f.files() {
		if in.isUpload() {
			return true
		}
	}
	return false
}

// call performs a single Bot API call: one POST, JSON or multipart per the
// presence of raw file contents in args, and envelope unwrapping.
func call[Result any](ctx context.Context, c *Client, method string, args any) (Result, error) {
	return dispatch[Result](ctx, c, method, args, false)
}

func dispatch[Result any](ctx context.Context, c *Client, method string, args any, longPoll bool) (Result, error) {
	var zero Result

	if c.Token == "" {
		return zero, errors.New("telegram: Client.Token is empty")
	}
	c.initOnce.Do(c.init)

	httpc := c.httpc
	if longPoll {
		httpc = c.pollc
	}
	p := request.Params{
		Method:     http.MethodPost,
		URL:        c.apiURL(method),
		HTTPClient: httpc,
		Scrubber:   c.scrubber,
	}
	if f, ok := args.(filer); ok && hasUpload(f) {
		form, err := buildForm(args, f.files())
		if err != nil {
			return zero, err
		}
		p.Form = form
	} else if args != nil {
		p.Body = args
	}

	res, err := request.Make[response[Result]](ctx, p)
	if err != nil {
		// Telegram serves its failure envelope with a non-2xx status, so
		// recover it from the response body before giving up.
		var se *request.StatusError
		if errors.As(err, &se) {
			var fail response[json.RawMessage]
			if jerr := json.Unmarshal(se.Body, &fail); jerr == nil && !fail.OK && fail.Description != "" {
				return zero, &Error{
					Code:        fail.ErrorCode,
					Description: fail.Description,
					Parameters:  fail.Parameters,
				}
			}
		}
		return zero, err
	}
	if !res.OK {
		return zero, &Error{
			Code:        res.ErrorCode,
			Description: res.Description,
			Parameters:  res.Parameters,
		}
	}
	return res.Result, nil
}

// editResult handles the result of the editMessage* family, which is the
// edited Message for messages sent by the bot and the literal true for
// inline messages.
func editResult(ctx context.Context, c *Client, method string, args any) (*Message, error) {
	raw, err := call[json.RawMessage](ctx, c, method, args)
	if err != nil {
		return nil, err
	}
	if string(raw) == "true" {
		return nil, nil
	}
	msg := new(Message)
	if err := json.Unmarshal(raw, msg); err != nil {
		return nil, fmt.Errorf("telegram: %s: unmarshaling result: %w", method, err)
	}
	return msg, nil
}

// buildForm flattens args into a multipart form: upload fields become file
// parts, strings are written verbatim, everything else is JSON-encoded.
func buildForm(args any, files map[string]*InputFile) (*request.Form, error) {
	b, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}

	form := new(request.Form)
	for name, raw := range fields {
		if in, ok := files[name]; ok && in.isUpload() {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			form.Set(name, s)
			continue
		}
		form.Set(name, string(raw))
	}
	for name, in := range files {
		if !in.isUpload() {
			continue
		}
		form.AddFile(name, in.name, in.data)
	}
	return form, nil
}
