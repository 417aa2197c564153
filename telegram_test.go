// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"go.astrophena.name/telegram"
	"go.astrophena.name/telegram/internal/testutil"
)

const testToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

// newTestClient returns a Client pointed at a test server that replies to
// every request with the given status code and body.
func newTestClient(t *testing.T, status int, body string) *telegram.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return &telegram.Client{Token: testToken, BaseURL: ts.URL}
}

func TestSendMessage(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{
		"ok": true,
		"result": {
			"message_id": 4587,
			"chat": {"id": 8754, "type": "group"},
			"date": 45778965
		}
	}`)

	msg, err := c.SendMessage(context.Background(), telegram.SendMessageOpts{
		ChatID: 8754,
		Text:   "This is a test",
	})
	if err != nil {
		t.Fatal(err)
	}

	testutil.AssertEqual(t, msg, &telegram.Message{
		MessageID: 4587,
		Chat: telegram.Chat{
			ID:   8754,
			Type: telegram.ChatGroup,
		},
		Date: 45778965,
	})
}

func TestSendMessageRequestBody(t *testing.T) {
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("got method %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("got Content-Type %q, want application/json", ct)
		}
		if want := "/bot" + testToken + "/sendMessage"; r.URL.Path != want {
			t.Errorf("got path %q, want %q", r.URL.Path, want)
		}
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		gotBody = b
		fmt.Fprint(w, `{"ok": true, "result": {"message_id": 1, "date": 1, "chat": {"id": 1, "type": "private"}}}`)
	}))
	defer ts.Close()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}
	if _, err := c.SendMessage(context.Background(), telegram.SendMessageOpts{
		ChatID: 8754,
		Text:   "This is a test",
	}); err != nil {
		t.Fatal(err)
	}

	body := testutil.UnmarshalJSON[map[string]any](t, gotBody)
	testutil.AssertEqual(t, body, map[string]any{
		"chat_id": float64(8754),
		"text":    "This is a test",
	})
}

func TestAPIError(t *testing.T) {
	// Telegram serves the failure envelope both with 200 and with the
	// error's own status code; both must surface identically.
	for name, status := range map[string]int{
		"status 200": http.StatusOK,
		"status 400": http.StatusBadRequest,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, status, `{"ok": false, "error_code": 400, "description": "Bad request"}`)

			_, err := c.SendMessage(context.Background(), telegram.SendMessageOpts{
				ChatID: 8754,
				Text:   "This is a test",
			})
			var apiErr *telegram.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("got error %v (%T), want *telegram.Error", err, err)
			}
			testutil.AssertEqual(t, apiErr.Code, 400)
			testutil.AssertEqual(t, apiErr.Description, "Bad request")
		})
	}
}

func TestAPIErrorRetryAfter(t *testing.T) {
	c := newTestClient(t, http.StatusTooManyRequests, `{
		"ok": false,
		"error_code": 429,
		"description": "Too Many Requests: retry after 14",
		"parameters": {"retry_after": 14}
	}`)

	_, err := c.GetMe(context.Background())
	var apiErr *telegram.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("got error %v (%T), want *telegram.Error", err, err)
	}
	testutil.AssertEqual(t, apiErr.Code, 429)
	testutil.AssertEqual(t, apiErr.Parameters, &telegram.ResponseParameters{RetryAfter: 14})
}

func TestTransportError(t *testing.T) {
	c := newTestClient(t, http.StatusBadGateway, `<html>nginx</html>`)

	_, err := c.GetMe(context.Background())
	if err == nil {
		t.Fatal("got no error")
	}
	var apiErr *telegram.Error
	if errors.As(err, &apiErr) {
		t.Fatalf("got *telegram.Error %v, want transport error", apiErr)
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error %q doesn't mention the status code", err)
	}
}

func TestErrorString(t *testing.T) {
	err := &telegram.Error{Code: 400, Description: "Bad request"}
	testutil.AssertEqual(t, err.Error(), "telegram: 400: Bad request")
}

func TestGetMeNoCaching(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"ok": true, "result": {"id": 42, "is_bot": true, "first_name": "test", "username": "test_bot"}}`)
	}))
	defer ts.Close()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}

	first, err := c.GetMe(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.GetMe(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	testutil.AssertEqual(t, first, second)
	testutil.AssertEqual(t, calls.Load(), int64(2))
}

func TestTokenScrubbed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer ts.Close()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}

	_, err := c.GetMe(context.Background())
	if err == nil {
		t.Fatal("got no error")
	}
	if strings.Contains(err.Error(), testToken) {
		t.Errorf("error %q leaks the token", err)
	}
	if !strings.Contains(err.Error(), "[EXPUNGED]") {
		t.Errorf("error %q isn't scrubbed", err)
	}
}

func TestMissingToken(t *testing.T) {
	c := &telegram.Client{}
	if _, err := c.GetMe(context.Background()); err == nil {
		t.Fatal("got no error")
	}
}

func TestLogfTracesRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok": true, "result": {"id": 42, "is_bot": true, "first_name": "test"}}`)
	}))
	defer ts.Close()

	var (
		mu    sync.Mutex
		lines []string
	)
	c := &telegram.Client{
		Token:   testToken,
		BaseURL: ts.URL,
		Logf: func(format string, args ...any) {
			mu.Lock()
			defer mu.Unlock()
			lines = append(lines, fmt.Sprintf(format, args...))
		},
	}

	if _, err := c.GetMe(context.Background()); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(lines) == 0 {
		t.Fatal("no log lines recorded")
	}
	for _, line := range lines {
		if strings.Contains(line, testToken) {
			t.Errorf("log line %q leaks the token", line)
		}
	}
	if !strings.Contains(strings.Join(lines, "\n"), "/getMe") {
		t.Errorf("log lines %q don't mention the called method", lines)
	}
}

func TestEditMessageTextInline(t *testing.T) {
	// Edits of inline messages yield the literal true instead of a Message.
	c := newTestClient(t, http.StatusOK, `{"ok": true, "result": true}`)

	msg, err := c.EditMessageText(context.Background(), telegram.EditMessageTextOpts{
		InlineMessageID: "AAA",
		Text:            "edited",
	})
	if err != nil {
		t.Fatal(err)
	}
	if msg != nil {
		t.Errorf("got %+v, want nil", msg)
	}
}

func TestEditMessageTextBadResult(t *testing.T) {
	// A result that is neither a Message nor the literal true is a decode
	// failure, not a silent nil.
	c := newTestClient(t, http.StatusOK, `{"ok": true, "result": 42}`)

	_, err := c.EditMessageText(context.Background(), telegram.EditMessageTextOpts{
		InlineMessageID: "AAA",
		Text:            "edited",
	})
	if err == nil {
		t.Fatal("got no error")
	}
	if !strings.Contains(err.Error(), "editMessageText") {
		t.Errorf("error %q doesn't mention the method", err)
	}
}

func TestStopPollDispatchesUnderOwnName(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"ok": true, "result": {"id": "1", "question": "?", "options": [], "is_closed": true}}`)
	}))
	defer ts.Close()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}

	poll, err := c.StopPoll(context.Background(), telegram.StopPollOpts{ChatID: 8754, MessageID: 1})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, gotPath, "/bot"+testToken+"/stopPoll")
	testutil.AssertEqual(t, poll.IsClosed, true)
}
