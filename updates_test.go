// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.astrophena.name/telegram"
	"go.astrophena.name/telegram/internal/testutil"
)

func TestGetUpdates(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{"ok": true, "result": [
		{"update_id": 100, "message": {"message_id": 1, "date": 1, "chat": {"id": 8754, "type": "group"}, "text": "hi"}},
		{"update_id": 101, "message": {"message_id": 2, "date": 2, "chat": {"id": 8754, "type": "group"}, "text": "there"}}
	]}`)

	updates, err := c.GetUpdates(context.Background(), telegram.GetUpdatesOpts{})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(updates), 2)
	testutil.AssertEqual(t, updates[0].UpdateID, int64(100))
	testutil.AssertEqual(t, updates[1].Message.Text, "there")
}

func TestGetUpdatesLongPollOutlivesClientTimeout(t *testing.T) {
	// An idle long poll holds the connection open for the whole poll
	// timeout, longer than the HTTP client timeout permits. It must
	// still complete instead of aborting mid-request.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{"ok": true, "result": [
			{"update_id": 400, "message": {"message_id": 1, "date": 1, "chat": {"id": 1, "type": "private"}, "text": "late"}}
		]}`)
	}))
	defer ts.Close()

	c := &telegram.Client{
		Token:      testToken,
		BaseURL:    ts.URL,
		HTTPClient: &http.Client{Timeout: 50 * time.Millisecond},
	}

	updates, err := c.GetUpdates(context.Background(), telegram.GetUpdatesOpts{Timeout: 1})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(updates), 1)

	// A short poll still honors the configured client timeout.
	if _, err := c.GetUpdates(context.Background(), telegram.GetUpdatesOpts{}); err == nil {
		t.Fatal("short poll did not honor the client timeout")
	}
}

func TestPoll(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := testutil.UnmarshalJSON[telegram.GetUpdatesOpts](t, readBody(t, r))
		switch calls.Add(1) {
		case 1:
			if req.Offset != 0 {
				t.Errorf("got offset %d on first poll, want 0", req.Offset)
			}
			fmt.Fprint(w, `{"ok": true, "result": [
				{"update_id": 200, "message": {"message_id": 1, "date": 1, "chat": {"id": 1, "type": "private"}, "text": "one"}},
				{"update_id": 201, "message": {"message_id": 2, "date": 2, "chat": {"id": 1, "type": "private"}, "text": "two"}}
			]}`)
		default:
			// The offset must have advanced past the delivered updates.
			if req.Offset != 202 {
				t.Errorf("got offset %d, want 202", req.Offset)
			}
			fmt.Fprint(w, `{"ok": true, "result": []}`)
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}
	ch := c.Poll(ctx, telegram.PollOpts{Timeout: 1})

	var got []string
	for u := range ch {
		got = append(got, u.Message.Text)
		if len(got) == 2 {
			cancel()
		}
	}
	testutil.AssertEqual(t, got, []string{"one", "two"})
}

func TestPollRetriesAfterError(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"ok": true, "result": [
			{"update_id": 300, "message": {"message_id": 1, "date": 1, "chat": {"id": 1, "type": "private"}, "text": "after retry"}}
		]}`)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var logged atomic.Bool
	c := &telegram.Client{
		Token:   testToken,
		BaseURL: ts.URL,
		Logf:    func(format string, args ...any) { logged.Store(true) },
	}
	ch := c.Poll(ctx, telegram.PollOpts{Timeout: 1, RetryInterval: 10 * time.Millisecond})

	select {
	case u := <-ch:
		testutil.AssertEqual(t, u.Message.Text, "after retry")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for an update")
	}
	cancel()

	if !logged.Load() {
		t.Error("poll error was not logged")
	}
}

func TestSetWebhookCertificateUpload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if got := r.FormValue("url"); got != "https://example.com/webhook" {
			t.Errorf("got url %q", got)
		}
		if _, _, err := r.FormFile("certificate"); err != nil {
			t.Errorf("FormFile(certificate): %v", err)
		}
		fmt.Fprint(w, `{"ok": true, "result": true}`)
	}))
	defer ts.Close()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}
	err := c.SetWebhook(context.Background(), telegram.SetWebhookOpts{
		URL:         "https://example.com/webhook",
		Certificate: telegram.Upload("cert.pem", []byte("-----BEGIN CERTIFICATE-----")),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestGetWebhookInfo(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{"ok": true, "result": {"url": "https://example.com/webhook", "has_custom_certificate": false, "pending_update_count": 3}}`)

	info, err := c.GetWebhookInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, info, &telegram.WebhookInfo{
		URL:                "https://example.com/webhook",
		PendingUpdateCount: 3,
	})
}

func TestDownloadFile(t *testing.T) {
	contents := []byte("file contents")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if want := "/file/bot" + testToken + "/photos/file_1.jpg"; r.URL.Path != want {
			t.Errorf("got path %q, want %q", r.URL.Path, want)
		}
		w.Write(contents)
	}))
	defer ts.Close()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}
	got, err := c.DownloadFile(context.Background(), "photos/file_1.jpg")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, contents)
}

func readBody(t *testing.T, r *http.Request) []byte {
	t.Helper()
	b := make([]byte, r.ContentLength)
	if _, err := io.ReadFull(r.Body, b); err != nil {
		t.Error(err)
	}
	return b
}
