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
	"strings"
	"testing"

	"go.astrophena.name/telegram"
	"go.astrophena.name/telegram/internal/testutil"
)

const sentMessage = `{"ok": true, "result": {"message_id": 1, "date": 1, "chat": {"id": 8754, "type": "group"}}}`

func TestSendPhotoEncoding(t *testing.T) {
	cases := map[string]struct {
		photo         *telegram.InputFile
		wantMultipart bool
	}{
		"raw contents select multipart": {
			photo:         telegram.Upload("photo.jpg", []byte{0xff, 0xd8, 0xff}),
			wantMultipart: true,
		},
		"URL selects JSON": {
			photo: telegram.FileURL("http://example.com/photo.jpg"),
		},
		"file identifier selects JSON": {
			photo: telegram.FileID("AgADAgAD6qcxG_8"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var gotContentType string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotContentType = r.Header.Get("Content-Type")
				fmt.Fprint(w, sentMessage)
			}))
			defer ts.Close()

			c := &telegram.Client{Token: testToken, BaseURL: ts.URL}

			if _, err := c.SendPhoto(context.Background(), telegram.SendPhotoOpts{
				ChatID: 8754,
				Photo:  tc.photo,
			}); err != nil {
				t.Fatal(err)
			}

			isMultipart := strings.HasPrefix(gotContentType, "multipart/form-data")
			if isMultipart != tc.wantMultipart {
				t.Errorf("got Content-Type %q, want multipart: %v", gotContentType, tc.wantMultipart)
			}
			if !tc.wantMultipart && gotContentType != "application/json" {
				t.Errorf("got Content-Type %q, want application/json", gotContentType)
			}
		})
	}
}

func TestSendPhotoMultipartForm(t *testing.T) {
	contents := []byte{0xff, 0xd8, 0xff, 0xe0}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if got := r.FormValue("chat_id"); got != "8754" {
			t.Errorf("got chat_id %q, want 8754", got)
		}
		if got := r.FormValue("caption"); got != "Look at this" {
			t.Errorf("got caption %q, want Look at this", got)
		}
		// Nested objects are JSON-encoded form values.
		if got := r.FormValue("reply_markup"); got != `{"remove_keyboard":true}` {
			t.Errorf("got reply_markup %q", got)
		}

		f, fh, err := r.FormFile("photo")
		if err != nil {
			t.Errorf("FormFile(photo): %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		if fh.Filename != "photo.jpg" {
			t.Errorf("got file name %q, want photo.jpg", fh.Filename)
		}
		got := make([]byte, fh.Size)
		if _, err := io.ReadFull(f, got); err != nil {
			t.Errorf("reading photo: %v", err)
		}
		testutil.AssertEqual(t, got, contents)

		fmt.Fprint(w, sentMessage)
	}))
	defer ts.Close()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}

	msg, err := c.SendPhoto(context.Background(), telegram.SendPhotoOpts{
		ChatID:      8754,
		Photo:       telegram.Upload("photo.jpg", contents),
		Caption:     "Look at this",
		ReplyMarkup: telegram.ReplyKeyboardRemove{RemoveKeyboard: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, msg.Chat.ID, int64(8754))
}

func TestSendDocumentThumbUpload(t *testing.T) {
	// A raw thumbnail alone must switch the whole request to multipart,
	// with the document still referenced by its file identifier.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if got := r.FormValue("document"); got != "BQADAgADLQO8" {
			t.Errorf("got document %q, want BQADAgADLQO8", got)
		}
		if _, _, err := r.FormFile("thumb"); err != nil {
			t.Errorf("FormFile(thumb): %v", err)
		}
		fmt.Fprint(w, sentMessage)
	}))
	defer ts.Close()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}

	if _, err := c.SendDocument(context.Background(), telegram.SendDocumentOpts{
		ChatID:   8754,
		Document: telegram.FileID("BQADAgADLQO8"),
		Thumb:    telegram.Upload("thumb.jpg", []byte{0xff, 0xd8}),
	}); err != nil {
		t.Fatal(err)
	}
}

func TestSendMediaGroup(t *testing.T) {
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := make([]byte, r.ContentLength)
		io.ReadFull(r.Body, b)
		gotBody = b
		fmt.Fprint(w, `{"ok": true, "result": [
			{"message_id": 1, "date": 1, "chat": {"id": 8754, "type": "group"}},
			{"message_id": 2, "date": 1, "chat": {"id": 8754, "type": "group"}}
		]}`)
	}))
	defer ts.Close()

	c := &telegram.Client{Token: testToken, BaseURL: ts.URL}

	msgs, err := c.SendMediaGroup(context.Background(), telegram.SendMediaGroupOpts{
		ChatID: 8754,
		Media: []telegram.InputMedia{
			telegram.InputMediaPhoto{Type: "photo", Media: "AgADAgAD6qcxG_8"},
			telegram.InputMediaVideo{Type: "video", Media: "http://example.com/video.mp4"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(msgs), 2)

	body := testutil.UnmarshalJSON[map[string]any](t, gotBody)
	media, ok := body["media"].([]any)
	if !ok || len(media) != 2 {
		t.Fatalf("got media %v, want 2 items", body["media"])
	}
}
