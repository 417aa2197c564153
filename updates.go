// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.astrophena.name/telegram/internal/request"
)

// GetUpdatesOpts are the parameters of [Client.GetUpdates].
type GetUpdatesOpts struct {
	Offset int64 `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
	// Timeout is the long polling timeout in seconds. Zero means short
	// polling, to be used for testing purposes only.
	Timeout        int      `json:"timeout,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// GetUpdates receives incoming updates using long polling.
func (c *Client) GetUpdates(ctx context.Context, opts GetUpdatesOpts) ([]Update, error) {
	if opts.Timeout <= 0 {
		return call[[]Update](ctx, c, "getUpdates", opts)
	}
	// A long poll legitimately idles for opts.Timeout seconds, longer than
	// the HTTP client timeout allows. Dispatch it on a client without one
	// and bound the request with a context deadline past the poll timeout.
	ctx, cancel := context.WithTimeout(ctx, time.Duration(opts.Timeout)*time.Second+10*time.Second)
	defer cancel()
	return dispatch[[]Update](ctx, c, "getUpdates", opts, true)
}

// SetWebhookOpts are the parameters of [Client.SetWebhook].
type SetWebhookOpts struct {
	URL            string     `json:"url"`
	Certificate    *InputFile `json:"certificate,omitempty"`
	MaxConnections int        `json:"max_connections,omitempty"`
	AllowedUpdates []string   `json:"allowed_updates,omitempty"`
}

func (o SetWebhookOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"certificate": o.Certificate}
}

// SetWebhook specifies an URL to receive incoming updates via an outgoing
// webhook. Whenever there is an update for the bot, Telegram sends an HTTPS
// POST request to that URL containing a JSON-serialized [Update].
func (c *Client) SetWebhook(ctx context.Context, opts SetWebhookOpts) error {
	_, err := call[bool](ctx, c, "setWebhook", opts)
	return err
}

// DeleteWebhook removes webhook integration, switching back to
// [Client.GetUpdates].
func (c *Client) DeleteWebhook(ctx context.Context) error {
	_, err := call[bool](ctx, c, "deleteWebhook", nil)
	return err
}

// GetWebhookInfo returns the current webhook status.
func (c *Client) GetWebhookInfo(ctx context.Context) (*WebhookInfo, error) {
	return call[*WebhookInfo](ctx, c, "getWebhookInfo", nil)
}

// PollOpts configure [Client.Poll].
type PollOpts struct {
	// Limit is the maximum number of updates fetched per request, 1-100.
	// Zero means the Telegram default of 100.
	Limit int
	// Timeout is the long polling timeout in seconds. Zero means 30.
	Timeout int
	// AllowedUpdates lists the update types to receive.
	AllowedUpdates []string
	// RetryInterval is how long to wait before polling again after a failed
	// request. Zero means 5 seconds.
	RetryInterval time.Duration
}

// Poll receives updates by calling [Client.GetUpdates] in a loop on a new
// goroutine and delivers each update on the returned channel, acknowledging
// it by advancing the offset past it. Failed polls are logged through
// [Client.Logf] and retried after PollOpts.RetryInterval. The channel is
// closed once ctx is done.
//
// This is a convenience over the same underlying calls; it adds no
// buffering, retrying of individual updates, or other semantics.
func (c *Client) Poll(ctx context.Context, opts PollOpts) <-chan Update {
	ch := make(chan Update)
	go c.poll(ctx, opts, ch)
	return ch
}

func (c *Client) poll(ctx context.Context, opts PollOpts, ch chan<- Update) {
	defer close(ch)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30
	}
	retry := opts.RetryInterval
	if retry == 0 {
		retry = 5 * time.Second
	}

	var offset int64
	for {
		updates, err := c.GetUpdates(ctx, GetUpdatesOpts{
			Offset:         offset,
			Limit:          opts.Limit,
			Timeout:        timeout,
			AllowedUpdates: opts.AllowedUpdates,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if c.Logf != nil {
				c.Logf("telegram: getUpdates: %v", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(retry):
			}
			continue
		}
		for _, u := range updates {
			select {
			case ch <- u:
			case <-ctx.Done():
				return
			}
			offset = u.UpdateID + 1
		}
	}
}

// DownloadFile downloads a file by the path returned from [Client.GetFile].
func (c *Client) DownloadFile(ctx context.Context, filePath string) ([]byte, error) {
	if c.Token == "" {
		return nil, errors.New("telegram: Client.Token is empty")
	}
	c.initOnce.Do(c.init)

	url := c.baseURL() + "/file/bot" + c.Token + "/" + filePath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, request.Scrub(err, c.scrubber)
	}
	req.Header.Set("User-Agent", request.UserAgent())

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, request.Scrub(err, c.scrubber)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, request.Scrub(fmt.Errorf("GET %q: want 200, got %d", url, res.StatusCode), c.scrubber)
	}
	return io.ReadAll(res.Body)
}
