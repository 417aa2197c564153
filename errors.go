// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "fmt"

// Error is an API-level failure: Telegram accepted the HTTP request but
// replied with ok: false. Transport failures (network errors, unparseable
// responses) are returned as ordinary errors instead.
type Error struct {
	// Code is the error_code field of the reply, usually mirroring the HTTP
	// status code.
	Code int
	// Description is the human-readable description of the failure.
	Description string
	// Parameters optionally carries additional information, like the number
	// of seconds to wait after hitting a rate limit. It is never acted upon
	// automatically.
	Parameters *ResponseParameters
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("telegram: %d: %s", e.Code, e.Description)
}

// ResponseParameters contains additional information about an API failure.
type ResponseParameters struct {
	// MigrateToChatID is the identifier of the supergroup the group was
	// migrated to.
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	// RetryAfter is the number of seconds to wait before the request can be
	// repeated.
	RetryAfter int `json:"retry_after,omitempty"`
}
