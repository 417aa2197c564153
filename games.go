// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "context"

// Game methods. See https://core.telegram.org/bots/api#games.

// SendGameOpts are the parameters of [Client.SendGame].
type SendGameOpts struct {
	ChatID              int64                 `json:"chat_id"`
	GameShortName       string                `json:"game_short_name"`
	DisableNotification bool                  `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64                 `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// SendGame sends a game.
func (c *Client) SendGame(ctx context.Context, opts SendGameOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendGame", opts)
}

// SetGameScoreOpts are the parameters of [Client.SetGameScore]. Either
// ChatID and MessageID or InlineMessageID identify the game message.
type SetGameScoreOpts struct {
	UserID             int64  `json:"user_id"`
	Score              int    `json:"score"`
	Force              bool   `json:"force,omitempty"`
	DisableEditMessage bool   `json:"disable_edit_message,omitempty"`
	ChatID             int64  `json:"chat_id,omitempty"`
	MessageID          int64  `json:"message_id,omitempty"`
	InlineMessageID    string `json:"inline_message_id,omitempty"`
}

// SetGameScore sets the score of the specified user in a game. The edited
// Message is returned for messages sent by the bot, nil otherwise. An error
// is returned if the new score is not greater than the user's current score
// in the chat and Force is false.
func (c *Client) SetGameScore(ctx context.Context, opts SetGameScoreOpts) (*Message, error) {
	return editResult(ctx, c, "setGameScore", opts)
}

// GetGameHighScoresOpts are the parameters of [Client.GetGameHighScores].
type GetGameHighScoresOpts struct {
	UserID          int64  `json:"user_id"`
	ChatID          int64  `json:"chat_id,omitempty"`
	MessageID       int64  `json:"message_id,omitempty"`
	InlineMessageID string `json:"inline_message_id,omitempty"`
}

// GetGameHighScores returns data for high score tables: the score of the
// specified user and several of their neighbors in a game.
func (c *Client) GetGameHighScores(ctx context.Context, opts GetGameHighScoresOpts) ([]GameHighScore, error) {
	return call[[]GameHighScore](ctx, c, "getGameHighScores", opts)
}
