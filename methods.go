// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "context"

// Opts types in this file and its siblings mirror the parameters documented
// at https://core.telegram.org/bots/api#available-methods. ChatID fields
// accept either an integer chat identifier or a string in the
// @channelusername format.

// GetMe returns basic information about the bot.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	return call[*User](ctx, c, "getMe", nil)
}

// SendMessageOpts are the parameters of [Client.SendMessage].
type SendMessageOpts struct {
	ChatID                any         `json:"chat_id"`
	Text                  string      `json:"text"`
	ParseMode             ParseMode   `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool        `json:"disable_web_page_preview,omitempty"`
	DisableNotification   bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID      int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup           ReplyMarkup `json:"reply_markup,omitempty"`
}

// SendMessage sends a text message.
func (c *Client) SendMessage(ctx context.Context, opts SendMessageOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendMessage", opts)
}

// ForwardMessageOpts are the parameters of [Client.ForwardMessage].
type ForwardMessageOpts struct {
	ChatID              any   `json:"chat_id"`
	FromChatID          any   `json:"from_chat_id"`
	DisableNotification bool  `json:"disable_notification,omitempty"`
	MessageID           int64 `json:"message_id"`
}

// ForwardMessage forwards a message of any kind.
func (c *Client) ForwardMessage(ctx context.Context, opts ForwardMessageOpts) (*Message, error) {
	return call[*Message](ctx, c, "forwardMessage", opts)
}

// SendLocationOpts are the parameters of [Client.SendLocation].
type SendLocationOpts struct {
	ChatID              any         `json:"chat_id"`
	Latitude            float64     `json:"latitude"`
	Longitude           float64     `json:"longitude"`
	LivePeriod          int         `json:"live_period,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// SendLocation sends a point on the map.
func (c *Client) SendLocation(ctx context.Context, opts SendLocationOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendLocation", opts)
}

// EditMessageLiveLocationOpts are the parameters of
// [Client.EditMessageLiveLocation]. Either ChatID and MessageID or
// InlineMessageID identify the message to edit.
type EditMessageLiveLocationOpts struct {
	ChatID          any         `json:"chat_id,omitempty"`
	MessageID       int64       `json:"message_id,omitempty"`
	InlineMessageID string      `json:"inline_message_id,omitempty"`
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
	ReplyMarkup     ReplyMarkup `json:"reply_markup,omitempty"`
}

// EditMessageLiveLocation edits a live location message. The edited Message
// is returned for messages sent by the bot, nil otherwise.
func (c *Client) EditMessageLiveLocation(ctx context.Context, opts EditMessageLiveLocationOpts) (*Message, error) {
	return editResult(ctx, c, "editMessageLiveLocation", opts)
}

// StopMessageLiveLocationOpts are the parameters of
// [Client.StopMessageLiveLocation].
type StopMessageLiveLocationOpts struct {
	ChatID          any         `json:"chat_id,omitempty"`
	MessageID       int64       `json:"message_id,omitempty"`
	InlineMessageID string      `json:"inline_message_id,omitempty"`
	ReplyMarkup     ReplyMarkup `json:"reply_markup,omitempty"`
}

// StopMessageLiveLocation stops updating a live location message before its
// live period expires.
func (c *Client) StopMessageLiveLocation(ctx context.Context, opts StopMessageLiveLocationOpts) (*Message, error) {
	return editResult(ctx, c, "stopMessageLiveLocation", opts)
}

// SendVenueOpts are the parameters of [Client.SendVenue].
type SendVenueOpts struct {
	ChatID              any         `json:"chat_id"`
	Latitude            float64     `json:"latitude"`
	Longitude           float64     `json:"longitude"`
	Title               string      `json:"title"`
	Address             string      `json:"address"`
	FoursquareID        string      `json:"foursquare_id,omitempty"`
	FoursquareType      string      `json:"foursquare_type,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// SendVenue sends information about a venue.
func (c *Client) SendVenue(ctx context.Context, opts SendVenueOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendVenue", opts)
}

// SendContactOpts are the parameters of [Client.SendContact].
type SendContactOpts struct {
	ChatID              any         `json:"chat_id"`
	PhoneNumber         string      `json:"phone_number"`
	FirstName           string      `json:"first_name"`
	LastName            string      `json:"last_name,omitempty"`
	VCard               string      `json:"vcard,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// SendContact sends a phone contact.
func (c *Client) SendContact(ctx context.Context, opts SendContactOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendContact", opts)
}

// SendPollOpts are the parameters of [Client.SendPoll].
type SendPollOpts struct {
	ChatID              any         `json:"chat_id"`
	Question            string      `json:"question"`
	Options             []string    `json:"options"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

// SendPoll sends a native poll.
func (c *Client) SendPoll(ctx context.Context, opts SendPollOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendPoll", opts)
}

// StopPollOpts are the parameters of [Client.StopPoll].
type StopPollOpts struct {
	ChatID      any         `json:"chat_id"`
	MessageID   int64       `json:"message_id"`
	ReplyMarkup ReplyMarkup `json:"reply_markup,omitempty"`
}

// StopPoll stops a poll which was sent by the bot and returns it in its
// final state.
func (c *Client) StopPoll(ctx context.Context, opts StopPollOpts) (*Poll, error) {
	return call[*Poll](ctx, c, "stopPoll", opts)
}

// SendChatAction tells the user that something is happening on the bot's
// side. The action is shown for 5 seconds or until the bot sends a message.
func (c *Client) SendChatAction(ctx context.Context, chatID any, action ChatAction) error {
	args := struct {
		ChatID any        `json:"chat_id"`
		Action ChatAction `json:"action"`
	}{chatID, action}
	_, err := call[bool](ctx, c, "sendChatAction", args)
	return err
}

// GetUserProfilePhotosOpts are the parameters of
// [Client.GetUserProfilePhotos].
type GetUserProfilePhotosOpts struct {
	UserID int64 `json:"user_id"`
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
}

// GetUserProfilePhotos returns a list of profile pictures for a user.
func (c *Client) GetUserProfilePhotos(ctx context.Context, opts GetUserProfilePhotosOpts) (*UserProfilePhotos, error) {
	return call[*UserProfilePhotos](ctx, c, "getUserProfilePhotos", opts)
}

// GetFile returns basic information about a file and prepares it for
// downloading with [Client.DownloadFile].
func (c *Client) GetFile(ctx context.Context, fileID string) (*File, error) {
	args := struct {
		FileID string `json:"file_id"`
	}{fileID}
	return call[*File](ctx, c, "getFile", args)
}

// AnswerCallbackQueryOpts are the parameters of
// [Client.AnswerCallbackQuery].
type AnswerCallbackQueryOpts struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
	URL             string `json:"url,omitempty"`
	CacheTime       int    `json:"cache_time,omitempty"`
}

// AnswerCallbackQuery sends an answer to a callback query sent from an
// inline keyboard. The answer is displayed to the user as a notification or
// an alert.
func (c *Client) AnswerCallbackQuery(ctx context.Context, opts AnswerCallbackQueryOpts) error {
	_, err := call[bool](ctx, c, "answerCallbackQuery", opts)
	return err
}

// EditMessageTextOpts are the parameters of [Client.EditMessageText]. Either
// ChatID and MessageID or InlineMessageID identify the message to edit.
type EditMessageTextOpts struct {
	ChatID                any         `json:"chat_id,omitempty"`
	MessageID             int64       `json:"message_id,omitempty"`
	InlineMessageID       string      `json:"inline_message_id,omitempty"`
	Text                  string      `json:"text"`
	ParseMode             ParseMode   `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool        `json:"disable_web_page_preview,omitempty"`
	ReplyMarkup           ReplyMarkup `json:"reply_markup,omitempty"`
}

// EditMessageText edits a text or game message. The edited Message is
// returned for messages sent by the bot, nil otherwise.
func (c *Client) EditMessageText(ctx context.Context, opts EditMessageTextOpts) (*Message, error) {
	return editResult(ctx, c, "editMessageText", opts)
}

// EditMessageCaptionOpts are the parameters of [Client.EditMessageCaption].
type EditMessageCaptionOpts struct {
	ChatID          any         `json:"chat_id,omitempty"`
	MessageID       int64       `json:"message_id,omitempty"`
	InlineMessageID string      `json:"inline_message_id,omitempty"`
	Caption         string      `json:"caption,omitempty"`
	ParseMode       ParseMode   `json:"parse_mode,omitempty"`
	ReplyMarkup     ReplyMarkup `json:"reply_markup,omitempty"`
}

// EditMessageCaption edits the caption of a message.
func (c *Client) EditMessageCaption(ctx context.Context, opts EditMessageCaptionOpts) (*Message, error) {
	return editResult(ctx, c, "editMessageCaption", opts)
}

// EditMessageReplyMarkupOpts are the parameters of
// [Client.EditMessageReplyMarkup].
type EditMessageReplyMarkupOpts struct {
	ChatID          any         `json:"chat_id,omitempty"`
	MessageID       int64       `json:"message_id,omitempty"`
	InlineMessageID string      `json:"inline_message_id,omitempty"`
	ReplyMarkup     ReplyMarkup `json:"reply_markup,omitempty"`
}

// EditMessageReplyMarkup edits only the reply markup of a message.
func (c *Client) EditMessageReplyMarkup(ctx context.Context, opts EditMessageReplyMarkupOpts) (*Message, error) {
	return editResult(ctx, c, "editMessageReplyMarkup", opts)
}

// DeleteMessage deletes a message, including service messages.
func (c *Client) DeleteMessage(ctx context.Context, chatID any, messageID int64) error {
	args := struct {
		ChatID    any   `json:"chat_id"`
		MessageID int64 `json:"message_id"`
	}{chatID, messageID}
	_, err := call[bool](ctx, c, "deleteMessage", args)
	return err
}
