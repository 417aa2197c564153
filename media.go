// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "context"

// Methods in this file accept files. Whether a call goes out as JSON or
// multipart/form-data is decided per call: raw contents (see [Upload])
// require multipart, file identifiers and URLs don't.

// SendPhotoOpts are the parameters of [Client.SendPhoto].
type SendPhotoOpts struct {
	ChatID              any         `json:"chat_id"`
	Photo               *InputFile  `json:"photo"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

func (o SendPhotoOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"photo": o.Photo}
}

// SendPhoto sends a photo.
func (c *Client) SendPhoto(ctx context.Context, opts SendPhotoOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendPhoto", opts)
}

// SendAudioOpts are the parameters of [Client.SendAudio].
type SendAudioOpts struct {
	ChatID              any         `json:"chat_id"`
	Audio               *InputFile  `json:"audio"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	Duration            int         `json:"duration,omitempty"`
	Performer           string      `json:"performer,omitempty"`
	Title               string      `json:"title,omitempty"`
	Thumb               *InputFile  `json:"thumb,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

func (o SendAudioOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"audio": o.Audio, "thumb": o.Thumb}
}

// SendAudio sends an audio file to be displayed as playable music.
func (c *Client) SendAudio(ctx context.Context, opts SendAudioOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendAudio", opts)
}

// SendDocumentOpts are the parameters of [Client.SendDocument].
type SendDocumentOpts struct {
	ChatID              any         `json:"chat_id"`
	Document            *InputFile  `json:"document"`
	Thumb               *InputFile  `json:"thumb,omitempty"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

func (o SendDocumentOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"document": o.Document, "thumb": o.Thumb}
}

// SendDocument sends a general file.
func (c *Client) SendDocument(ctx context.Context, opts SendDocumentOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendDocument", opts)
}

// SendVideoOpts are the parameters of [Client.SendVideo].
type SendVideoOpts struct {
	ChatID              any         `json:"chat_id"`
	Video               *InputFile  `json:"video"`
	Duration            int         `json:"duration,omitempty"`
	Width               int         `json:"width,omitempty"`
	Height              int         `json:"height,omitempty"`
	Thumb               *InputFile  `json:"thumb,omitempty"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	SupportsStreaming   bool        `json:"supports_streaming,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

func (o SendVideoOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"video": o.Video, "thumb": o.Thumb}
}

// SendVideo sends a video file.
func (c *Client) SendVideo(ctx context.Context, opts SendVideoOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendVideo", opts)
}

// SendAnimationOpts are the parameters of [Client.SendAnimation].
type SendAnimationOpts struct {
	ChatID              any         `json:"chat_id"`
	Animation           *InputFile  `json:"animation"`
	Duration            int         `json:"duration,omitempty"`
	Width               int         `json:"width,omitempty"`
	Height              int         `json:"height,omitempty"`
	Thumb               *InputFile  `json:"thumb,omitempty"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

func (o SendAnimationOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"animation": o.Animation, "thumb": o.Thumb}
}

// SendAnimation sends an animation file (GIF or H.264/MPEG-4 AVC video
// without sound).
func (c *Client) SendAnimation(ctx context.Context, opts SendAnimationOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendAnimation", opts)
}

// SendVoiceOpts are the parameters of [Client.SendVoice].
type SendVoiceOpts struct {
	ChatID              any         `json:"chat_id"`
	Voice               *InputFile  `json:"voice"`
	Caption             string      `json:"caption,omitempty"`
	ParseMode           ParseMode   `json:"parse_mode,omitempty"`
	Duration            int         `json:"duration,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

func (o SendVoiceOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"voice": o.Voice}
}

// SendVoice sends an audio file to be displayed as a playable voice message.
func (c *Client) SendVoice(ctx context.Context, opts SendVoiceOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendVoice", opts)
}

// SendVideoNoteOpts are the parameters of [Client.SendVideoNote].
type SendVideoNoteOpts struct {
	ChatID              any         `json:"chat_id"`
	VideoNote           *InputFile  `json:"video_note"`
	Duration            int         `json:"duration,omitempty"`
	Length              int         `json:"length,omitempty"`
	Thumb               *InputFile  `json:"thumb,omitempty"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

func (o SendVideoNoteOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"video_note": o.VideoNote, "thumb": o.Thumb}
}

// SendVideoNote sends a rounded square video message of up to 1 minute long.
func (c *Client) SendVideoNote(ctx context.Context, opts SendVideoNoteOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendVideoNote", opts)
}

// SendMediaGroupOpts are the parameters of [Client.SendMediaGroup]. Media
// items refer to files by identifier or URL; uploading raw contents as part
// of an album is not supported.
type SendMediaGroupOpts struct {
	ChatID              any          `json:"chat_id"`
	Media               []InputMedia `json:"media"`
	DisableNotification bool         `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64        `json:"reply_to_message_id,omitempty"`
}

// SendMediaGroup sends a group of photos or videos as an album.
func (c *Client) SendMediaGroup(ctx context.Context, opts SendMediaGroupOpts) ([]Message, error) {
	return call[[]Message](ctx, c, "sendMediaGroup", opts)
}
