// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "context"

// Sticker and sticker set management methods.

// SendStickerOpts are the parameters of [Client.SendSticker].
type SendStickerOpts struct {
	ChatID              any         `json:"chat_id"`
	Sticker             *InputFile  `json:"sticker"`
	DisableNotification bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         ReplyMarkup `json:"reply_markup,omitempty"`
}

func (o SendStickerOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"sticker": o.Sticker}
}

// SendSticker sends a .webp sticker.
func (c *Client) SendSticker(ctx context.Context, opts SendStickerOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendSticker", opts)
}

// GetStickerSet returns a sticker set by name.
func (c *Client) GetStickerSet(ctx context.Context, name string) (*StickerSet, error) {
	args := struct {
		Name string `json:"name"`
	}{name}
	return call[*StickerSet](ctx, c, "getStickerSet", args)
}

// UploadStickerFileOpts are the parameters of [Client.UploadStickerFile].
// The sticker must be an uploaded PNG image up to 512 kilobytes in size, at
// most 512px in either dimension.
type UploadStickerFileOpts struct {
	UserID     int64      `json:"user_id"`
	PNGSticker *InputFile `json:"png_sticker"`
}

func (o UploadStickerFileOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"png_sticker": o.PNGSticker}
}

// UploadStickerFile uploads a PNG sticker file for later use in
// [Client.CreateNewStickerSet] and [Client.AddStickerToSet].
func (c *Client) UploadStickerFile(ctx context.Context, opts UploadStickerFileOpts) (*File, error) {
	return call[*File](ctx, c, "uploadStickerFile", opts)
}

// CreateNewStickerSetOpts are the parameters of
// [Client.CreateNewStickerSet].
type CreateNewStickerSetOpts struct {
	UserID        int64         `json:"user_id"`
	Name          string        `json:"name"`
	Title         string        `json:"title"`
	PNGSticker    *InputFile    `json:"png_sticker"`
	Emojis        string        `json:"emojis"`
	ContainsMasks bool          `json:"contains_masks,omitempty"`
	MaskPosition  *MaskPosition `json:"mask_position,omitempty"`
}

func (o CreateNewStickerSetOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"png_sticker": o.PNGSticker}
}

// CreateNewStickerSet creates a new sticker set owned by the user.
func (c *Client) CreateNewStickerSet(ctx context.Context, opts CreateNewStickerSetOpts) error {
	_, err := call[bool](ctx, c, "createNewStickerSet", opts)
	return err
}

// AddStickerToSetOpts are the parameters of [Client.AddStickerToSet].
type AddStickerToSetOpts struct {
	UserID       int64         `json:"user_id"`
	Name         string        `json:"name"`
	PNGSticker   *InputFile    `json:"png_sticker"`
	Emojis       string        `json:"emojis"`
	MaskPosition *MaskPosition `json:"mask_position,omitempty"`
}

func (o AddStickerToSetOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"png_sticker": o.PNGSticker}
}

// AddStickerToSet adds a new sticker to a set created by the bot.
func (c *Client) AddStickerToSet(ctx context.Context, opts AddStickerToSetOpts) error {
	_, err := call[bool](ctx, c, "addStickerToSet", opts)
	return err
}

// SetStickerPositionInSet moves a sticker in a set created by the bot to a
// specific zero-based position.
func (c *Client) SetStickerPositionInSet(ctx context.Context, stickerFileID string, position int) error {
	args := struct {
		Sticker  string `json:"sticker"`
		Position int    `json:"position"`
	}{stickerFileID, position}
	_, err := call[bool](ctx, c, "setStickerPositionInSet", args)
	return err
}

// DeleteStickerFromSet deletes a sticker from a set created by the bot.
func (c *Client) DeleteStickerFromSet(ctx context.Context, stickerFileID string) error {
	args := struct {
		Sticker string `json:"sticker"`
	}{stickerFileID}
	_, err := call[bool](ctx, c, "deleteStickerFromSet", args)
	return err
}
