// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "context"

// Chat and chat member administration methods.

type chatArgs struct {
	ChatID any `json:"chat_id"`
}

type chatUserArgs struct {
	ChatID any   `json:"chat_id"`
	UserID int64 `json:"user_id"`
}

// KickChatMemberOpts are the parameters of [Client.KickChatMember].
type KickChatMemberOpts struct {
	ChatID any   `json:"chat_id"`
	UserID int64 `json:"user_id"`
	// UntilDate is the Unix time the user is banned until. Less than 30
	// seconds or more than 366 days from now means forever.
	UntilDate int64 `json:"until_date,omitempty"`
}

// KickChatMember kicks a user from a group, a supergroup or a channel.
func (c *Client) KickChatMember(ctx context.Context, opts KickChatMemberOpts) error {
	_, err := call[bool](ctx, c, "kickChatMember", opts)
	return err
}

// UnbanChatMember unbans a previously kicked user in a supergroup or
// channel.
func (c *Client) UnbanChatMember(ctx context.Context, chatID any, userID int64) error {
	_, err := call[bool](ctx, c, "unbanChatMember", chatUserArgs{chatID, userID})
	return err
}

// RestrictChatMemberOpts are the parameters of [Client.RestrictChatMember].
// Pass true for all permissions to lift restrictions from a user.
type RestrictChatMemberOpts struct {
	ChatID                any   `json:"chat_id"`
	UserID                int64 `json:"user_id"`
	UntilDate             int64 `json:"until_date,omitempty"`
	CanSendMessages       bool  `json:"can_send_messages,omitempty"`
	CanSendMediaMessages  bool  `json:"can_send_media_messages,omitempty"`
	CanSendOtherMessages  bool  `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews bool  `json:"can_add_web_page_previews,omitempty"`
}

// RestrictChatMember restricts a user in a supergroup.
func (c *Client) RestrictChatMember(ctx context.Context, opts RestrictChatMemberOpts) error {
	_, err := call[bool](ctx, c, "restrictChatMember", opts)
	return err
}

// PromoteChatMemberOpts are the parameters of [Client.PromoteChatMember].
// Pass false for all boolean parameters to demote a user.
type PromoteChatMemberOpts struct {
	ChatID             any   `json:"chat_id"`
	UserID             int64 `json:"user_id"`
	CanChangeInfo      bool  `json:"can_change_info,omitempty"`
	CanPostMessages    bool  `json:"can_post_messages,omitempty"`
	CanEditMessages    bool  `json:"can_edit_messages,omitempty"`
	CanDeleteMessages  bool  `json:"can_delete_messages,omitempty"`
	CanInviteUsers     bool  `json:"can_invite_users,omitempty"`
	CanRestrictMembers bool  `json:"can_restrict_members,omitempty"`
	CanPinMessages     bool  `json:"can_pin_messages,omitempty"`
	CanPromoteMembers  bool  `json:"can_promote_members,omitempty"`
}

// PromoteChatMember promotes or demotes a user in a supergroup or a channel.
func (c *Client) PromoteChatMember(ctx context.Context, opts PromoteChatMemberOpts) error {
	_, err := call[bool](ctx, c, "promoteChatMember", opts)
	return err
}

// ExportChatInviteLink generates a new invite link for a chat; any previously
// generated link is revoked.
func (c *Client) ExportChatInviteLink(ctx context.Context, chatID any) (string, error) {
	return call[string](ctx, c, "exportChatInviteLink", chatArgs{chatID})
}

// SetChatPhotoOpts are the parameters of [Client.SetChatPhoto]. The photo
// can't be changed for private chats.
type SetChatPhotoOpts struct {
	ChatID any        `json:"chat_id"`
	Photo  *InputFile `json:"photo"`
}

func (o SetChatPhotoOpts) files() map[string]*InputFile {
	return map[string]*InputFile{"photo": o.Photo}
}

// SetChatPhoto sets a new profile photo for the chat.
func (c *Client) SetChatPhoto(ctx context.Context, opts SetChatPhotoOpts) error {
	_, err := call[bool](ctx, c, "setChatPhoto", opts)
	return err
}

// DeleteChatPhoto deletes a chat photo.
func (c *Client) DeleteChatPhoto(ctx context.Context, chatID any) error {
	_, err := call[bool](ctx, c, "deleteChatPhoto", chatArgs{chatID})
	return err
}

// SetChatTitle changes the title of a chat.
func (c *Client) SetChatTitle(ctx context.Context, chatID any, title string) error {
	args := struct {
		ChatID any    `json:"chat_id"`
		Title  string `json:"title"`
	}{chatID, title}
	_, err := call[bool](ctx, c, "setChatTitle", args)
	return err
}

// SetChatDescription changes the description of a supergroup or a channel.
func (c *Client) SetChatDescription(ctx context.Context, chatID any, description string) error {
	args := struct {
		ChatID      any    `json:"chat_id"`
		Description string `json:"description,omitempty"`
	}{chatID, description}
	_, err := call[bool](ctx, c, "setChatDescription", args)
	return err
}

// PinChatMessageOpts are the parameters of [Client.PinChatMessage].
type PinChatMessageOpts struct {
	ChatID              any   `json:"chat_id"`
	MessageID           int64 `json:"message_id"`
	DisableNotification bool  `json:"disable_notification,omitempty"`
}

// PinChatMessage pins a message in a supergroup or a channel.
func (c *Client) PinChatMessage(ctx context.Context, opts PinChatMessageOpts) error {
	_, err := call[bool](ctx, c, "pinChatMessage", opts)
	return err
}

// UnpinChatMessage unpins the currently pinned message in a supergroup or a
// channel.
func (c *Client) UnpinChatMessage(ctx context.Context, chatID any) error {
	_, err := call[bool](ctx, c, "unpinChatMessage", chatArgs{chatID})
	return err
}

// LeaveChat makes the bot leave a group, supergroup or channel.
func (c *Client) LeaveChat(ctx context.Context, chatID any) error {
	_, err := call[bool](ctx, c, "leaveChat", chatArgs{chatID})
	return err
}

// GetChat returns up-to-date information about the chat.
func (c *Client) GetChat(ctx context.Context, chatID any) (*Chat, error) {
	return call[*Chat](ctx, c, "getChat", chatArgs{chatID})
}

// GetChatAdministrators returns a list of administrators in a chat, other
// bots excluded.
func (c *Client) GetChatAdministrators(ctx context.Context, chatID any) ([]ChatMember, error) {
	return call[[]ChatMember](ctx, c, "getChatAdministrators", chatArgs{chatID})
}

// GetChatMembersCount returns the number of members in a chat.
func (c *Client) GetChatMembersCount(ctx context.Context, chatID any) (int, error) {
	return call[int](ctx, c, "getChatMembersCount", chatArgs{chatID})
}

// GetChatMember returns information about a member of a chat.
func (c *Client) GetChatMember(ctx context.Context, chatID any, userID int64) (*ChatMember, error) {
	return call[*ChatMember](ctx, c, "getChatMember", chatUserArgs{chatID, userID})
}

// SetChatStickerSet sets a new group sticker set for a supergroup.
func (c *Client) SetChatStickerSet(ctx context.Context, chatID any, stickerSetName string) error {
	args := struct {
		ChatID         any    `json:"chat_id"`
		StickerSetName string `json:"sticker_set_name"`
	}{chatID, stickerSetName}
	_, err := call[bool](ctx, c, "setChatStickerSet", args)
	return err
}

// DeleteChatStickerSet deletes a group sticker set from a supergroup.
func (c *Client) DeleteChatStickerSet(ctx context.Context, chatID any) error {
	_, err := call[bool](ctx, c, "deleteChatStickerSet", chatArgs{chatID})
	return err
}
