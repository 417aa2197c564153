// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "context"

// Payment methods. See https://core.telegram.org/bots/payments for the flow.

// SendInvoiceOpts are the parameters of [Client.SendInvoice].
type SendInvoiceOpts struct {
	ChatID                    int64                 `json:"chat_id"`
	Title                     string                `json:"title"`
	Description               string                `json:"description"`
	Payload                   string                `json:"payload"`
	ProviderToken             string                `json:"provider_token"`
	StartParameter            string                `json:"start_parameter"`
	Currency                  string                `json:"currency"`
	Prices                    []LabeledPrice        `json:"prices"`
	ProviderData              string                `json:"provider_data,omitempty"`
	PhotoURL                  string                `json:"photo_url,omitempty"`
	PhotoSize                 int                   `json:"photo_size,omitempty"`
	PhotoWidth                int                   `json:"photo_width,omitempty"`
	PhotoHeight               int                   `json:"photo_height,omitempty"`
	NeedName                  bool                  `json:"need_name,omitempty"`
	NeedPhoneNumber           bool                  `json:"need_phone_number,omitempty"`
	NeedEmail                 bool                  `json:"need_email,omitempty"`
	NeedShippingAddress       bool                  `json:"need_shipping_address,omitempty"`
	SendPhoneNumberToProvider bool                  `json:"send_phone_number_to_provider,omitempty"`
	SendEmailToProvider       bool                  `json:"send_email_to_provider,omitempty"`
	IsFlexible                bool                  `json:"is_flexible,omitempty"`
	DisableNotification       bool                  `json:"disable_notification,omitempty"`
	ReplyToMessageID          int64                 `json:"reply_to_message_id,omitempty"`
	ReplyMarkup               *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// SendInvoice sends an invoice.
func (c *Client) SendInvoice(ctx context.Context, opts SendInvoiceOpts) (*Message, error) {
	return call[*Message](ctx, c, "sendInvoice", opts)
}

// AnswerShippingQueryOpts are the parameters of
// [Client.AnswerShippingQuery]. OK reports whether delivery to the specified
// address is possible; when false, ErrorMessage explains why.
type AnswerShippingQueryOpts struct {
	ShippingQueryID string           `json:"shipping_query_id"`
	OK              bool             `json:"ok"`
	ShippingOptions []ShippingOption `json:"shipping_options,omitempty"`
	ErrorMessage    string           `json:"error_message,omitempty"`
}

// AnswerShippingQuery replies to a shipping query sent by Telegram for an
// invoice with a flexible price.
func (c *Client) AnswerShippingQuery(ctx context.Context, opts AnswerShippingQueryOpts) error {
	_, err := call[bool](ctx, c, "answerShippingQuery", opts)
	return err
}

// AnswerPreCheckoutQueryOpts are the parameters of
// [Client.AnswerPreCheckoutQuery].
type AnswerPreCheckoutQueryOpts struct {
	PreCheckoutQueryID string `json:"pre_checkout_query_id"`
	OK                 bool   `json:"ok"`
	ErrorMessage       string `json:"error_message,omitempty"`
}

// AnswerPreCheckoutQuery responds to a pre-checkout query; the answer must
// be sent within 10 seconds after the query was sent.
func (c *Client) AnswerPreCheckoutQuery(ctx context.Context, opts AnswerPreCheckoutQueryOpts) error {
	_, err := call[bool](ctx, c, "answerPreCheckoutQuery", opts)
	return err
}
