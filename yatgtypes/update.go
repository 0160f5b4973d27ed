package yatgtypes

type UpdateKind string

const (
	UpdateKindNone               UpdateKind = ""
	UpdateKindMessage            UpdateKind = "message"
	UpdateKindEditedMessage      UpdateKind = "edited_message"
	UpdateKindChannelPost        UpdateKind = "channel_post"
	UpdateKindEditedChannelPost  UpdateKind = "edited_channel_post"
	UpdateKindInlineQuery        UpdateKind = "inline_query"
	UpdateKindChosenInlineResult UpdateKind = "chosen_inline_result"
	UpdateKindCallbackQuery      UpdateKind = "callback_query"
)

// Update is an incoming event. Exactly one payload field is set; use yaupdate to
// build one rather than filling the fields by hand.
type Update struct {
	UpdateID           int64               `json:"update_id"`
	Message            *Message            `json:"message,omitempty"`
	EditedMessage      *Message            `json:"edited_message,omitempty"`
	ChannelPost        *Message            `json:"channel_post,omitempty"`
	EditedChannelPost  *Message            `json:"edited_channel_post,omitempty"`
	InlineQuery        *InlineQuery        `json:"inline_query,omitempty"`
	ChosenInlineResult *ChosenInlineResult `json:"chosen_inline_result,omitempty"`
	CallbackQuery      *CallbackQuery      `json:"callback_query,omitempty"`
}

// Kind reports which payload the update carries.
func (u *Update) Kind() UpdateKind {
	switch {
	case u.Message != nil:
		return UpdateKindMessage
	case u.EditedMessage != nil:
		return UpdateKindEditedMessage
	case u.ChannelPost != nil:
		return UpdateKindChannelPost
	case u.EditedChannelPost != nil:
		return UpdateKindEditedChannelPost
	case u.InlineQuery != nil:
		return UpdateKindInlineQuery
	case u.ChosenInlineResult != nil:
		return UpdateKindChosenInlineResult
	case u.CallbackQuery != nil:
		return UpdateKindCallbackQuery
	default:
		return UpdateKindNone
	}
}

// EffectiveMessage returns whichever message payload the update carries, or nil.
func (u *Update) EffectiveMessage() *Message {
	switch {
	case u.Message != nil:
		return u.Message
	case u.EditedMessage != nil:
		return u.EditedMessage
	case u.ChannelPost != nil:
		return u.ChannelPost
	case u.EditedChannelPost != nil:
		return u.EditedChannelPost
	case u.CallbackQuery != nil:
		return u.CallbackQuery.Message
	default:
		return nil
	}
}
