package yatggen

import (
	"net/http"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
	"github.com/YaCodeDev/GoYaTgMock/yaupdate"
	"github.com/google/uuid"
)

// CallbackQueryOptions must name exactly one origin (Message, GenerateMessage,
// InlineMessageID or GenerateInlineMessageID) and exactly one of Data and
// GameShortName.
type CallbackQueryOptions struct {
	User         *yatgtypes.User
	ChatInstance string

	Message                 *yatgtypes.Message
	GenerateMessage         bool
	InlineMessageID         string
	GenerateInlineMessageID bool

	Data          string
	GameShortName string
}

type CallbackQueryGenerator struct {
	users    *UserGenerator
	messages *MessageGenerator
	wrapper  *yaupdate.Wrapper
}

func NewCallbackQueryGenerator(opts ...Option) *CallbackQueryGenerator {
	return New(opts...).CallbackQueries
}

// GetCallbackQuery returns an update carrying a callback query. A generated message
// is sent by the bot into a private chat with the user.
func (g *CallbackQueryGenerator) GetCallbackQuery(
	opts CallbackQueryOptions,
) (*yatgtypes.Update, yaerrors.Error) {
	if countTrue(
		opts.Message != nil,
		opts.GenerateMessage,
		opts.InlineMessageID != "",
		opts.GenerateInlineMessageID,
	) != 1 {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadCallbackQuery,
			"exactly 1 of message and inline_message_id is needed",
		)
	}

	if countTrue(opts.Data != "", opts.GameShortName != "") != 1 {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadCallbackQuery,
			"exactly 1 of data and game_short_name is needed",
		)
	}

	user := opts.User
	if user == nil {
		user = g.users.GetUser(UserOptions{})
	}

	query := &yatgtypes.CallbackQuery{
		ID:              uuid.NewString(),
		From:            user,
		Message:         opts.Message,
		InlineMessageID: opts.InlineMessageID,
		ChatInstance:    opts.ChatInstance,
		Data:            opts.Data,
		GameShortName:   opts.GameShortName,
	}

	if query.ChatInstance == "" {
		query.ChatInstance = uuid.NewString()
	}

	if opts.GenerateInlineMessageID {
		query.InlineMessageID = uuid.NewString()
	}

	if opts.GenerateMessage {
		chat, err := g.messages.chats.GetChat(ChatOptions{User: user})
		if err != nil {
			return nil, err.Wrap("generate callback query")
		}

		if query.Message, err = g.messages.NewMessage(MessageOptions{
			User: g.messages.Bot(),
			Chat: chat,
		}); err != nil {
			return nil, err.Wrap("generate callback query")
		}
	}

	return g.wrapper.CallbackQuery(query), nil
}
