package yatggen

import (
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
)

// ChatOptions leaves zero fields to the generator. Type defaults to private.
type ChatOptions struct {
	ID                          int64
	Type                        yatgtypes.ChatType
	Title                       string
	Username                    string
	User                        *yatgtypes.User
	AllMembersAreAdministrators bool
}

type ChatGenerator struct {
	src   *source
	users *UserGenerator
}

func NewChatGenerator(opts ...Option) *ChatGenerator {
	return New(opts...).Chats
}

// GetChat returns a chat of the requested type.
//
//   - A private chat with a negative ID becomes a group.
//   - With User set, the chat is that user's private chat.
//   - Groups get a random title; supergroups and channels also get a username made
//     from the title without spaces.
func (g *ChatGenerator) GetChat(opts ChatOptions) (*yatgtypes.Chat, yaerrors.Error) {
	chatType := opts.Type
	if chatType == "" {
		chatType = yatgtypes.ChatTypePrivate
	}

	if opts.ID < 0 && chatType == yatgtypes.ChatTypePrivate {
		chatType = yatgtypes.ChatTypeGroup
	}

	if opts.User != nil {
		return userChat(opts.ID, chatType, opts.User), nil
	}

	switch chatType {
	case yatgtypes.ChatTypePrivate:
		return userChat(opts.ID, chatType, g.users.GetUser(UserOptions{Username: opts.Username})), nil

	case yatgtypes.ChatTypeGroup:
		return &yatgtypes.Chat{
			ID:                          g.idOr(opts.ID),
			Type:                        chatType,
			Title:                       g.titleOr(opts.Title),
			AllMembersAreAdministrators: opts.AllMembersAreAdministrators,
		}, nil

	case yatgtypes.ChatTypeSupergroup, yatgtypes.ChatTypeChannel:
		title := g.titleOr(opts.Title)

		username := opts.Username
		if username == "" {
			username = strings.Join(strings.Fields(title), "")
		}

		return &yatgtypes.Chat{
			ID:       g.idOr(opts.ID),
			Type:     chatType,
			Title:    title,
			Username: username,
		}, nil

	default:
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadChat,
			"unknown chat type "+string(chatType),
		)
	}
}

func (g *ChatGenerator) idOr(id int64) int64 {
	if id != 0 {
		return id
	}

	return g.src.GenID(true)
}

func (g *ChatGenerator) titleOr(title string) string {
	if title != "" {
		return title
	}

	return pick(g.src, groupNames)
}

func userChat(id int64, chatType yatgtypes.ChatType, user *yatgtypes.User) *yatgtypes.Chat {
	if id == 0 {
		id = user.ID
	}

	return &yatgtypes.Chat{
		ID:        id,
		Type:      chatType,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
