package yatggen

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/YaCodeDev/GoYaTgMock/yaentityparser"
	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
	"github.com/YaCodeDev/GoYaTgMock/yaupdate"
)

// MessageOptions describes the message to generate. Zero fields are generated or
// left empty.
//
// Without User and Chat a private chat with a random user is used; set Group to
// get a group chat instead.
type MessageOptions struct {
	User  *yatgtypes.User
	Chat  *yatgtypes.Chat
	Group bool

	ForwardFrom          *yatgtypes.User
	ForwardFromChat      *yatgtypes.Chat
	ForwardFromMessageID int
	ForwardDate          time.Time

	ReplyToMessage *yatgtypes.Message

	Text    string
	Caption string
	// ParseMode turns markup in Text and Caption into entities.
	ParseMode yaentityparser.Dialect

	// At most one attachment, explicit or generated.
	Photo    []yatgtypes.PhotoSize
	Audio    *yatgtypes.Audio
	Document *yatgtypes.Document
	Sticker  *yatgtypes.Sticker
	Video    *yatgtypes.Video
	Voice    *yatgtypes.Voice
	Contact  *yatgtypes.Contact
	Location *yatgtypes.Location
	Venue    *yatgtypes.Venue
	Generate []AttachmentKind

	// At most one service field, only in groups and supergroups.
	NewChatMembers       []yatgtypes.User
	LeftChatMember       *yatgtypes.User
	NewChatTitle         string
	NewChatPhoto         []yatgtypes.PhotoSize
	GenerateNewChatPhoto bool
	PinnedMessage        *yatgtypes.Message
}

// EditOptions describes an edit of Message. A nil Message edits a freshly
// generated one. Empty Text and Caption keep the current values.
type EditOptions struct {
	Message   *yatgtypes.Message
	Text      string
	Caption   string
	ParseMode yaentityparser.Dialect
	EditDate  time.Time
}

type MessageGenerator struct {
	src     *source
	bot     *yatgtypes.User
	users   *UserGenerator
	chats   *ChatGenerator
	wrapper *yaupdate.Wrapper
	lastID  atomic.Int64
}

func NewMessageGenerator(opts ...Option) *MessageGenerator {
	return New(opts...).Messages
}

// Bot returns the identity used for bot-sent messages.
func (g *MessageGenerator) Bot() *yatgtypes.User {
	return g.bot
}

// GetMessage returns an update carrying a new message.
//
// Channel chats are rejected; use GetChannelPost for them. Markup errors from
// ParseMode are returned as they come from yaentityparser.
func (g *MessageGenerator) GetMessage(opts MessageOptions) (*yatgtypes.Update, yaerrors.Error) {
	msg, err := g.NewMessage(opts)
	if err != nil {
		return nil, err
	}

	return g.wrapper.Message(msg), nil
}

// NewMessage is GetMessage without the update envelope.
func (g *MessageGenerator) NewMessage(opts MessageOptions) (*yatgtypes.Message, yaerrors.Error) {
	user, chat, err := g.userAndChat(opts.User, opts.Chat, !opts.Group)
	if err != nil {
		return nil, err.Wrap("generate message")
	}

	if chat.Type == yatgtypes.ChatTypeChannel {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadChat,
			"generate message: use GetChannelPost for channel chats",
		)
	}

	return g.build(opts, user, chat)
}

// GetChannelPost returns an update carrying a post in a channel. Chat defaults to a
// new channel and must be one; User, when set, becomes the author.
func (g *MessageGenerator) GetChannelPost(opts MessageOptions) (*yatgtypes.Update, yaerrors.Error) {
	msg, err := g.NewChannelPost(opts)
	if err != nil {
		return nil, err
	}

	return g.wrapper.ChannelPost(msg), nil
}

// NewChannelPost is GetChannelPost without the update envelope.
func (g *MessageGenerator) NewChannelPost(opts MessageOptions) (*yatgtypes.Message, yaerrors.Error) {
	chat := opts.Chat
	if chat == nil {
		var err yaerrors.Error
		if chat, err = g.chats.GetChat(ChatOptions{Type: yatgtypes.ChatTypeChannel}); err != nil {
			return nil, err.Wrap("generate channel post")
		}
	}

	if chat.Type != yatgtypes.ChatTypeChannel {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadChat,
			"generate channel post: chat.type must be channel, got "+string(chat.Type),
		)
	}

	return g.build(opts, opts.User, chat)
}

// GetEditedMessage returns an update carrying an edited message.
func (g *MessageGenerator) GetEditedMessage(opts EditOptions) (*yatgtypes.Update, yaerrors.Error) {
	base := opts.Message
	if base == nil {
		var err yaerrors.Error
		if base, err = g.NewMessage(MessageOptions{}); err != nil {
			return nil, err
		}
	}

	msg, err := g.edit(base, opts)
	if err != nil {
		return nil, err
	}

	return g.wrapper.EditedMessage(msg), nil
}

// GetEditedChannelPost returns an update carrying an edited channel post.
func (g *MessageGenerator) GetEditedChannelPost(opts EditOptions) (*yatgtypes.Update, yaerrors.Error) {
	base := opts.Message
	if base == nil {
		var err yaerrors.Error
		if base, err = g.NewChannelPost(MessageOptions{}); err != nil {
			return nil, err
		}
	}

	if base.Chat == nil || base.Chat.Type != yatgtypes.ChatTypeChannel {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadChat,
			"generate edited channel post: message is not from a channel",
		)
	}

	msg, err := g.edit(base, opts)
	if err != nil {
		return nil, err
	}

	return g.wrapper.EditedChannelPost(msg), nil
}

func (g *MessageGenerator) edit(base *yatgtypes.Message, opts EditOptions) (*yatgtypes.Message, yaerrors.Error) {
	msg := *base

	if opts.Text != "" {
		msg.Text, msg.Entities = opts.Text, nil
	}

	if opts.Caption != "" {
		msg.Caption, msg.CaptionEntities = opts.Caption, nil
	}

	if err := parseMarkup(&msg, opts.ParseMode, opts.Text != "", opts.Caption != ""); err != nil {
		return nil, err
	}

	msg.EditDate = unix(opts.EditDate)

	return &msg, nil
}

func (g *MessageGenerator) userAndChat(
	user *yatgtypes.User,
	chat *yatgtypes.Chat,
	private bool,
) (*yatgtypes.User, *yatgtypes.Chat, yaerrors.Error) {
	var err yaerrors.Error

	switch {
	case chat != nil && user != nil:
	case chat != nil:
		if chat.Type == yatgtypes.ChatTypePrivate {
			user = g.users.GetUser(UserOptions{
				ID:        chat.ID,
				FirstName: chat.FirstName,
				LastName:  chat.LastName,
				Username:  chat.Username,
			})
		} else {
			user = g.users.GetUser(UserOptions{})
		}
	case user != nil && private:
		chat, err = g.chats.GetChat(ChatOptions{User: user})
	case user != nil:
		chat, err = g.chats.GetChat(ChatOptions{Type: yatgtypes.ChatTypeGroup})
	case private:
		user = g.users.GetUser(UserOptions{})
		chat, err = g.chats.GetChat(ChatOptions{User: user})
	default:
		user = g.users.GetUser(UserOptions{})
		chat, err = g.chats.GetChat(ChatOptions{Type: yatgtypes.ChatTypeGroup})
	}

	return user, chat, err
}

// build fills a message for a resolved author and chat. user may be nil for
// anonymous channel posts.
func (g *MessageGenerator) build(
	opts MessageOptions,
	user *yatgtypes.User,
	chat *yatgtypes.Chat,
) (*yatgtypes.Message, yaerrors.Error) {
	msg := &yatgtypes.Message{
		MessageID:      int(g.lastID.Add(1)),
		From:           user,
		Date:           time.Now().Unix(),
		Chat:           chat,
		ReplyToMessage: opts.ReplyToMessage,
		Text:           opts.Text,
		Caption:        opts.Caption,
	}

	if err := g.forward(msg, opts); err != nil {
		return nil, err.Wrap("generate message")
	}

	if err := g.status(msg, opts); err != nil {
		return nil, err.Wrap("generate message")
	}

	if err := g.attachments(msg, opts); err != nil {
		return nil, err.Wrap("generate message")
	}

	if err := parseMarkup(msg, opts.ParseMode, msg.Text != "", msg.Caption != ""); err != nil {
		return nil, err
	}

	return msg, nil
}

func (g *MessageGenerator) forward(msg *yatgtypes.Message, opts MessageOptions) yaerrors.Error {
	if opts.ForwardFrom == nil && opts.ForwardFromChat == nil {
		return nil
	}

	msg.ForwardFrom = opts.ForwardFrom
	msg.ForwardDate = unix(opts.ForwardDate)

	if opts.ForwardFromChat != nil {
		if opts.ForwardFromChat.Type != yatgtypes.ChatTypeChannel {
			return yaerrors.FromError(
				http.StatusBadRequest,
				ErrBadChat,
				"forward_from_chat must be a channel, got "+string(opts.ForwardFromChat.Type),
			)
		}

		msg.ForwardFromChat = opts.ForwardFromChat
		msg.ForwardFromMessageID = opts.ForwardFromMessageID

		if msg.ForwardFromMessageID == 0 {
			msg.ForwardFromMessageID = int(g.src.between(1, maxForwardedMessageID))
		}

		if msg.ForwardFrom == nil {
			msg.ForwardFrom = g.users.GetUser(UserOptions{})
		}
	}

	return nil
}

func (g *MessageGenerator) status(msg *yatgtypes.Message, opts MessageOptions) yaerrors.Error {
	count := countTrue(
		len(opts.NewChatMembers) > 0,
		opts.LeftChatMember != nil,
		opts.NewChatTitle != "",
		len(opts.NewChatPhoto) > 0 || opts.GenerateNewChatPhoto,
		opts.PinnedMessage != nil,
	)

	switch {
	case count == 0:
		return nil
	case count > 1:
		return yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadMessage,
			"more than one status message in one message",
		)
	case !msg.Chat.Type.IsGroup():
		return yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadChat,
			"status messages need a group or supergroup chat, got "+string(msg.Chat.Type),
		)
	}

	msg.NewChatMembers = opts.NewChatMembers
	msg.LeftChatMember = opts.LeftChatMember
	msg.PinnedMessage = opts.PinnedMessage
	msg.NewChatPhoto = opts.NewChatPhoto

	if opts.GenerateNewChatPhoto && len(msg.NewChatPhoto) == 0 {
		msg.NewChatPhoto = g.src.photo()
	}

	if opts.NewChatTitle != "" {
		chat := *msg.Chat
		chat.Title = opts.NewChatTitle
		msg.Chat = &chat
		msg.NewChatTitle = opts.NewChatTitle
	}

	return nil
}

func (g *MessageGenerator) attachments(msg *yatgtypes.Message, opts MessageOptions) yaerrors.Error {
	count := len(opts.Generate) + countTrue(
		len(opts.Photo) > 0,
		opts.Audio != nil,
		opts.Document != nil,
		opts.Sticker != nil,
		opts.Video != nil,
		opts.Voice != nil,
		opts.Contact != nil,
		opts.Location != nil,
		opts.Venue != nil,
	)

	switch {
	case count > 1:
		return yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadMessage,
			"more than one attachment in one message",
		)
	case count == 0 && opts.Caption != "":
		return yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadMessage,
			"caption without an attachment",
		)
	}

	msg.Photo = opts.Photo
	msg.Audio = opts.Audio
	msg.Document = opts.Document
	msg.Sticker = opts.Sticker
	msg.Video = opts.Video
	msg.Voice = opts.Voice
	msg.Contact = opts.Contact
	msg.Location = opts.Location
	msg.Venue = opts.Venue

	for _, kind := range opts.Generate {
		if !g.attach(msg, kind) {
			return yaerrors.FromError(
				http.StatusBadRequest,
				ErrBadMessage,
				"unknown attachment kind "+string(kind),
			)
		}
	}

	return nil
}

// parseMarkup runs the parser over the text fields that were set in this call.
// An unknown dialect is reported even when there is no text to parse.
func parseMarkup(msg *yatgtypes.Message, mode yaentityparser.Dialect, text, caption bool) yaerrors.Error {
	if mode == "" {
		return nil
	}

	parser, err := yaentityparser.NewParser(mode)
	if err != nil {
		return err
	}

	if text {
		if msg.Text, msg.Entities, err = parser.Parse(msg.Text); err != nil {
			return err
		}
	}

	if caption {
		if msg.Caption, msg.CaptionEntities, err = parser.Parse(msg.Caption); err != nil {
			return err
		}
	}

	return nil
}

func countTrue(flags ...bool) int {
	n := 0

	for _, f := range flags {
		if f {
			n++
		}
	}

	return n
}

func unix(t time.Time) int64 {
	if t.IsZero() {
		return time.Now().Unix()
	}

	return t.Unix()
}
