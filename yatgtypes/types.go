// Package yatgtypes holds the Bot API shaped records produced by the generators and
// the mock bot: users, chats, messages, media, queries and the Update envelope.
//
// Records are plain values with json tags; yaencoding reuses those tags for
// MessagePack so a record looks the same in both encodings.
package yatgtypes

import "strings"

type ChatType string

const (
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

// IsGroup reports whether members other than the bot and one user can post.
func (c ChatType) IsGroup() bool {
	return c == ChatTypeGroup || c == ChatTypeSupergroup
}

type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Name returns "@username" when the user has one, otherwise the full name.
func (u *User) Name() string {
	if u.Username != "" {
		return "@" + u.Username
	}

	return u.FullName()
}

type Chat struct {
	ID                          int64    `json:"id"`
	Type                        ChatType `json:"type"`
	Title                       string   `json:"title,omitempty"`
	Username                    string   `json:"username,omitempty"`
	FirstName                   string   `json:"first_name,omitempty"`
	LastName                    string   `json:"last_name,omitempty"`
	AllMembersAreAdministrators bool     `json:"all_members_are_administrators,omitempty"`
}

type PhotoSize struct {
	FileID   string `json:"file_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FileSize int    `json:"file_size,omitempty"`
}

type Audio struct {
	FileID    string `json:"file_id"`
	Duration  int    `json:"duration"`
	Performer string `json:"performer,omitempty"`
	Title     string `json:"title,omitempty"`
	MimeType  string `json:"mime_type,omitempty"`
	FileSize  int    `json:"file_size,omitempty"`
}

type Document struct {
	FileID   string     `json:"file_id"`
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	FileName string     `json:"file_name,omitempty"`
	MimeType string     `json:"mime_type,omitempty"`
	FileSize int        `json:"file_size,omitempty"`
}

type Sticker struct {
	FileID   string     `json:"file_id"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	Emoji    string     `json:"emoji,omitempty"`
	FileSize int        `json:"file_size,omitempty"`
}

type Video struct {
	FileID   string     `json:"file_id"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Duration int        `json:"duration"`
	Thumb    *PhotoSize `json:"thumb,omitempty"`
	MimeType string     `json:"mime_type,omitempty"`
	FileSize int        `json:"file_size,omitempty"`
}

type Voice struct {
	FileID   string `json:"file_id"`
	Duration int    `json:"duration"`
	MimeType string `json:"mime_type,omitempty"`
	FileSize int    `json:"file_size,omitempty"`
}

type Contact struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	UserID      int64  `json:"user_id,omitempty"`
}

type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type Venue struct {
	Location     Location `json:"location"`
	Title        string   `json:"title"`
	Address      string   `json:"address"`
	FoursquareID string   `json:"foursquare_id,omitempty"`
}

type File struct {
	FileID   string `json:"file_id"`
	FileSize int    `json:"file_size,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

type UserProfilePhotos struct {
	TotalCount int           `json:"total_count"`
	Photos     [][]PhotoSize `json:"photos"`
}

type ChatMember struct {
	User   User   `json:"user"`
	Status string `json:"status"`
}

type GameHighScore struct {
	Position int  `json:"position"`
	User     User `json:"user"`
	Score    int  `json:"score"`
}

// Message is a chat message. At most one attachment field and at most one
// service field (NewChatMembers .. PinnedMessage) is set by the generators.
type Message struct {
	MessageID            int             `json:"message_id"`
	From                 *User           `json:"from,omitempty"`
	Date                 int64           `json:"date"`
	Chat                 *Chat           `json:"chat"`
	ForwardFrom          *User           `json:"forward_from,omitempty"`
	ForwardFromChat      *Chat           `json:"forward_from_chat,omitempty"`
	ForwardFromMessageID int             `json:"forward_from_message_id,omitempty"`
	ForwardDate          int64           `json:"forward_date,omitempty"`
	ReplyToMessage       *Message        `json:"reply_to_message,omitempty"`
	EditDate             int64           `json:"edit_date,omitempty"`
	Text                 string          `json:"text,omitempty"`
	Entities             []MessageEntity `json:"entities,omitempty"`
	Caption              string          `json:"caption,omitempty"`
	CaptionEntities      []MessageEntity `json:"caption_entities,omitempty"`
	Audio                *Audio          `json:"audio,omitempty"`
	Document             *Document       `json:"document,omitempty"`
	Photo                []PhotoSize     `json:"photo,omitempty"`
	Sticker              *Sticker        `json:"sticker,omitempty"`
	Video                *Video          `json:"video,omitempty"`
	Voice                *Voice          `json:"voice,omitempty"`
	Contact              *Contact        `json:"contact,omitempty"`
	Location             *Location       `json:"location,omitempty"`
	Venue                *Venue          `json:"venue,omitempty"`
	NewChatMembers       []User          `json:"new_chat_members,omitempty"`
	LeftChatMember       *User           `json:"left_chat_member,omitempty"`
	NewChatTitle         string          `json:"new_chat_title,omitempty"`
	NewChatPhoto         []PhotoSize     `json:"new_chat_photo,omitempty"`
	PinnedMessage        *Message        `json:"pinned_message,omitempty"`
}

type CallbackQuery struct {
	ID              string   `json:"id"`
	From            *User    `json:"from"`
	Message         *Message `json:"message,omitempty"`
	InlineMessageID string   `json:"inline_message_id,omitempty"`
	ChatInstance    string   `json:"chat_instance"`
	Data            string   `json:"data,omitempty"`
	GameShortName   string   `json:"game_short_name,omitempty"`
}

type InlineQuery struct {
	ID       string    `json:"id"`
	From     *User     `json:"from"`
	Location *Location `json:"location,omitempty"`
	Query    string    `json:"query"`
	Offset   string    `json:"offset"`
}

type ChosenInlineResult struct {
	ResultID        string    `json:"result_id"`
	From            *User     `json:"from"`
	Location        *Location `json:"location,omitempty"`
	InlineMessageID string    `json:"inline_message_id,omitempty"`
	Query           string    `json:"query"`
}
