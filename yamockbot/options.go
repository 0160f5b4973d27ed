package yamockbot

import (
	"github.com/YaCodeDev/GoYaTgMock/yaentityparser"
	"github.com/YaCodeDev/GoYaTgMock/yalogger"
	"github.com/YaCodeDev/GoYaTgMock/yarecorder"
)

type options struct {
	username string
	recorder yarecorder.Recorder
	log      yalogger.Logger
	seed     uint64
}

type Option func(*options)

// WithUsername sets the bot username. Defaults to MockBot.
func WithUsername(username string) Option {
	return func(o *options) {
		o.username = username
	}
}

// WithRecorder stores sent calls in rec instead of memory.
func WithRecorder(rec yarecorder.Recorder) Option {
	return func(o *options) {
		o.recorder = rec
	}
}

func WithLogger(log yalogger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithSeed makes the echoed messages reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// SendOptions are the optional fields shared by every message-sending method.
// ReplyMarkup is recorded as JSON; a string is recorded as is.
type SendOptions struct {
	DisableNotification bool
	ReplyToMessageID    int
	ReplyMarkup         any
}

type TextOptions struct {
	SendOptions

	ParseMode             yaentityparser.Dialect
	DisableWebPagePreview bool
}

type CaptionOptions struct {
	SendOptions

	Caption string
}

type AudioOptions struct {
	SendOptions

	Caption   string
	Duration  int
	Performer string
	Title     string
}

type DocumentOptions struct {
	SendOptions

	Caption  string
	FileName string
}

// MediaOptions serve SendVideo and SendVoice.
type MediaOptions struct {
	SendOptions

	Caption  string
	Duration int
}

type VenueOptions struct {
	SendOptions

	FoursquareID string
}

type ContactOptions struct {
	SendOptions

	LastName string
}

// EditTarget picks the edited message: either InlineMessageID, or both ChatID
// and MessageID.
type EditTarget struct {
	ChatID          int64
	MessageID       int
	InlineMessageID string
}

type EditTextOptions struct {
	EditTarget

	ParseMode             yaentityparser.Dialect
	DisableWebPagePreview bool
	ReplyMarkup           any
}

type EditCaptionOptions struct {
	EditTarget

	Caption     string
	ReplyMarkup any
}

type EditReplyMarkupOptions struct {
	EditTarget

	ReplyMarkup any
}

// InlineQueryAnswerOptions mirror answerInlineQuery. A nil CacheTime means 300.
type InlineQueryAnswerOptions struct {
	CacheTime         *int
	IsPersonal        bool
	NextOffset        *string
	SwitchPMText      string
	SwitchPMParameter string
}

type CallbackQueryAnswerOptions struct {
	Text      string
	ShowAlert bool
	URL       string
	CacheTime *int
}

// ProfilePhotosOptions mirror getUserProfilePhotos. A zero Limit means 100.
type ProfilePhotosOptions struct {
	Offset int
	Limit  int
}

type GameScoreOptions struct {
	EditTarget

	Force              *bool
	DisableEditMessage *bool
}
