// Package yamockbot is a fake Telegram bot for tests. It never touches the
// network: every API call is recorded, and calls that would send a message
// return a generated one as Telegram would.
//
// Example usage:
//
//	bot := yamockbot.New(yamockbot.WithUsername("ShopBot"))
//
//	msg, err := bot.SendMessage(ctx, 42, "*hi*", yamockbot.TextOptions{
//	    ParseMode: yaentityparser.Markdown,
//	})
//
//	calls, _ := bot.SentMessages(ctx)
//	fmt.Println(calls[0].Method, msg.Entities[0].Type) // sendMessage bold
package yamockbot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/YaCodeDev/GoYaTgMock/config"
	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yalogger"
	"github.com/YaCodeDev/GoYaTgMock/yarecorder"
	"github.com/YaCodeDev/GoYaTgMock/yatggen"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
)

// Mockbot stands in for a Bot API client. It is safe for concurrent use.
type Mockbot struct {
	username string
	recorder yarecorder.Recorder
	log      yalogger.Logger
	gen      *yatggen.Generator

	mu      sync.Mutex
	updates []*yatgtypes.Update
}

func New(opts ...Option) *Mockbot {
	o := options{}

	for _, opt := range opts {
		opt(&o)
	}

	if o.username == "" {
		o.username = defaultUsername
	}

	if o.recorder == nil {
		o.recorder = yarecorder.NewMemory()
	}

	b := &Mockbot{
		username: o.username,
		recorder: o.recorder,
		log:      yalogger.OrDefault(o.log),
	}

	b.gen = yatggen.New(
		yatggen.WithSeed(o.seed),
		yatggen.WithBot(b.GetMe()),
	)

	return b
}

// NewFromConfig builds a Mockbot with the recorder backend selected by cfg.
// A nil log is replaced with a logger at cfg.LogLevel.
func NewFromConfig(ctx context.Context, cfg *config.Config, log yalogger.Logger) (*Mockbot, yaerrors.Error) {
	if log == nil {
		log = yalogger.NewBaseLogger(&yalogger.Config{
			BaseLoggerType: yalogger.Logrus,
			Level:          cfg.LogLevel,
		}).NewLogger()
	}

	var rec yarecorder.Recorder

	switch cfg.Recorder {
	case config.RecorderMemory, "":
		rec = yarecorder.NewMemory()

	case config.RecorderRedis:
		client, err := yarecorder.NewRedisClient(ctx, cfg.RedisAddr, "", 0, log)
		if err != nil {
			return nil, err.Wrap("build mock bot")
		}

		rec = yarecorder.NewRedis(client, cfg.RedisKey, log)

	case config.RecorderSQLite:
		gormRec, err := yarecorder.NewSQLite(ctx, cfg.SQLiteDSN, log)
		if err != nil {
			return nil, err.Wrap("build mock bot")
		}

		rec = gormRec

	default:
		return nil, yaerrors.FromErrorWithLog(
			http.StatusBadRequest,
			ErrUnknownRecorder,
			"build mock bot: "+string(cfg.Recorder),
			log,
		)
	}

	log.Infof("Mock bot @%s records to %s", cfg.BotUsername, recorderName(cfg.Recorder))

	return New(
		WithUsername(cfg.BotUsername),
		WithRecorder(rec),
		WithLogger(log),
		WithSeed(cfg.Seed),
	), nil
}

func recorderName(kind config.RecorderKind) string {
	if kind == "" {
		return string(config.RecorderMemory)
	}

	return string(kind)
}

// GetMe returns the bot's own user: id 0, "Mockbot Bot", IsBot set.
func (b *Mockbot) GetMe() *yatgtypes.User {
	return yatggen.NewBotUser(b.username)
}

func (b *Mockbot) ID() int64 {
	return b.GetMe().ID
}

func (b *Mockbot) Username() string {
	return b.username
}

// Name returns the username with a leading @.
func (b *Mockbot) Name() string {
	return "@" + b.username
}

// Generator returns the generator used for echoed messages. Updates built with
// it share the bot identity and the update id sequence.
func (b *Mockbot) Generator() *yatggen.Generator {
	return b.gen
}

// SentMessages returns every recorded call, oldest first.
func (b *Mockbot) SentMessages(ctx context.Context) ([]yarecorder.SentCall, yaerrors.Error) {
	calls, err := b.recorder.All(ctx)
	if err != nil {
		return nil, err.Wrap("sent messages")
	}

	return calls, nil
}

// Reset forgets all recorded calls.
func (b *Mockbot) Reset(ctx context.Context) yaerrors.Error {
	if err := b.recorder.Reset(ctx); err != nil {
		return err.Wrap("reset")
	}

	return nil
}

// InsertUpdate queues an update for the next GetUpdates call.
func (b *Mockbot) InsertUpdate(update *yatgtypes.Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.updates = append(b.updates, update)
}

// GetUpdates drains the queue in insertion order.
func (b *Mockbot) GetUpdates() []*yatgtypes.Update {
	b.mu.Lock()
	defer b.mu.Unlock()

	updates := b.updates
	b.updates = nil

	return updates
}

func (b *Mockbot) record(ctx context.Context, method string, params map[string]any) yaerrors.Error {
	log := b.log.WithField(yalogger.KeyMethod, method)

	if err := b.recorder.Record(ctx, yarecorder.NewSentCall(method, params)); err != nil {
		return err.WrapWithLog(method, log)
	}

	log.Debugf("Recorded call with %d params", len(params))

	return nil
}

// encodeJSON renders markup and inline results the way the Bot API receives
// them. Strings are assumed to be encoded already.
func encodeJSON(field string, value any) (string, yaerrors.Error) {
	if s, ok := value.(string); ok {
		return s, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return "", yaerrors.FromError(
			http.StatusBadRequest,
			errors.Join(ErrFailedToEncode, err),
			field,
		)
	}

	return string(data), nil
}

func setIf[T comparable](params map[string]any, key string, value T) {
	var zero T

	if value != zero {
		params[key] = value
	}
}

func setReplyMarkup(params map[string]any, markup any) yaerrors.Error {
	if markup == nil {
		return nil
	}

	encoded, err := encodeJSON("reply_markup", markup)
	if err != nil {
		return err
	}

	params["reply_markup"] = encoded

	return nil
}

func (o SendOptions) apply(params map[string]any) yaerrors.Error {
	setIf(params, "reply_to_message_id", o.ReplyToMessageID)
	setIf(params, "disable_notification", o.DisableNotification)

	return setReplyMarkup(params, o.ReplyMarkup)
}

func (t EditTarget) validate(method string) yaerrors.Error {
	if t.InlineMessageID == "" && (t.ChatID == 0 || t.MessageID == 0) {
		return yaerrors.FromError(
			http.StatusBadRequest,
			ErrBadRequest,
			method+": both chat_id and message_id are required when inline_message_id is not specified",
		)
	}

	return nil
}

func (t EditTarget) apply(params map[string]any) {
	setIf(params, "chat_id", t.ChatID)
	setIf(params, "message_id", t.MessageID)
	setIf(params, "inline_message_id", t.InlineMessageID)
}
