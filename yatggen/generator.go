// Package yatggen builds random but valid Telegram records for tests: users, chats,
// messages, callback queries and inline queries.
//
// All generators created from one Generator share a random source, a message id
// sequence and an update id sequence. Pass WithSeed to get the same records on
// every run.
//
// Example usage:
//
//	gen := yatggen.New(yatggen.WithSeed(42))
//
//	update, err := gen.Messages.GetMessage(yatggen.MessageOptions{
//		Text:      "hi *there*",
//		ParseMode: yaentityparser.Markdown,
//	})
package yatggen

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
	"github.com/YaCodeDev/GoYaTgMock/yaupdate"
)

// source is a math/rand generator guarded for concurrent use.
type source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newSource(seed uint64) *source {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &source{rnd: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// between returns a uniform integer in [lo, hi].
func (s *source) between(lo, hi int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo + s.rnd.Int64N(hi-lo+1)
}

func (s *source) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(n)
}

func (s *source) float(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo + s.rnd.Float64()*(hi-lo)
}

func (s *source) digits(n int) string {
	var b strings.Builder

	for range n {
		b.WriteByte(byte('0' + s.intN(10)))
	}

	return b.String()
}

func pick[T any](s *source, list []T) T {
	return list[s.intN(len(list))]
}

// GenID returns an id in the range Telegram uses for users (positive) or for
// groups (negative).
func (s *source) GenID(group bool) int64 {
	if group {
		return s.between(minGroupID, maxGroupID)
	}

	return s.between(minPrivateID, maxPrivateID)
}

type options struct {
	seed    uint64
	bot     *yatgtypes.User
	wrapper *yaupdate.Wrapper
}

type Option func(*options)

// WithSeed makes the generated records reproducible. Zero means a random seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithBot sets the identity used as the author of bot-sent messages.
func WithBot(bot *yatgtypes.User) Option {
	return func(o *options) {
		o.bot = bot
	}
}

// WithWrapper shares an update id sequence with other producers of updates.
func WithWrapper(w *yaupdate.Wrapper) Option {
	return func(o *options) {
		o.wrapper = w
	}
}

func buildOptions(opts []Option) options {
	o := options{}

	for _, opt := range opts {
		opt(&o)
	}

	if o.bot == nil {
		o.bot = NewBotUser(DefaultBotUsername)
	}

	if o.wrapper == nil {
		o.wrapper = yaupdate.NewWrapper()
	}

	return o
}

// Generator bundles every record generator around one random source.
type Generator struct {
	Users           *UserGenerator
	Chats           *ChatGenerator
	Messages        *MessageGenerator
	CallbackQueries *CallbackQueryGenerator
	InlineQueries   *InlineQueryGenerator

	src *source
}

func New(opts ...Option) *Generator {
	o := buildOptions(opts)
	src := newSource(o.seed)

	users := &UserGenerator{src: src}
	chats := &ChatGenerator{src: src, users: users}
	messages := &MessageGenerator{
		src:     src,
		bot:     o.bot,
		users:   users,
		chats:   chats,
		wrapper: o.wrapper,
	}

	return &Generator{
		Users:    users,
		Chats:    chats,
		Messages: messages,
		CallbackQueries: &CallbackQueryGenerator{
			users:    users,
			messages: messages,
			wrapper:  o.wrapper,
		},
		InlineQueries: &InlineQueryGenerator{
			src:     src,
			users:   users,
			wrapper: o.wrapper,
		},
		src: src,
	}
}

// GenID is a shortcut for a random user (group false) or group (group true) id.
func (g *Generator) GenID(group bool) int64 {
	return g.src.GenID(group)
}

// Photo returns the sizes of one random photo, smallest first.
func (g *Generator) Photo() []yatgtypes.PhotoSize {
	return g.src.photo()
}
