// Package yaupdate wraps generated payloads into Update envelopes with increasing
// update ids. Every constructor fills exactly one payload slot.
//
// Example usage:
//
//	w := yaupdate.NewWrapper()
//	u := w.Message(msg) // u.UpdateID == 1, u.Kind() == yatgtypes.UpdateKindMessage
package yaupdate

import (
	"sync/atomic"

	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
)

// Wrapper is safe for concurrent use.
type Wrapper struct {
	lastID atomic.Int64
}

func NewWrapper() *Wrapper {
	return &Wrapper{}
}

// NextID returns the next update id, starting at 1.
func (w *Wrapper) NextID() int64 {
	return w.lastID.Add(1)
}

func (w *Wrapper) Message(m *yatgtypes.Message) *yatgtypes.Update {
	return &yatgtypes.Update{UpdateID: w.NextID(), Message: m}
}

func (w *Wrapper) EditedMessage(m *yatgtypes.Message) *yatgtypes.Update {
	return &yatgtypes.Update{UpdateID: w.NextID(), EditedMessage: m}
}

func (w *Wrapper) ChannelPost(m *yatgtypes.Message) *yatgtypes.Update {
	return &yatgtypes.Update{UpdateID: w.NextID(), ChannelPost: m}
}

func (w *Wrapper) EditedChannelPost(m *yatgtypes.Message) *yatgtypes.Update {
	return &yatgtypes.Update{UpdateID: w.NextID(), EditedChannelPost: m}
}

func (w *Wrapper) InlineQuery(q *yatgtypes.InlineQuery) *yatgtypes.Update {
	return &yatgtypes.Update{UpdateID: w.NextID(), InlineQuery: q}
}

func (w *Wrapper) ChosenInlineResult(r *yatgtypes.ChosenInlineResult) *yatgtypes.Update {
	return &yatgtypes.Update{UpdateID: w.NextID(), ChosenInlineResult: r}
}

func (w *Wrapper) CallbackQuery(q *yatgtypes.CallbackQuery) *yatgtypes.Update {
	return &yatgtypes.Update{UpdateID: w.NextID(), CallbackQuery: q}
}
