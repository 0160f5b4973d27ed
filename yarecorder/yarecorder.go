// Package yarecorder stores the calls a mock bot "sends" so tests can assert on
// them afterwards.
//
// Three backends share the Recorder interface:
//   - Memory keeps calls in a slice and is the default.
//   - Redis appends MessagePack records to a list, so several processes can
//     share one history.
//   - Gorm writes one row per call through any gorm dialector.
//
// Example usage:
//
//	rec := yarecorder.NewMemory()
//	_ = rec.Record(ctx, yarecorder.NewSentCall("sendMessage", map[string]any{"chat_id": 1}))
//
//	calls, _ := rec.All(ctx)
//	fmt.Println(calls[0].Method) // sendMessage
package yarecorder

import (
	"context"
	"time"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
)

// SentCall is one recorded Bot API call.
type SentCall struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params,omitempty"`
	At     time.Time      `json:"at"`
}

// NewSentCall stamps a call with the current time.
func NewSentCall(method string, params map[string]any) SentCall {
	return SentCall{
		Method: method,
		Params: params,
		At:     time.Now().UTC(),
	}
}

// Param returns a string parameter, or "" when it is missing or not a string.
func (c SentCall) Param(key string) string {
	value, _ := c.Params[key].(string)

	return value
}

// Recorder is the storage behind a mock bot. Implementations are safe for
// concurrent use and return calls in the order they were recorded.
type Recorder interface {
	// Record appends a call.
	//
	// Example usage:
	//
	//	err := rec.Record(ctx, yarecorder.NewSentCall("getMe", nil))
	Record(ctx context.Context, call SentCall) yaerrors.Error

	// All returns every recorded call, oldest first.
	All(ctx context.Context) ([]SentCall, yaerrors.Error)

	// Reset drops all recorded calls.
	Reset(ctx context.Context) yaerrors.Error
}
