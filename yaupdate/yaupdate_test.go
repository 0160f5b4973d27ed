package yaupdate_test

import (
	"sync"
	"testing"

	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
	"github.com/YaCodeDev/GoYaTgMock/yaupdate"
	"github.com/stretchr/testify/assert"
)

func TestWrapper_Slots(t *testing.T) {
	t.Parallel()

	w := yaupdate.NewWrapper()
	msg := &yatgtypes.Message{MessageID: 7}

	updates := []struct {
		update *yatgtypes.Update
		kind   yatgtypes.UpdateKind
	}{
		{w.Message(msg), yatgtypes.UpdateKindMessage},
		{w.EditedMessage(msg), yatgtypes.UpdateKindEditedMessage},
		{w.ChannelPost(msg), yatgtypes.UpdateKindChannelPost},
		{w.EditedChannelPost(msg), yatgtypes.UpdateKindEditedChannelPost},
		{w.InlineQuery(&yatgtypes.InlineQuery{ID: "q"}), yatgtypes.UpdateKindInlineQuery},
		{w.ChosenInlineResult(&yatgtypes.ChosenInlineResult{ResultID: "r"}), yatgtypes.UpdateKindChosenInlineResult},
		{w.CallbackQuery(&yatgtypes.CallbackQuery{ID: "c"}), yatgtypes.UpdateKindCallbackQuery},
	}

	for i, u := range updates {
		assert.Equal(t, int64(i+1), u.update.UpdateID)
		assert.Equal(t, u.kind, u.update.Kind())
	}
}

func TestWrapper_ConcurrentIDsAreUnique(t *testing.T) {
	t.Parallel()

	const workers, perWorker = 8, 100

	w := yaupdate.NewWrapper()

	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range perWorker {
				id := w.Message(&yatgtypes.Message{}).UpdateID

				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
