package yaencoding_test

import (
	"testing"

	"github.com/YaCodeDev/GoYaTgMock/yaencoding"
	"github.com/YaCodeDev/GoYaTgMock/yatgtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    int               `json:"id"`
	Name  string            `json:"name"`
	Tags  []string          `json:"tags"`
	Meta  map[string]string `json:"meta"`
	Bytes []byte            `json:"bytes"`
}

func TestMessagePackEncoding_Flow(t *testing.T) {
	t.Parallel()

	t.Run("[RoundTrip] - struct survives", func(t *testing.T) {
		t.Parallel()

		in := sample{
			ID:    7,
			Name:  "RZK",
			Tags:  []string{"a", "b", "c"},
			Meta:  map[string]string{"k1": "v1", "k2": "v2"},
			Bytes: []byte{0, 1, 2, 250, 251, 252},
		}

		data, err := yaencoding.EncodeMessagePack(in)
		require.Nil(t, err)

		out, err := yaencoding.DecodeMessagePack[sample](data)
		require.Nil(t, err)
		require.NotNil(t, out)

		assert.Equal(t, in, *out)
	})

	t.Run("[RoundTrip] - telegram message keeps entities", func(t *testing.T) {
		t.Parallel()

		in := yatgtypes.Message{
			MessageID: 12,
			Date:      1700000000,
			Chat:      &yatgtypes.Chat{ID: 5, Type: yatgtypes.ChatTypePrivate},
			Text:      "hello",
			Entities: []yatgtypes.MessageEntity{
				{Type: yatgtypes.EntityBold, Offset: 0, Length: 5},
			},
		}

		data, err := yaencoding.EncodeMessagePack(in)
		require.Nil(t, err)

		out, err := yaencoding.DecodeMessagePack[yatgtypes.Message](data)
		require.Nil(t, err)

		assert.Equal(t, in, *out)
	})

	t.Run("[Decode] - garbage returns error", func(t *testing.T) {
		t.Parallel()

		out, err := yaencoding.DecodeMessagePack[sample]([]byte{0xc1})
		require.Nil(t, out)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal message pack data")
	})

	t.Run("[Encode] - unsupported value returns error", func(t *testing.T) {
		t.Parallel()

		out, err := yaencoding.EncodeMessagePack(make(chan int))
		require.Nil(t, out)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "failed to marshal chan int")
	})
}
