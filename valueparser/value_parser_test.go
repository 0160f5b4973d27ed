package valueparser_test

import (
	"errors"
	"testing"

	"github.com/YaCodeDev/GoYaTgMock/valueparser"
	"github.com/YaCodeDev/GoYaTgMock/yaentityparser"
	"github.com/YaCodeDev/GoYaTgMock/yalogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderKind string

func (k *recorderKind) Unmarshal(data string) error {
	switch data {
	case "memory", "redis", "sqlite":
		*k = recorderKind(data)

		return nil
	default:
		return errors.New("unknown recorder " + data)
	}
}

func TestParseValue_Basics(t *testing.T) {
	t.Parallel()

	t.Run("[Int] - parses", func(t *testing.T) {
		t.Parallel()

		v, err := valueparser.ParseValue[int64]("-42")
		require.Nil(t, err)
		assert.Equal(t, int64(-42), v)
	})

	t.Run("[Uint] - parses", func(t *testing.T) {
		t.Parallel()

		v, err := valueparser.ParseValue[uint64]("18446744073709551615")
		require.Nil(t, err)
		assert.Equal(t, uint64(18446744073709551615), v)
	})

	t.Run("[Uint8] - overflow fails", func(t *testing.T) {
		t.Parallel()

		_, err := valueparser.ParseValue[uint8]("300")
		require.NotNil(t, err)
		assert.ErrorIs(t, err, valueparser.ErrInvalidValue)
	})

	t.Run("[Bool] - parses", func(t *testing.T) {
		t.Parallel()

		v, err := valueparser.ParseValue[bool]("true")
		require.Nil(t, err)
		assert.True(t, v)
	})

	t.Run("[Float] - parses", func(t *testing.T) {
		t.Parallel()

		v, err := valueparser.ParseValue[float64]("1.5")
		require.Nil(t, err)
		assert.InDelta(t, 1.5, v, 0)
	})

	t.Run("[String] - passes through", func(t *testing.T) {
		t.Parallel()

		v, err := valueparser.ParseValue[string]("MockBot")
		require.Nil(t, err)
		assert.Equal(t, "MockBot", v)
	})

	t.Run("[Int] - garbage fails", func(t *testing.T) {
		t.Parallel()

		_, err := valueparser.ParseValue[int]("twelve")
		require.NotNil(t, err)
		assert.ErrorIs(t, err, valueparser.ErrInvalidValue)
	})
}

func TestParseValue_Unmarshalers(t *testing.T) {
	t.Parallel()

	t.Run("[TextUnmarshaler] - log level by name", func(t *testing.T) {
		t.Parallel()

		v, err := valueparser.ParseValue[yalogger.Level]("debug")
		require.Nil(t, err)
		assert.Equal(t, yalogger.DebugLevel, v)
	})

	t.Run("[TextUnmarshaler] - log level by number falls back", func(t *testing.T) {
		t.Parallel()

		v, err := valueparser.ParseValue[yalogger.Level]("5")
		require.Nil(t, err)
		assert.Equal(t, yalogger.DebugLevel, v)
	})

	t.Run("[Unmarshalable] - custom string kind", func(t *testing.T) {
		t.Parallel()

		v, err := valueparser.ParseValue[recorderKind]("redis")
		require.Nil(t, err)
		assert.Equal(t, recorderKind("redis"), v)
	})

	t.Run("[Unmarshalable] - rejected value falls back to raw string", func(t *testing.T) {
		t.Parallel()

		v, err := valueparser.ParseValue[recorderKind]("disk")
		require.Nil(t, err)
		assert.Equal(t, recorderKind("disk"), v)

		_, tryErr := valueparser.TryUnmarshal[recorderKind]("disk")
		require.NotNil(t, tryErr)
		assert.ErrorIs(t, tryErr, valueparser.ErrInvalidValue)
	})

	t.Run("[TryUnmarshal] - plain type has no unmarshaler", func(t *testing.T) {
		t.Parallel()

		_, err := valueparser.TryUnmarshal[yaentityparser.Dialect]("HTML")
		require.NotNil(t, err)
		assert.ErrorIs(t, err, valueparser.ErrUnparsableValue)
	})
}
