// Package yaencoding wraps MessagePack encoding for records that are stored
// outside the process (redis lists, sqlite blobs).
//
// Struct fields are keyed by their `json` tag so the Telegram records in
// yatgtypes need only one set of tags.
//
// Example usage:
//
//	data, err := yaencoding.EncodeMessagePack(call)
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := yaencoding.DecodeMessagePack[SentCall](data)
package yaencoding

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/vmihailenco/msgpack/v5"
)

const structTag = "json"

// EncodeMessagePack serializes `value` using the MessagePack format.
//
// Example:
//
//	data, err := yaencoding.EncodeMessagePack(myStruct)
func EncodeMessagePack(value any) ([]byte, yaerrors.Error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(structTag)
	enc.SetOmitEmpty(true)

	if err := enc.Encode(value); err != nil {
		return nil, yaerrors.FromError(
			http.StatusInternalServerError,
			err,
			fmt.Sprintf("[ENCODING] failed to marshal %T using message pack format", value),
		)
	}

	return buf.Bytes(), nil
}

// DecodeMessagePack decodes MessagePack data into a value of type T.
//
// Example:
//
//	val, err := yaencoding.DecodeMessagePack[User](data)
func DecodeMessagePack[T any](data []byte) (*T, yaerrors.Error) {
	var res T

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag(structTag)

	if err := dec.Decode(&res); err != nil {
		return nil, yaerrors.FromError(
			http.StatusInternalServerError,
			err,
			fmt.Sprintf("[ENCODING] failed to unmarshal message pack data to `%T`", res),
		)
	}

	return &res, nil
}
