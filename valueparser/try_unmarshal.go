package valueparser

import (
	"encoding"
	"errors"
	"net/http"
	"reflect"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
)

// TryUnmarshal parses value through the type's own UnmarshalText or Unmarshal
// method. It fails with ErrUnparsableValue when T has neither.
//
// Example usage:
//
//	level, err := TryUnmarshal[yalogger.Level]("debug")
func TryUnmarshal[T ParsableType](value string) (T, yaerrors.Error) {
	var zero T

	ptr := reflect.New(reflect.TypeOf(zero))

	var err error

	switch unmarshaler := ptr.Interface().(type) {
	case encoding.TextUnmarshaler:
		err = unmarshaler.UnmarshalText([]byte(value))
	case Unmarshalable:
		err = unmarshaler.Unmarshal(value)
	default:
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnparsableValue,
			"try unmarshal: no unmarshaler for "+ptr.Elem().Type().String(),
		)
	}

	if err != nil {
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(ErrInvalidValue, err),
			"try unmarshal: rejected "+value,
		)
	}

	val, ok := ptr.Elem().Interface().(T)
	if !ok {
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrInvalidValue,
			"try unmarshal: unexpected result type",
		)
	}

	return val, nil
}
