// Package valueparser converts strings from the environment into typed values.
package valueparser

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
)

// ParseValue converts value to T. Types with their own UnmarshalText or
// Unmarshal method are parsed by it first, so "debug" becomes a
// yalogger.Level rather than failing as an integer.
//
// Example usage:
//
//	seed, err := ParseValue[uint64]("42")
//	if err != nil {
//		// Handle error
//	}
func ParseValue[T ParsableType](value string) (T, yaerrors.Error) {
	if val, err := TryUnmarshal[T](value); err == nil {
		return val, nil
	}

	var zero T

	zeroType := reflect.TypeOf(zero)

	var (
		parsed any
		err    error
	)

	switch zeroType.Kind() {
	case reflect.String:
		parsed = value

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err = strconv.ParseInt(value, 10, zeroType.Bits())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parsed, err = strconv.ParseUint(value, 10, zeroType.Bits())

	case reflect.Float32, reflect.Float64:
		parsed, err = strconv.ParseFloat(value, zeroType.Bits())

	case reflect.Bool:
		parsed, err = strconv.ParseBool(value)

	default:
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnparsableValue,
			"parse value: unsupported type "+zeroType.String(),
		)
	}

	if err != nil {
		return zero, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidValue,
			"parse value: "+err.Error(),
		)
	}

	val, ok := reflect.ValueOf(parsed).Convert(zeroType).Interface().(T)
	if !ok {
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrInvalidValue,
			"parse value: value is not convertible to "+zeroType.String(),
		)
	}

	return val, nil
}
