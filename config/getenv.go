package config

import (
	"net/http"
	"os"

	"github.com/YaCodeDev/GoYaTgMock/valueparser"
	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yalogger"
)

// GetEnv retrieves the value of an environment variable, parses it to the specified type T,
// and returns it. If the variable is not set or fails to parse, it returns fallback.
// If the variable is required and not usable, it returns ErrValueIsRequired instead.
//
// Example usage:
//
//	seed, err := GetEnv[uint64]("YATGMOCK_SEED", 0, false, log)
func GetEnv[T valueparser.ParsableType](
	key string,
	fallback T,
	required bool,
	log yalogger.Logger,
) (T, yaerrors.Error) {
	log = yalogger.OrDefault(log)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseValue[T](value)
		if err == nil {
			return parsed, nil
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		var zero T

		return zero, yaerrors.FromErrorWithLog(
			http.StatusBadRequest,
			ErrValueIsRequired,
			"environment variable "+key,
			log,
		)
	}

	log.Debugf("Environment variable %s is not set, using default value %v", key, fallback)

	return fallback, nil
}
