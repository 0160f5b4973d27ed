// Package config reads mock bot settings from the environment and an optional
// .env file.
package config

import (
	"net/http"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yalogger"
)

// Config holds the settings used by yamockbot.NewFromConfig.
type Config struct {
	BotUsername string
	// Seed makes generated records reproducible. Zero picks a random seed.
	Seed     uint64
	LogLevel yalogger.Level

	Recorder  RecorderKind
	RedisAddr string
	RedisKey  string
	SQLiteDSN string
}

// Unmarshal accepts the recorder names understood by Load.
func (k *RecorderKind) Unmarshal(data string) error {
	switch kind := RecorderKind(data); kind {
	case RecorderMemory, RecorderRedis, RecorderSQLite:
		*k = kind

		return nil
	default:
		return ErrUnknownRecorder
	}
}

// Load reads DotEnvFile, then the YATGMOCK_* variables, filling defaults for
// everything that is unset.
//
// Example usage:
//
//	cfg, err := config.Load(log)
//	if err != nil {
//		return err
//	}
//
//	bot, err := yamockbot.NewFromConfig(ctx, cfg, log)
func Load(log yalogger.Logger) (*Config, yaerrors.Error) {
	log = yalogger.OrDefault(log)

	if err := LoadDotEnv(DotEnvFile); err != nil {
		return nil, err.WrapWithLog("failed to load "+DotEnvFile, log)
	}

	var (
		cfg Config
		err yaerrors.Error
	)

	if cfg.BotUsername, err = GetEnv(EnvBotUsername, defaultBotUsername, false, log); err != nil {
		return nil, err
	}

	if cfg.Seed, err = GetEnv[uint64](EnvSeed, 0, false, log); err != nil {
		return nil, err
	}

	if cfg.LogLevel, err = GetEnv(EnvLogLevel, yalogger.InfoLevel, false, log); err != nil {
		return nil, err
	}

	if cfg.Recorder, err = GetEnv(EnvRecorder, RecorderMemory, false, log); err != nil {
		return nil, err
	}

	if err := cfg.Recorder.Unmarshal(string(cfg.Recorder)); err != nil {
		return nil, yaerrors.FromErrorWithLog(
			http.StatusBadRequest,
			err,
			EnvRecorder+" must be memory, redis or sqlite, got "+string(cfg.Recorder),
			log,
		)
	}

	if cfg.RedisAddr, err = GetEnv(EnvRedisAddr, defaultRedisAddr, false, log); err != nil {
		return nil, err
	}

	if cfg.RedisKey, err = GetEnv(EnvRedisKey, defaultRedisKey, false, log); err != nil {
		return nil, err
	}

	if cfg.SQLiteDSN, err = GetEnv(EnvSQLiteDSN, defaultSQLiteDSN, false, log); err != nil {
		return nil, err
	}

	return &cfg, nil
}
