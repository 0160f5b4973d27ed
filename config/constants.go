package config

const (
	DotEnvFile    = ".env"
	DotEnvKVParts = 2

	envPrefix = "YATGMOCK_"

	EnvBotUsername = envPrefix + "BOT_USERNAME"
	EnvSeed        = envPrefix + "SEED"
	EnvLogLevel    = envPrefix + "LOG_LEVEL"
	EnvRecorder    = envPrefix + "RECORDER"
	EnvRedisAddr   = envPrefix + "REDIS_ADDR"
	EnvRedisKey    = envPrefix + "REDIS_KEY"
	EnvSQLiteDSN   = envPrefix + "SQLITE_DSN"
)

// RecorderKind selects where a mock bot keeps its sent calls.
type RecorderKind string

const (
	RecorderMemory RecorderKind = "memory"
	RecorderRedis  RecorderKind = "redis"
	RecorderSQLite RecorderKind = "sqlite"
)

const (
	defaultBotUsername = "MockBot"
	defaultRedisAddr   = "127.0.0.1:6379"
	defaultRedisKey    = "yatgmock:sent"
	defaultSQLiteDSN   = "file::memory:?cache=shared"
)
