package yarecorder

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaTgMock/yaencoding"
	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yalogger"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the list that holds recorded calls when no key is given.
const DefaultRedisKey = "yatgmock:sent"

// Redis keeps recorded calls in a redis list. Each element is a MessagePack
// encoded SentCall.
type Redis struct {
	client *redis.Client
	key    string
	log    yalogger.Logger
}

// NewRedis turns an already-configured *redis.Client into a Recorder that
// appends to key.
//
// Example:
//
//	client, _ := yarecorder.NewRedisClient(ctx, "127.0.0.1:6379", "", 0, log)
//	rec := yarecorder.NewRedis(client, "tests:sent", log)
func NewRedis(client *redis.Client, key string, log yalogger.Logger) *Redis {
	if key == "" {
		key = DefaultRedisKey
	}

	return &Redis{
		client: client,
		key:    key,
		log:    yalogger.OrDefault(log),
	}
}

// NewRedisClient dials addr and performs an initial PING.
func NewRedisClient(
	ctx context.Context,
	addr string,
	password string,
	db int,
	log yalogger.Logger,
) (*redis.Client, yaerrors.Error) {
	log = yalogger.OrDefault(log)

	log.Infof("Redis connecting to addr %s", addr)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			err,
			fmt.Sprintf("[REDIS] failed to connect to %s", addr),
			log,
		)
	}

	log.Infof("Redis connected to addr %s", addr)

	return client, nil
}

// Raw exposes the underlying *redis.Client.
func (r *Redis) Raw() *redis.Client {
	return r.client
}

func (r *Redis) Record(ctx context.Context, call SentCall) yaerrors.Error {
	data, yaErr := yaencoding.EncodeMessagePack(call)
	if yaErr != nil {
		return yaErr.WrapWithLog("[REDIS] failed to encode call", r.log)
	}

	if err := r.client.RPush(ctx, r.key, data).Err(); err != nil {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToRecord),
			fmt.Sprintf("[REDIS] failed `RPUSH` to `%s`", r.key),
			r.log,
		)
	}

	return nil
}

func (r *Redis) All(ctx context.Context) ([]SentCall, yaerrors.Error) {
	raw, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToFetch),
			fmt.Sprintf("[REDIS] failed `LRANGE` of `%s`", r.key),
			r.log,
		)
	}

	calls := make([]SentCall, 0, len(raw))

	for i, item := range raw {
		call, yaErr := yaencoding.DecodeMessagePack[SentCall]([]byte(item))
		if yaErr != nil {
			return nil, yaerrors.FromErrorWithLog(
				http.StatusInternalServerError,
				errors.Join(yaErr, ErrFailedToDecode),
				fmt.Sprintf("[REDIS] failed to decode element %d of `%s`", i, r.key),
				r.log,
			)
		}

		calls = append(calls, *call)
	}

	return calls, nil
}

func (r *Redis) Reset(ctx context.Context) yaerrors.Error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToReset),
			fmt.Sprintf("[REDIS] failed `DEL` of `%s`", r.key),
			r.log,
		)
	}

	return nil
}
