package yarecorder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/YaCodeDev/GoYaTgMock/yaencoding"
	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
	"github.com/YaCodeDev/GoYaTgMock/yalogger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// SentCallRow is the table layout used by Gorm. Payload holds the MessagePack
// encoded params.
type SentCallRow struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Method    string `gorm:"index;not null"`
	Payload   []byte `gorm:"type:blob"`
	CreatedAt time.Time
}

// TableName pins the table name independent of gorm's naming strategy.
func (SentCallRow) TableName() string {
	return "yatgmock_sent_calls"
}

// Gorm stores recorded calls in a SQL table.
type Gorm struct {
	poolDB *gorm.DB
	log    yalogger.Logger
}

// NewGorm migrates the sent call table and returns a Recorder backed by poolDB.
//
// Example:
//
//	poolDB, _ := gorm.Open(sqlite.Open("file:calls.db"), &gorm.Config{})
//	rec, err := yarecorder.NewGorm(ctx, poolDB, log)
func NewGorm(ctx context.Context, poolDB *gorm.DB, log yalogger.Logger) (*Gorm, yaerrors.Error) {
	log = yalogger.OrDefault(log)

	if err := poolDB.WithContext(ctx).AutoMigrate(&SentCallRow{}); err != nil {
		return nil, yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			err,
			"failed to make auto migrate",
			log,
		)
	}

	return &Gorm{poolDB: poolDB, log: log}, nil
}

// NewSQLite opens dsn with the pure Go sqlite driver and returns a Gorm recorder
// on top of it. The pool is limited to one connection so in-memory databases
// are not split between connections.
//
// Example:
//
//	rec, err := yarecorder.NewSQLite(ctx, "file:calls.db", log)
func NewSQLite(ctx context.Context, dsn string, log yalogger.Logger) (*Gorm, yaerrors.Error) {
	log = yalogger.OrDefault(log)

	sqlDB, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			err,
			"failed to open sqlite",
			log,
		)
	}

	sqlDB.SetMaxOpenConns(1)

	poolDB, err := gorm.Open(
		sqlite.Dialector{
			Conn:       sqlDB,
			DriverName: sqliteDriverName,
		},
		&gorm.Config{},
	)
	if err != nil {
		_ = sqlDB.Close()

		return nil, yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			err,
			"failed to connect to sqlite",
			log,
		)
	}

	return NewGorm(ctx, poolDB, log)
}

func (g *Gorm) Record(ctx context.Context, call SentCall) yaerrors.Error {
	payload, yaErr := yaencoding.EncodeMessagePack(call.Params)
	if yaErr != nil {
		return yaErr.WrapWithLog("[GORM] failed to encode params", g.log)
	}

	if err := g.poolDB.WithContext(ctx).Create(&SentCallRow{
		Method:    call.Method,
		Payload:   payload,
		CreatedAt: call.At,
	}).Error; err != nil {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToRecord),
			"[GORM] failed to insert call",
			g.log,
		)
	}

	return nil
}

func (g *Gorm) All(ctx context.Context) ([]SentCall, yaerrors.Error) {
	var rows []SentCallRow

	if err := g.poolDB.WithContext(ctx).
		Model(&SentCallRow{}).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToFetch),
			"[GORM] failed to select calls",
			g.log,
		)
	}

	calls := make([]SentCall, 0, len(rows))

	for _, row := range rows {
		params, yaErr := yaencoding.DecodeMessagePack[map[string]any](row.Payload)
		if yaErr != nil {
			return nil, yaerrors.FromErrorWithLog(
				http.StatusInternalServerError,
				errors.Join(yaErr, ErrFailedToDecode),
				fmt.Sprintf("[GORM] failed to decode payload of row %d", row.ID),
				g.log,
			)
		}

		calls = append(calls, SentCall{
			Method: row.Method,
			Params: *params,
			At:     row.CreatedAt,
		})
	}

	return calls, nil
}

func (g *Gorm) Reset(ctx context.Context) yaerrors.Error {
	if err := g.poolDB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&SentCallRow{}).Error; err != nil {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToReset),
			"[GORM] failed to delete calls",
			g.log,
		)
	}

	return nil
}
