package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"shopseva/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(t *testing.T, debug bool) (*gormSlogLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Persistence.SlowQueryThreshold = 100 * time.Millisecond

	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC)

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
		notWant string
	}{
		{name: "error logged", elapsed: time.Millisecond, err: sql.ErrConnDone, want: "GORM query failed"},
		{name: "not found ignored", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound, notWant: "GORM"},
		{name: "slow query warned", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast query silent at warn", elapsed: time.Millisecond, notWant: "GORM"},
		{name: "fast query logged in debug", debug: true, elapsed: time.Millisecond, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(t, tt.debug)
			l.now = func() time.Time { return now }

			l.Trace(context.Background(), now.Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.notWant != "" {
				assert.NotContains(t, buf.String(), tt.notWant)
			}
		})
	}
}

func TestGormSlogLogger_LogModeSilent(t *testing.T) {
	l, buf := newBufferedGormLogger(t, true)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now().Add(-time.Hour), sqlFn, sql.ErrConnDone)
	silent.Info(context.Background(), "hello %s", "world")

	assert.Empty(t, buf.String())
	assert.Equal(t, logger.Info, l.level)
}

func TestLogPoolWait(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logPoolWait(context.Background(), log, sql.DBStats{}, sql.DBStats{})
	assert.Empty(t, buf.String())

	logPoolWait(context.Background(), log, sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: time.Second})
	assert.Contains(t, buf.String(), "Postgres pool wait detected")
}
