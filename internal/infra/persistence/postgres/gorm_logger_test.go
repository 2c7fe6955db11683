package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	deliverycontext "photoverify/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func statement() (string, int64) {
	return "SELECT * FROM submissions", 3
}

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		elapsed  time.Duration
		err      error
		contains string
	}{
		{name: "failed statement", err: errors.New("relation missing"), contains: "GORM query failed"},
		{name: "record not found ignored", err: gorm.ErrRecordNotFound},
		{name: "slow statement", elapsed: time.Second, contains: "GORM slow query"},
		{name: "fast statement hidden outside debug"},
		{name: "fast statement in debug", debug: true, contains: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), statement, tt.err)

			if tt.contains == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.contains)
			assert.Contains(t, buf.String(), "rows=3")
		})
	}
}

func TestGormLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormLogger(slog.New(slog.NewTextHandler(&base, nil)), false)

	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)).With("request_id", "req-7"))
	l.Error(ctx, "pool exhausted after %d waits", 4)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-7")
	assert.Contains(t, scoped.String(), "pool exhausted after 4 waits")
}

func TestGormLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormLogger(slog.New(slog.NewTextHandler(&buf, nil)), true).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), statement, errors.New("boom"))
	l.Error(context.Background(), "boom")

	assert.Empty(t, buf.String())
}
