package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_Trace(t *testing.T) {
	sql := func() (string, int64) { return "SELECT * FROM regions", 0 }

	tests := []struct {
		name     string
		verbose  bool
		elapsed  time.Duration
		err      error
		wantMsg  string
		wantLvl  string
		wantNone bool
	}{
		{name: "record not found is silent", err: gorm.ErrRecordNotFound, wantNone: true},
		{name: "wrapped record not found is silent", err: errors.Join(errors.New("lookup"), gorm.ErrRecordNotFound), wantNone: true},
		{name: "query error is logged", err: errors.New("no such table: regions"), wantMsg: "query failed", wantLvl: "error"},
		{name: "slow query is logged", elapsed: time.Second, wantMsg: "slow query", wantLvl: "warn"},
		{name: "fast query is quiet by default", wantNone: true},
		{name: "fast query is logged when verbose", verbose: true, wantMsg: "query", wantLvl: "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewGormLogger(zerolog.New(&buf), tt.verbose)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sql, tt.err)

			if tt.wantNone {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), `"message":"`+tt.wantMsg+`"`)
			assert.Contains(t, buf.String(), `"level":"`+tt.wantLvl+`"`)
			assert.Contains(t, buf.String(), `"sql":"SELECT * FROM regions"`)
			assert.Contains(t, buf.String(), `"component":"gorm"`)
		})
	}
}

func TestGormLogger_LogModeSilent(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(zerolog.New(&buf), true).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	l.Error(context.Background(), "failed %s", "x")

	assert.Empty(t, buf.String())
}

func TestGormLogger_MissingRowLookup(t *testing.T) {
	type Record struct {
		ID   uint
		Name string
	}

	var buf bytes.Buffer
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: NewGormLogger(zerolog.New(&buf), false)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&Record{}))

	var rec Record
	err = db.First(&rec, 42).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	err = db.Table("missing").First(&rec).Error
	require.Error(t, err)
	assert.Contains(t, buf.String(), "query failed")
}
