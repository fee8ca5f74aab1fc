package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/killallgit/nzwalks-api/pkg/config"
	apperrors "github.com/killallgit/nzwalks-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{name: "in-memory database", dbPath: ":memory:"},
		{name: "file database", dbPath: filepath.Join(t.TempDir(), "test.db")},
		{name: "file database in missing directory", dbPath: filepath.Join(t.TempDir(), "nested", "dir", "test.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)
			require.NoError(t, err)
			require.NotNil(t, conn)
			defer conn.Close()

			assert.NotNil(t, conn.DB)
			assert.NoError(t, conn.HealthCheck())
		})
	}
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)

	require.NoError(t, conn.Close())
	assert.Error(t, conn.HealthCheck(), "HealthCheck should fail after database is closed")
}

func TestDB_HealthCheck(t *testing.T) {
	tests := []struct {
		name      string
		setupConn func() (*DB, func())
		wantErr   bool
	}{
		{
			name: "healthy connection",
			setupConn: func() (*DB, func()) {
				conn, _ := Initialize(":memory:", false)
				return conn, func() { conn.Close() }
			},
		},
		{
			name: "closed connection",
			setupConn: func() (*DB, func()) {
				conn, _ := Initialize(":memory:", false)
				conn.Close()
				return conn, func() {}
			},
			wantErr: true,
		},
		{
			name: "nil connection",
			setupConn: func() (*DB, func()) {
				return nil, func() {}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, cleanup := tt.setupConn()
			defer cleanup()

			err := conn.HealthCheck()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDB_AutoMigrate(t *testing.T) {
	type TestModel struct {
		gorm.Model
		Name string
	}

	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.AutoMigrate(context.Background(), &TestModel{}))

	var count int64
	err = conn.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='test_models'").Scan(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.NoError(t, conn.AutoMigrate(context.Background()))
}

func TestDB_Transaction(t *testing.T) {
	type TestRecord struct {
		gorm.Model
		Value string
	}

	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.AutoMigrate(context.Background(), &TestRecord{}))

	err = conn.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&TestRecord{Value: "rollback-test"}).Error; err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})
	assert.Error(t, err)

	var count int64
	conn.DB.Model(&TestRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestConnect_SQLite3(t *testing.T) {
	conn, err := Connect(context.Background(), "sqlite3", ":memory:", DefaultPoolOptions())
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, conn.HealthCheck())
	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)

	require.NoError(t, conn.Close())
	assert.Error(t, conn.HealthCheck())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		wantType interface{}
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "sqlite driver opens gorm connection",
			cfg:      config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "open.db")},
			wantType: &DB{},
		},
		{
			name:     "unsupported driver",
			cfg:      config.DatabaseConfig{Driver: "oracle"},
			wantCode: apperrors.ErrCodeConfigInvalid,
		},
		{
			name:     "unreachable postgres",
			cfg:      config.DatabaseConfig{Driver: config.DriverPostgres, DSN: "postgres://nobody@127.0.0.1:1/nzwalks?sslmode=disable&connect_timeout=1"},
			wantCode: apperrors.ErrCodeDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Open(ctx, tt.cfg)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Nil(t, conn)
				assert.True(t, apperrors.Is(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			defer conn.Close()
			assert.IsType(t, tt.wantType, conn)
			assert.NoError(t, conn.HealthCheck())
		})
	}
}
