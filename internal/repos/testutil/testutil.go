package testutil

import (
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/sunomirror-backend/internal/db"
	"github.com/yungbote/sunomirror-backend/internal/platform/logger"
	"github.com/yungbote/sunomirror-backend/internal/types"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a throwaway sqlite database in the test's temp dir and migrates
// the full schema, so each test gets isolated state with no external
// Postgres dependency.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	if err := db.SetupJoinTables(gdb); err != nil {
		tb.Fatalf("failed to set up join tables: %v", err)
	}
	if err := gdb.AutoMigrate(
		&types.Profile{},
		&types.Clip{},
		&types.Playlist{},
		&types.PlaylistClip{},
	); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return gdb
}
