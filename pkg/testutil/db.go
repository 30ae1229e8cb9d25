// Package testutil backs the dal and service tests with an in-memory SQLite
// database migrated with the production schema and an in-process redis.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/database"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, atomic.AddInt64(&dbSeq, 1))
	cfg := database.Config()
	cfg.PrepareStmt = false
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// keep the in-memory database alive for the whole test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// SeedUser inserts an account row so lookups that inline users succeed.
func SeedUser(t *testing.T, db *gorm.DB, id int64, name string) *model.User {
	t.Helper()
	u := &model.User{UserId: id, UserName: name, Email: name + "@example.com"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %d: %v", id, err)
	}
	return u
}

func SeedVideo(t *testing.T, db *gorm.DB, v *model.Video) *model.Video {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed video %d: %v", v.VideoId, err)
	}
	return v
}

// NewRedis starts an in-process redis and installs it as the shared cache
// client for the duration of the test.
func NewRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(client)
	t.Cleanup(func() {
		cache.SetClient(nil)
		_ = client.Close()
	})
	return mr
}
