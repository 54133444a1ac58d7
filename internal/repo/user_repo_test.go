package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-broker-backend/internal/domain"
)

func newUserRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("user_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateUser_Error_NoTable(t *testing.T) {
	db := newUserRepoDB(t /* no migrations */)
	u, err := CreateUser(context.Background(), db, 1, "alice", "Alice", domain.RoleClient)
	if err == nil || u != nil {
		t.Fatalf("expected error creating without table, got user=%v err=%v", u, err)
	}
}

func TestCreateUser_Success_PersistsAndSetsFields(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	start := time.Now().UTC().Add(-time.Minute)
	u, err := CreateUser(context.Background(), db, 42, "alice", "Alice A.", domain.RoleClient)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == 0 || u.ChannelID != 42 || u.Handle != "alice" || u.Role != domain.RoleClient {
		t.Fatalf("unexpected User fields: %+v", u)
	}
	if u.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset/really old: %v", u.CreatedAt)
	}
	// round-trip
	var got domain.User
	if err := db.First(&got, "id = ?", u.ID).Error; err != nil {
		t.Fatalf("load created user: %v", err)
	}
	if got.ChannelID != 42 || got.DisplayName != "Alice A." {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestCreateUser_DuplicateChannelRejected(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	if _, err := CreateUser(context.Background(), db, 7, "a", "", ""); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	if _, err := CreateUser(context.Background(), db, 7, "b", "", ""); err == nil {
		t.Fatalf("expected unique violation for duplicate channel id")
	}
}

func TestGetUserByChannel(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	seeded, err := CreateUser(context.Background(), db, 99, "bob", "", domain.RoleExecutor)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := GetUserByChannel(context.Background(), db, 99)
	if err != nil {
		t.Fatalf("GetUserByChannel: %v", err)
	}
	if got.ID != seeded.ID || got.Handle != "bob" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := GetUserByChannel(context.Background(), db, 12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown channel, got %v", err)
	}
}

func TestGetUserByID(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	seeded, err := CreateUser(context.Background(), db, 5, "carol", "", "")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := GetUserByID(context.Background(), db, seeded.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.ChannelID != 5 {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := GetUserByID(context.Background(), db, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestUpdateUserRole(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	u, err := CreateUser(context.Background(), db, 11, "dave", "", "")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateUserRole(context.Background(), db, u.ID, domain.RoleExecutor); err != nil {
		t.Fatalf("UpdateUserRole: %v", err)
	}
	got, err := GetUserByID(context.Background(), db, u.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Role != domain.RoleExecutor {
		t.Fatalf("role = %q; want %q", got.Role, domain.RoleExecutor)
	}

	if err := UpdateUserRole(context.Background(), db, 4242, domain.RoleClient); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing user, got %v", err)
	}
}
