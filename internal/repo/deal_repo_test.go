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

func newDealRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("deal_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := db.AutoMigrate(&domain.Request{}, &domain.Executor{}, &domain.Offer{}, &domain.Deal{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedOffer(t *testing.T, db *gorm.DB) *domain.Offer {
	t.Helper()
	r := &domain.Request{ClientUserID: 1, Category: "Excavator", Lat: 55, Lon: 37, Mode: domain.ModeAuction}
	if err := CreateRequest(context.Background(), db, r); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	e := &domain.Executor{Categories: "Excavator"}
	if err := CreateExecutor(context.Background(), db, e); err != nil {
		t.Fatalf("seed executor: %v", err)
	}
	o := &domain.Offer{RequestID: r.ID, ExecutorID: e.ID, RateType: domain.RateHour, RateValue: 1000}
	if err := CreateOffer(context.Background(), db, o); err != nil {
		t.Fatalf("seed offer: %v", err)
	}
	return o
}

func TestCreateDeal_StartsWithheld(t *testing.T) {
	db := newDealRepoDB(t)
	o := seedOffer(t, db)

	d, err := CreateDeal(context.Background(), db, o.RequestID, o.ID)
	if err != nil {
		t.Fatalf("CreateDeal: %v", err)
	}
	if d.ID == 0 || d.RequestID != o.RequestID || d.OfferID != o.ID {
		t.Fatalf("unexpected deal: %+v", d)
	}
	if d.ContactsReleased {
		t.Fatalf("new deal must start with contacts withheld")
	}
}

func TestCreateDeal_SecondDealForOfferRejected(t *testing.T) {
	db := newDealRepoDB(t)
	o := seedOffer(t, db)

	if _, err := CreateDeal(context.Background(), db, o.RequestID, o.ID); err != nil {
		t.Fatalf("first CreateDeal: %v", err)
	}
	if _, err := CreateDeal(context.Background(), db, o.RequestID, o.ID); err == nil {
		t.Fatalf("expected unique violation for second deal on the same offer")
	}
}

func TestReleaseDealContacts(t *testing.T) {
	db := newDealRepoDB(t)
	o := seedOffer(t, db)

	d, err := CreateDeal(context.Background(), db, o.RequestID, o.ID)
	if err != nil {
		t.Fatalf("CreateDeal: %v", err)
	}
	if err := ReleaseDealContacts(context.Background(), db, d.ID); err != nil {
		t.Fatalf("ReleaseDealContacts: %v", err)
	}

	got, err := GetDealByOffer(context.Background(), db, o.ID)
	if err != nil {
		t.Fatalf("GetDealByOffer: %v", err)
	}
	if !got.ContactsReleased {
		t.Fatalf("contacts_released not flipped: %+v", got)
	}

	if err := ReleaseDealContacts(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDealByOffer_NotFound(t *testing.T) {
	db := newDealRepoDB(t)
	if _, err := GetDealByOffer(context.Background(), db, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
