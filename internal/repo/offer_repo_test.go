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

func newOfferRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("offer_repo_test_%d.db", time.Now().UnixNano()))
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

	if err := db.AutoMigrate(&domain.User{}, &domain.Executor{}, &domain.Request{}, &domain.Offer{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// seedRequestAndExecutor creates the parent rows an offer needs.
func seedRequestAndExecutor(t *testing.T, db *gorm.DB) (*domain.Request, *domain.Executor) {
	t.Helper()
	r := &domain.Request{ClientUserID: 1, Category: "Excavator", Lat: 55, Lon: 37, Mode: domain.ModeAuction}
	if err := CreateRequest(context.Background(), db, r); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	e := &domain.Executor{Categories: "Excavator"}
	if err := CreateExecutor(context.Background(), db, e); err != nil {
		t.Fatalf("seed executor: %v", err)
	}
	return r, e
}

func TestCreateOffer_DefaultsToActive(t *testing.T) {
	db := newOfferRepoDB(t)
	r, e := seedRequestAndExecutor(t, db)

	o := &domain.Offer{RequestID: r.ID, ExecutorID: e.ID, RateType: domain.RateHour, RateValue: 1500}
	if err := CreateOffer(context.Background(), db, o); err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}
	if o.ID == 0 || o.Status != domain.OfferActive || o.CreatedAt.IsZero() {
		t.Fatalf("unexpected offer after create: %+v", o)
	}
}

func TestCreateOffer_DuplicatesAllowed(t *testing.T) {
	db := newOfferRepoDB(t)
	r, e := seedRequestAndExecutor(t, db)

	for i := 0; i < 2; i++ {
		o := &domain.Offer{RequestID: r.ID, ExecutorID: e.ID, RateType: domain.RateShift, RateValue: 9000}
		if err := CreateOffer(context.Background(), db, o); err != nil {
			t.Fatalf("CreateOffer #%d: %v", i+1, err)
		}
	}
	var count int64
	if err := db.Model(&domain.Offer{}).Where("request_id = ? AND executor_id = ?", r.ID, e.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected duplicate submissions to append, got %d rows", count)
	}
}

func TestListOffersByRequest_OrderAndCap(t *testing.T) {
	db := newOfferRepoDB(t)
	r, e := seedRequestAndExecutor(t, db)

	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		o := &domain.Offer{
			RequestID:  r.ID,
			ExecutorID: e.ID,
			RateType:   domain.RateHour,
			RateValue:  float64(1000 + i),
			Status:     domain.OfferActive,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := CreateOffer(context.Background(), db, o); err != nil {
			t.Fatalf("seed offer %d: %v", i, err)
		}
	}

	all, err := ListOffersByRequest(context.Background(), db, r.ID, 0)
	if err != nil {
		t.Fatalf("ListOffersByRequest: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 offers, got %d", len(all))
	}
	// Newest first.
	if all[0].RateValue != 1002 || all[2].RateValue != 1000 {
		t.Fatalf("unexpected order: %+v", all)
	}

	capped, err := ListOffersByRequest(context.Background(), db, r.ID, 2)
	if err != nil {
		t.Fatalf("ListOffersByRequest capped: %v", err)
	}
	if len(capped) != 2 || capped[0].RateValue != 1002 {
		t.Fatalf("unexpected capped page: %+v", capped)
	}
}

func TestCountOffersByRequests(t *testing.T) {
	db := newOfferRepoDB(t)
	r1, e := seedRequestAndExecutor(t, db)
	r2 := &domain.Request{ClientUserID: 1, Category: "Loader", Lat: 55, Lon: 37, Mode: domain.ModeCatalog}
	if err := CreateRequest(context.Background(), db, r2); err != nil {
		t.Fatalf("seed r2: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := CreateOffer(context.Background(), db, &domain.Offer{RequestID: r1.ID, ExecutorID: e.ID, RateType: domain.RateHour, RateValue: 1}); err != nil {
			t.Fatalf("seed offer: %v", err)
		}
	}

	counts, err := CountOffersByRequests(context.Background(), db, []uint{r1.ID, r2.ID})
	if err != nil {
		t.Fatalf("CountOffersByRequests: %v", err)
	}
	if counts[r1.ID] != 2 {
		t.Fatalf("expected 2 offers for r1, got %d", counts[r1.ID])
	}
	if _, ok := counts[r2.ID]; ok {
		t.Fatalf("request without offers must be absent from the map")
	}

	empty, err := CountOffersByRequests(context.Background(), db, nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty input should return empty map, got %v err=%v", empty, err)
	}
}

func TestUpdateOfferStatus(t *testing.T) {
	db := newOfferRepoDB(t)
	r, e := seedRequestAndExecutor(t, db)

	o := &domain.Offer{RequestID: r.ID, ExecutorID: e.ID, RateType: domain.RateObject, RateValue: 50000}
	if err := CreateOffer(context.Background(), db, o); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateOfferStatus(context.Background(), db, o.ID, domain.OfferAccepted); err != nil {
		t.Fatalf("UpdateOfferStatus: %v", err)
	}
	got, err := GetOffer(context.Background(), db, o.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != domain.OfferAccepted {
		t.Fatalf("status = %q; want accepted", got.Status)
	}

	if err := UpdateOfferStatus(context.Background(), db, 999, domain.OfferAccepted); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetOfferAcceptance(t *testing.T) {
	db := newOfferRepoDB(t)

	u, err := CreateUser(context.Background(), db, 900, "winner", "", domain.RoleExecutor)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	r := &domain.Request{ClientUserID: 1, Category: "Excavator", Lat: 55, Lon: 37, Mode: domain.ModeAuction}
	if err := CreateRequest(context.Background(), db, r); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	bound := &domain.Executor{UserID: &u.ID, DirectChannelID: ptrI64(900), Categories: "Excavator"}
	if err := CreateExecutor(context.Background(), db, bound); err != nil {
		t.Fatalf("seed executor: %v", err)
	}
	o := &domain.Offer{RequestID: r.ID, ExecutorID: bound.ID, RateType: domain.RateHour, RateValue: 2000}
	if err := CreateOffer(context.Background(), db, o); err != nil {
		t.Fatalf("seed offer: %v", err)
	}

	row, err := GetOfferAcceptance(context.Background(), db, o.ID)
	if err != nil {
		t.Fatalf("GetOfferAcceptance: %v", err)
	}
	if row.OfferID != o.ID || row.RequestID != r.ID || row.ExecutorID != bound.ID {
		t.Fatalf("unexpected keys: %+v", row)
	}
	if row.Status != domain.OfferActive {
		t.Fatalf("status = %q; want active", row.Status)
	}
	if row.ExecutorUserID == nil || *row.ExecutorUserID != u.ID {
		t.Fatalf("expected bound user id resolved, got %+v", row)
	}
	if row.DirectChannelID == nil || *row.DirectChannelID != 900 {
		t.Fatalf("expected direct channel id resolved, got %+v", row)
	}

	if _, err := GetOfferAcceptance(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing offer, got %v", err)
	}
}
