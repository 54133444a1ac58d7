package services

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-broker-backend/internal/domain"
	"github.com/tbourn/go-broker-backend/internal/repo"
)

// ----- Shared fixtures -----

func newServicesDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:brokersvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(
		&domain.User{}, &domain.Executor{}, &domain.Request{},
		&domain.Offer{}, &domain.Deal{}, &domain.Setting{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, channel int64, handle, role string) *domain.User {
	t.Helper()
	u := &domain.User{ChannelID: channel, Handle: handle, Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedRequest(t *testing.T, db *gorm.DB, clientID uint, category, mode string, lat, lon float64) *domain.Request {
	t.Helper()
	r := &domain.Request{
		ClientUserID: clientID,
		Category:     category,
		Description:  "dig a pit",
		AddressText:  "site",
		Lat:          lat,
		Lon:          lon,
		Mode:         mode,
		Status:       domain.StatusPublished,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return r
}

// seedExecutor inserts an active executor at (lat, lon). Pass mut to adjust
// fields; deactivation must go through a forced update because GORM skips
// zero-valued bools on create when a column default exists.
func seedExecutor(t *testing.T, db *gorm.DB, cats string, lat, lon, radius float64, mut func(*domain.Executor)) *domain.Executor {
	t.Helper()
	e := &domain.Executor{
		Categories: cats,
		City:       "Moscow",
		Lat:        &lat,
		Lon:        &lon,
		RadiusKm:   radius,
		IsActive:   true,
	}
	if mut != nil {
		mut(e)
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("seed executor: %v", err)
	}
	return e
}

// ----- Tests -----

func TestFindCandidates_FiltersAndRanksOwnerFirst(t *testing.T) {
	db := newServicesDB(t)
	client := seedUser(t, db, 10, "client", domain.RoleClient)
	req := seedRequest(t, db, client.ID, "Excavator", domain.ModeAuction, 55.75, 37.62)

	// ~10 km north, owner, bound to a user.
	bound := seedUser(t, db, 700, "digger", domain.RoleExecutor)
	owner := seedExecutor(t, db, "Excavator,Loader", 55.84, 37.62, 50, func(e *domain.Executor) {
		e.IsOwner = true
		e.UserID = &bound.ID
	})
	// ~2 km north, subcontractor.
	near := seedExecutor(t, db, "Excavator", 55.768, 37.62, 50, nil)
	// Out of its own radius (~100 km away, radius 50).
	seedExecutor(t, db, "Excavator", 56.65, 37.62, 50, nil)
	// Wrong category, right at the site.
	seedExecutor(t, db, "Loader", 55.75, 37.62, 50, nil)
	// No location.
	noLoc := &domain.Executor{Categories: "Excavator", RadiusKm: 50, IsActive: true}
	if err := db.Create(noLoc).Error; err != nil {
		t.Fatalf("seed executor: %v", err)
	}
	// Deactivated, right at the site.
	off := seedExecutor(t, db, "Excavator", 55.75, 37.62, 50, nil)
	if err := db.Model(off).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	svc := &MatchService{DB: db}
	got, err := svc.FindCandidates(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %+v", len(got), got)
	}

	if got[0].ExecutorID != owner.ID || !got[0].IsOwner {
		t.Fatalf("expected owner ranked first, got %+v", got[0])
	}
	if got[1].ExecutorID != near.ID {
		t.Fatalf("expected subcontractor second, got %+v", got[1])
	}
	if d := got[0].DistanceKm; d < 9.5 || d > 10.5 {
		t.Fatalf("owner distance ~10 km, got %f", d)
	}
	if d := got[1].DistanceKm; d < 1.5 || d > 2.5 {
		t.Fatalf("near distance ~2 km, got %f", d)
	}
	if got[0].Label != fmt.Sprintf("E-%05d", owner.ID) {
		t.Fatalf("unexpected label %q", got[0].Label)
	}
	if got[0].BoundChannelID == nil || *got[0].BoundChannelID != 700 {
		t.Fatalf("expected bound channel 700, got %+v", got[0].BoundChannelID)
	}
}

func TestFindCandidates_DistanceOrderWhenOwnerPreferenceOff(t *testing.T) {
	db := newServicesDB(t)
	client := seedUser(t, db, 10, "client", domain.RoleClient)
	req := seedRequest(t, db, client.ID, "Excavator", domain.ModeAuction, 55.75, 37.62)

	owner := seedExecutor(t, db, "Excavator", 55.84, 37.62, 50, func(e *domain.Executor) { e.IsOwner = true })
	near := seedExecutor(t, db, "Excavator", 55.768, 37.62, 50, nil)

	if err := repo.SetPreferOwnerFirst(context.Background(), db, false); err != nil {
		t.Fatalf("SetPreferOwnerFirst: %v", err)
	}

	svc := &MatchService{DB: db}
	got, err := svc.FindCandidates(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].ExecutorID != near.ID || got[1].ExecutorID != owner.ID {
		t.Fatalf("expected pure distance order [near owner], got %+v", got)
	}
}

func TestFindCandidates_MissingRequestIsEmpty(t *testing.T) {
	db := newServicesDB(t)

	svc := &MatchService{DB: db}
	got, err := svc.FindCandidates(context.Background(), 12345)
	if err != nil {
		t.Fatalf("expected nil error for missing request, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %+v", got)
	}
}
