// Package domain defines the persistence models for the marketplace core:
// users, executors, requests, offers, deals and the global settings row.
// These types are mapped with GORM and form the durable data layer.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role values a User may hold. The empty string means the user has not yet
// picked a role.
const (
	RoleClient   = "client"
	RoleExecutor = "executor"
	RoleAdmin    = "admin"
)

// Dispatch modes for a Request.
const (
	ModeAuction = "auction"
	ModeCatalog = "catalog"
)

// Offer rate types.
const (
	RateHour   = "hour"
	RateShift  = "shift"
	RateObject = "object"
)

// Offer lifecycle states.
const (
	OfferActive   = "active"
	OfferAccepted = "accepted"
)

// StatusPublished is the only Request status value written by the system.
// The field is persisted for forward compatibility and never transitioned.
const StatusPublished = "published"

// User is an identity record created on first contact with the chat
// transport. Users are never deleted.
//
// Fields:
//   - ID: auto-increment primary key.
//   - ChannelID: the numeric chat-channel address (unique).
//   - Handle: optional chat handle without the "@" prefix.
//   - DisplayName: optional human-readable name.
//   - Role: "client", "executor", "admin" or "" (not chosen yet).
type User struct {
	ID          uint      `json:"id"          gorm:"primaryKey"`
	ChannelID   int64     `json:"channel_id"  gorm:"not null;uniqueIndex:ux_users_channel"`
	Handle      string    `json:"handle,omitempty"       gorm:"type:varchar(64);index:idx_users_handle"`
	DisplayName string    `json:"display_name,omitempty" gorm:"type:varchar(128)"`
	Role        string    `json:"role"        gorm:"type:varchar(16);not null;default:'';check:role IN ('client','executor','admin','')"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Executor is a capability record: somebody who can fulfil requests within
// a radius around their location, for a set of category tags. Executors are
// registered administratively and may exist before the person behind them
// has ever contacted the system, in which case exactly one of PendingHandle
// or DirectChannelID carries the future addressing path.
//
// Fields:
//   - UserID: weak reference to the bound User; nil until resolved.
//   - PendingHandle: handle to bind by on the user's first contact; cleared
//     once resolved.
//   - DirectChannelID: numeric channel address usable for delivery even
//     without a bound User; kept after resolution as a delivery fallback.
//   - Categories: comma-joined category tags (trim-on-read).
//   - Lat/Lon: service location; both must be present to be matchable.
//   - RadiusKm: service radius around the location.
//   - IsOwner: direct equipment owner (ranked ahead when preferred).
//   - IsActive: administrative on/off switch.
type Executor struct {
	ID              uint      `json:"id"               gorm:"primaryKey"`
	UserID          *uint     `json:"user_id,omitempty" gorm:"index:idx_executors_user"`
	PendingHandle   string    `json:"pending_handle,omitempty" gorm:"type:varchar(64);index:idx_executors_pending"`
	DirectChannelID *int64    `json:"direct_channel_id,omitempty" gorm:"index:idx_executors_direct"`
	Categories      string    `json:"categories"       gorm:"type:text;not null;default:''"`
	City            string    `json:"city"             gorm:"type:varchar(128);not null;default:''"`
	Lat             *float64  `json:"lat,omitempty"`
	Lon             *float64  `json:"lon,omitempty"`
	RadiusKm        float64   `json:"radius_km"        gorm:"not null;default:50"`
	IsOwner         bool      `json:"is_owner"         gorm:"not null;default:false"`
	IsActive        bool      `json:"is_active"        gorm:"not null;default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the database table name for Executor.
func (Executor) TableName() string { return "executors" }

// Label returns the anonymized display label shown to clients instead of
// the executor's handle, e.g. "E-00042".
func (e Executor) Label() string { return fmt.Sprintf("E-%05d", e.ID) }

// CategoryList splits the comma-joined Categories field into trimmed tags,
// dropping empties.
func (e Executor) CategoryList() []string {
	parts := strings.Split(e.Categories, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// HasCategory reports whether the executor's category set contains tag
// (exact match after trimming).
func (e Executor) HasCategory(tag string) bool {
	for _, c := range e.CategoryList() {
		if c == tag {
			return true
		}
	}
	return false
}

// HasLocation reports whether both coordinates are set. Executors without a
// location are never matchable, regardless of IsActive.
func (e Executor) HasLocation() bool { return e.Lat != nil && e.Lon != nil }

// Request is a client's posted need: a single category tag, a redacted
// free-text description and a location. Requests are written once, fully
// formed, and are immutable afterwards.
//
// Fields:
//   - ClientUserID: the owning User.
//   - Category: single category tag.
//   - Description: contact-redacted free text.
//   - AddressText: human-readable address label (as entered or geocoded).
//   - Mode: "auction" (broadcast) or "catalog" (client picks).
//   - Status: always "published"; present but never transitioned.
type Request struct {
	ID           uint      `json:"id"             gorm:"primaryKey"`
	ClientUserID uint      `json:"client_user_id" gorm:"not null;index:idx_requests_client"`
	Category     string    `json:"category"       gorm:"type:varchar(128);not null"`
	Description  string    `json:"description"    gorm:"type:text;not null;default:''"`
	AddressText  string    `json:"address_text"   gorm:"type:text;not null;default:''"`
	Lat          float64   `json:"lat"            gorm:"not null"`
	Lon          float64   `json:"lon"            gorm:"not null"`
	Mode         string    `json:"mode"           gorm:"type:varchar(16);not null;check:mode IN ('auction','catalog')"`
	Status       string    `json:"status"         gorm:"type:varchar(16);not null;default:'published'"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for Request.
func (Request) TableName() string { return "requests" }

// Offer is an executor's priced proposal against a request. A request may
// collect many offers, including several from the same executor
// (append-only, duplicates allowed).
//
// Fields:
//   - RateType: "hour", "shift" or "object" (fixed price per object).
//   - RateValue: numeric rate; validated at the input boundary.
//   - Comment: contact-redacted free text.
//   - Status: "active" until accepted; "accepted" is terminal.
type Offer struct {
	ID         uint      `json:"id"          gorm:"primaryKey"`
	RequestID  uint      `json:"request_id"  gorm:"not null;index:idx_offers_request"`
	ExecutorID uint      `json:"executor_id" gorm:"not null;index:idx_offers_executor"`
	RateType   string    `json:"rate_type"   gorm:"type:varchar(16);not null;check:rate_type IN ('hour','shift','object')"`
	RateValue  float64   `json:"rate_value"  gorm:"not null"`
	Comment    string    `json:"comment"     gorm:"type:text;not null;default:''"`
	Status     string    `json:"status"      gorm:"type:varchar(16);not null;default:'active';check:status IN ('active','accepted')"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Request is the parent posting.
	Request Request `json:"-" gorm:"foreignKey:RequestID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Offer.
func (Offer) TableName() string { return "offers" }

// Deal records an accepted offer and gates contact disclosure. Exactly one
// Deal may exist per offer (unique index), which makes a racing double
// accept a constraint violation instead of a duplicate row.
type Deal struct {
	ID               uint      `json:"id"         gorm:"primaryKey"`
	RequestID        uint      `json:"request_id" gorm:"not null;index:idx_deals_request"`
	OfferID          uint      `json:"offer_id"   gorm:"not null;uniqueIndex:ux_deals_offer"`
	ContactsReleased bool      `json:"contacts_released" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Offer is the accepted proposal.
	Offer Offer `json:"-" gorm:"foreignKey:OfferID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Deal.
func (Deal) TableName() string { return "deals" }

// Setting is the single global settings row (ID is always 1). It currently
// carries one toggle: whether owner-flagged executors rank ahead of
// subcontractors in match results.
type Setting struct {
	ID               uint      `json:"id"                 gorm:"primaryKey"`
	PreferOwnerFirst bool      `json:"prefer_owner_first" gorm:"not null;default:true"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the database table name for Setting.
func (Setting) TableName() string { return "settings" }

// SettingsRowID is the fixed primary key of the singleton Setting row.
const SettingsRowID uint = 1
