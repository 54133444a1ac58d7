// Package session holds in-progress conversational drafts for the request and
// offer intake flows. Drafts are ephemeral by contract: they live in process
// memory only, expire after an idle TTL, and are discarded wholesale on cancel
// or restart. Nothing here is ever persisted.
package session

import (
	"sync"
	"time"

	"github.com/tbourn/go-broker-backend/internal/geocode"
)

// State identifies the step a conversation is waiting on. Input arriving for
// any other step is rejected and the caller re-prompts for the current one.
type State string

// Request-intake states.
const (
	StateRoleSelect       State = "role-select"
	StateModeSelect       State = "mode-select"
	StateCategorySelect   State = "category-select"
	StateDescriptionInput State = "description-input"
	StateLocationChoice   State = "location-choice"
	StateAddressInput     State = "address-input"
	StateGeocodePick      State = "geocode-pick"
)

// Offer-intake states.
const (
	StateRateType  State = "rate-type"
	StateRateValue State = "rate-value"
	StateComment   State = "comment"
)

// Draft accumulates one actor's answers across intake steps. A Draft is a
// plain value; mutate a copy and Put it back.
type Draft struct {
	State State

	// Request intake.
	Mode        string
	Category    string
	Description string
	AddressText string
	Lat         float64
	Lon         float64
	Candidates  []geocode.Place

	// Offer intake.
	RequestID  uint
	ExecutorID uint
	RateType   string
	RateValue  float64
}

// entry pairs a draft with the last time its actor touched it, so idle
// conversations can be evicted.
type entry struct {
	draft    Draft
	lastSeen time.Time
}

// Store is an in-memory draft store keyed by actor channel id, with idle-TTL
// eviction performed opportunistically during lookups.
//
// Store is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
	ttl     time.Duration
	sweepN  uint64
}

// sweepThreshold is how many operations pass between opportunistic sweeps.
const sweepThreshold = 512

// NewStore constructs a Store that evicts drafts idle for ttl or longer.
// A non-positive ttl falls back to 30 minutes.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{
		entries: make(map[int64]*entry),
		ttl:     ttl,
	}
}

// Put stores (or replaces) the actor's draft and refreshes its idle timer.
func (s *Store) Put(channelID int64, d Draft) {
	now := time.Now()
	s.mu.Lock()
	s.sweep(now)
	s.entries[channelID] = &entry{draft: d, lastSeen: now}
	s.mu.Unlock()
}

// Get returns a copy of the actor's live draft. An expired draft counts as a
// miss and is dropped. A hit refreshes the idle timer.
func (s *Store) Get(channelID int64) (Draft, bool) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	// Sweep before the lookup so an expired draft for this key is evicted
	// rather than refreshed.
	s.sweep(now)

	e, ok := s.entries[channelID]
	if !ok {
		return Draft{}, false
	}
	if now.Sub(e.lastSeen) >= s.ttl {
		delete(s.entries, channelID)
		return Draft{}, false
	}
	e.lastSeen = now
	return e.draft, true
}

// Delete discards the actor's draft, if any. Used for cancel.
func (s *Store) Delete(channelID int64) {
	s.mu.Lock()
	delete(s.entries, channelID)
	s.mu.Unlock()
}

// sweep evicts idle entries after every sweepThreshold operations. Callers
// must hold s.mu.
func (s *Store) sweep(now time.Time) {
	s.sweepN++
	if s.sweepN < sweepThreshold {
		return
	}
	for k, e := range s.entries {
		if now.Sub(e.lastSeen) >= s.ttl {
			delete(s.entries, k)
		}
	}
	s.sweepN = 0
}
