// Idempotency support records. The chat transport retries callback posts on
// timeout, so mutating endpoints honour an Idempotency-Key header backed by
// this table.
package domain

import "time"

// Idempotency represents a recorded result of a previously processed
// mutating call, keyed by (actor_channel_id, scope, key). Scope names the
// logical operation plus its target, e.g. "accept-offer:17". It enables safe
// retries by returning the originally produced result id without
// re-executing side effects.
type Idempotency struct {
	ID             string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	ActorChannelID int64     `gorm:"not null;uniqueIndex:ux_actor_scope_key,priority:1"`
	Scope          string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_actor_scope_key,priority:2"`
	Key            string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_actor_scope_key,priority:3"`
	ResultID       uint      `gorm:"not null"`
	Status         int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt      time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt      time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
