package model

import (
	"time"

	"github.com/google/uuid"
)

type RelationStatus string

const (
	RelationPending  RelationStatus = "pending"
	RelationAccepted RelationStatus = "accepted"
	RelationDeclined RelationStatus = "declined"
)

// TouchRelation holds one row per unordered pair of users. Which side is
// requester vs requested flips on reopen, so pair lookups must match both
// directions.
type TouchRelation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	RequesterID uuid.UUID `bun:",notnull,type:uuid"`
	RequestedID uuid.UUID `bun:",notnull,type:uuid"`

	Status RelationStatus `bun:",notnull,default:'pending'"`

	CreatedAt   time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	RespondedAt *time.Time `bun:",nullzero"`
	UpdatedAt   time.Time  `bun:",nullzero,notnull,default:current_timestamp"`

	// One row per unordered pair is enforced by idx_touch_pair, created
	// alongside the tables:
	// CREATE UNIQUE INDEX idx_touch_pair ON touch_relations(least(requester_id, requested_id), greatest(requester_id, requested_id));
}
