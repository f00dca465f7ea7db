package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/kozmossocial/kozmosv1-sub000/internal/user/model"
)

type MembershipRole string

const (
	RoleOwner  MembershipRole = "owner"
	RoleMember MembershipRole = "member"
)

type MembershipStatus string

const (
	MembershipInvited   MembershipStatus = "invited"
	MembershipRequested MembershipStatus = "requested"
	MembershipAccepted  MembershipStatus = "accepted"
	MembershipDeclined  MembershipStatus = "declined"
	MembershipLeft      MembershipStatus = "left"
	MembershipRemoved   MembershipStatus = "removed"
)

// Active reports whether the membership still counts toward the chat's
// live participants.
func (s MembershipStatus) Active() bool {
	switch s {
	case MembershipDeclined, MembershipLeft, MembershipRemoved:
		return false
	}
	return true
}

// Rejoinable reports whether a fresh invite or join request may overwrite
// this membership.
func (s MembershipStatus) Rejoinable() bool {
	switch s {
	case MembershipDeclined, MembershipLeft, MembershipRemoved:
		return true
	}
	return false
}

// Visible reports whether the member shows up in the chat's derived label.
func (s MembershipStatus) Visible() bool {
	return s == MembershipInvited || s == MembershipAccepted
}

// HushMembership is keyed (chat_id, user_id): re-inviting or re-requesting
// overwrites the row instead of inserting a duplicate. Rows are never
// hard-deleted.
type HushMembership struct {
	ChatID uuid.UUID `bun:",pk,type:uuid"`
	Chat   *HushChat `bun:"rel:belongs-to,join:chat_id=id"`

	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Role   MembershipRole   `bun:",notnull,default:'member'"`
	Status MembershipStatus `bun:",notnull"`

	// DisplayName caches the username at invite/request time
	DisplayName string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
