package errors

var (
	// Identity
	ErrUsernameRequired = InvalidArg("username cannot be empty")
	ErrUserNotFound     = NotFound("user not found")

	// Touch relations
	ErrSelfRelation       = InvalidArg("cannot keep in touch with yourself")
	ErrRelationNotFound   = NotFound("relation not found")
	ErrNotRequestedParty  = Forbidden("only the requested user can respond")
	ErrRelationNotPending = FailedPrecondition("relation is not pending")

	// Hush chats
	ErrChatNotFound          = NotFound("chat not found")
	ErrChatClosed            = FailedPrecondition("chat is closed")
	ErrMembershipNotFound    = NotFound("membership not found")
	ErrNotChatOwner          = Forbidden("only the chat owner can do this")
	ErrNotChatMember         = Forbidden("not an accepted member of this chat")
	ErrSelfInvite            = InvalidArg("cannot invite yourself")
	ErrSelfRemove            = InvalidArg("cannot remove yourself from your own chat")
	ErrCannotInvite          = FailedPrecondition("member cannot be invited in their current state")
	ErrCannotRequestJoin     = FailedPrecondition("cannot request to join this chat")
	ErrNotInvited            = FailedPrecondition("no pending invite for this chat")
	ErrJoinRequestNotPending = FailedPrecondition("membership is not a pending join request")

	// Direct channels
	ErrNotInTouch      = Forbidden("not in touch with this user")
	ErrChannelNotFound = NotFound("channel not found")
	ErrNotParticipant  = Forbidden("not a participant of this channel")

	// Messages
	ErrEmptyMessage   = InvalidArg("message content is required")
	ErrMessageTooLong = InvalidArg("message content is too long")
)
