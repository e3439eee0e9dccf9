package errors

var (
	// Friend request workflow
	ErrSelfRequest      = InvalidArg("cannot send a friend request to yourself")
	ErrAlreadyConnected = InvalidArg("users are already connected")
	ErrRequestPending   = InvalidArg("a pending request already exists between these users")
	ErrRequestNotFound  = NotFound("friend request not found or no longer pending")
	ErrNotRecipient     = Unauthorized("only the request recipient may respond")
	ErrRequestConflict  = Conflict("friend request was updated concurrently")

	// Messaging
	ErrSelfMessage       = InvalidArg("cannot send a message to yourself")
	ErrOutsideNetwork    = Forbidden("outside allowed network distance")
	ErrMessageNotFound   = NotFound("message not found")
	ErrNotParticipant    = NotFound("requesting party is neither sender nor receiver")
	ErrEmptyContent      = InvalidArg("message content cannot be empty")
	ErrConnectionMissing = NotFound("no connection exists between these users")

	// Users
	ErrHandleTaken      = InvalidArg("handle is already taken")
	ErrUserNotFound     = NotFound("user not found")
	ErrInvalidPassword  = Unauthorized("invalid password")
	ErrAttachmentAbsent = NotFound("attachment not found")

	// Profile records
	ErrProfileEntryNotFound = NotFound("profile entry not found")
	ErrDateRangeInverted    = InvalidArg("end date precedes start date")
)

func ErrSendFailed(cause error) error {
	return Wrap(CodeInternal, "failed to store message", cause)
}

func ErrGraphQueryFailed(cause error) error {
	return Wrap(CodeInternal, "connection graph query failed", cause)
}
