package code

import "errors"

// Kind classifies an error code for operator-facing reporting.
type Kind string

const (
	// KindValidation - malformed date, out-of-range choice, empty required field.
	KindValidation Kind = "validation"
	// KindAuthorization - credential mismatch, unapproved account, flat/session mismatch.
	KindAuthorization Kind = "authorization"
	// KindNotFound - no matching record.
	KindNotFound Kind = "not_found"
	// KindConflict - duplicate username/vote/token, already-decided booking.
	KindConflict Kind = "conflict"
	// KindStorage - connectivity or transaction failure.
	KindStorage Kind = "storage"
)

// Common error codes (100xxx).
const (
	// ErrSuccess - success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - unknown error.
	ErrUnknown
	// ErrValidation - invalid input.
	ErrValidation
	// ErrEmptyField - a required field is empty.
	ErrEmptyField
	// ErrInvalidDate - date not in YYYY-MM-DD form.
	ErrInvalidDate
)

// Authentication error codes (101xxx).
const (
	// ErrInvalidCredentials - credentials do not match an account.
	ErrInvalidCredentials int = iota + 101000
	// ErrAccountPendingApproval - account exists but is not yet approved.
	ErrAccountPendingApproval
	// ErrInvalidRole - staff role outside delivery/maintenance/security.
	ErrInvalidRole
	// ErrFlatMismatch - flat number does not match the authenticated session.
	ErrFlatMismatch
	// ErrNotAuthorized - session kind not permitted for the operation.
	ErrNotAuthorized
)

// Resident error codes (102xxx).
const (
	// ErrResidentNotFound - resident does not exist.
	ErrResidentNotFound int = iota + 102000
	// ErrResidentAlreadyExists - resident token already taken.
	ErrResidentAlreadyExists
)

// Staff error codes (103xxx).
const (
	// ErrStaffNotFound - staff member does not exist.
	ErrStaffNotFound int = iota + 103000
	// ErrStaffAlreadyExists - staff username already taken.
	ErrStaffAlreadyExists
)

// Complaint error codes (104xxx).
const (
	// ErrComplaintNotFound - complaint does not exist.
	ErrComplaintNotFound int = iota + 104000
	// ErrComplaintNotPending - complaint already assigned or resolved.
	ErrComplaintNotPending
	// ErrComplaintDateNotToday - complaint date must equal the current date.
	ErrComplaintDateNotToday
	// ErrInvalidComplaintStatus - status outside the complaint status set.
	ErrInvalidComplaintStatus
)

// Maintenance task error codes (105xxx).
const (
	// ErrTaskNotFound - maintenance task does not exist.
	ErrTaskNotFound int = iota + 105000
	// ErrInvalidTaskStatus - status outside the task status set.
	ErrInvalidTaskStatus
)

// Amenity booking error codes (106xxx).
const (
	// ErrBookingNotFound - booking does not exist.
	ErrBookingNotFound int = iota + 106000
	// ErrBookingAlreadyDecided - booking was already approved or rejected.
	ErrBookingAlreadyDecided
	// ErrBookingDateInPast - booking date earlier than today.
	ErrBookingDateInPast
	// ErrUnknownAmenity - amenity outside the published list.
	ErrUnknownAmenity
)

// Delivery error codes (107xxx).
const (
	// ErrSkipDateNotFuture - skip date must be strictly in the future.
	ErrSkipDateNotFuture int = iota + 107000
)

// Poll error codes (108xxx).
const (
	// ErrPollNotFound - poll does not exist.
	ErrPollNotFound int = iota + 108000
	// ErrPollClosed - poll is not open for voting.
	ErrPollClosed
	// ErrAlreadyVoted - flat already voted in this poll.
	ErrAlreadyVoted
	// ErrChoiceOutOfRange - selected option outside [1, len(options)].
	ErrChoiceOutOfRange
	// ErrTooFewOptions - a poll needs at least two options.
	ErrTooFewOptions
)

// Announcement error codes (109xxx).
const (
	// ErrAnnouncementNotFound - announcement does not exist.
	ErrAnnouncementNotFound int = iota + 109000
)

// Storage error codes (110xxx).
const (
	// ErrDatabase - database error.
	ErrDatabase int = iota + 110000
)

// Error is a typed failure carrying a numeric code. The wrapped cause is kept
// for logs but never rendered to the operator.
type Error struct {
	Code    int
	Message string
	cause   error
}

// New creates an Error with the code's default message.
func New(c int) *Error {
	return &Error{Code: c, Message: GetMessage(c)}
}

// Wrap creates an Error keeping the underlying cause.
func Wrap(c int, cause error) *Error {
	return &Error{Code: c, Message: GetMessage(c), cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the failure kind for the error's code.
func (e *Error) Kind() Kind {
	return GetKind(e.Code)
}

// KindOf classifies any error; untyped errors count as storage failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindStorage
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, c int) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == c
	}
	return false
}
