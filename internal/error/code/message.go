package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:     "success",
	ErrUnknown:     "unknown error",
	ErrValidation:  "invalid input",
	ErrEmptyField:  "this field is required",
	ErrInvalidDate: "invalid date format, use YYYY-MM-DD",

	// Authentication error codes
	ErrInvalidCredentials:     "invalid credentials",
	ErrAccountPendingApproval: "account is awaiting admin approval",
	ErrInvalidRole:            "invalid role, choose delivery, maintenance or security",
	ErrFlatMismatch:           "flat number does not match your account",
	ErrNotAuthorized:          "operation not permitted for this account",

	// Resident error codes
	ErrResidentNotFound:      "resident not found",
	ErrResidentAlreadyExists: "resident already exists",

	// Staff error codes
	ErrStaffNotFound:      "staff member not found",
	ErrStaffAlreadyExists: "username already exists",

	// Complaint error codes
	ErrComplaintNotFound:      "complaint not found",
	ErrComplaintNotPending:    "complaint has already been assigned",
	ErrComplaintDateNotToday:  "complaint date must be today's date",
	ErrInvalidComplaintStatus: "invalid complaint status",

	// Maintenance task error codes
	ErrTaskNotFound:      "maintenance task not found",
	ErrInvalidTaskStatus: "invalid task status",

	// Amenity booking error codes
	ErrBookingNotFound:       "booking not found",
	ErrBookingAlreadyDecided: "booking has already been decided",
	ErrBookingDateInPast:     "booking date has already passed",
	ErrUnknownAmenity:        "unknown amenity",

	// Delivery error codes
	ErrSkipDateNotFuture: "skip date must be a future date",

	// Poll error codes
	ErrPollNotFound:     "poll not found",
	ErrPollClosed:       "poll is closed",
	ErrAlreadyVoted:     "this flat has already voted in the poll",
	ErrChoiceOutOfRange: "choice is out of range",
	ErrTooFewOptions:    "a poll needs at least two options",

	// Announcement error codes
	ErrAnnouncementNotFound: "announcement not found",

	// Storage error codes
	ErrDatabase: "database error",
}

// Error code to failure kind mapping
var codeKindMap = map[int]Kind{
	// Common error codes
	ErrSuccess:     KindValidation,
	ErrUnknown:     KindStorage,
	ErrValidation:  KindValidation,
	ErrEmptyField:  KindValidation,
	ErrInvalidDate: KindValidation,

	// Authentication error codes
	ErrInvalidCredentials:     KindAuthorization,
	ErrAccountPendingApproval: KindAuthorization,
	ErrInvalidRole:            KindValidation,
	ErrFlatMismatch:           KindAuthorization,
	ErrNotAuthorized:          KindAuthorization,

	// Resident error codes
	ErrResidentNotFound:      KindNotFound,
	ErrResidentAlreadyExists: KindConflict,

	// Staff error codes
	ErrStaffNotFound:      KindNotFound,
	ErrStaffAlreadyExists: KindConflict,

	// Complaint error codes
	ErrComplaintNotFound:      KindNotFound,
	ErrComplaintNotPending:    KindConflict,
	ErrComplaintDateNotToday:  KindValidation,
	ErrInvalidComplaintStatus: KindValidation,

	// Maintenance task error codes
	ErrTaskNotFound:      KindNotFound,
	ErrInvalidTaskStatus: KindValidation,

	// Amenity booking error codes
	ErrBookingNotFound:       KindNotFound,
	ErrBookingAlreadyDecided: KindConflict,
	ErrBookingDateInPast:     KindValidation,
	ErrUnknownAmenity:        KindValidation,

	// Delivery error codes
	ErrSkipDateNotFuture: KindValidation,

	// Poll error codes
	ErrPollNotFound:     KindNotFound,
	ErrPollClosed:       KindConflict,
	ErrAlreadyVoted:     KindConflict,
	ErrChoiceOutOfRange: KindValidation,
	ErrTooFewOptions:    KindValidation,

	// Announcement error codes
	ErrAnnouncementNotFound: KindNotFound,

	// Storage error codes
	ErrDatabase: KindStorage,
}

// GetMessage returns the message for an error code
func GetMessage(c int) string {
	if msg, ok := codeMessageMap[c]; ok {
		return msg
	}
	return "unknown error"
}

// GetKind returns the failure kind for an error code
func GetKind(c int) Kind {
	if kind, ok := codeKindMap[c]; ok {
		return kind
	}
	return KindStorage
}
