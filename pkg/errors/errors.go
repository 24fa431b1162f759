package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Generic errors shared by the transport layer.
var (
	ErrNotFound     = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrForbidden    = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrConflict     = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation   = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal     = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrTooManyCalls = New("TOO_MANY_REQUESTS", http.StatusTooManyRequests, "rate limit exceeded")
)

// Identity errors.
var (
	ErrAPIKeyNonexistent       = New("API_KEY_NONEXISTENT", http.StatusUnauthorized, "api key does not exist")
	ErrAPIKeyUnauthorized      = New("API_KEY_UNAUTHORIZED", http.StatusUnauthorized, "api key is not authorized")
	ErrUserNonexistent         = New("USER_NONEXISTENT", http.StatusNotFound, "user does not exist")
	ErrAuthInternalServerError = New("AUTH_INTERNAL_SERVER_ERROR", http.StatusBadGateway, "identity service failed")
	ErrAuthBadRequest          = New("AUTH_BAD_REQUEST", http.StatusBadGateway, "identity service rejected the request")
	ErrAuthOther               = New("AUTH_OTHER", http.StatusBadGateway, "identity service returned an unexpected error")
)

// Missing entities.
var (
	ErrSchoolNonexistent         = New("SCHOOL_NONEXISTENT", http.StatusNotFound, "school does not exist")
	ErrSchoolKeyNonexistent      = New("SCHOOL_KEY_NONEXISTENT", http.StatusNotFound, "school key does not exist")
	ErrSchoolDurationNonexistent = New("SCHOOL_DURATION_NONEXISTENT", http.StatusNotFound, "school duration does not exist")
	ErrLocationNonexistent       = New("LOCATION_NONEXISTENT", http.StatusNotFound, "location does not exist")
	ErrCourseNonexistent         = New("COURSE_NONEXISTENT", http.StatusNotFound, "course does not exist")
	ErrCourseKeyNonexistent      = New("COURSE_KEY_NONEXISTENT", http.StatusNotFound, "course key does not exist")
	ErrSessionNonexistent        = New("SESSION_NONEXISTENT", http.StatusNotFound, "session does not exist")
	ErrSessionRequestNonexistent = New("SESSION_REQUEST_NONEXISTENT", http.StatusNotFound, "session request does not exist")
	ErrCommitmentNonexistent     = New("COMMITMENT_NONEXISTENT", http.StatusNotFound, "commitment does not exist")
	ErrEncounterNonexistent      = New("ENCOUNTER_NONEXISTENT", http.StatusNotFound, "encounter does not exist")
	ErrStayNonexistent           = New("STAY_NONEXISTENT", http.StatusNotFound, "stay does not exist")
	ErrSubscriptionNonexistent   = New("SUBSCRIPTION_NONEXISTENT", http.StatusNotFound, "subscription does not exist")
)

// Invalid state transitions.
var (
	ErrSchoolArchived                   = New("SCHOOL_ARCHIVED", http.StatusConflict, "school is archived")
	ErrLocationArchived                 = New("LOCATION_ARCHIVED", http.StatusConflict, "location is archived")
	ErrCourseArchived                   = New("COURSE_ARCHIVED", http.StatusConflict, "course is archived")
	ErrSchoolKeyExpired                 = New("SCHOOL_KEY_EXPIRED", http.StatusConflict, "school key is expired")
	ErrSchoolKeyUsed                    = New("SCHOOL_KEY_USED", http.StatusConflict, "school key has been used")
	ErrSchoolKeyArchived                = New("SCHOOL_KEY_ARCHIVED", http.StatusConflict, "school key is archived")
	ErrCourseKeyExpired                 = New("COURSE_KEY_EXPIRED", http.StatusConflict, "course key is expired")
	ErrCourseKeyUsed                    = New("COURSE_KEY_USED", http.StatusConflict, "course key has no uses left")
	ErrCourseKeyArchived                = New("COURSE_KEY_ARCHIVED", http.StatusConflict, "course key is archived")
	ErrSessionRequestResponseExistent   = New("SESSION_REQUEST_RESPONSE_EXISTENT", http.StatusConflict, "session request already has a response")
	ErrSessionCourseMismatch            = New("SESSION_COURSE_MISMATCH", http.StatusConflict, "session belongs to a different course")
	ErrAdminshipCannotLeaveEmpty        = New("ADMINSHIP_CANNOT_LEAVE_EMPTY", http.StatusConflict, "school must keep at least one admin")
	ErrCourseMembershipCannotLeaveEmpty = New("COURSE_MEMBERSHIP_CANNOT_LEAVE_EMPTY", http.StatusConflict, "course must keep at least one instructor")
	ErrSubscriptionLimited              = New("SUBSCRIPTION_LIMITED", http.StatusConflict, "subscription does not allow more schools")
	ErrNegativeDuration                 = New("NEGATIVE_DURATION", http.StatusBadRequest, "start time is after end time")
	ErrStayProvidedNoTime               = New("STAY_PROVIDED_NO_TIME", http.StatusBadRequest, "stay endpoint needs an encounter or a time")
	ErrStayProvidedDoubleTime           = New("STAY_PROVIDED_DOUBLE_TIME", http.StatusBadRequest, "stay endpoint has both an encounter and a time")
	ErrStayEncounterWrongLocation       = New("STAY_ENCOUNTER_WRONG_LOCATION", http.StatusConflict, "encounter happened at another location")
	ErrStayEncounterWrongUser           = New("STAY_ENCOUNTER_WRONG_USER", http.StatusConflict, "encounter belongs to another attendee")
	ErrTransactionConflict              = New("TRANSACTION_CONFLICT", http.StatusConflict, "concurrent update, retry the request")
)

// Kind is the coarse classification of a failure.
type Kind string

// Failure kinds.
const (
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindConflict     Kind = "conflict"
	KindUpstreamAuth Kind = "upstream_auth"
	KindStorage      Kind = "storage"
	KindValidation   Kind = "validation"
)

var upstreamCodes = map[string]bool{
	ErrAuthInternalServerError.Code: true,
	ErrAuthBadRequest.Code:          true,
	ErrAuthOther.Code:               true,
}

// KindOf classifies err. Unknown errors are storage failures.
func KindOf(err error) Kind {
	e := FromError(err)
	switch {
	case e == nil:
		return ""
	case upstreamCodes[e.Code]:
		return KindUpstreamAuth
	case e.Code == ErrValidation.Code || e.Status == http.StatusBadRequest:
		return KindValidation
	case e.Status == http.StatusNotFound:
		return KindNotFound
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return KindUnauthorized
	case e.Status == http.StatusConflict:
		return KindConflict
	default:
		return KindStorage
	}
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
