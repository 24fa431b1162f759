package dto

import "github.com/noah-isme/hours-api/internal/models"

// SubscriptionNewRequest appends a plan for the caller.
type SubscriptionNewRequest struct {
	SubscriptionKind models.SubscriptionKind `json:"subscription_kind" validate:"required,oneof=VALID CANCEL"`
}

// SchoolNewRequest creates a school administered by the caller.
type SchoolNewRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Whole       bool   `json:"whole"`
}

// SchoolDataNewRequest appends a version of a school's fields.
type SchoolDataNewRequest struct {
	SchoolID    int64  `json:"school_id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Active      bool   `json:"active"`
}

// SchoolDurationNewRequest opens a timetable block in a school.
type SchoolDurationNewRequest struct {
	SchoolID int64 `json:"school_id" validate:"required,gt=0"`
}

// SchoolDurationDataNewRequest appends a version of a timetable block.
type SchoolDurationDataNewRequest struct {
	SchoolDurationID int64 `json:"school_duration_id" validate:"required,gt=0"`
	Day              int64 `json:"day" validate:"min=0,max=6"`
	MinuteStart      int64 `json:"minute_start" validate:"min=0,max=1440"`
	MinuteEnd        int64 `json:"minute_end" validate:"min=0,max=1440"`
	Active           bool  `json:"active"`
}

// SchoolKeyNewRequest issues a single-use adminship key.
type SchoolKeyNewRequest struct {
	SchoolID  int64 `json:"school_id" validate:"required,gt=0"`
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`
}

// SchoolKeyDataNewRequest toggles a school key.
type SchoolKeyDataNewRequest struct {
	SchoolKeyKey string `json:"school_key_key" validate:"required"`
	Active       bool   `json:"active"`
}

// AdminshipNewKeyRequest redeems a school key.
type AdminshipNewKeyRequest struct {
	SchoolKeyKey string `json:"school_key_key" validate:"required"`
}

// AdminshipNewCancelRequest revokes a user's adminship.
type AdminshipNewCancelRequest struct {
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
	SchoolID int64 `json:"school_id" validate:"required,gt=0"`
}

// LocationNewRequest creates a location in a school.
type LocationNewRequest struct {
	SchoolID int64  `json:"school_id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,max=200"`
	Address  string `json:"address" validate:"max=500"`
	Phone    string `json:"phone" validate:"max=50"`
}

// LocationDataNewRequest appends a version of a location's fields.
type LocationDataNewRequest struct {
	LocationID int64  `json:"location_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=200"`
	Address    string `json:"address" validate:"max=500"`
	Phone      string `json:"phone" validate:"max=50"`
	Active     bool   `json:"active"`
}

// CourseNewRequest creates a course taught by the caller.
type CourseNewRequest struct {
	SchoolID    int64  `json:"school_id" validate:"required,gt=0"`
	LocationID  int64  `json:"location_id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Homeroom    bool   `json:"homeroom"`
}

// CourseDataNewRequest appends a version of a course's fields.
type CourseDataNewRequest struct {
	CourseID    int64  `json:"course_id" validate:"required,gt=0"`
	LocationID  int64  `json:"location_id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Homeroom    bool   `json:"homeroom"`
	Active      bool   `json:"active"`
}

// CourseKeyNewRequest issues a membership key.
type CourseKeyNewRequest struct {
	CourseID             int64                       `json:"course_id" validate:"required,gt=0"`
	MaxUses              int64                       `json:"max_uses" validate:"gte=0"`
	CourseMembershipKind models.CourseMembershipKind `json:"course_membership_kind" validate:"required,oneof=STUDENT INSTRUCTOR"`
	StartTime            int64                       `json:"start_time"`
	EndTime              int64                       `json:"end_time"`
}

// CourseKeyDataNewRequest toggles a course key.
type CourseKeyDataNewRequest struct {
	CourseKeyKey string `json:"course_key_key" validate:"required"`
	Active       bool   `json:"active"`
}

// CourseMembershipNewKeyRequest redeems a course key.
type CourseMembershipNewKeyRequest struct {
	CourseKeyKey string `json:"course_key_key" validate:"required"`
}

// CourseMembershipNewCancelRequest removes a user from a course.
type CourseMembershipNewCancelRequest struct {
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
	CourseID int64 `json:"course_id" validate:"required,gt=0"`
}

// SessionNewRequest schedules a session and commits the listed students.
type SessionNewRequest struct {
	CourseID        int64   `json:"course_id" validate:"required,gt=0"`
	Name            string  `json:"name" validate:"required,max=200"`
	StartTime       int64   `json:"start_time"`
	EndTime         int64   `json:"end_time"`
	AttendeeUserIDs []int64 `json:"attendee_user_ids" validate:"omitempty,dive,gt=0"`
}

// SessionDataNewRequest appends a version of a session's schedule.
type SessionDataNewRequest struct {
	SessionID int64  `json:"session_id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required,max=200"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
	Active    bool   `json:"active"`
}

// SessionRequestNewRequest asks the course instructors for a session.
type SessionRequestNewRequest struct {
	CourseID  int64  `json:"course_id" validate:"required,gt=0"`
	Message   string `json:"message" validate:"max=2000"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
}

// SessionRequestResponseNewRequest resolves a request. A nil SessionID
// declines it.
type SessionRequestResponseNewRequest struct {
	SessionRequestID int64  `json:"session_request_id" validate:"required,gt=0"`
	Message          string `json:"message" validate:"max=2000"`
	SessionID        *int64 `json:"session_id,omitempty" validate:"omitempty,gt=0"`
}

// CommitmentNewRequest sets commitments for students of a session.
type CommitmentNewRequest struct {
	SessionID       int64   `json:"session_id" validate:"required,gt=0"`
	AttendeeUserIDs []int64 `json:"attendee_user_ids" validate:"required,min=1,dive,gt=0"`
	Active          bool    `json:"active"`
}

// EncounterNewRequest records a manual check-in.
type EncounterNewRequest struct {
	LocationID     int64 `json:"location_id" validate:"required,gt=0"`
	AttendeeUserID int64 `json:"attendee_user_id" validate:"required,gt=0"`
}

// StayNewRequest records a presence interval. Each endpoint is either an
// encounter id or a timestamp.
type StayNewRequest struct {
	LocationID     int64  `json:"location_id" validate:"required,gt=0"`
	AttendeeUserID int64  `json:"attendee_user_id" validate:"required,gt=0"`
	FstEncounterID *int64 `json:"fst_encounter_id,omitempty"`
	FstTime        *int64 `json:"fst_time,omitempty"`
	SndEncounterID *int64 `json:"snd_encounter_id,omitempty"`
	SndTime        *int64 `json:"snd_time,omitempty"`
}

// StayDataNewRequest appends a version of a stay's interval.
type StayDataNewRequest struct {
	StayID         int64  `json:"stay_id" validate:"required,gt=0"`
	FstEncounterID *int64 `json:"fst_encounter_id,omitempty"`
	FstTime        *int64 `json:"fst_time,omitempty"`
	SndEncounterID *int64 `json:"snd_encounter_id,omitempty"`
	SndTime        *int64 `json:"snd_time,omitempty"`
	Active         bool   `json:"active"`
}

// AttendanceExportRequest renders a session attendance sheet.
type AttendanceExportRequest struct {
	SessionID int64  `json:"session_id" validate:"required,gt=0"`
	Format    string `json:"format" validate:"required,oneof=csv pdf"`
}
