package models

// EncounterKind records how presence was observed.
type EncounterKind string

const (
	EncounterKindManual EncounterKind = "MANUAL"
)

// Session is the immutable root of a scheduled course meeting.
type Session struct {
	SessionID     int64 `db:"session_id" json:"session_id"`
	CreationTime  int64 `db:"creation_time" json:"creation_time"`
	CreatorUserID int64 `db:"creator_user_id" json:"creator_user_id"`
	CourseID      int64 `db:"course_id" json:"course_id"`
}

// SessionData is one version of a session's schedule.
type SessionData struct {
	SessionDataID int64  `db:"session_data_id" json:"session_data_id"`
	CreationTime  int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID int64  `db:"creator_user_id" json:"creator_user_id"`
	SessionID     int64  `db:"session_id" json:"session_id"`
	Name          string `db:"name" json:"name"`
	StartTime     int64  `db:"start_time" json:"start_time"`
	EndTime       int64  `db:"end_time" json:"end_time"`
	Active        bool   `db:"active" json:"active"`
}

// SessionRequest is a student's immutable request for a session.
type SessionRequest struct {
	SessionRequestID int64  `db:"session_request_id" json:"session_request_id"`
	CreationTime     int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID    int64  `db:"creator_user_id" json:"creator_user_id"`
	CourseID         int64  `db:"course_id" json:"course_id"`
	Message          string `db:"message" json:"message"`
	StartTime        int64  `db:"start_time" json:"start_time"`
	EndTime          int64  `db:"end_time" json:"end_time"`
}

// SessionRequestResponse resolves a request. A nil CommitmentID is a decline.
type SessionRequestResponse struct {
	SessionRequestID int64  `db:"session_request_id" json:"session_request_id"`
	CreationTime     int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID    int64  `db:"creator_user_id" json:"creator_user_id"`
	Message          string `db:"message" json:"message"`
	CommitmentID     *int64 `db:"commitment_id" json:"commitment_id,omitempty"`
}

// Accepted reports whether the response carries a commitment.
func (r SessionRequestResponse) Accepted() bool {
	return r.CommitmentID != nil
}

// Commitment is one version of an attendee's expected attendance at a session.
type Commitment struct {
	CommitmentID   int64 `db:"commitment_id" json:"commitment_id"`
	CreationTime   int64 `db:"creation_time" json:"creation_time"`
	CreatorUserID  int64 `db:"creator_user_id" json:"creator_user_id"`
	AttendeeUserID int64 `db:"attendee_user_id" json:"attendee_user_id"`
	SessionID      int64 `db:"session_id" json:"session_id"`
	Active         bool  `db:"active" json:"active"`
}

// Encounter is an immutable presence observation.
type Encounter struct {
	EncounterID    int64         `db:"encounter_id" json:"encounter_id"`
	CreationTime   int64         `db:"creation_time" json:"creation_time"`
	CreatorUserID  int64         `db:"creator_user_id" json:"creator_user_id"`
	LocationID     int64         `db:"location_id" json:"location_id"`
	AttendeeUserID int64         `db:"attendee_user_id" json:"attendee_user_id"`
	EncounterKind  EncounterKind `db:"encounter_kind" json:"encounter_kind"`
}

// Stay is the immutable root of a presence interval.
type Stay struct {
	StayID         int64 `db:"stay_id" json:"stay_id"`
	CreationTime   int64 `db:"creation_time" json:"creation_time"`
	CreatorUserID  int64 `db:"creator_user_id" json:"creator_user_id"`
	AttendeeUserID int64 `db:"attendee_user_id" json:"attendee_user_id"`
	LocationID     int64 `db:"location_id" json:"location_id"`
}

// StayData is one version of a stay's interval. Each endpoint is either an
// encounter or an explicit time.
type StayData struct {
	StayDataID     int64  `db:"stay_data_id" json:"stay_data_id"`
	CreationTime   int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID  int64  `db:"creator_user_id" json:"creator_user_id"`
	StayID         int64  `db:"stay_id" json:"stay_id"`
	FstEncounterID *int64 `db:"fst_encounter_id" json:"fst_encounter_id,omitempty"`
	FstTime        *int64 `db:"fst_time" json:"fst_time,omitempty"`
	SndEncounterID *int64 `db:"snd_encounter_id" json:"snd_encounter_id,omitempty"`
	SndTime        *int64 `db:"snd_time" json:"snd_time,omitempty"`
	Active         bool   `db:"active" json:"active"`
}

// SessionFilter narrows the session view.
type SessionFilter struct {
	CommonFilter
	SessionID []int64 `json:"session_id,omitempty"`
	CourseID  []int64 `json:"course_id,omitempty"`
}

// SessionDataFilter narrows the session data view.
type SessionDataFilter struct {
	CommonFilter
	SessionDataID []int64 `json:"session_data_id,omitempty"`
	SessionID     []int64 `json:"session_id,omitempty"`
	Name          *string `json:"name,omitempty"`
	PartialName   *string `json:"partial_name,omitempty"`
	MinStartTime  *int64  `json:"min_start_time,omitempty"`
	MaxStartTime  *int64  `json:"max_start_time,omitempty"`
	MinEndTime    *int64  `json:"min_end_time,omitempty"`
	MaxEndTime    *int64  `json:"max_end_time,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

// SessionRequestFilter narrows the session request view.
type SessionRequestFilter struct {
	CommonFilter
	SessionRequestID []int64 `json:"session_request_id,omitempty"`
	CourseID         []int64 `json:"course_id,omitempty"`
	Message          *string `json:"message,omitempty"`
	PartialMessage   *string `json:"partial_message,omitempty"`
	MinStartTime     *int64  `json:"min_start_time,omitempty"`
	MaxStartTime     *int64  `json:"max_start_time,omitempty"`
	MinEndTime       *int64  `json:"min_end_time,omitempty"`
	MaxEndTime       *int64  `json:"max_end_time,omitempty"`
}

// SessionRequestResponseFilter narrows the session request response view.
type SessionRequestResponseFilter struct {
	CommonFilter
	SessionRequestID []int64 `json:"session_request_id,omitempty"`
	Message          *string `json:"message,omitempty"`
	PartialMessage   *string `json:"partial_message,omitempty"`
	CommitmentID     []int64 `json:"commitment_id,omitempty"`
	Accepted         *bool   `json:"accepted,omitempty"`
}

// CommitmentFilter narrows the commitment view.
type CommitmentFilter struct {
	CommonFilter
	CommitmentID   []int64 `json:"commitment_id,omitempty"`
	AttendeeUserID []int64 `json:"attendee_user_id,omitempty"`
	SessionID      []int64 `json:"session_id,omitempty"`
	Active         *bool   `json:"active,omitempty"`
}

// EncounterFilter narrows the encounter view.
type EncounterFilter struct {
	CommonFilter
	EncounterID    []int64         `json:"encounter_id,omitempty"`
	LocationID     []int64         `json:"location_id,omitempty"`
	AttendeeUserID []int64         `json:"attendee_user_id,omitempty"`
	EncounterKind  []EncounterKind `json:"encounter_kind,omitempty"`
}

// StayFilter narrows the stay view.
type StayFilter struct {
	CommonFilter
	StayID         []int64 `json:"stay_id,omitempty"`
	AttendeeUserID []int64 `json:"attendee_user_id,omitempty"`
	LocationID     []int64 `json:"location_id,omitempty"`
}

// StayDataFilter narrows the stay data view.
type StayDataFilter struct {
	CommonFilter
	StayDataID     []int64 `json:"stay_data_id,omitempty"`
	StayID         []int64 `json:"stay_id,omitempty"`
	FstEncounterID []int64 `json:"fst_encounter_id,omitempty"`
	SndEncounterID []int64 `json:"snd_encounter_id,omitempty"`
	MinFstTime     *int64  `json:"min_fst_time,omitempty"`
	MaxFstTime     *int64  `json:"max_fst_time,omitempty"`
	MinSndTime     *int64  `json:"min_snd_time,omitempty"`
	MaxSndTime     *int64  `json:"max_snd_time,omitempty"`
	Active         *bool   `json:"active,omitempty"`
}
