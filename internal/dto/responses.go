// Package dto holds request payloads and the assembled response shapes.
package dto

import "github.com/noah-isme/hours-api/internal/models"

type Subscription struct {
	SubscriptionID   int64                   `json:"subscription_id"`
	CreationTime     int64                   `json:"creation_time"`
	CreatorUserID    int64                   `json:"creator_user_id"`
	SubscriptionKind models.SubscriptionKind `json:"subscription_kind"`
	MaxUses          int64                   `json:"max_uses"`
}

type School struct {
	SchoolID      int64 `json:"school_id"`
	CreationTime  int64 `json:"creation_time"`
	CreatorUserID int64 `json:"creator_user_id"`
	Whole         bool  `json:"whole"`
}

type SchoolData struct {
	SchoolDataID  int64  `json:"school_data_id"`
	CreationTime  int64  `json:"creation_time"`
	CreatorUserID int64  `json:"creator_user_id"`
	School        School `json:"school"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Active        bool   `json:"active"`
}

type SchoolDuration struct {
	SchoolDurationID int64  `json:"school_duration_id"`
	CreationTime     int64  `json:"creation_time"`
	CreatorUserID    int64  `json:"creator_user_id"`
	School           School `json:"school"`
}

type SchoolDurationData struct {
	SchoolDurationDataID int64          `json:"school_duration_data_id"`
	CreationTime         int64          `json:"creation_time"`
	CreatorUserID        int64          `json:"creator_user_id"`
	SchoolDuration       SchoolDuration `json:"school_duration"`
	Day                  int64          `json:"day"`
	MinuteStart          int64          `json:"minute_start"`
	MinuteEnd            int64          `json:"minute_end"`
	Active               bool           `json:"active"`
}

type SchoolKey struct {
	SchoolKeyKey  string `json:"school_key_key"`
	CreationTime  int64  `json:"creation_time"`
	CreatorUserID int64  `json:"creator_user_id"`
	School        School `json:"school"`
	StartTime     int64  `json:"start_time"`
	EndTime       int64  `json:"end_time"`
}

type SchoolKeyData struct {
	SchoolKeyDataID int64     `json:"school_key_data_id"`
	CreationTime    int64     `json:"creation_time"`
	CreatorUserID   int64     `json:"creator_user_id"`
	SchoolKey       SchoolKey `json:"school_key"`
	Active          bool      `json:"active"`
}

type Adminship struct {
	AdminshipID   int64                `json:"adminship_id"`
	CreationTime  int64                `json:"creation_time"`
	CreatorUserID int64                `json:"creator_user_id"`
	UserID        int64                `json:"user_id"`
	School        School               `json:"school"`
	AdminshipKind models.AdminshipKind `json:"adminship_kind"`
	SchoolKey     *SchoolKey           `json:"school_key,omitempty"`
}

type Location struct {
	LocationID    int64  `json:"location_id"`
	CreationTime  int64  `json:"creation_time"`
	CreatorUserID int64  `json:"creator_user_id"`
	School        School `json:"school"`
}

type LocationData struct {
	LocationDataID int64    `json:"location_data_id"`
	CreationTime   int64    `json:"creation_time"`
	CreatorUserID  int64    `json:"creator_user_id"`
	Location       Location `json:"location"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	Active         bool     `json:"active"`
}

type Course struct {
	CourseID      int64  `json:"course_id"`
	CreationTime  int64  `json:"creation_time"`
	CreatorUserID int64  `json:"creator_user_id"`
	School        School `json:"school"`
}

type CourseData struct {
	CourseDataID  int64    `json:"course_data_id"`
	CreationTime  int64    `json:"creation_time"`
	CreatorUserID int64    `json:"creator_user_id"`
	Course        Course   `json:"course"`
	Location      Location `json:"location"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Homeroom      bool     `json:"homeroom"`
	Active        bool     `json:"active"`
}

type CourseKey struct {
	CourseKeyKey         string                      `json:"course_key_key"`
	CreationTime         int64                       `json:"creation_time"`
	CreatorUserID        int64                       `json:"creator_user_id"`
	Course               Course                      `json:"course"`
	MaxUses              int64                       `json:"max_uses"`
	CourseMembershipKind models.CourseMembershipKind `json:"course_membership_kind"`
	StartTime            int64                       `json:"start_time"`
	EndTime              int64                       `json:"end_time"`
}

type CourseKeyData struct {
	CourseKeyDataID int64     `json:"course_key_data_id"`
	CreationTime    int64     `json:"creation_time"`
	CreatorUserID   int64     `json:"creator_user_id"`
	CourseKey       CourseKey `json:"course_key"`
	Active          bool      `json:"active"`
}

type CourseMembership struct {
	CourseMembershipID   int64                       `json:"course_membership_id"`
	CreationTime         int64                       `json:"creation_time"`
	CreatorUserID        int64                       `json:"creator_user_id"`
	UserID               int64                       `json:"user_id"`
	Course               Course                      `json:"course"`
	CourseMembershipKind models.CourseMembershipKind `json:"course_membership_kind"`
	CourseKey            *CourseKey                  `json:"course_key,omitempty"`
}

type Session struct {
	SessionID     int64  `json:"session_id"`
	CreationTime  int64  `json:"creation_time"`
	CreatorUserID int64  `json:"creator_user_id"`
	Course        Course `json:"course"`
}

type SessionData struct {
	SessionDataID int64   `json:"session_data_id"`
	CreationTime  int64   `json:"creation_time"`
	CreatorUserID int64   `json:"creator_user_id"`
	Session       Session `json:"session"`
	Name          string  `json:"name"`
	StartTime     int64   `json:"start_time"`
	EndTime       int64   `json:"end_time"`
	Active        bool    `json:"active"`
}

type SessionRequest struct {
	SessionRequestID int64  `json:"session_request_id"`
	CreationTime     int64  `json:"creation_time"`
	CreatorUserID    int64  `json:"creator_user_id"`
	Course           Course `json:"course"`
	Message          string `json:"message"`
	StartTime        int64  `json:"start_time"`
	EndTime          int64  `json:"end_time"`
}

type SessionRequestResponse struct {
	SessionRequest SessionRequest `json:"session_request"`
	CreationTime   int64          `json:"creation_time"`
	CreatorUserID  int64          `json:"creator_user_id"`
	Message        string         `json:"message"`
	Commitment     *Commitment    `json:"commitment,omitempty"`
}

type Commitment struct {
	CommitmentID   int64   `json:"commitment_id"`
	CreationTime   int64   `json:"creation_time"`
	CreatorUserID  int64   `json:"creator_user_id"`
	AttendeeUserID int64   `json:"attendee_user_id"`
	Session        Session `json:"session"`
	Active         bool    `json:"active"`
}

type Encounter struct {
	EncounterID    int64                `json:"encounter_id"`
	CreationTime   int64                `json:"creation_time"`
	CreatorUserID  int64                `json:"creator_user_id"`
	LocationID     int64                `json:"location_id"`
	AttendeeUserID int64                `json:"attendee_user_id"`
	EncounterKind  models.EncounterKind `json:"encounter_kind"`
}

type Stay struct {
	StayID         int64    `json:"stay_id"`
	CreationTime   int64    `json:"creation_time"`
	CreatorUserID  int64    `json:"creator_user_id"`
	AttendeeUserID int64    `json:"attendee_user_id"`
	Location       Location `json:"location"`
}

// StayEndpoint is exactly one of an encounter or a timestamp.
type StayEndpoint struct {
	Encounter *Encounter `json:"encounter,omitempty"`
	Time      *int64     `json:"time,omitempty"`
}

// At returns the endpoint's instant.
func (e StayEndpoint) At() int64 {
	if e.Encounter != nil {
		return e.Encounter.CreationTime
	}
	if e.Time != nil {
		return *e.Time
	}
	return 0
}

type StayData struct {
	StayDataID    int64        `json:"stay_data_id"`
	CreationTime  int64        `json:"creation_time"`
	CreatorUserID int64        `json:"creator_user_id"`
	Stay          Stay         `json:"stay"`
	Fst           StayEndpoint `json:"fst"`
	Snd           StayEndpoint `json:"snd"`
	Active        bool         `json:"active"`
}

// AttendanceRow is one line of a session attendance sheet.
type AttendanceRow struct {
	AttendeeUserID int64 `json:"attendee_user_id"`
	Committed      bool  `json:"committed"`
	Present        bool  `json:"present"`
	StayMinutes    int64 `json:"stay_minutes"`
}

// AttendanceExport is the result of rendering an attendance sheet.
type AttendanceExport struct {
	SessionID   int64           `json:"session_id"`
	Format      string          `json:"format"`
	Rows        []AttendanceRow `json:"rows"`
	DownloadURL string          `json:"download_url"`
	ExpiresAt   int64           `json:"expires_at"`
}
