package models

// AdminshipKind is the state carried by an adminship head.
type AdminshipKind string

const (
	AdminshipKindAdmin  AdminshipKind = "ADMIN"
	AdminshipKindCancel AdminshipKind = "CANCEL"
)

// SubscriptionKind is the state carried by a subscription head.
type SubscriptionKind string

const (
	SubscriptionKindValid  SubscriptionKind = "VALID"
	SubscriptionKindCancel SubscriptionKind = "CANCEL"
)

// School is the immutable tenant root.
type School struct {
	SchoolID      int64 `db:"school_id" json:"school_id"`
	CreationTime  int64 `db:"creation_time" json:"creation_time"`
	CreatorUserID int64 `db:"creator_user_id" json:"creator_user_id"`
	Whole         bool  `db:"whole" json:"whole"`
}

// SchoolData is one version of a school's descriptive fields.
type SchoolData struct {
	SchoolDataID  int64  `db:"school_data_id" json:"school_data_id"`
	CreationTime  int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID int64  `db:"creator_user_id" json:"creator_user_id"`
	SchoolID      int64  `db:"school_id" json:"school_id"`
	Name          string `db:"name" json:"name"`
	Description   string `db:"description" json:"description"`
	Active        bool   `db:"active" json:"active"`
}

// SchoolDuration is a recurring block of a school's weekly timetable.
type SchoolDuration struct {
	SchoolDurationID int64 `db:"school_duration_id" json:"school_duration_id"`
	CreationTime     int64 `db:"creation_time" json:"creation_time"`
	CreatorUserID    int64 `db:"creator_user_id" json:"creator_user_id"`
	SchoolID         int64 `db:"school_id" json:"school_id"`
}

// SchoolDurationData is one version of a duration's weekday and minute span.
// Day runs from 0 (Sunday) to 6; minutes count from local midnight.
type SchoolDurationData struct {
	SchoolDurationDataID int64 `db:"school_duration_data_id" json:"school_duration_data_id"`
	CreationTime         int64 `db:"creation_time" json:"creation_time"`
	CreatorUserID        int64 `db:"creator_user_id" json:"creator_user_id"`
	SchoolDurationID     int64 `db:"school_duration_id" json:"school_duration_id"`
	Day                  int64 `db:"day" json:"day"`
	MinuteStart          int64 `db:"minute_start" json:"minute_start"`
	MinuteEnd            int64 `db:"minute_end" json:"minute_end"`
	Active               bool  `db:"active" json:"active"`
}

// SchoolKey is a single-use token granting adminship of a school.
type SchoolKey struct {
	SchoolKeyKey  string `db:"school_key_key" json:"school_key_key"`
	CreationTime  int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID int64  `db:"creator_user_id" json:"creator_user_id"`
	SchoolID      int64  `db:"school_id" json:"school_id"`
	StartTime     int64  `db:"start_time" json:"start_time"`
	EndTime       int64  `db:"end_time" json:"end_time"`
}

// SchoolKeyData is one version of a school key's active flag.
type SchoolKeyData struct {
	SchoolKeyDataID int64  `db:"school_key_data_id" json:"school_key_data_id"`
	CreationTime    int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID   int64  `db:"creator_user_id" json:"creator_user_id"`
	SchoolKeyKey    string `db:"school_key_key" json:"school_key_key"`
	Active          bool   `db:"active" json:"active"`
}

// Adminship is one version of a (user, school) admin relation.
type Adminship struct {
	AdminshipID   int64         `db:"adminship_id" json:"adminship_id"`
	CreationTime  int64         `db:"creation_time" json:"creation_time"`
	CreatorUserID int64         `db:"creator_user_id" json:"creator_user_id"`
	UserID        int64         `db:"user_id" json:"user_id"`
	SchoolID      int64         `db:"school_id" json:"school_id"`
	AdminshipKind AdminshipKind `db:"adminship_kind" json:"adminship_kind"`
	SchoolKeyKey  *string       `db:"school_key_key" json:"school_key_key,omitempty"`
}

// Subscription is one version of a user's plan, bounding how many schools
// they may administer.
type Subscription struct {
	SubscriptionID   int64            `db:"subscription_id" json:"subscription_id"`
	CreationTime     int64            `db:"creation_time" json:"creation_time"`
	CreatorUserID    int64            `db:"creator_user_id" json:"creator_user_id"`
	SubscriptionKind SubscriptionKind `db:"subscription_kind" json:"subscription_kind"`
	MaxUses          int64            `db:"max_uses" json:"max_uses"`
}

// SchoolFilter narrows the school view.
type SchoolFilter struct {
	CommonFilter
	SchoolID []int64 `json:"school_id,omitempty"`
	Whole    *bool   `json:"whole,omitempty"`
}

// SchoolDataFilter narrows the school data view.
type SchoolDataFilter struct {
	CommonFilter
	SchoolDataID []int64 `json:"school_data_id,omitempty"`
	SchoolID     []int64 `json:"school_id,omitempty"`
	Name         *string `json:"name,omitempty"`
	PartialName  *string `json:"partial_name,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// SchoolDurationFilter narrows the school duration view.
type SchoolDurationFilter struct {
	CommonFilter
	SchoolDurationID []int64 `json:"school_duration_id,omitempty"`
	SchoolID         []int64 `json:"school_id,omitempty"`
}

// SchoolDurationDataFilter narrows the school duration data view.
type SchoolDurationDataFilter struct {
	CommonFilter
	SchoolDurationDataID []int64 `json:"school_duration_data_id,omitempty"`
	SchoolDurationID     []int64 `json:"school_duration_id,omitempty"`
	Day                  []int64 `json:"day,omitempty"`
	MinMinuteStart       *int64  `json:"min_minute_start,omitempty"`
	MaxMinuteStart       *int64  `json:"max_minute_start,omitempty"`
	MinMinuteEnd         *int64  `json:"min_minute_end,omitempty"`
	MaxMinuteEnd         *int64  `json:"max_minute_end,omitempty"`
	Active               *bool   `json:"active,omitempty"`
}

// SchoolKeyFilter narrows the school key view.
type SchoolKeyFilter struct {
	CommonFilter
	SchoolKeyKey []string `json:"school_key_key,omitempty"`
	SchoolID     []int64  `json:"school_id,omitempty"`
	MinStartTime *int64   `json:"min_start_time,omitempty"`
	MaxStartTime *int64   `json:"max_start_time,omitempty"`
	MinEndTime   *int64   `json:"min_end_time,omitempty"`
	MaxEndTime   *int64   `json:"max_end_time,omitempty"`
}

// SchoolKeyDataFilter narrows the school key data view.
type SchoolKeyDataFilter struct {
	CommonFilter
	SchoolKeyDataID []int64  `json:"school_key_data_id,omitempty"`
	SchoolKeyKey    []string `json:"school_key_key,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// AdminshipFilter narrows the adminship view.
type AdminshipFilter struct {
	CommonFilter
	AdminshipID   []int64         `json:"adminship_id,omitempty"`
	UserID        []int64         `json:"user_id,omitempty"`
	SchoolID      []int64         `json:"school_id,omitempty"`
	AdminshipKind []AdminshipKind `json:"adminship_kind,omitempty"`
	SchoolKeyKey  []string        `json:"school_key_key,omitempty"`
	FromKey       *bool           `json:"from_key,omitempty"`
}

// SubscriptionFilter narrows the subscription view.
type SubscriptionFilter struct {
	CommonFilter
	SubscriptionID   []int64            `json:"subscription_id,omitempty"`
	SubscriptionKind []SubscriptionKind `json:"subscription_kind,omitempty"`
}
