package models

// CourseMembershipKind is the state carried by a course membership head.
type CourseMembershipKind string

const (
	CourseMembershipKindStudent    CourseMembershipKind = "STUDENT"
	CourseMembershipKindInstructor CourseMembershipKind = "INSTRUCTOR"
	CourseMembershipKindCancel     CourseMembershipKind = "CANCEL"
)

// Grantable reports whether a key may hand out this kind.
func (k CourseMembershipKind) Grantable() bool {
	return k == CourseMembershipKindStudent || k == CourseMembershipKindInstructor
}

// Location is a physical place owned by a school.
type Location struct {
	LocationID    int64 `db:"location_id" json:"location_id"`
	CreationTime  int64 `db:"creation_time" json:"creation_time"`
	CreatorUserID int64 `db:"creator_user_id" json:"creator_user_id"`
	SchoolID      int64 `db:"school_id" json:"school_id"`
}

// LocationData is one version of a location's descriptive fields.
type LocationData struct {
	LocationDataID int64  `db:"location_data_id" json:"location_data_id"`
	CreationTime   int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID  int64  `db:"creator_user_id" json:"creator_user_id"`
	LocationID     int64  `db:"location_id" json:"location_id"`
	Name           string `db:"name" json:"name"`
	Address        string `db:"address" json:"address"`
	Phone          string `db:"phone" json:"phone"`
	Active         bool   `db:"active" json:"active"`
}

// Course is the immutable root of a course.
type Course struct {
	CourseID      int64 `db:"course_id" json:"course_id"`
	CreationTime  int64 `db:"creation_time" json:"creation_time"`
	CreatorUserID int64 `db:"creator_user_id" json:"creator_user_id"`
	SchoolID      int64 `db:"school_id" json:"school_id"`
}

// CourseData is one version of a course's descriptive fields.
type CourseData struct {
	CourseDataID  int64  `db:"course_data_id" json:"course_data_id"`
	CreationTime  int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID int64  `db:"creator_user_id" json:"creator_user_id"`
	CourseID      int64  `db:"course_id" json:"course_id"`
	LocationID    int64  `db:"location_id" json:"location_id"`
	Name          string `db:"name" json:"name"`
	Description   string `db:"description" json:"description"`
	Homeroom      bool   `db:"homeroom" json:"homeroom"`
	Active        bool   `db:"active" json:"active"`
}

// CourseKey is a time-bounded, use-capped token granting course membership.
type CourseKey struct {
	CourseKeyKey         string               `db:"course_key_key" json:"course_key_key"`
	CreationTime         int64                `db:"creation_time" json:"creation_time"`
	CreatorUserID        int64                `db:"creator_user_id" json:"creator_user_id"`
	CourseID             int64                `db:"course_id" json:"course_id"`
	MaxUses              int64                `db:"max_uses" json:"max_uses"`
	CourseMembershipKind CourseMembershipKind `db:"course_membership_kind" json:"course_membership_kind"`
	StartTime            int64                `db:"start_time" json:"start_time"`
	EndTime              int64                `db:"end_time" json:"end_time"`
}

// CourseKeyData is one version of a course key's active flag.
type CourseKeyData struct {
	CourseKeyDataID int64  `db:"course_key_data_id" json:"course_key_data_id"`
	CreationTime    int64  `db:"creation_time" json:"creation_time"`
	CreatorUserID   int64  `db:"creator_user_id" json:"creator_user_id"`
	CourseKeyKey    string `db:"course_key_key" json:"course_key_key"`
	Active          bool   `db:"active" json:"active"`
}

// CourseMembership is one version of a (user, course) relation.
type CourseMembership struct {
	CourseMembershipID   int64                `db:"course_membership_id" json:"course_membership_id"`
	CreationTime         int64                `db:"creation_time" json:"creation_time"`
	CreatorUserID        int64                `db:"creator_user_id" json:"creator_user_id"`
	UserID               int64                `db:"user_id" json:"user_id"`
	CourseID             int64                `db:"course_id" json:"course_id"`
	CourseMembershipKind CourseMembershipKind `db:"course_membership_kind" json:"course_membership_kind"`
	CourseKeyKey         *string              `db:"course_key_key" json:"course_key_key,omitempty"`
}

// LocationFilter narrows the location view.
type LocationFilter struct {
	CommonFilter
	LocationID []int64 `json:"location_id,omitempty"`
	SchoolID   []int64 `json:"school_id,omitempty"`
}

// LocationDataFilter narrows the location data view.
type LocationDataFilter struct {
	CommonFilter
	LocationDataID []int64 `json:"location_data_id,omitempty"`
	LocationID     []int64 `json:"location_id,omitempty"`
	Name           *string `json:"name,omitempty"`
	PartialName    *string `json:"partial_name,omitempty"`
	Address        *string `json:"address,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Active         *bool   `json:"active,omitempty"`
}

// CourseFilter narrows the course view.
type CourseFilter struct {
	CommonFilter
	CourseID []int64 `json:"course_id,omitempty"`
	SchoolID []int64 `json:"school_id,omitempty"`
}

// CourseDataFilter narrows the course data view.
type CourseDataFilter struct {
	CommonFilter
	CourseDataID []int64 `json:"course_data_id,omitempty"`
	CourseID     []int64 `json:"course_id,omitempty"`
	LocationID   []int64 `json:"location_id,omitempty"`
	Name         *string `json:"name,omitempty"`
	PartialName  *string `json:"partial_name,omitempty"`
	Homeroom     *bool   `json:"homeroom,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// CourseKeyFilter narrows the course key view.
type CourseKeyFilter struct {
	CommonFilter
	CourseKeyKey         []string               `json:"course_key_key,omitempty"`
	CourseID             []int64                `json:"course_id,omitempty"`
	CourseMembershipKind []CourseMembershipKind `json:"course_membership_kind,omitempty"`
	MinStartTime         *int64                 `json:"min_start_time,omitempty"`
	MaxStartTime         *int64                 `json:"max_start_time,omitempty"`
	MinEndTime           *int64                 `json:"min_end_time,omitempty"`
	MaxEndTime           *int64                 `json:"max_end_time,omitempty"`
	MaxUses              []int64                `json:"max_uses,omitempty"`
}

// CourseKeyDataFilter narrows the course key data view.
type CourseKeyDataFilter struct {
	CommonFilter
	CourseKeyDataID []int64  `json:"course_key_data_id,omitempty"`
	CourseKeyKey    []string `json:"course_key_key,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// CourseMembershipFilter narrows the course membership view.
type CourseMembershipFilter struct {
	CommonFilter
	CourseMembershipID   []int64                `json:"course_membership_id,omitempty"`
	UserID               []int64                `json:"user_id,omitempty"`
	CourseID             []int64                `json:"course_id,omitempty"`
	CourseMembershipKind []CourseMembershipKind `json:"course_membership_kind,omitempty"`
	CourseKeyKey         []string               `json:"course_key_key,omitempty"`
	FromKey              *bool                  `json:"from_key,omitempty"`
}
