package models

// User is a caller verified by the external identity directory.
type User struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Pagination describes the window a view returned.
type Pagination struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// CommonFilter holds the filter fields every view accepts. Unset fields
// impose no constraint.
type CommonFilter struct {
	MinCreationTime *int64  `json:"min_creation_time,omitempty"`
	MaxCreationTime *int64  `json:"max_creation_time,omitempty"`
	CreatorUserID   []int64 `json:"creator_user_id,omitempty"`
	OnlyRecent      bool    `json:"only_recent"`
	Limit           int     `json:"limit,omitempty" validate:"gte=0,lte=1000"`
	Offset          int     `json:"offset,omitempty" validate:"gte=0"`
}

// Window reports the requested limit and offset.
func (f CommonFilter) Window() (limit, offset int) {
	return f.Limit, f.Offset
}
