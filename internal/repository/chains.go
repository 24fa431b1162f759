package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
	"github.com/noah-isme/hours-api/pkg/versioned"
)

// Relation layouts. Column order matches the migration.
var (
	subscriptionChain = versioned.Chain{
		Table: "subscription", Recent: "recent_subscription_v", ID: "subscription_id", Serial: true,
		Key:     []string{"creator_user_id"},
		Columns: []string{"subscription_id", "creation_time", "creator_user_id", "subscription_kind", "max_uses"},
	}
	schoolChain = versioned.Chain{
		Table: "school", ID: "school_id", Serial: true,
		Columns: []string{"school_id", "creation_time", "creator_user_id", "whole"},
	}
	schoolDataChain = versioned.Chain{
		Table: "school_data", Recent: "recent_school_data_v", ID: "school_data_id", Serial: true,
		Key:     []string{"school_id"},
		Columns: []string{"school_data_id", "creation_time", "creator_user_id", "school_id", "name", "description", "active"},
	}
	schoolDurationChain = versioned.Chain{
		Table: "school_duration", ID: "school_duration_id", Serial: true,
		Columns: []string{"school_duration_id", "creation_time", "creator_user_id", "school_id"},
	}
	schoolDurationDataChain = versioned.Chain{
		Table: "school_duration_data", Recent: "recent_school_duration_data_v", ID: "school_duration_data_id", Serial: true,
		Key:     []string{"school_duration_id"},
		Columns: []string{"school_duration_data_id", "creation_time", "creator_user_id", "school_duration_id", "day", "minute_start", "minute_end", "active"},
	}
	schoolKeyChain = versioned.Chain{
		Table: "school_key", ID: "school_key_key",
		Columns: []string{"school_key_key", "creation_time", "creator_user_id", "school_id", "start_time", "end_time"},
	}
	schoolKeyDataChain = versioned.Chain{
		Table: "school_key_data", Recent: "recent_school_key_data_v", ID: "school_key_data_id", Serial: true,
		Key:     []string{"school_key_key"},
		Columns: []string{"school_key_data_id", "creation_time", "creator_user_id", "school_key_key", "active"},
	}
	adminshipChain = versioned.Chain{
		Table: "adminship", Recent: "recent_adminship_v", ID: "adminship_id", Serial: true,
		Key:     []string{"user_id", "school_id"},
		Columns: []string{"adminship_id", "creation_time", "creator_user_id", "user_id", "school_id", "adminship_kind", "school_key_key"},
	}
	locationChain = versioned.Chain{
		Table: "location", ID: "location_id", Serial: true,
		Columns: []string{"location_id", "creation_time", "creator_user_id", "school_id"},
	}
	locationDataChain = versioned.Chain{
		Table: "location_data", Recent: "recent_location_data_v", ID: "location_data_id", Serial: true,
		Key:     []string{"location_id"},
		Columns: []string{"location_data_id", "creation_time", "creator_user_id", "location_id", "name", "address", "phone", "active"},
	}
	courseChain = versioned.Chain{
		Table: "course", ID: "course_id", Serial: true,
		Columns: []string{"course_id", "creation_time", "creator_user_id", "school_id"},
	}
	courseDataChain = versioned.Chain{
		Table: "course_data", Recent: "recent_course_data_v", ID: "course_data_id", Serial: true,
		Key:     []string{"course_id"},
		Columns: []string{"course_data_id", "creation_time", "creator_user_id", "course_id", "location_id", "name", "description", "homeroom", "active"},
	}
	courseKeyChain = versioned.Chain{
		Table: "course_key", ID: "course_key_key",
		Columns: []string{"course_key_key", "creation_time", "creator_user_id", "course_id", "max_uses", "course_membership_kind", "start_time", "end_time"},
	}
	courseKeyDataChain = versioned.Chain{
		Table: "course_key_data", Recent: "recent_course_key_data_v", ID: "course_key_data_id", Serial: true,
		Key:     []string{"course_key_key"},
		Columns: []string{"course_key_data_id", "creation_time", "creator_user_id", "course_key_key", "active"},
	}
	courseMembershipChain = versioned.Chain{
		Table: "course_membership", Recent: "recent_course_membership_v", ID: "course_membership_id", Serial: true,
		Key:     []string{"user_id", "course_id"},
		Columns: []string{"course_membership_id", "creation_time", "creator_user_id", "user_id", "course_id", "course_membership_kind", "course_key_key"},
	}
	sessionChain = versioned.Chain{
		Table: "session", ID: "session_id", Serial: true,
		Columns: []string{"session_id", "creation_time", "creator_user_id", "course_id"},
	}
	sessionDataChain = versioned.Chain{
		Table: "session_data", Recent: "recent_session_data_v", ID: "session_data_id", Serial: true,
		Key:     []string{"session_id"},
		Columns: []string{"session_data_id", "creation_time", "creator_user_id", "session_id", "name", "start_time", "end_time", "active"},
	}
	sessionRequestChain = versioned.Chain{
		Table: "session_request", ID: "session_request_id", Serial: true,
		Columns: []string{"session_request_id", "creation_time", "creator_user_id", "course_id", "message", "start_time", "end_time"},
	}
	sessionRequestResponseChain = versioned.Chain{
		Table: "session_request_response", ID: "session_request_id",
		Columns: []string{"session_request_id", "creation_time", "creator_user_id", "message", "commitment_id"},
	}
	commitmentChain = versioned.Chain{
		Table: "commitment", Recent: "recent_commitment_v", ID: "commitment_id", Serial: true,
		Key:     []string{"attendee_user_id", "session_id"},
		Columns: []string{"commitment_id", "creation_time", "creator_user_id", "attendee_user_id", "session_id", "active"},
	}
	encounterChain = versioned.Chain{
		Table: "encounter", ID: "encounter_id", Serial: true,
		Columns: []string{"encounter_id", "creation_time", "creator_user_id", "location_id", "attendee_user_id", "encounter_kind"},
	}
	stayChain = versioned.Chain{
		Table: "stay", ID: "stay_id", Serial: true,
		Columns: []string{"stay_id", "creation_time", "creator_user_id", "attendee_user_id", "location_id"},
	}
	stayDataChain = versioned.Chain{
		Table: "stay_data", Recent: "recent_stay_data_v", ID: "stay_data_id", Serial: true,
		Key:     []string{"stay_id"},
		Columns: []string{"stay_data_id", "creation_time", "creator_user_id", "stay_id", "fst_encounter_id", "fst_time", "snd_encounter_id", "snd_time", "active"},
	}
)

type store struct {
	db *sqlx.DB
}

func (s store) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return s.db
}

// head loads the chain head into a fresh T, returning nil for an empty chain.
func head[T any](ctx context.Context, exec sqlx.ExtContext, chain versioned.Chain, key ...interface{}) (*T, error) {
	var record T
	found, err := chain.Head(ctx, exec, &record, key...)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

// byID loads a single row by id, returning nil when absent.
func byID[T any](ctx context.Context, exec sqlx.ExtContext, chain versioned.Chain, id interface{}) (*T, error) {
	var record T
	found, err := chain.Get(ctx, exec, &record, id)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

func list[T any](ctx context.Context, exec sqlx.ExtContext, chain versioned.Chain, onlyRecent bool, filter *versioned.Filter) ([]T, error) {
	records := make([]T, 0)
	if err := chain.Select(ctx, exec, &records, onlyRecent, filter); err != nil {
		return nil, err
	}
	return records, nil
}

// common applies the filter fields every view accepts.
func common(f models.CommonFilter) *versioned.Filter {
	return versioned.NewFilter().
		Min("creation_time", f.MinCreationTime).
		Max("creation_time", f.MaxCreationTime).
		Int64s("creator_user_id", f.CreatorUserID).
		Page(f.Limit, f.Offset)
}

func kinds[K ~string](values []K) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
