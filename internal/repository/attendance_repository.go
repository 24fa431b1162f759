package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
)

// AttendanceRepository persists encounters and stays.
type AttendanceRepository struct {
	store
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{store{db: db}}
}

// CreateEncounter inserts an encounter and assigns its id.
func (r *AttendanceRepository) CreateEncounter(ctx context.Context, exec sqlx.ExtContext, encounter *models.Encounter) error {
	return encounterChain.Append(ctx, r.exec(exec), encounter)
}

// FindEncounter loads an encounter, returning nil when it does not exist.
func (r *AttendanceRepository) FindEncounter(ctx context.Context, exec sqlx.ExtContext, encounterID int64) (*models.Encounter, error) {
	return byID[models.Encounter](ctx, r.exec(exec), encounterChain, encounterID)
}

// ListEncounters returns encounters matching the filter.
func (r *AttendanceRepository) ListEncounters(ctx context.Context, exec sqlx.ExtContext, filter models.EncounterFilter) ([]models.Encounter, error) {
	f := common(filter.CommonFilter).
		Int64s("encounter_id", filter.EncounterID).
		Int64s("location_id", filter.LocationID).
		Int64s("attendee_user_id", filter.AttendeeUserID).
		Strings("encounter_kind", kinds(filter.EncounterKind))
	return list[models.Encounter](ctx, r.exec(exec), encounterChain, filter.OnlyRecent, f)
}

// CreateStay inserts a stay and assigns its id.
func (r *AttendanceRepository) CreateStay(ctx context.Context, exec sqlx.ExtContext, stay *models.Stay) error {
	return stayChain.Append(ctx, r.exec(exec), stay)
}

// FindStay loads a stay, returning nil when it does not exist.
func (r *AttendanceRepository) FindStay(ctx context.Context, exec sqlx.ExtContext, stayID int64) (*models.Stay, error) {
	return byID[models.Stay](ctx, r.exec(exec), stayChain, stayID)
}

// ListStays returns stays matching the filter.
func (r *AttendanceRepository) ListStays(ctx context.Context, exec sqlx.ExtContext, filter models.StayFilter) ([]models.Stay, error) {
	f := common(filter.CommonFilter).
		Int64s("stay_id", filter.StayID).
		Int64s("attendee_user_id", filter.AttendeeUserID).
		Int64s("location_id", filter.LocationID)
	return list[models.Stay](ctx, r.exec(exec), stayChain, filter.OnlyRecent, f)
}

// AppendStayData appends a stay data version.
func (r *AttendanceRepository) AppendStayData(ctx context.Context, exec sqlx.ExtContext, data *models.StayData) error {
	return stayDataChain.Append(ctx, r.exec(exec), data)
}

// StayDataHead returns the current data for a stay.
func (r *AttendanceRepository) StayDataHead(ctx context.Context, exec sqlx.ExtContext, stayID int64) (*models.StayData, error) {
	return head[models.StayData](ctx, r.exec(exec), stayDataChain, stayID)
}

// ListStayData returns stay data versions matching the filter.
func (r *AttendanceRepository) ListStayData(ctx context.Context, exec sqlx.ExtContext, filter models.StayDataFilter) ([]models.StayData, error) {
	f := common(filter.CommonFilter).
		Int64s("stay_data_id", filter.StayDataID).
		Int64s("stay_id", filter.StayID).
		Int64s("fst_encounter_id", filter.FstEncounterID).
		Int64s("snd_encounter_id", filter.SndEncounterID).
		Min("fst_time", filter.MinFstTime).
		Max("fst_time", filter.MaxFstTime).
		Min("snd_time", filter.MinSndTime).
		Max("snd_time", filter.MaxSndTime).
		Eq("active", filter.Active)
	return list[models.StayData](ctx, r.exec(exec), stayDataChain, filter.OnlyRecent, f)
}
