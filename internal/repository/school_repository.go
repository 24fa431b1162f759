package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
	"github.com/noah-isme/hours-api/pkg/versioned"
)

// SchoolRepository persists schools, their timetable, school keys and adminships.
type SchoolRepository struct {
	store
}

// NewSchoolRepository constructs the repository.
func NewSchoolRepository(db *sqlx.DB) *SchoolRepository {
	return &SchoolRepository{store{db: db}}
}

// CreateSchool inserts a school and assigns its id.
func (r *SchoolRepository) CreateSchool(ctx context.Context, exec sqlx.ExtContext, school *models.School) error {
	return schoolChain.Append(ctx, r.exec(exec), school)
}

// FindSchool loads a school, returning nil when it does not exist.
func (r *SchoolRepository) FindSchool(ctx context.Context, exec sqlx.ExtContext, schoolID int64) (*models.School, error) {
	return byID[models.School](ctx, r.exec(exec), schoolChain, schoolID)
}

// ListSchools returns schools matching the filter.
func (r *SchoolRepository) ListSchools(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolFilter) ([]models.School, error) {
	f := common(filter.CommonFilter).
		Int64s("school_id", filter.SchoolID).
		Eq("whole", filter.Whole)
	return list[models.School](ctx, r.exec(exec), schoolChain, filter.OnlyRecent, f)
}

// AppendSchoolData appends a school data version.
func (r *SchoolRepository) AppendSchoolData(ctx context.Context, exec sqlx.ExtContext, data *models.SchoolData) error {
	return schoolDataChain.Append(ctx, r.exec(exec), data)
}

// SchoolDataHead returns the current data for a school.
func (r *SchoolRepository) SchoolDataHead(ctx context.Context, exec sqlx.ExtContext, schoolID int64) (*models.SchoolData, error) {
	return head[models.SchoolData](ctx, r.exec(exec), schoolDataChain, schoolID)
}

// ListSchoolData returns school data versions matching the filter.
func (r *SchoolRepository) ListSchoolData(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolDataFilter) ([]models.SchoolData, error) {
	f := common(filter.CommonFilter).
		Int64s("school_data_id", filter.SchoolDataID).
		Int64s("school_id", filter.SchoolID).
		Eq("name", filter.Name).
		Contains("name", filter.PartialName).
		Eq("active", filter.Active)
	return list[models.SchoolData](ctx, r.exec(exec), schoolDataChain, filter.OnlyRecent, f)
}

// CreateSchoolDuration inserts a timetable block and assigns its id.
func (r *SchoolRepository) CreateSchoolDuration(ctx context.Context, exec sqlx.ExtContext, duration *models.SchoolDuration) error {
	return schoolDurationChain.Append(ctx, r.exec(exec), duration)
}

// FindSchoolDuration loads a timetable block, returning nil when absent.
func (r *SchoolRepository) FindSchoolDuration(ctx context.Context, exec sqlx.ExtContext, durationID int64) (*models.SchoolDuration, error) {
	return byID[models.SchoolDuration](ctx, r.exec(exec), schoolDurationChain, durationID)
}

// ListSchoolDurations returns timetable blocks matching the filter.
func (r *SchoolRepository) ListSchoolDurations(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolDurationFilter) ([]models.SchoolDuration, error) {
	f := common(filter.CommonFilter).
		Int64s("school_duration_id", filter.SchoolDurationID).
		Int64s("school_id", filter.SchoolID)
	return list[models.SchoolDuration](ctx, r.exec(exec), schoolDurationChain, filter.OnlyRecent, f)
}

// AppendSchoolDurationData appends a timetable block version.
func (r *SchoolRepository) AppendSchoolDurationData(ctx context.Context, exec sqlx.ExtContext, data *models.SchoolDurationData) error {
	return schoolDurationDataChain.Append(ctx, r.exec(exec), data)
}

// SchoolDurationDataHead returns the current data for a timetable block.
func (r *SchoolRepository) SchoolDurationDataHead(ctx context.Context, exec sqlx.ExtContext, durationID int64) (*models.SchoolDurationData, error) {
	return head[models.SchoolDurationData](ctx, r.exec(exec), schoolDurationDataChain, durationID)
}

// ListSchoolDurationData returns timetable block versions matching the filter.
func (r *SchoolRepository) ListSchoolDurationData(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolDurationDataFilter) ([]models.SchoolDurationData, error) {
	f := common(filter.CommonFilter).
		Int64s("school_duration_data_id", filter.SchoolDurationDataID).
		Int64s("school_duration_id", filter.SchoolDurationID).
		Int64s("day", filter.Day).
		Min("minute_start", filter.MinMinuteStart).
		Max("minute_start", filter.MaxMinuteStart).
		Min("minute_end", filter.MinMinuteEnd).
		Max("minute_end", filter.MaxMinuteEnd).
		Eq("active", filter.Active)
	return list[models.SchoolDurationData](ctx, r.exec(exec), schoolDurationDataChain, filter.OnlyRecent, f)
}

// CreateSchoolKey inserts an immutable school key.
func (r *SchoolRepository) CreateSchoolKey(ctx context.Context, exec sqlx.ExtContext, key *models.SchoolKey) error {
	return schoolKeyChain.Append(ctx, r.exec(exec), key)
}

// FindSchoolKey loads a school key by token.
func (r *SchoolRepository) FindSchoolKey(ctx context.Context, exec sqlx.ExtContext, token string) (*models.SchoolKey, error) {
	return byID[models.SchoolKey](ctx, r.exec(exec), schoolKeyChain, token)
}

// ListSchoolKeys returns school keys matching the filter.
func (r *SchoolRepository) ListSchoolKeys(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolKeyFilter) ([]models.SchoolKey, error) {
	f := common(filter.CommonFilter).
		Strings("school_key_key", filter.SchoolKeyKey).
		Int64s("school_id", filter.SchoolID).
		Min("start_time", filter.MinStartTime).
		Max("start_time", filter.MaxStartTime).
		Min("end_time", filter.MinEndTime).
		Max("end_time", filter.MaxEndTime)
	return list[models.SchoolKey](ctx, r.exec(exec), schoolKeyChain, filter.OnlyRecent, f)
}

// AppendSchoolKeyData appends a school key data version.
func (r *SchoolRepository) AppendSchoolKeyData(ctx context.Context, exec sqlx.ExtContext, data *models.SchoolKeyData) error {
	return schoolKeyDataChain.Append(ctx, r.exec(exec), data)
}

// SchoolKeyDataHead returns the current data for a school key.
func (r *SchoolRepository) SchoolKeyDataHead(ctx context.Context, exec sqlx.ExtContext, token string) (*models.SchoolKeyData, error) {
	return head[models.SchoolKeyData](ctx, r.exec(exec), schoolKeyDataChain, token)
}

// ListSchoolKeyData returns school key data versions matching the filter.
func (r *SchoolRepository) ListSchoolKeyData(ctx context.Context, exec sqlx.ExtContext, filter models.SchoolKeyDataFilter) ([]models.SchoolKeyData, error) {
	f := common(filter.CommonFilter).
		Int64s("school_key_data_id", filter.SchoolKeyDataID).
		Strings("school_key_key", filter.SchoolKeyKey).
		Eq("active", filter.Active)
	return list[models.SchoolKeyData](ctx, r.exec(exec), schoolKeyDataChain, filter.OnlyRecent, f)
}

// AppendAdminship appends an adminship version.
func (r *SchoolRepository) AppendAdminship(ctx context.Context, exec sqlx.ExtContext, adminship *models.Adminship) error {
	return adminshipChain.Append(ctx, r.exec(exec), adminship)
}

// AdminshipHead returns the current adminship of user at school.
func (r *SchoolRepository) AdminshipHead(ctx context.Context, exec sqlx.ExtContext, userID, schoolID int64) (*models.Adminship, error) {
	return head[models.Adminship](ctx, r.exec(exec), adminshipChain, userID, schoolID)
}

// CountAdminshipsByKey counts every adminship version redeemed with token.
func (r *SchoolRepository) CountAdminshipsByKey(ctx context.Context, exec sqlx.ExtContext, token string) (int64, error) {
	return adminshipChain.Count(ctx, r.exec(exec), versioned.NewFilter().Eq("school_key_key", token))
}

// CountAdmins counts users whose current adminship at school is ADMIN.
func (r *SchoolRepository) CountAdmins(ctx context.Context, exec sqlx.ExtContext, schoolID int64) (int64, error) {
	return adminshipChain.CountHeads(ctx, r.exec(exec), versioned.NewFilter().
		Eq("school_id", schoolID).
		Eq("adminship_kind", string(models.AdminshipKindAdmin)))
}

// CountAdministeredSchools counts schools where user currently is ADMIN.
func (r *SchoolRepository) CountAdministeredSchools(ctx context.Context, exec sqlx.ExtContext, userID int64) (int64, error) {
	return adminshipChain.CountHeads(ctx, r.exec(exec), versioned.NewFilter().
		Eq("user_id", userID).
		Eq("adminship_kind", string(models.AdminshipKindAdmin)))
}

// ListAdminships returns adminship versions matching the filter.
func (r *SchoolRepository) ListAdminships(ctx context.Context, exec sqlx.ExtContext, filter models.AdminshipFilter) ([]models.Adminship, error) {
	f := common(filter.CommonFilter).
		Int64s("adminship_id", filter.AdminshipID).
		Int64s("user_id", filter.UserID).
		Int64s("school_id", filter.SchoolID).
		Strings("adminship_kind", kinds(filter.AdminshipKind)).
		Strings("school_key_key", filter.SchoolKeyKey).
		Present("school_key_key", filter.FromKey)
	return list[models.Adminship](ctx, r.exec(exec), adminshipChain, filter.OnlyRecent, f)
}
