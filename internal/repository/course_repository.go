package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
	"github.com/noah-isme/hours-api/pkg/versioned"
)

// CourseRepository persists courses, course keys and memberships.
type CourseRepository struct {
	store
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{store{db: db}}
}

// CreateCourse inserts a course and assigns its id.
func (r *CourseRepository) CreateCourse(ctx context.Context, exec sqlx.ExtContext, course *models.Course) error {
	return courseChain.Append(ctx, r.exec(exec), course)
}

// FindCourse loads a course, returning nil when it does not exist.
func (r *CourseRepository) FindCourse(ctx context.Context, exec sqlx.ExtContext, courseID int64) (*models.Course, error) {
	return byID[models.Course](ctx, r.exec(exec), courseChain, courseID)
}

// ListCourses returns courses matching the filter.
func (r *CourseRepository) ListCourses(ctx context.Context, exec sqlx.ExtContext, filter models.CourseFilter) ([]models.Course, error) {
	f := common(filter.CommonFilter).
		Int64s("course_id", filter.CourseID).
		Int64s("school_id", filter.SchoolID)
	return list[models.Course](ctx, r.exec(exec), courseChain, filter.OnlyRecent, f)
}

// AppendCourseData appends a course data version.
func (r *CourseRepository) AppendCourseData(ctx context.Context, exec sqlx.ExtContext, data *models.CourseData) error {
	return courseDataChain.Append(ctx, r.exec(exec), data)
}

// CourseDataHead returns the current data for a course.
func (r *CourseRepository) CourseDataHead(ctx context.Context, exec sqlx.ExtContext, courseID int64) (*models.CourseData, error) {
	return head[models.CourseData](ctx, r.exec(exec), courseDataChain, courseID)
}

// ListCourseData returns course data versions matching the filter.
func (r *CourseRepository) ListCourseData(ctx context.Context, exec sqlx.ExtContext, filter models.CourseDataFilter) ([]models.CourseData, error) {
	f := common(filter.CommonFilter).
		Int64s("course_data_id", filter.CourseDataID).
		Int64s("course_id", filter.CourseID).
		Int64s("location_id", filter.LocationID).
		Eq("name", filter.Name).
		Contains("name", filter.PartialName).
		Eq("homeroom", filter.Homeroom).
		Eq("active", filter.Active)
	return list[models.CourseData](ctx, r.exec(exec), courseDataChain, filter.OnlyRecent, f)
}

// CreateCourseKey inserts an immutable course key.
func (r *CourseRepository) CreateCourseKey(ctx context.Context, exec sqlx.ExtContext, key *models.CourseKey) error {
	return courseKeyChain.Append(ctx, r.exec(exec), key)
}

// FindCourseKey loads a course key by token.
func (r *CourseRepository) FindCourseKey(ctx context.Context, exec sqlx.ExtContext, token string) (*models.CourseKey, error) {
	return byID[models.CourseKey](ctx, r.exec(exec), courseKeyChain, token)
}

// ListCourseKeys returns course keys matching the filter.
func (r *CourseRepository) ListCourseKeys(ctx context.Context, exec sqlx.ExtContext, filter models.CourseKeyFilter) ([]models.CourseKey, error) {
	f := common(filter.CommonFilter).
		Strings("course_key_key", filter.CourseKeyKey).
		Int64s("course_id", filter.CourseID).
		Strings("course_membership_kind", kinds(filter.CourseMembershipKind)).
		Min("start_time", filter.MinStartTime).
		Max("start_time", filter.MaxStartTime).
		Min("end_time", filter.MinEndTime).
		Max("end_time", filter.MaxEndTime).
		Int64s("max_uses", filter.MaxUses)
	return list[models.CourseKey](ctx, r.exec(exec), courseKeyChain, filter.OnlyRecent, f)
}

// AppendCourseKeyData appends a course key data version.
func (r *CourseRepository) AppendCourseKeyData(ctx context.Context, exec sqlx.ExtContext, data *models.CourseKeyData) error {
	return courseKeyDataChain.Append(ctx, r.exec(exec), data)
}

// CourseKeyDataHead returns the current data for a course key.
func (r *CourseRepository) CourseKeyDataHead(ctx context.Context, exec sqlx.ExtContext, token string) (*models.CourseKeyData, error) {
	return head[models.CourseKeyData](ctx, r.exec(exec), courseKeyDataChain, token)
}

// ListCourseKeyData returns course key data versions matching the filter.
func (r *CourseRepository) ListCourseKeyData(ctx context.Context, exec sqlx.ExtContext, filter models.CourseKeyDataFilter) ([]models.CourseKeyData, error) {
	f := common(filter.CommonFilter).
		Int64s("course_key_data_id", filter.CourseKeyDataID).
		Strings("course_key_key", filter.CourseKeyKey).
		Eq("active", filter.Active)
	return list[models.CourseKeyData](ctx, r.exec(exec), courseKeyDataChain, filter.OnlyRecent, f)
}

// AppendMembership appends a course membership version.
func (r *CourseRepository) AppendMembership(ctx context.Context, exec sqlx.ExtContext, membership *models.CourseMembership) error {
	return courseMembershipChain.Append(ctx, r.exec(exec), membership)
}

// MembershipHead returns the current membership of user in course.
func (r *CourseRepository) MembershipHead(ctx context.Context, exec sqlx.ExtContext, userID, courseID int64) (*models.CourseMembership, error) {
	return head[models.CourseMembership](ctx, r.exec(exec), courseMembershipChain, userID, courseID)
}

// CountMembershipsByKey counts every membership version redeemed with token.
func (r *CourseRepository) CountMembershipsByKey(ctx context.Context, exec sqlx.ExtContext, token string) (int64, error) {
	return courseMembershipChain.Count(ctx, r.exec(exec), versioned.NewFilter().Eq("course_key_key", token))
}

// CountMembers counts users whose current membership in course has kind.
func (r *CourseRepository) CountMembers(ctx context.Context, exec sqlx.ExtContext, courseID int64, kind models.CourseMembershipKind) (int64, error) {
	return courseMembershipChain.CountHeads(ctx, r.exec(exec), versioned.NewFilter().
		Eq("course_id", courseID).
		Eq("course_membership_kind", string(kind)))
}

// IsInstructorAt reports whether user currently instructs an active course
// located at location.
func (r *CourseRepository) IsInstructorAt(ctx context.Context, exec sqlx.ExtContext, userID, locationID int64) (bool, error) {
	const query = `SELECT COUNT(*) FROM recent_course_membership_v cm
JOIN recent_course_data_v cd ON cd.course_id = cm.course_id
WHERE cm.user_id = $1 AND cd.location_id = $2 AND cm.course_membership_kind = $3 AND cd.active`
	var count int64
	if err := sqlx.GetContext(ctx, r.exec(exec), &count, query, userID, locationID, string(models.CourseMembershipKindInstructor)); err != nil {
		return false, fmt.Errorf("check instructor at location: %w", err)
	}
	return count > 0, nil
}

// ListMemberships returns membership versions matching the filter.
func (r *CourseRepository) ListMemberships(ctx context.Context, exec sqlx.ExtContext, filter models.CourseMembershipFilter) ([]models.CourseMembership, error) {
	f := common(filter.CommonFilter).
		Int64s("course_membership_id", filter.CourseMembershipID).
		Int64s("user_id", filter.UserID).
		Int64s("course_id", filter.CourseID).
		Strings("course_membership_kind", kinds(filter.CourseMembershipKind)).
		Strings("course_key_key", filter.CourseKeyKey).
		Present("course_key_key", filter.FromKey)
	return list[models.CourseMembership](ctx, r.exec(exec), courseMembershipChain, filter.OnlyRecent, f)
}
