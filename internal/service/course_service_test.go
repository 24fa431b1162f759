package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/events"
)

func (h *harness) redeemCourse(userID int64, token string) (*dto.CourseMembership, error) {
	return h.courses.NewCourseMembershipKey(context.Background(), user(userID), dto.CourseMembershipNewKeyRequest{CourseKeyKey: token})
}

func TestNewCourseMakesCreatorInstructor(t *testing.T) {
	h := newHarness(t)
	schoolID := h.newSchool(1)
	locationID := h.newLocation(1, schoolID)

	out, err := h.courses.NewCourse(context.Background(), user(1), dto.CourseNewRequest{
		SchoolID:   schoolID,
		LocationID: locationID,
		Name:       "Algebra",
		Homeroom:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, locationID, out.Location.LocationID)
	assert.Equal(t, schoolID, out.Course.School.SchoolID)
	assert.True(t, out.Homeroom)

	head, err := h.mem.MembershipHead(context.Background(), nil, 1, out.Course.CourseID)
	require.NoError(t, err)
	require.NotNil(t, head)
	assert.Equal(t, models.CourseMembershipKindInstructor, head.CourseMembershipKind)
	assert.Subset(t, h.dispatched.names(), []string{events.CourseCreated, events.CourseMembershipCreated})
}

func TestNewCourseRejectsForeignLocation(t *testing.T) {
	h := newHarness(t)
	schoolID := h.newSchool(1)
	otherSchool := h.newSchool(1)
	foreign := h.newLocation(1, otherSchool)

	_, err := h.courses.NewCourse(context.Background(), user(1), dto.CourseNewRequest{SchoolID: schoolID, LocationID: foreign, Name: "Algebra"})
	requireCode(t, err, appErrors.ErrLocationNonexistent)

	_, err = h.courses.NewCourse(context.Background(), user(2), dto.CourseNewRequest{SchoolID: schoolID, LocationID: foreign, Name: "Algebra"})
	requireCode(t, err, appErrors.ErrForbidden)
	assert.Empty(t, h.mem.courses)
}

func TestNewCourseRejectsArchivedLocation(t *testing.T) {
	h := newHarness(t)
	schoolID := h.newSchool(1)
	locationID := h.newLocation(1, schoolID)
	_, err := h.locations.NewLocationData(context.Background(), user(1), dto.LocationDataNewRequest{LocationID: locationID, Name: "Room 101", Active: false})
	require.NoError(t, err)

	_, err = h.courses.NewCourse(context.Background(), user(1), dto.CourseNewRequest{SchoolID: schoolID, LocationID: locationID, Name: "Algebra"})
	requireCode(t, err, appErrors.ErrLocationArchived)
}

func TestCourseKeyAllowsExactlyMaxUses(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	token := h.courseKey(1, courseID, 2, models.CourseMembershipKindStudent)

	_, err := h.redeemCourse(3, token)
	require.NoError(t, err)
	_, err = h.redeemCourse(4, token)
	require.NoError(t, err)
	_, err = h.redeemCourse(5, token)
	requireCode(t, err, appErrors.ErrCourseKeyUsed)

	count, err := h.mem.CountMembershipsByKey(context.Background(), nil, token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCourseKeyWithZeroUsesIsSpent(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	token := h.courseKey(1, courseID, 0, models.CourseMembershipKindStudent)

	_, err := h.redeemCourse(3, token)
	requireCode(t, err, appErrors.ErrCourseKeyUsed)
}

func TestCourseKeyGrantsItsKind(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	token := h.courseKey(1, courseID, 1, models.CourseMembershipKindInstructor)

	out, err := h.redeemCourse(3, token)
	require.NoError(t, err)
	assert.Equal(t, models.CourseMembershipKindInstructor, out.CourseMembershipKind)
	require.NotNil(t, out.CourseKey)
	assert.Equal(t, token, out.CourseKey.CourseKeyKey)
}

func TestCourseKeyRedeemRejectsArchived(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, locationID, courseID := h.classroom()
	token := h.courseKey(1, courseID, 5, models.CourseMembershipKindStudent)

	_, err := h.courses.NewCourseKeyData(ctx, user(2), dto.CourseKeyDataNewRequest{CourseKeyKey: token, Active: false})
	requireCode(t, err, appErrors.ErrForbidden)
	_, err = h.courses.NewCourseKeyData(ctx, user(1), dto.CourseKeyDataNewRequest{CourseKeyKey: token, Active: false})
	require.NoError(t, err)
	_, err = h.redeemCourse(3, token)
	requireCode(t, err, appErrors.ErrCourseKeyArchived)

	_, err = h.courses.NewCourseData(ctx, user(1), dto.CourseDataNewRequest{CourseID: courseID, LocationID: locationID, Name: "Algebra", Active: false})
	require.NoError(t, err)
	_, err = h.redeemCourse(3, token)
	requireCode(t, err, appErrors.ErrCourseArchived)

	_, err = h.courses.NewCourseKey(ctx, user(1), dto.CourseKeyNewRequest{
		CourseID:             courseID,
		MaxUses:              1,
		CourseMembershipKind: models.CourseMembershipKindStudent,
	})
	requireCode(t, err, appErrors.ErrCourseArchived)
}

func TestCourseKeyExpiry(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	out, err := h.courses.NewCourseKey(context.Background(), user(1), dto.CourseKeyNewRequest{
		CourseID:             courseID,
		MaxUses:              3,
		CourseMembershipKind: models.CourseMembershipKindStudent,
		StartTime:            h.millis() - 100,
		EndTime:              h.millis() - 1,
	})
	require.NoError(t, err)

	_, err = h.redeemCourse(3, out.CourseKey.CourseKeyKey)
	requireCode(t, err, appErrors.ErrCourseKeyExpired)
	assert.Contains(t, h.redeemed.results, "course:"+appErrors.ErrCourseKeyExpired.Code)
}

func TestCourseMembershipCancel(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, _, courseID := h.classroom()
	h.enroll(1, courseID, 3, models.CourseMembershipKindStudent)

	_, err := h.courses.NewCourseMembershipCancel(ctx, user(2), dto.CourseMembershipNewCancelRequest{UserID: 3, CourseID: courseID})
	requireCode(t, err, appErrors.ErrForbidden)

	out, err := h.courses.NewCourseMembershipCancel(ctx, user(2), dto.CourseMembershipNewCancelRequest{UserID: 2, CourseID: courseID})
	require.NoError(t, err)
	assert.Equal(t, models.CourseMembershipKindCancel, out.CourseMembershipKind)

	_, err = h.courses.NewCourseMembershipCancel(ctx, user(1), dto.CourseMembershipNewCancelRequest{UserID: 3, CourseID: courseID})
	requireCode(t, err, appErrors.ErrCourseMembershipCannotLeaveEmpty)
	head, err := h.mem.MembershipHead(ctx, nil, 3, courseID)
	require.NoError(t, err)
	assert.Equal(t, models.CourseMembershipKindStudent, head.CourseMembershipKind, "a sole instructor cannot remove students")

	_, err = h.courses.NewCourseMembershipCancel(ctx, user(1), dto.CourseMembershipNewCancelRequest{UserID: 1, CourseID: courseID})
	requireCode(t, err, appErrors.ErrCourseMembershipCannotLeaveEmpty)

	_, err = h.courses.NewCourseMembershipCancel(ctx, user(3), dto.CourseMembershipNewCancelRequest{UserID: 3, CourseID: courseID})
	require.NoError(t, err, "students may leave on their own")

	h.enroll(1, courseID, 2, models.CourseMembershipKindStudent)
	head, err = h.mem.MembershipHead(ctx, nil, 2, courseID)
	require.NoError(t, err)
	assert.Equal(t, models.CourseMembershipKindStudent, head.CourseMembershipKind, "a new grant supersedes the cancel")
}

func TestCourseMembershipCancelSecondInstructor(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, _, courseID := h.classroom()
	h.enroll(1, courseID, 3, models.CourseMembershipKindInstructor)

	_, err := h.courses.NewCourseMembershipCancel(ctx, user(3), dto.CourseMembershipNewCancelRequest{UserID: 1, CourseID: courseID})
	require.NoError(t, err)
	_, err = h.courses.NewCourseMembershipCancel(ctx, user(3), dto.CourseMembershipNewCancelRequest{UserID: 3, CourseID: courseID})
	requireCode(t, err, appErrors.ErrCourseMembershipCannotLeaveEmpty)
}

func TestCourseViews(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	schoolID, locationID, courseID := h.classroom()
	h.courseKey(1, courseID, 1, models.CourseMembershipKindStudent)

	token := h.schoolKey(1, schoolID, 0, h.millis()+1000)
	_, err := h.redeemSchool(7, token)
	require.NoError(t, err)

	for _, tc := range []struct {
		name    string
		viewer  int64
		courses int
		keys    int
		members int
	}{
		{name: "instructor", viewer: 1, courses: 1, keys: 2, members: 2},
		{name: "student", viewer: 2, courses: 1, keys: 0, members: 2},
		{name: "school admin", viewer: 7, courses: 1, keys: 0, members: 0},
		{name: "stranger", viewer: 9, courses: 0, keys: 0, members: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			courses, err := h.courses.Courses(ctx, user(tc.viewer), models.CourseFilter{})
			require.NoError(t, err)
			assert.Len(t, courses, tc.courses)

			keys, err := h.courses.CourseKeys(ctx, user(tc.viewer), models.CourseKeyFilter{})
			require.NoError(t, err)
			assert.Len(t, keys, tc.keys)

			keyData, err := h.courses.CourseKeyData(ctx, user(tc.viewer), models.CourseKeyDataFilter{})
			require.NoError(t, err)
			assert.Len(t, keyData, tc.keys)

			members, err := h.courses.CourseMemberships(ctx, user(tc.viewer), models.CourseMembershipFilter{})
			require.NoError(t, err)
			assert.Len(t, members, tc.members)
		})
	}

	data, err := h.courses.CourseData(ctx, user(2), models.CourseDataFilter{CourseID: []int64{courseID}})
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, locationID, data[0].Location.LocationID)
}

func TestCourseKeySingleUseScenario(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	schoolID := h.newSchool(1)
	locationID := h.newLocation(1, schoolID)
	courseID := h.newCourse(1, schoolID, locationID)
	token := h.courseKey(1, courseID, 1, models.CourseMembershipKindStudent)

	joined, err := h.redeemCourse(2, token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), joined.UserID)
	assert.Equal(t, courseID, joined.Course.CourseID)
	assert.Equal(t, models.CourseMembershipKindStudent, joined.CourseMembershipKind)
	require.NotNil(t, joined.CourseKey)
	assert.Equal(t, token, joined.CourseKey.CourseKeyKey)

	_, err = h.redeemCourse(3, token)
	requireCode(t, err, appErrors.ErrCourseKeyUsed)

	head, err := h.mem.MembershipHead(ctx, nil, 3, courseID)
	require.NoError(t, err)
	assert.Nil(t, head, "the rejected redemption left no membership behind")
}
