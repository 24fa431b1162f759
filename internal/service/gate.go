package service

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
)

// Gate evaluates role predicates against chain heads read through the
// caller's transaction.
type Gate struct {
	stores Stores
}

// NewGate constructs a Gate.
func NewGate(stores Stores) Gate {
	return Gate{stores: stores}
}

// IsAdmin reports whether the user's adminship head for the school is ADMIN.
func (g Gate) IsAdmin(ctx context.Context, exec sqlx.ExtContext, userID, schoolID int64) (bool, error) {
	head, err := g.stores.Schools.AdminshipHead(ctx, exec, userID, schoolID)
	if err != nil {
		return false, storage(err, "failed to resolve adminship")
	}
	return head != nil && head.AdminshipKind == models.AdminshipKindAdmin, nil
}

func (g Gate) membership(ctx context.Context, exec sqlx.ExtContext, userID, courseID int64) (models.CourseMembershipKind, error) {
	head, err := g.stores.Courses.MembershipHead(ctx, exec, userID, courseID)
	if err != nil {
		return "", storage(err, "failed to resolve course membership")
	}
	if head == nil {
		return "", nil
	}
	return head.CourseMembershipKind, nil
}

// IsInstructor reports whether the user's membership head is INSTRUCTOR.
func (g Gate) IsInstructor(ctx context.Context, exec sqlx.ExtContext, userID, courseID int64) (bool, error) {
	kind, err := g.membership(ctx, exec, userID, courseID)
	return kind == models.CourseMembershipKindInstructor, err
}

// IsStudent reports whether the user's membership head is STUDENT.
func (g Gate) IsStudent(ctx context.Context, exec sqlx.ExtContext, userID, courseID int64) (bool, error) {
	kind, err := g.membership(ctx, exec, userID, courseID)
	return kind == models.CourseMembershipKindStudent, err
}

// IsMember reports whether the user currently studies or teaches the course.
func (g Gate) IsMember(ctx context.Context, exec sqlx.ExtContext, userID, courseID int64) (bool, error) {
	kind, err := g.membership(ctx, exec, userID, courseID)
	return kind.Grantable(), err
}

// IsInstructorAt reports whether the user teaches an active course held at
// the location.
func (g Gate) IsInstructorAt(ctx context.Context, exec sqlx.ExtContext, userID, locationID int64) (bool, error) {
	ok, err := g.stores.Courses.IsInstructorAt(ctx, exec, userID, locationID)
	if err != nil {
		return false, storage(err, "failed to resolve instructor location")
	}
	return ok, nil
}

// GuardLastAdmin rejects removing an admin when the school has at most one.
func (g Gate) GuardLastAdmin(ctx context.Context, exec sqlx.ExtContext, schoolID int64) error {
	count, err := g.stores.Schools.CountAdmins(ctx, exec, schoolID)
	if err != nil {
		return storage(err, "failed to count admins")
	}
	if count <= 1 {
		return appErrors.Clone(appErrors.ErrAdminshipCannotLeaveEmpty, "")
	}
	return nil
}

// GuardLastInstructor rejects removing an instructor when the course has at
// most one.
func (g Gate) GuardLastInstructor(ctx context.Context, exec sqlx.ExtContext, courseID int64) error {
	count, err := g.stores.Courses.CountMembers(ctx, exec, courseID, models.CourseMembershipKindInstructor)
	if err != nil {
		return storage(err, "failed to count instructors")
	}
	if count <= 1 {
		return appErrors.Clone(appErrors.ErrCourseMembershipCannotLeaveEmpty, "")
	}
	return nil
}

func forbidden(message string) error {
	return appErrors.Clone(appErrors.ErrForbidden, message)
}
