package service

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
)

// viewer answers visibility questions for one caller inside a view scope,
// caching each head it reads.
type viewer struct {
	ctx    context.Context
	exec   sqlx.ExtContext
	stores Stores
	user   int64

	adminships      map[int64]*models.Adminship
	memberships     map[int64]*models.CourseMembership
	instructorAt    map[int64]bool
	courseSchools   map[int64]int64
	sessionCourses  map[int64]int64
	schoolKeys      map[string]int64
	courseKeys      map[string]int64
	requestCreators map[int64]*models.SessionRequest
	stays           map[int64]*models.Stay
}

func newViewer(ctx context.Context, exec sqlx.ExtContext, stores Stores, user int64) *viewer {
	return &viewer{
		ctx:             ctx,
		exec:            exec,
		stores:          stores,
		user:            user,
		adminships:      make(map[int64]*models.Adminship),
		memberships:     make(map[int64]*models.CourseMembership),
		instructorAt:    make(map[int64]bool),
		courseSchools:   make(map[int64]int64),
		sessionCourses:  make(map[int64]int64),
		schoolKeys:      make(map[string]int64),
		courseKeys:      make(map[string]int64),
		requestCreators: make(map[int64]*models.SessionRequest),
		stays:           make(map[int64]*models.Stay),
	}
}

func (v *viewer) adminship(schoolID int64) (*models.Adminship, error) {
	if head, ok := v.adminships[schoolID]; ok {
		return head, nil
	}
	head, err := v.stores.Schools.AdminshipHead(v.ctx, v.exec, v.user, schoolID)
	if err != nil {
		return nil, storage(err, "failed to resolve adminship")
	}
	v.adminships[schoolID] = head
	return head, nil
}

func (v *viewer) isAdmin(schoolID int64) (bool, error) {
	head, err := v.adminship(schoolID)
	return head != nil && head.AdminshipKind == models.AdminshipKindAdmin, err
}

func (v *viewer) membership(courseID int64) (*models.CourseMembership, error) {
	if head, ok := v.memberships[courseID]; ok {
		return head, nil
	}
	head, err := v.stores.Courses.MembershipHead(v.ctx, v.exec, v.user, courseID)
	if err != nil {
		return nil, storage(err, "failed to resolve course membership")
	}
	v.memberships[courseID] = head
	return head, nil
}

func (v *viewer) isInstructor(courseID int64) (bool, error) {
	head, err := v.membership(courseID)
	return head != nil && head.CourseMembershipKind == models.CourseMembershipKindInstructor, err
}

func (v *viewer) isMember(courseID int64) (bool, error) {
	head, err := v.membership(courseID)
	return head != nil && head.CourseMembershipKind.Grantable(), err
}

func (v *viewer) teachesAt(locationID int64) (bool, error) {
	if ok, cached := v.instructorAt[locationID]; cached {
		return ok, nil
	}
	ok, err := v.stores.Courses.IsInstructorAt(v.ctx, v.exec, v.user, locationID)
	if err != nil {
		return false, storage(err, "failed to resolve instructor location")
	}
	v.instructorAt[locationID] = ok
	return ok, nil
}

// canSeeCourse admits anyone with a membership or adminship head of any kind.
func (v *viewer) canSeeCourse(courseID int64) (bool, error) {
	head, err := v.membership(courseID)
	if err != nil || head != nil {
		return head != nil, err
	}
	schoolID, ok, err := v.courseSchool(courseID)
	if err != nil || !ok {
		return false, err
	}
	admin, err := v.adminship(schoolID)
	return admin != nil, err
}

func (v *viewer) courseSchool(courseID int64) (int64, bool, error) {
	if schoolID, ok := v.courseSchools[courseID]; ok {
		return schoolID, true, nil
	}
	course, err := v.stores.Courses.FindCourse(v.ctx, v.exec, courseID)
	if err != nil {
		return 0, false, storage(err, "failed to load course")
	}
	if course == nil {
		return 0, false, nil
	}
	v.courseSchools[courseID] = course.SchoolID
	return course.SchoolID, true, nil
}

func (v *viewer) sessionCourse(sessionID int64) (int64, bool, error) {
	if courseID, ok := v.sessionCourses[sessionID]; ok {
		return courseID, true, nil
	}
	session, err := v.stores.Sessions.FindSession(v.ctx, v.exec, sessionID)
	if err != nil {
		return 0, false, storage(err, "failed to load session")
	}
	if session == nil {
		return 0, false, nil
	}
	v.sessionCourses[sessionID] = session.CourseID
	return session.CourseID, true, nil
}

func (v *viewer) isSessionMember(sessionID int64) (bool, error) {
	courseID, ok, err := v.sessionCourse(sessionID)
	if err != nil || !ok {
		return false, err
	}
	return v.isMember(courseID)
}

func (v *viewer) isSessionInstructor(sessionID int64) (bool, error) {
	courseID, ok, err := v.sessionCourse(sessionID)
	if err != nil || !ok {
		return false, err
	}
	return v.isInstructor(courseID)
}

func (v *viewer) adminsSchoolKey(token string) (bool, error) {
	schoolID, ok := v.schoolKeys[token]
	if !ok {
		key, err := v.stores.Schools.FindSchoolKey(v.ctx, v.exec, token)
		if err != nil {
			return false, storage(err, "failed to load school key")
		}
		if key == nil {
			return false, nil
		}
		schoolID = key.SchoolID
		v.schoolKeys[token] = schoolID
	}
	return v.isAdmin(schoolID)
}

func (v *viewer) teachesCourseKey(token string) (bool, error) {
	courseID, ok := v.courseKeys[token]
	if !ok {
		key, err := v.stores.Courses.FindCourseKey(v.ctx, v.exec, token)
		if err != nil {
			return false, storage(err, "failed to load course key")
		}
		if key == nil {
			return false, nil
		}
		courseID = key.CourseID
		v.courseKeys[token] = courseID
	}
	return v.isInstructor(courseID)
}

func (v *viewer) canSeeRequest(requestID int64) (bool, error) {
	request, ok := v.requestCreators[requestID]
	if !ok {
		loaded, err := v.stores.Sessions.FindSessionRequest(v.ctx, v.exec, requestID)
		if err != nil {
			return false, storage(err, "failed to load session request")
		}
		request = loaded
		v.requestCreators[requestID] = request
	}
	if request == nil {
		return false, nil
	}
	if request.CreatorUserID == v.user {
		return true, nil
	}
	return v.isInstructor(request.CourseID)
}

func (v *viewer) canSeePresence(attendee, locationID int64) (bool, error) {
	if attendee == v.user {
		return true, nil
	}
	return v.teachesAt(locationID)
}

func (v *viewer) canSeeStay(stayID int64) (bool, error) {
	stay, ok := v.stays[stayID]
	if !ok {
		loaded, err := v.stores.Attendance.FindStay(v.ctx, v.exec, stayID)
		if err != nil {
			return false, storage(err, "failed to load stay")
		}
		stay = loaded
		v.stays[stayID] = stay
	}
	if stay == nil {
		return false, nil
	}
	return v.canSeePresence(stay.AttendeeUserID, stay.LocationID)
}

// visible keeps the rows the predicate admits, preserving order.
func visible[T any](rows []T, admit func(T) (bool, error)) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		ok, err := admit(row)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// assembleAll maps rows through build, preserving order.
func assembleAll[T, R any](rows []T, build func(T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		item, err := build(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
