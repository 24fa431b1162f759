package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
)

type redemptionMetrics interface {
	ObserveRedemption(key, result string)
}

// Deps are the collaborators shared by every workflow service.
type Deps struct {
	Coordinator *Coordinator
	Stores      Stores
	Users       userDirectory
	Validator   *validator.Validate
	Metrics     redemptionMetrics
	Logger      *zap.Logger
	// Tokens generates enrollment key tokens. Defaults to random hex.
	Tokens func() string
}

type workflow struct {
	coord    *Coordinator
	stores   Stores
	gate     Gate
	users    userDirectory
	validate *validator.Validate
	metrics  redemptionMetrics
	logger   *zap.Logger
	tokens   func() string
	assemble *Assembler
}

func newWorkflow(deps Deps) workflow {
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Tokens == nil {
		deps.Tokens = randomToken
	}
	return workflow{
		coord:    deps.Coordinator,
		stores:   deps.Stores,
		gate:     NewGate(deps.Stores),
		users:    deps.Users,
		validate: deps.Validator,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		tokens:   deps.Tokens,
		assemble: NewAssembler(deps.Stores),
	}
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (w workflow) valid(payload interface{}, message string) error {
	if err := w.validate.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	}
	return nil
}

func (w workflow) observeRedemption(key string, err error) {
	if w.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = appErrors.FromError(err).Code
	}
	w.metrics.ObserveRedemption(key, result)
}

func missing(base *appErrors.Error) error {
	return appErrors.Clone(base, "")
}

func durationOK(start, end int64) error {
	if start > end {
		return missing(appErrors.ErrNegativeDuration)
	}
	return nil
}

// lookupUser confirms the target user exists in the directory.
func (w workflow) lookupUser(ctx context.Context, userID int64) error {
	if w.users == nil {
		return nil
	}
	_, err := w.users.Lookup(ctx, userID)
	return err
}

func (w workflow) school(ctx context.Context, exec sqlx.ExtContext, schoolID int64) (*models.School, error) {
	school, err := w.stores.Schools.FindSchool(ctx, exec, schoolID)
	if err != nil {
		return nil, storage(err, "failed to load school")
	}
	if school == nil {
		return nil, missing(appErrors.ErrSchoolNonexistent)
	}
	return school, nil
}

func (w workflow) schoolActive(ctx context.Context, exec sqlx.ExtContext, schoolID int64) error {
	head, err := w.stores.Schools.SchoolDataHead(ctx, exec, schoolID)
	if err != nil {
		return storage(err, "failed to resolve school data")
	}
	if head == nil || !head.Active {
		return missing(appErrors.ErrSchoolArchived)
	}
	return nil
}

func (w workflow) location(ctx context.Context, exec sqlx.ExtContext, locationID int64) (*models.Location, error) {
	location, err := w.stores.Locations.FindLocation(ctx, exec, locationID)
	if err != nil {
		return nil, storage(err, "failed to load location")
	}
	if location == nil {
		return nil, missing(appErrors.ErrLocationNonexistent)
	}
	return location, nil
}

func (w workflow) locationActive(ctx context.Context, exec sqlx.ExtContext, locationID int64) error {
	head, err := w.stores.Locations.LocationDataHead(ctx, exec, locationID)
	if err != nil {
		return storage(err, "failed to resolve location data")
	}
	if head == nil || !head.Active {
		return missing(appErrors.ErrLocationArchived)
	}
	return nil
}

func (w workflow) course(ctx context.Context, exec sqlx.ExtContext, courseID int64) (*models.Course, error) {
	course, err := w.stores.Courses.FindCourse(ctx, exec, courseID)
	if err != nil {
		return nil, storage(err, "failed to load course")
	}
	if course == nil {
		return nil, missing(appErrors.ErrCourseNonexistent)
	}
	return course, nil
}

func (w workflow) courseActive(ctx context.Context, exec sqlx.ExtContext, courseID int64) error {
	head, err := w.stores.Courses.CourseDataHead(ctx, exec, courseID)
	if err != nil {
		return storage(err, "failed to resolve course data")
	}
	if head == nil || !head.Active {
		return missing(appErrors.ErrCourseArchived)
	}
	return nil
}

func (w workflow) session(ctx context.Context, exec sqlx.ExtContext, sessionID int64) (*models.Session, error) {
	session, err := w.stores.Sessions.FindSession(ctx, exec, sessionID)
	if err != nil {
		return nil, storage(err, "failed to load session")
	}
	if session == nil {
		return nil, missing(appErrors.ErrSessionNonexistent)
	}
	return session, nil
}

func (w workflow) requireAdmin(ctx context.Context, exec sqlx.ExtContext, userID, schoolID int64) error {
	ok, err := w.gate.IsAdmin(ctx, exec, userID, schoolID)
	if err != nil {
		return err
	}
	if !ok {
		return forbidden("caller is not an admin of the school")
	}
	return nil
}

func (w workflow) requireInstructor(ctx context.Context, exec sqlx.ExtContext, userID, courseID int64) error {
	ok, err := w.gate.IsInstructor(ctx, exec, userID, courseID)
	if err != nil {
		return err
	}
	if !ok {
		return forbidden("caller is not an instructor of the course")
	}
	return nil
}

func (w workflow) requireInstructorAt(ctx context.Context, exec sqlx.ExtContext, userID, locationID int64) error {
	ok, err := w.gate.IsInstructorAt(ctx, exec, userID, locationID)
	if err != nil {
		return err
	}
	if !ok {
		return forbidden("caller does not teach at the location")
	}
	return nil
}

// requireStudents checks every attendee currently studies the course.
func (w workflow) requireStudents(ctx context.Context, exec sqlx.ExtContext, courseID int64, attendees []int64) error {
	for _, attendee := range attendees {
		ok, err := w.gate.IsStudent(ctx, exec, attendee, courseID)
		if err != nil {
			return err
		}
		if !ok {
			return appErrors.Clone(appErrors.ErrUserNonexistent, "attendee is not a student of the course")
		}
	}
	return nil
}
