package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/events"
)

// CourseService runs course, course key and membership workflows.
type CourseService struct {
	workflow
}

// NewCourseService constructs the service.
func NewCourseService(deps Deps) *CourseService {
	return &CourseService{workflow: newWorkflow(deps)}
}

// NewCourse creates a course at a location of the school; the creator
// becomes its first instructor.
func (s *CourseService) NewCourse(ctx context.Context, actor models.User, req dto.CourseNewRequest) (*dto.CourseData, error) {
	if err := s.valid(req, "invalid course payload"); err != nil {
		return nil, err
	}
	var out dto.CourseData
	err := s.coord.Mutate(ctx, "course_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.school(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, exec, actor.UserID, req.SchoolID); err != nil {
			return err
		}
		if err := s.schoolActive(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		location, err := s.location(ctx, exec, req.LocationID)
		if err != nil {
			return err
		}
		if location.SchoolID != req.SchoolID {
			return appErrors.Clone(appErrors.ErrLocationNonexistent, "location does not belong to the school")
		}
		if err := s.locationActive(ctx, exec, req.LocationID); err != nil {
			return err
		}

		course := &models.Course{CreationTime: scope.Now(), CreatorUserID: actor.UserID, SchoolID: req.SchoolID}
		if err := s.stores.Courses.CreateCourse(ctx, exec, course); err != nil {
			return storage(err, "failed to create course")
		}
		data := &models.CourseData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			CourseID:      course.CourseID,
			LocationID:    req.LocationID,
			Name:          req.Name,
			Description:   req.Description,
			Homeroom:      req.Homeroom,
			Active:        true,
		}
		if err := s.stores.Courses.AppendCourseData(ctx, exec, data); err != nil {
			return storage(err, "failed to append course data")
		}
		membership := &models.CourseMembership{
			CreationTime:         scope.Now(),
			CreatorUserID:        actor.UserID,
			UserID:               actor.UserID,
			CourseID:             course.CourseID,
			CourseMembershipKind: models.CourseMembershipKindInstructor,
		}
		if err := s.stores.Courses.AppendMembership(ctx, exec, membership); err != nil {
			return storage(err, "failed to append course membership")
		}

		asm := s.assemble.Bind(ctx, exec)
		assembled, err := asm.CourseData(*data)
		if err != nil {
			return err
		}
		grant, err := asm.CourseMembership(*membership)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.CourseCreated, out)
		scope.Emit(events.CourseMembershipCreated, grant)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewCourseData appends a version of a course's fields.
func (s *CourseService) NewCourseData(ctx context.Context, actor models.User, req dto.CourseDataNewRequest) (*dto.CourseData, error) {
	if err := s.valid(req, "invalid course data payload"); err != nil {
		return nil, err
	}
	var out dto.CourseData
	err := s.coord.Mutate(ctx, "course_data_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		course, err := s.course(ctx, exec, req.CourseID)
		if err != nil {
			return err
		}
		if err := s.requireInstructor(ctx, exec, actor.UserID, course.CourseID); err != nil {
			return err
		}
		location, err := s.location(ctx, exec, req.LocationID)
		if err != nil {
			return err
		}
		if location.SchoolID != course.SchoolID {
			return appErrors.Clone(appErrors.ErrLocationNonexistent, "location does not belong to the course's school")
		}
		if err := s.locationActive(ctx, exec, req.LocationID); err != nil {
			return err
		}
		data := &models.CourseData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			CourseID:      course.CourseID,
			LocationID:    req.LocationID,
			Name:          req.Name,
			Description:   req.Description,
			Homeroom:      req.Homeroom,
			Active:        req.Active,
		}
		if err := s.stores.Courses.AppendCourseData(ctx, exec, data); err != nil {
			return storage(err, "failed to append course data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).CourseData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewCourseKey issues a membership key for an active course.
func (s *CourseService) NewCourseKey(ctx context.Context, actor models.User, req dto.CourseKeyNewRequest) (*dto.CourseKeyData, error) {
	if err := s.valid(req, "invalid course key payload"); err != nil {
		return nil, err
	}
	if err := durationOK(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	var out dto.CourseKeyData
	err := s.coord.Mutate(ctx, "course_key_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.course(ctx, exec, req.CourseID); err != nil {
			return err
		}
		if err := s.courseActive(ctx, exec, req.CourseID); err != nil {
			return err
		}
		if err := s.requireInstructor(ctx, exec, actor.UserID, req.CourseID); err != nil {
			return err
		}
		key := &models.CourseKey{
			CourseKeyKey:         s.tokens(),
			CreationTime:         scope.Now(),
			CreatorUserID:        actor.UserID,
			CourseID:             req.CourseID,
			MaxUses:              req.MaxUses,
			CourseMembershipKind: req.CourseMembershipKind,
			StartTime:            req.StartTime,
			EndTime:              req.EndTime,
		}
		if err := s.stores.Courses.CreateCourseKey(ctx, exec, key); err != nil {
			return storage(err, "failed to create course key")
		}
		data := &models.CourseKeyData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			CourseKeyKey:  key.CourseKeyKey,
			Active:        true,
		}
		if err := s.stores.Courses.AppendCourseKeyData(ctx, exec, data); err != nil {
			return storage(err, "failed to append course key data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).CourseKeyData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewCourseKeyData toggles a course key.
func (s *CourseService) NewCourseKeyData(ctx context.Context, actor models.User, req dto.CourseKeyDataNewRequest) (*dto.CourseKeyData, error) {
	if err := s.valid(req, "invalid course key data payload"); err != nil {
		return nil, err
	}
	var out dto.CourseKeyData
	err := s.coord.Mutate(ctx, "course_key_data_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		key, err := s.stores.Courses.FindCourseKey(ctx, exec, req.CourseKeyKey)
		if err != nil {
			return storage(err, "failed to load course key")
		}
		if key == nil {
			return missing(appErrors.ErrCourseKeyNonexistent)
		}
		if _, err := s.course(ctx, exec, key.CourseID); err != nil {
			return err
		}
		if err := s.courseActive(ctx, exec, key.CourseID); err != nil {
			return err
		}
		if err := s.requireInstructor(ctx, exec, actor.UserID, key.CourseID); err != nil {
			return err
		}
		data := &models.CourseKeyData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			CourseKeyKey:  key.CourseKeyKey,
			Active:        req.Active,
		}
		if err := s.stores.Courses.AppendCourseKeyData(ctx, exec, data); err != nil {
			return storage(err, "failed to append course key data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).CourseKeyData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewCourseMembershipKey redeems a course key for the caller.
func (s *CourseService) NewCourseMembershipKey(ctx context.Context, actor models.User, req dto.CourseMembershipNewKeyRequest) (*dto.CourseMembership, error) {
	if err := s.valid(req, "invalid course membership payload"); err != nil {
		return nil, err
	}
	var out dto.CourseMembership
	err := s.coord.Mutate(ctx, "course_membership_new_key", actor.UserID, func(ctx context.Context, scope *Scope) error {
		membership, err := s.redeemCourseKey(ctx, scope, actor.UserID, req.CourseKeyKey)
		if err != nil {
			return err
		}
		assembled, err := s.assemble.Bind(ctx, scope.Exec()).CourseMembership(*membership)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.CourseMembershipCreated, out)
		return nil
	})
	s.observeRedemption("course", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// redeemCourseKey checks existence, validity window, remaining uses and owner
// state in that order before appending the membership.
func (s *CourseService) redeemCourseKey(ctx context.Context, scope *Scope, userID int64, token string) (*models.CourseMembership, error) {
	exec := scope.Exec()
	key, err := s.stores.Courses.FindCourseKey(ctx, exec, token)
	if err != nil {
		return nil, storage(err, "failed to load course key")
	}
	if key == nil {
		return nil, missing(appErrors.ErrCourseKeyNonexistent)
	}
	now := scope.Now()
	if now < key.StartTime || now > key.EndTime {
		return nil, missing(appErrors.ErrCourseKeyExpired)
	}
	uses, err := s.stores.Courses.CountMembershipsByKey(ctx, exec, token)
	if err != nil {
		return nil, storage(err, "failed to count course key uses")
	}
	if uses >= key.MaxUses {
		return nil, missing(appErrors.ErrCourseKeyUsed)
	}
	if err := s.courseActive(ctx, exec, key.CourseID); err != nil {
		return nil, err
	}
	keyData, err := s.stores.Courses.CourseKeyDataHead(ctx, exec, token)
	if err != nil {
		return nil, storage(err, "failed to resolve course key data")
	}
	if keyData != nil && !keyData.Active {
		return nil, missing(appErrors.ErrCourseKeyArchived)
	}

	membership := &models.CourseMembership{
		CreationTime:         now,
		CreatorUserID:        userID,
		UserID:               userID,
		CourseID:             key.CourseID,
		CourseMembershipKind: key.CourseMembershipKind,
		CourseKeyKey:         &key.CourseKeyKey,
	}
	if err := s.stores.Courses.AppendMembership(ctx, exec, membership); err != nil {
		return nil, storage(err, "failed to append course membership")
	}
	return membership, nil
}

// NewCourseMembershipCancel removes a user from a course. Members may leave;
// instructors may remove anyone while another instructor remains.
func (s *CourseService) NewCourseMembershipCancel(ctx context.Context, actor models.User, req dto.CourseMembershipNewCancelRequest) (*dto.CourseMembership, error) {
	if err := s.valid(req, "invalid course membership payload"); err != nil {
		return nil, err
	}
	if err := s.lookupUser(ctx, req.UserID); err != nil {
		return nil, err
	}
	var out dto.CourseMembership
	err := s.coord.Mutate(ctx, "course_membership_new_cancel", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.course(ctx, exec, req.CourseID); err != nil {
			return err
		}
		if err := s.courseActive(ctx, exec, req.CourseID); err != nil {
			return err
		}
		instructor, err := s.gate.IsInstructor(ctx, exec, actor.UserID, req.CourseID)
		if err != nil {
			return err
		}
		if !instructor && actor.UserID != req.UserID {
			return forbidden("only instructors may remove other members")
		}
		if instructor {
			if err := s.gate.GuardLastInstructor(ctx, exec, req.CourseID); err != nil {
				return err
			}
		}
		membership := &models.CourseMembership{
			CreationTime:         scope.Now(),
			CreatorUserID:        actor.UserID,
			UserID:               req.UserID,
			CourseID:             req.CourseID,
			CourseMembershipKind: models.CourseMembershipKindCancel,
		}
		if err := s.stores.Courses.AppendMembership(ctx, exec, membership); err != nil {
			return storage(err, "failed to append course membership")
		}
		assembled, err := s.assemble.Bind(ctx, exec).CourseMembership(*membership)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.CourseMembershipCancelled, out)
		s.logger.Info("course membership cancelled",
			zap.Int64("course_id", req.CourseID),
			zap.Int64("user_id", req.UserID),
			zap.Int64("actor_id", actor.UserID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Courses lists courses the caller has ever belonged to or whose school they
// have ever administered.
func (s *CourseService) Courses(ctx context.Context, actor models.User, filter models.CourseFilter) ([]dto.Course, error) {
	var out []dto.Course
	err := s.coord.View(ctx, "course_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Courses.ListCourses(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list courses")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.Course) (bool, error) { return v.canSeeCourse(row.CourseID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).Course)
		return err
	})
	return out, err
}

// CourseData lists course data versions under the same rule as Courses.
func (s *CourseService) CourseData(ctx context.Context, actor models.User, filter models.CourseDataFilter) ([]dto.CourseData, error) {
	var out []dto.CourseData
	err := s.coord.View(ctx, "course_data_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Courses.ListCourseData(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list course data")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.CourseData) (bool, error) { return v.canSeeCourse(row.CourseID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).CourseData)
		return err
	})
	return out, err
}

// CourseKeys lists keys of courses the caller teaches.
func (s *CourseService) CourseKeys(ctx context.Context, actor models.User, filter models.CourseKeyFilter) ([]dto.CourseKey, error) {
	var out []dto.CourseKey
	err := s.coord.View(ctx, "course_key_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Courses.ListCourseKeys(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list course keys")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.CourseKey) (bool, error) { return v.isInstructor(row.CourseID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).CourseKey)
		return err
	})
	return out, err
}

// CourseKeyData lists key data of courses the caller teaches.
func (s *CourseService) CourseKeyData(ctx context.Context, actor models.User, filter models.CourseKeyDataFilter) ([]dto.CourseKeyData, error) {
	var out []dto.CourseKeyData
	err := s.coord.View(ctx, "course_key_data_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Courses.ListCourseKeyData(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list course key data")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.CourseKeyData) (bool, error) { return v.teachesCourseKey(row.CourseKeyKey) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).CourseKeyData)
		return err
	})
	return out, err
}

// CourseMemberships lists memberships of courses the caller currently
// belongs to.
func (s *CourseService) CourseMemberships(ctx context.Context, actor models.User, filter models.CourseMembershipFilter) ([]dto.CourseMembership, error) {
	var out []dto.CourseMembership
	err := s.coord.View(ctx, "course_membership_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Courses.ListMemberships(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list course memberships")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.CourseMembership) (bool, error) { return v.isMember(row.CourseID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).CourseMembership)
		return err
	})
	return out, err
}
