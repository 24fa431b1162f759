package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/events"
)

// SchoolService runs school, timetable, subscription, school key and adminship
// workflows.
type SchoolService struct {
	workflow
	enforceSubscriptions bool
}

// NewSchoolService constructs the service. When enforceSubscriptions is set,
// creating a school consumes the caller's subscription allowance.
func NewSchoolService(deps Deps, enforceSubscriptions bool) *SchoolService {
	return &SchoolService{workflow: newWorkflow(deps), enforceSubscriptions: enforceSubscriptions}
}

// NewSubscription appends a plan for the caller.
func (s *SchoolService) NewSubscription(ctx context.Context, actor models.User, req dto.SubscriptionNewRequest) (*dto.Subscription, error) {
	if err := s.valid(req, "invalid subscription payload"); err != nil {
		return nil, err
	}
	var out dto.Subscription
	err := s.coord.Mutate(ctx, "subscription_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		subscription := &models.Subscription{
			CreationTime:     scope.Now(),
			CreatorUserID:    actor.UserID,
			SubscriptionKind: req.SubscriptionKind,
			MaxUses:          1,
		}
		if err := s.stores.Subscriptions.AppendSubscription(ctx, scope.Exec(), subscription); err != nil {
			return storage(err, "failed to append subscription")
		}
		out = s.assemble.Bind(ctx, scope.Exec()).Subscription(*subscription)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSchool creates a school, its first data version and the creator's
// adminship.
func (s *SchoolService) NewSchool(ctx context.Context, actor models.User, req dto.SchoolNewRequest) (*dto.SchoolData, error) {
	if err := s.valid(req, "invalid school payload"); err != nil {
		return nil, err
	}
	var out dto.SchoolData
	err := s.coord.Mutate(ctx, "school_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if s.enforceSubscriptions {
			if err := s.checkAllowance(ctx, scope, actor.UserID); err != nil {
				return err
			}
		}

		school := &models.School{CreationTime: scope.Now(), CreatorUserID: actor.UserID, Whole: req.Whole}
		if err := s.stores.Schools.CreateSchool(ctx, exec, school); err != nil {
			return storage(err, "failed to create school")
		}
		data := &models.SchoolData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			SchoolID:      school.SchoolID,
			Name:          req.Name,
			Description:   req.Description,
			Active:        true,
		}
		if err := s.stores.Schools.AppendSchoolData(ctx, exec, data); err != nil {
			return storage(err, "failed to append school data")
		}
		adminship := &models.Adminship{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			UserID:        actor.UserID,
			SchoolID:      school.SchoolID,
			AdminshipKind: models.AdminshipKindAdmin,
		}
		if err := s.stores.Schools.AppendAdminship(ctx, exec, adminship); err != nil {
			return storage(err, "failed to append adminship")
		}

		asm := s.assemble.Bind(ctx, exec)
		assembled, err := asm.SchoolData(*data)
		if err != nil {
			return err
		}
		grant, err := asm.Adminship(*adminship)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.SchoolCreated, out)
		scope.Emit(events.AdminshipCreated, grant)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SchoolService) checkAllowance(ctx context.Context, scope *Scope, userID int64) error {
	subscription, err := s.stores.Subscriptions.SubscriptionHead(ctx, scope.Exec(), userID)
	if err != nil {
		return storage(err, "failed to resolve subscription")
	}
	if subscription == nil || subscription.SubscriptionKind != models.SubscriptionKindValid {
		return missing(appErrors.ErrSubscriptionNonexistent)
	}
	count, err := s.stores.Schools.CountAdministeredSchools(ctx, scope.Exec(), userID)
	if err != nil {
		return storage(err, "failed to count administered schools")
	}
	if count >= subscription.MaxUses {
		return missing(appErrors.ErrSubscriptionLimited)
	}
	return nil
}

// NewSchoolData appends a version of a school's fields.
func (s *SchoolService) NewSchoolData(ctx context.Context, actor models.User, req dto.SchoolDataNewRequest) (*dto.SchoolData, error) {
	if err := s.valid(req, "invalid school data payload"); err != nil {
		return nil, err
	}
	var out dto.SchoolData
	err := s.coord.Mutate(ctx, "school_data_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.school(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, exec, actor.UserID, req.SchoolID); err != nil {
			return err
		}
		data := &models.SchoolData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			SchoolID:      req.SchoolID,
			Name:          req.Name,
			Description:   req.Description,
			Active:        req.Active,
		}
		if err := s.stores.Schools.AppendSchoolData(ctx, exec, data); err != nil {
			return storage(err, "failed to append school data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).SchoolData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSchoolDuration opens a timetable block in an active school. The block has
// no weekday or span until its first data version is appended.
func (s *SchoolService) NewSchoolDuration(ctx context.Context, actor models.User, req dto.SchoolDurationNewRequest) (*dto.SchoolDuration, error) {
	if err := s.valid(req, "invalid school duration payload"); err != nil {
		return nil, err
	}
	var out dto.SchoolDuration
	err := s.coord.Mutate(ctx, "school_duration_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.school(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		if err := s.schoolActive(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, exec, actor.UserID, req.SchoolID); err != nil {
			return err
		}
		duration := &models.SchoolDuration{CreationTime: scope.Now(), CreatorUserID: actor.UserID, SchoolID: req.SchoolID}
		if err := s.stores.Schools.CreateSchoolDuration(ctx, exec, duration); err != nil {
			return storage(err, "failed to create school duration")
		}
		assembled, err := s.assemble.Bind(ctx, exec).SchoolDuration(*duration)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.SchoolDurationCreated, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSchoolDurationData appends a version of a timetable block.
func (s *SchoolService) NewSchoolDurationData(ctx context.Context, actor models.User, req dto.SchoolDurationDataNewRequest) (*dto.SchoolDurationData, error) {
	if err := s.valid(req, "invalid school duration data payload"); err != nil {
		return nil, err
	}
	if err := durationOK(req.MinuteStart, req.MinuteEnd); err != nil {
		return nil, err
	}
	var out dto.SchoolDurationData
	err := s.coord.Mutate(ctx, "school_duration_data_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		duration, err := s.stores.Schools.FindSchoolDuration(ctx, exec, req.SchoolDurationID)
		if err != nil {
			return storage(err, "failed to load school duration")
		}
		if duration == nil {
			return missing(appErrors.ErrSchoolDurationNonexistent)
		}
		if err := s.schoolActive(ctx, exec, duration.SchoolID); err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, exec, actor.UserID, duration.SchoolID); err != nil {
			return err
		}
		data := &models.SchoolDurationData{
			CreationTime:     scope.Now(),
			CreatorUserID:    actor.UserID,
			SchoolDurationID: duration.SchoolDurationID,
			Day:              req.Day,
			MinuteStart:      req.MinuteStart,
			MinuteEnd:        req.MinuteEnd,
			Active:           req.Active,
		}
		if err := s.stores.Schools.AppendSchoolDurationData(ctx, exec, data); err != nil {
			return storage(err, "failed to append school duration data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).SchoolDurationData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSchoolKey issues a single-use adminship key.
func (s *SchoolService) NewSchoolKey(ctx context.Context, actor models.User, req dto.SchoolKeyNewRequest) (*dto.SchoolKeyData, error) {
	if err := s.valid(req, "invalid school key payload"); err != nil {
		return nil, err
	}
	if err := durationOK(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	var out dto.SchoolKeyData
	err := s.coord.Mutate(ctx, "school_key_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.school(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		if err := s.schoolActive(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, exec, actor.UserID, req.SchoolID); err != nil {
			return err
		}
		key := &models.SchoolKey{
			SchoolKeyKey:  s.tokens(),
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			SchoolID:      req.SchoolID,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
		}
		if err := s.stores.Schools.CreateSchoolKey(ctx, exec, key); err != nil {
			return storage(err, "failed to create school key")
		}
		data := &models.SchoolKeyData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			SchoolKeyKey:  key.SchoolKeyKey,
			Active:        true,
		}
		if err := s.stores.Schools.AppendSchoolKeyData(ctx, exec, data); err != nil {
			return storage(err, "failed to append school key data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).SchoolKeyData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSchoolKeyData toggles a school key.
func (s *SchoolService) NewSchoolKeyData(ctx context.Context, actor models.User, req dto.SchoolKeyDataNewRequest) (*dto.SchoolKeyData, error) {
	if err := s.valid(req, "invalid school key data payload"); err != nil {
		return nil, err
	}
	var out dto.SchoolKeyData
	err := s.coord.Mutate(ctx, "school_key_data_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		key, err := s.stores.Schools.FindSchoolKey(ctx, exec, req.SchoolKeyKey)
		if err != nil {
			return storage(err, "failed to load school key")
		}
		if key == nil {
			return missing(appErrors.ErrSchoolKeyNonexistent)
		}
		if err := s.schoolActive(ctx, exec, key.SchoolID); err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, exec, actor.UserID, key.SchoolID); err != nil {
			return err
		}
		data := &models.SchoolKeyData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			SchoolKeyKey:  key.SchoolKeyKey,
			Active:        req.Active,
		}
		if err := s.stores.Schools.AppendSchoolKeyData(ctx, exec, data); err != nil {
			return storage(err, "failed to append school key data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).SchoolKeyData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewAdminshipKey redeems a school key for the caller.
func (s *SchoolService) NewAdminshipKey(ctx context.Context, actor models.User, req dto.AdminshipNewKeyRequest) (*dto.Adminship, error) {
	if err := s.valid(req, "invalid adminship payload"); err != nil {
		return nil, err
	}
	var out dto.Adminship
	err := s.coord.Mutate(ctx, "adminship_new_key", actor.UserID, func(ctx context.Context, scope *Scope) error {
		adminship, err := s.redeemSchoolKey(ctx, scope, actor.UserID, req.SchoolKeyKey)
		if err != nil {
			return err
		}
		assembled, err := s.assemble.Bind(ctx, scope.Exec()).Adminship(*adminship)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.AdminshipCreated, out)
		return nil
	})
	s.observeRedemption("school", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// redeemSchoolKey checks existence, validity window, use and owner state in
// that order before appending the adminship.
func (s *SchoolService) redeemSchoolKey(ctx context.Context, scope *Scope, userID int64, token string) (*models.Adminship, error) {
	exec := scope.Exec()
	key, err := s.stores.Schools.FindSchoolKey(ctx, exec, token)
	if err != nil {
		return nil, storage(err, "failed to load school key")
	}
	if key == nil {
		return nil, missing(appErrors.ErrSchoolKeyNonexistent)
	}
	now := scope.Now()
	if now < key.StartTime || now > key.EndTime {
		return nil, missing(appErrors.ErrSchoolKeyExpired)
	}
	uses, err := s.stores.Schools.CountAdminshipsByKey(ctx, exec, token)
	if err != nil {
		return nil, storage(err, "failed to count school key uses")
	}
	if uses >= 1 {
		return nil, missing(appErrors.ErrSchoolKeyUsed)
	}
	if err := s.schoolActive(ctx, exec, key.SchoolID); err != nil {
		return nil, err
	}
	keyData, err := s.stores.Schools.SchoolKeyDataHead(ctx, exec, token)
	if err != nil {
		return nil, storage(err, "failed to resolve school key data")
	}
	if keyData != nil && !keyData.Active {
		return nil, missing(appErrors.ErrSchoolKeyArchived)
	}

	adminship := &models.Adminship{
		CreationTime:  now,
		CreatorUserID: userID,
		UserID:        userID,
		SchoolID:      key.SchoolID,
		AdminshipKind: models.AdminshipKindAdmin,
		SchoolKeyKey:  &key.SchoolKeyKey,
	}
	if err := s.stores.Schools.AppendAdminship(ctx, exec, adminship); err != nil {
		return nil, storage(err, "failed to append adminship")
	}
	return adminship, nil
}

// NewAdminshipCancel revokes a user's adminship, keeping at least one admin.
func (s *SchoolService) NewAdminshipCancel(ctx context.Context, actor models.User, req dto.AdminshipNewCancelRequest) (*dto.Adminship, error) {
	if err := s.valid(req, "invalid adminship payload"); err != nil {
		return nil, err
	}
	if err := s.lookupUser(ctx, req.UserID); err != nil {
		return nil, err
	}
	var out dto.Adminship
	err := s.coord.Mutate(ctx, "adminship_new_cancel", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.school(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		if err := s.schoolActive(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		if err := s.requireAdmin(ctx, exec, actor.UserID, req.SchoolID); err != nil {
			return err
		}
		if err := s.gate.GuardLastAdmin(ctx, exec, req.SchoolID); err != nil {
			return err
		}
		adminship := &models.Adminship{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			UserID:        req.UserID,
			SchoolID:      req.SchoolID,
			AdminshipKind: models.AdminshipKindCancel,
		}
		if err := s.stores.Schools.AppendAdminship(ctx, exec, adminship); err != nil {
			return storage(err, "failed to append adminship")
		}
		assembled, err := s.assemble.Bind(ctx, exec).Adminship(*adminship)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.AdminshipCancelled, out)
		s.logger.Info("adminship cancelled",
			zap.Int64("school_id", req.SchoolID),
			zap.Int64("user_id", req.UserID),
			zap.Int64("actor_id", actor.UserID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Subscriptions lists the caller's own subscriptions.
func (s *SchoolService) Subscriptions(ctx context.Context, actor models.User, filter models.SubscriptionFilter) ([]dto.Subscription, error) {
	var out []dto.Subscription
	err := s.coord.View(ctx, "subscription_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		filter.CreatorUserID = []int64{actor.UserID}
		rows, err := s.stores.Subscriptions.ListSubscriptions(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list subscriptions")
		}
		asm := s.assemble.Bind(ctx, scope.Exec())
		out, err = assembleAll(rows, func(row models.Subscription) (dto.Subscription, error) {
			return asm.Subscription(row), nil
		})
		return err
	})
	return out, err
}

// Schools lists schools. Every verified user may see them.
func (s *SchoolService) Schools(ctx context.Context, actor models.User, filter models.SchoolFilter) ([]dto.School, error) {
	var out []dto.School
	err := s.coord.View(ctx, "school_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Schools.ListSchools(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list schools")
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).School)
		return err
	})
	return out, err
}

// SchoolData lists school data versions.
func (s *SchoolService) SchoolData(ctx context.Context, actor models.User, filter models.SchoolDataFilter) ([]dto.SchoolData, error) {
	var out []dto.SchoolData
	err := s.coord.View(ctx, "school_data_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Schools.ListSchoolData(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list school data")
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).SchoolData)
		return err
	})
	return out, err
}

// SchoolDurations lists timetable blocks. Every verified user may see them.
func (s *SchoolService) SchoolDurations(ctx context.Context, actor models.User, filter models.SchoolDurationFilter) ([]dto.SchoolDuration, error) {
	var out []dto.SchoolDuration
	err := s.coord.View(ctx, "school_duration_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Schools.ListSchoolDurations(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list school durations")
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).SchoolDuration)
		return err
	})
	return out, err
}

// SchoolDurationData lists timetable block versions.
func (s *SchoolService) SchoolDurationData(ctx context.Context, actor models.User, filter models.SchoolDurationDataFilter) ([]dto.SchoolDurationData, error) {
	var out []dto.SchoolDurationData
	err := s.coord.View(ctx, "school_duration_data_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Schools.ListSchoolDurationData(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list school duration data")
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).SchoolDurationData)
		return err
	})
	return out, err
}

// SchoolKeys lists keys of schools the caller administers.
func (s *SchoolService) SchoolKeys(ctx context.Context, actor models.User, filter models.SchoolKeyFilter) ([]dto.SchoolKey, error) {
	var out []dto.SchoolKey
	err := s.coord.View(ctx, "school_key_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Schools.ListSchoolKeys(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list school keys")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.SchoolKey) (bool, error) { return v.isAdmin(row.SchoolID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).SchoolKey)
		return err
	})
	return out, err
}

// SchoolKeyData lists key data of schools the caller administers.
func (s *SchoolService) SchoolKeyData(ctx context.Context, actor models.User, filter models.SchoolKeyDataFilter) ([]dto.SchoolKeyData, error) {
	var out []dto.SchoolKeyData
	err := s.coord.View(ctx, "school_key_data_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Schools.ListSchoolKeyData(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list school key data")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.SchoolKeyData) (bool, error) { return v.adminsSchoolKey(row.SchoolKeyKey) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).SchoolKeyData)
		return err
	})
	return out, err
}

// Adminships lists adminships of schools the caller administers.
func (s *SchoolService) Adminships(ctx context.Context, actor models.User, filter models.AdminshipFilter) ([]dto.Adminship, error) {
	var out []dto.Adminship
	err := s.coord.View(ctx, "adminship_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Schools.ListAdminships(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list adminships")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.Adminship) (bool, error) { return v.isAdmin(row.SchoolID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).Adminship)
		return err
	})
	return out, err
}
