package service

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/events"
)

// AttendanceService records encounters and stays.
type AttendanceService struct {
	workflow
}

// NewAttendanceService constructs the service.
func NewAttendanceService(deps Deps) *AttendanceService {
	return &AttendanceService{workflow: newWorkflow(deps)}
}

// NewEncounter records a manual check-in at an active location.
func (s *AttendanceService) NewEncounter(ctx context.Context, actor models.User, req dto.EncounterNewRequest) (*dto.Encounter, error) {
	if err := s.valid(req, "invalid encounter payload"); err != nil {
		return nil, err
	}
	if err := s.lookupUser(ctx, req.AttendeeUserID); err != nil {
		return nil, err
	}
	var out dto.Encounter
	err := s.coord.Mutate(ctx, "encounter_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.location(ctx, exec, req.LocationID); err != nil {
			return err
		}
		if err := s.locationActive(ctx, exec, req.LocationID); err != nil {
			return err
		}
		if err := s.requireInstructorAt(ctx, exec, actor.UserID, req.LocationID); err != nil {
			return err
		}
		encounter := &models.Encounter{
			CreationTime:   scope.Now(),
			CreatorUserID:  actor.UserID,
			LocationID:     req.LocationID,
			AttendeeUserID: req.AttendeeUserID,
			EncounterKind:  models.EncounterKindManual,
		}
		if err := s.stores.Attendance.CreateEncounter(ctx, exec, encounter); err != nil {
			return storage(err, "failed to create encounter")
		}
		assembled, err := s.assemble.Bind(ctx, exec).Encounter(*encounter)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.EncounterCreated, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// endpoint is one side of a stay as supplied by the caller.
type endpoint struct {
	encounterID *int64
	at          *int64
}

// interval checks both endpoints against the stay's location and attendee
// and rejects a negative duration.
func (s *AttendanceService) interval(ctx context.Context, exec sqlx.ExtContext, locationID, attendee int64, fst, snd endpoint) error {
	fstAt, err := s.instant(ctx, exec, locationID, attendee, fst)
	if err != nil {
		return err
	}
	sndAt, err := s.instant(ctx, exec, locationID, attendee, snd)
	if err != nil {
		return err
	}
	return durationOK(fstAt, sndAt)
}

func (s *AttendanceService) instant(ctx context.Context, exec sqlx.ExtContext, locationID, attendee int64, e endpoint) (int64, error) {
	switch {
	case e.encounterID == nil && e.at == nil:
		return 0, missing(appErrors.ErrStayProvidedNoTime)
	case e.encounterID != nil && e.at != nil:
		return 0, missing(appErrors.ErrStayProvidedDoubleTime)
	case e.at != nil:
		return *e.at, nil
	}
	encounter, err := s.stores.Attendance.FindEncounter(ctx, exec, *e.encounterID)
	if err != nil {
		return 0, storage(err, "failed to load encounter")
	}
	if encounter == nil {
		return 0, missing(appErrors.ErrEncounterNonexistent)
	}
	if encounter.LocationID != locationID {
		return 0, missing(appErrors.ErrStayEncounterWrongLocation)
	}
	if encounter.AttendeeUserID != attendee {
		return 0, missing(appErrors.ErrStayEncounterWrongUser)
	}
	return encounter.CreationTime, nil
}

// NewStay records a presence interval for an attendee at a location.
func (s *AttendanceService) NewStay(ctx context.Context, actor models.User, req dto.StayNewRequest) (*dto.StayData, error) {
	if err := s.valid(req, "invalid stay payload"); err != nil {
		return nil, err
	}
	if err := s.lookupUser(ctx, req.AttendeeUserID); err != nil {
		return nil, err
	}
	var out dto.StayData
	err := s.coord.Mutate(ctx, "stay_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.location(ctx, exec, req.LocationID); err != nil {
			return err
		}
		fst := endpoint{encounterID: req.FstEncounterID, at: req.FstTime}
		snd := endpoint{encounterID: req.SndEncounterID, at: req.SndTime}
		if err := s.interval(ctx, exec, req.LocationID, req.AttendeeUserID, fst, snd); err != nil {
			return err
		}
		if err := s.requireInstructorAt(ctx, exec, actor.UserID, req.LocationID); err != nil {
			return err
		}

		stay := &models.Stay{
			CreationTime:   scope.Now(),
			CreatorUserID:  actor.UserID,
			AttendeeUserID: req.AttendeeUserID,
			LocationID:     req.LocationID,
		}
		if err := s.stores.Attendance.CreateStay(ctx, exec, stay); err != nil {
			return storage(err, "failed to create stay")
		}
		data := &models.StayData{
			CreationTime:   scope.Now(),
			CreatorUserID:  actor.UserID,
			StayID:         stay.StayID,
			FstEncounterID: req.FstEncounterID,
			FstTime:        req.FstTime,
			SndEncounterID: req.SndEncounterID,
			SndTime:        req.SndTime,
			Active:         true,
		}
		if err := s.stores.Attendance.AppendStayData(ctx, exec, data); err != nil {
			return storage(err, "failed to append stay data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).StayData(*data)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.StayCreated, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewStayData appends a version of a stay's interval.
func (s *AttendanceService) NewStayData(ctx context.Context, actor models.User, req dto.StayDataNewRequest) (*dto.StayData, error) {
	if err := s.valid(req, "invalid stay data payload"); err != nil {
		return nil, err
	}
	var out dto.StayData
	err := s.coord.Mutate(ctx, "stay_data_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		stay, err := s.stores.Attendance.FindStay(ctx, exec, req.StayID)
		if err != nil {
			return storage(err, "failed to load stay")
		}
		if stay == nil {
			return missing(appErrors.ErrStayNonexistent)
		}
		if err := s.requireInstructorAt(ctx, exec, actor.UserID, stay.LocationID); err != nil {
			return err
		}
		fst := endpoint{encounterID: req.FstEncounterID, at: req.FstTime}
		snd := endpoint{encounterID: req.SndEncounterID, at: req.SndTime}
		if err := s.interval(ctx, exec, stay.LocationID, stay.AttendeeUserID, fst, snd); err != nil {
			return err
		}
		data := &models.StayData{
			CreationTime:   scope.Now(),
			CreatorUserID:  actor.UserID,
			StayID:         stay.StayID,
			FstEncounterID: req.FstEncounterID,
			FstTime:        req.FstTime,
			SndEncounterID: req.SndEncounterID,
			SndTime:        req.SndTime,
			Active:         req.Active,
		}
		if err := s.stores.Attendance.AppendStayData(ctx, exec, data); err != nil {
			return storage(err, "failed to append stay data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).StayData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Encounters lists the caller's own encounters and those at locations they
// teach at.
func (s *AttendanceService) Encounters(ctx context.Context, actor models.User, filter models.EncounterFilter) ([]dto.Encounter, error) {
	var out []dto.Encounter
	err := s.coord.View(ctx, "encounter_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Attendance.ListEncounters(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list encounters")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.Encounter) (bool, error) {
			return v.canSeePresence(row.AttendeeUserID, row.LocationID)
		})
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).Encounter)
		return err
	})
	return out, err
}

// Stays lists stays under the same rule as Encounters.
func (s *AttendanceService) Stays(ctx context.Context, actor models.User, filter models.StayFilter) ([]dto.Stay, error) {
	var out []dto.Stay
	err := s.coord.View(ctx, "stay_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Attendance.ListStays(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list stays")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.Stay) (bool, error) {
			return v.canSeePresence(row.AttendeeUserID, row.LocationID)
		})
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).Stay)
		return err
	})
	return out, err
}

// StayData lists stay data versions under the same rule as Stays.
func (s *AttendanceService) StayData(ctx context.Context, actor models.User, filter models.StayDataFilter) ([]dto.StayData, error) {
	var out []dto.StayData
	err := s.coord.View(ctx, "stay_data_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Attendance.ListStayData(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list stay data")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.StayData) (bool, error) { return v.canSeeStay(row.StayID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).StayData)
		return err
	})
	return out, err
}
