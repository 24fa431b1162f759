package service

import (
	"context"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
)

// LocationService runs location workflows.
type LocationService struct {
	workflow
}

// NewLocationService constructs the service.
func NewLocationService(deps Deps) *LocationService {
	return &LocationService{workflow: newWorkflow(deps)}
}

// NewLocation creates a location in an active school the caller administers.
func (s *LocationService) NewLocation(ctx context.Context, actor models.User, req dto.LocationNewRequest) (*dto.LocationData, error) {
	if err := s.valid(req, "invalid location payload"); err != nil {
		return nil, err
	}
	var out dto.LocationData
	err := s.coord.Mutate(ctx, "location_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
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
		location := &models.Location{CreationTime: scope.Now(), CreatorUserID: actor.UserID, SchoolID: req.SchoolID}
		if err := s.stores.Locations.CreateLocation(ctx, exec, location); err != nil {
			return storage(err, "failed to create location")
		}
		data := &models.LocationData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			LocationID:    location.LocationID,
			Name:          req.Name,
			Address:       req.Address,
			Phone:         req.Phone,
			Active:        true,
		}
		if err := s.stores.Locations.AppendLocationData(ctx, exec, data); err != nil {
			return storage(err, "failed to append location data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).LocationData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewLocationData appends a version of a location's fields. Instructors
// teaching there and admins of the owning school may do so.
func (s *LocationService) NewLocationData(ctx context.Context, actor models.User, req dto.LocationDataNewRequest) (*dto.LocationData, error) {
	if err := s.valid(req, "invalid location data payload"); err != nil {
		return nil, err
	}
	var out dto.LocationData
	err := s.coord.Mutate(ctx, "location_data_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		location, err := s.location(ctx, exec, req.LocationID)
		if err != nil {
			return err
		}
		teaches, err := s.gate.IsInstructorAt(ctx, exec, actor.UserID, location.LocationID)
		if err != nil {
			return err
		}
		if !teaches {
			admin, err := s.gate.IsAdmin(ctx, exec, actor.UserID, location.SchoolID)
			if err != nil {
				return err
			}
			if !admin {
				return forbidden("caller neither teaches at the location nor administers its school")
			}
		}
		data := &models.LocationData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			LocationID:    location.LocationID,
			Name:          req.Name,
			Address:       req.Address,
			Phone:         req.Phone,
			Active:        req.Active,
		}
		if err := s.stores.Locations.AppendLocationData(ctx, exec, data); err != nil {
			return storage(err, "failed to append location data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).LocationData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Locations lists locations. Every verified user may see them.
func (s *LocationService) Locations(ctx context.Context, actor models.User, filter models.LocationFilter) ([]dto.Location, error) {
	var out []dto.Location
	err := s.coord.View(ctx, "location_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Locations.ListLocations(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list locations")
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).Location)
		return err
	})
	return out, err
}

// LocationData lists location data versions.
func (s *LocationService) LocationData(ctx context.Context, actor models.User, filter models.LocationDataFilter) ([]dto.LocationData, error) {
	var out []dto.LocationData
	err := s.coord.View(ctx, "location_data_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Locations.ListLocationData(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list location data")
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).LocationData)
		return err
	})
	return out, err
}
