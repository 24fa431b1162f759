package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
)

// LocationRepository persists locations and their data.
type LocationRepository struct {
	store
}

// NewLocationRepository constructs the repository.
func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{store{db: db}}
}

// CreateLocation inserts a location and assigns its id.
func (r *LocationRepository) CreateLocation(ctx context.Context, exec sqlx.ExtContext, location *models.Location) error {
	return locationChain.Append(ctx, r.exec(exec), location)
}

// FindLocation loads a location, returning nil when it does not exist.
func (r *LocationRepository) FindLocation(ctx context.Context, exec sqlx.ExtContext, locationID int64) (*models.Location, error) {
	return byID[models.Location](ctx, r.exec(exec), locationChain, locationID)
}

// ListLocations returns locations matching the filter.
func (r *LocationRepository) ListLocations(ctx context.Context, exec sqlx.ExtContext, filter models.LocationFilter) ([]models.Location, error) {
	f := common(filter.CommonFilter).
		Int64s("location_id", filter.LocationID).
		Int64s("school_id", filter.SchoolID)
	return list[models.Location](ctx, r.exec(exec), locationChain, filter.OnlyRecent, f)
}

// AppendLocationData appends a location data version.
func (r *LocationRepository) AppendLocationData(ctx context.Context, exec sqlx.ExtContext, data *models.LocationData) error {
	return locationDataChain.Append(ctx, r.exec(exec), data)
}

// LocationDataHead returns the current data for a location.
func (r *LocationRepository) LocationDataHead(ctx context.Context, exec sqlx.ExtContext, locationID int64) (*models.LocationData, error) {
	return head[models.LocationData](ctx, r.exec(exec), locationDataChain, locationID)
}

// ListLocationData returns location data versions matching the filter.
func (r *LocationRepository) ListLocationData(ctx context.Context, exec sqlx.ExtContext, filter models.LocationDataFilter) ([]models.LocationData, error) {
	f := common(filter.CommonFilter).
		Int64s("location_data_id", filter.LocationDataID).
		Int64s("location_id", filter.LocationID).
		Eq("name", filter.Name).
		Contains("name", filter.PartialName).
		Eq("address", filter.Address).
		Eq("phone", filter.Phone).
		Eq("active", filter.Active)
	return list[models.LocationData](ctx, r.exec(exec), locationDataChain, filter.OnlyRecent, f)
}
