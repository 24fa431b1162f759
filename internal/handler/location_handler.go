package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
)

type locationService interface {
	NewLocation(ctx context.Context, actor models.User, req dto.LocationNewRequest) (*dto.LocationData, error)
	NewLocationData(ctx context.Context, actor models.User, req dto.LocationDataNewRequest) (*dto.LocationData, error)
	Locations(ctx context.Context, actor models.User, filter models.LocationFilter) ([]dto.Location, error)
	LocationData(ctx context.Context, actor models.User, filter models.LocationDataFilter) ([]dto.LocationData, error)
}

// LocationHandler exposes location endpoints.
type LocationHandler struct {
	service locationService
}

// NewLocationHandler constructs a location handler.
func NewLocationHandler(svc locationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// NewLocation godoc
// @Summary Create location
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.LocationNewRequest true "Location payload"
// @Success 200 {object} response.Envelope{data=dto.LocationData}
// @Router /location/new [post]
func (h *LocationHandler) NewLocation(c *gin.Context) { mutate(c, h.service.NewLocation) }

// NewLocationData godoc
// @Summary Append location data
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.LocationDataNewRequest true "Location data payload"
// @Success 200 {object} response.Envelope{data=dto.LocationData}
// @Router /location_data/new [post]
func (h *LocationHandler) NewLocationData(c *gin.Context) { mutate(c, h.service.NewLocationData) }

// ViewLocations godoc
// @Summary List locations
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.LocationFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.Location}
// @Router /location/view [post]
func (h *LocationHandler) ViewLocations(c *gin.Context) { view(c, h.service.Locations) }

// ViewLocationData godoc
// @Summary List location data
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.LocationDataFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.LocationData}
// @Router /location_data/view [post]
func (h *LocationHandler) ViewLocationData(c *gin.Context) { view(c, h.service.LocationData) }

// Register mounts the location routes on rg.
func (h *LocationHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/location/new", h.NewLocation)
	rg.POST("/location/view", h.ViewLocations)
	rg.POST("/location_data/new", h.NewLocationData)
	rg.POST("/location_data/view", h.ViewLocationData)
}
