package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
)

type attendanceService interface {
	NewEncounter(ctx context.Context, actor models.User, req dto.EncounterNewRequest) (*dto.Encounter, error)
	NewStay(ctx context.Context, actor models.User, req dto.StayNewRequest) (*dto.StayData, error)
	NewStayData(ctx context.Context, actor models.User, req dto.StayDataNewRequest) (*dto.StayData, error)
	Encounters(ctx context.Context, actor models.User, filter models.EncounterFilter) ([]dto.Encounter, error)
	Stays(ctx context.Context, actor models.User, filter models.StayFilter) ([]dto.Stay, error)
	StayData(ctx context.Context, actor models.User, filter models.StayDataFilter) ([]dto.StayData, error)
}

// AttendanceHandler exposes encounter and stay endpoints.
type AttendanceHandler struct {
	service attendanceService
}

// NewAttendanceHandler constructs an attendance handler.
func NewAttendanceHandler(svc attendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: svc}
}

// NewEncounter godoc
// @Summary Record an encounter
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.EncounterNewRequest true "Encounter payload"
// @Success 200 {object} response.Envelope{data=dto.Encounter}
// @Router /encounter/new [post]
func (h *AttendanceHandler) NewEncounter(c *gin.Context) { mutate(c, h.service.NewEncounter) }

// NewStay godoc
// @Summary Record a stay
// @Description Each endpoint takes either an encounter id or a timestamp.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.StayNewRequest true "Stay payload"
// @Success 200 {object} response.Envelope{data=dto.StayData}
// @Router /stay/new [post]
func (h *AttendanceHandler) NewStay(c *gin.Context) { mutate(c, h.service.NewStay) }

// NewStayData godoc
// @Summary Append stay data
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.StayDataNewRequest true "Stay data payload"
// @Success 200 {object} response.Envelope{data=dto.StayData}
// @Router /stay_data/new [post]
func (h *AttendanceHandler) NewStayData(c *gin.Context) { mutate(c, h.service.NewStayData) }

// ViewEncounters godoc
// @Summary List encounters
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.EncounterFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.Encounter}
// @Router /encounter/view [post]
func (h *AttendanceHandler) ViewEncounters(c *gin.Context) { view(c, h.service.Encounters) }

// ViewStays godoc
// @Summary List stays
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.StayFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.Stay}
// @Router /stay/view [post]
func (h *AttendanceHandler) ViewStays(c *gin.Context) { view(c, h.service.Stays) }

// ViewStayData godoc
// @Summary List stay data
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.StayDataFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.StayData}
// @Router /stay_data/view [post]
func (h *AttendanceHandler) ViewStayData(c *gin.Context) { view(c, h.service.StayData) }

// Register mounts the attendance routes on rg.
func (h *AttendanceHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/encounter/new", h.NewEncounter)
	rg.POST("/encounter/view", h.ViewEncounters)
	rg.POST("/stay/new", h.NewStay)
	rg.POST("/stay/view", h.ViewStays)
	rg.POST("/stay_data/new", h.NewStayData)
	rg.POST("/stay_data/view", h.ViewStayData)
}
