package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
)

type schoolService interface {
	NewSubscription(ctx context.Context, actor models.User, req dto.SubscriptionNewRequest) (*dto.Subscription, error)
	NewSchool(ctx context.Context, actor models.User, req dto.SchoolNewRequest) (*dto.SchoolData, error)
	NewSchoolData(ctx context.Context, actor models.User, req dto.SchoolDataNewRequest) (*dto.SchoolData, error)
	NewSchoolDuration(ctx context.Context, actor models.User, req dto.SchoolDurationNewRequest) (*dto.SchoolDuration, error)
	NewSchoolDurationData(ctx context.Context, actor models.User, req dto.SchoolDurationDataNewRequest) (*dto.SchoolDurationData, error)
	NewSchoolKey(ctx context.Context, actor models.User, req dto.SchoolKeyNewRequest) (*dto.SchoolKeyData, error)
	NewSchoolKeyData(ctx context.Context, actor models.User, req dto.SchoolKeyDataNewRequest) (*dto.SchoolKeyData, error)
	NewAdminshipKey(ctx context.Context, actor models.User, req dto.AdminshipNewKeyRequest) (*dto.Adminship, error)
	NewAdminshipCancel(ctx context.Context, actor models.User, req dto.AdminshipNewCancelRequest) (*dto.Adminship, error)
	Subscriptions(ctx context.Context, actor models.User, filter models.SubscriptionFilter) ([]dto.Subscription, error)
	Schools(ctx context.Context, actor models.User, filter models.SchoolFilter) ([]dto.School, error)
	SchoolData(ctx context.Context, actor models.User, filter models.SchoolDataFilter) ([]dto.SchoolData, error)
	SchoolDurations(ctx context.Context, actor models.User, filter models.SchoolDurationFilter) ([]dto.SchoolDuration, error)
	SchoolDurationData(ctx context.Context, actor models.User, filter models.SchoolDurationDataFilter) ([]dto.SchoolDurationData, error)
	SchoolKeys(ctx context.Context, actor models.User, filter models.SchoolKeyFilter) ([]dto.SchoolKey, error)
	SchoolKeyData(ctx context.Context, actor models.User, filter models.SchoolKeyDataFilter) ([]dto.SchoolKeyData, error)
	Adminships(ctx context.Context, actor models.User, filter models.AdminshipFilter) ([]dto.Adminship, error)
}

// SchoolHandler exposes school, timetable, subscription and adminship endpoints.
type SchoolHandler struct {
	service schoolService
}

// NewSchoolHandler constructs a school handler.
func NewSchoolHandler(svc schoolService) *SchoolHandler {
	return &SchoolHandler{service: svc}
}

// NewSubscription godoc
// @Summary Create subscription
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SubscriptionNewRequest true "Subscription payload"
// @Success 200 {object} response.Envelope{data=dto.Subscription}
// @Router /subscription/new [post]
func (h *SchoolHandler) NewSubscription(c *gin.Context) { mutate(c, h.service.NewSubscription) }

// NewSchool godoc
// @Summary Create school
// @Description The caller becomes its first administrator.
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SchoolNewRequest true "School payload"
// @Success 200 {object} response.Envelope{data=dto.SchoolData}
// @Failure 400 {object} response.Envelope
// @Router /school/new [post]
func (h *SchoolHandler) NewSchool(c *gin.Context) { mutate(c, h.service.NewSchool) }

// NewSchoolData godoc
// @Summary Append school data
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SchoolDataNewRequest true "School data payload"
// @Success 200 {object} response.Envelope{data=dto.SchoolData}
// @Router /school_data/new [post]
func (h *SchoolHandler) NewSchoolData(c *gin.Context) { mutate(c, h.service.NewSchoolData) }

// NewSchoolDuration godoc
// @Summary Open timetable block
// @Description The block gets its weekday and minute span from school_duration_data.
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SchoolDurationNewRequest true "School duration payload"
// @Success 200 {object} response.Envelope{data=dto.SchoolDuration}
// @Router /school_duration/new [post]
func (h *SchoolHandler) NewSchoolDuration(c *gin.Context) { mutate(c, h.service.NewSchoolDuration) }

// NewSchoolDurationData godoc
// @Summary Append timetable block data
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SchoolDurationDataNewRequest true "School duration data payload"
// @Success 200 {object} response.Envelope{data=dto.SchoolDurationData}
// @Failure 400 {object} response.Envelope
// @Router /school_duration_data/new [post]
func (h *SchoolHandler) NewSchoolDurationData(c *gin.Context) { mutate(c, h.service.NewSchoolDurationData) }

// NewSchoolKey godoc
// @Summary Issue school key
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SchoolKeyNewRequest true "School key payload"
// @Success 200 {object} response.Envelope{data=dto.SchoolKeyData}
// @Router /school_key/new [post]
func (h *SchoolHandler) NewSchoolKey(c *gin.Context) { mutate(c, h.service.NewSchoolKey) }

// NewSchoolKeyData godoc
// @Summary Append school key data
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SchoolKeyDataNewRequest true "School key data payload"
// @Success 200 {object} response.Envelope{data=dto.SchoolKeyData}
// @Router /school_key_data/new [post]
func (h *SchoolHandler) NewSchoolKeyData(c *gin.Context) { mutate(c, h.service.NewSchoolKeyData) }

// NewAdminshipKey godoc
// @Summary Redeem school key
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AdminshipNewKeyRequest true "Redemption payload"
// @Success 200 {object} response.Envelope{data=dto.Adminship}
// @Router /adminship/new_key [post]
func (h *SchoolHandler) NewAdminshipKey(c *gin.Context) { mutate(c, h.service.NewAdminshipKey) }

// NewAdminshipCancel godoc
// @Summary Revoke adminship
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AdminshipNewCancelRequest true "Cancel payload"
// @Success 200 {object} response.Envelope{data=dto.Adminship}
// @Router /adminship/new_cancel [post]
func (h *SchoolHandler) NewAdminshipCancel(c *gin.Context) { mutate(c, h.service.NewAdminshipCancel) }

// ViewSubscriptions godoc
// @Summary List own subscriptions
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SubscriptionFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.Subscription}
// @Router /subscription/view [post]
func (h *SchoolHandler) ViewSubscriptions(c *gin.Context) { view(c, h.service.Subscriptions) }

// ViewSchools godoc
// @Summary List schools
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SchoolFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.School}
// @Router /school/view [post]
func (h *SchoolHandler) ViewSchools(c *gin.Context) { view(c, h.service.Schools) }

// ViewSchoolData godoc
// @Summary List school data
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SchoolDataFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.SchoolData}
// @Router /school_data/view [post]
func (h *SchoolHandler) ViewSchoolData(c *gin.Context) { view(c, h.service.SchoolData) }

// ViewSchoolDurations godoc
// @Summary List timetable blocks
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SchoolDurationFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.SchoolDuration}
// @Router /school_duration/view [post]
func (h *SchoolHandler) ViewSchoolDurations(c *gin.Context) { view(c, h.service.SchoolDurations) }

// ViewSchoolDurationData godoc
// @Summary List timetable block data
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SchoolDurationDataFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.SchoolDurationData}
// @Router /school_duration_data/view [post]
func (h *SchoolHandler) ViewSchoolDurationData(c *gin.Context) { view(c, h.service.SchoolDurationData) }

// ViewSchoolKeys godoc
// @Summary List school keys
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SchoolKeyFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.SchoolKey}
// @Router /school_key/view [post]
func (h *SchoolHandler) ViewSchoolKeys(c *gin.Context) { view(c, h.service.SchoolKeys) }

// ViewSchoolKeyData godoc
// @Summary List school key data
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SchoolKeyDataFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.SchoolKeyData}
// @Router /school_key_data/view [post]
func (h *SchoolHandler) ViewSchoolKeyData(c *gin.Context) { view(c, h.service.SchoolKeyData) }

// ViewAdminships godoc
// @Summary List adminships
// @Tags Schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.AdminshipFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.Adminship}
// @Router /adminship/view [post]
func (h *SchoolHandler) ViewAdminships(c *gin.Context) { view(c, h.service.Adminships) }

// Register mounts the school routes on rg.
func (h *SchoolHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/subscription/new", h.NewSubscription)
	rg.POST("/subscription/view", h.ViewSubscriptions)
	rg.POST("/school/new", h.NewSchool)
	rg.POST("/school/view", h.ViewSchools)
	rg.POST("/school_data/new", h.NewSchoolData)
	rg.POST("/school_data/view", h.ViewSchoolData)
	rg.POST("/school_duration/new", h.NewSchoolDuration)
	rg.POST("/school_duration/view", h.ViewSchoolDurations)
	rg.POST("/school_duration_data/new", h.NewSchoolDurationData)
	rg.POST("/school_duration_data/view", h.ViewSchoolDurationData)
	rg.POST("/school_key/new", h.NewSchoolKey)
	rg.POST("/school_key/view", h.ViewSchoolKeys)
	rg.POST("/school_key_data/new", h.NewSchoolKeyData)
	rg.POST("/school_key_data/view", h.ViewSchoolKeyData)
	rg.POST("/adminship/new_key", h.NewAdminshipKey)
	rg.POST("/adminship/new_cancel", h.NewAdminshipCancel)
	rg.POST("/adminship/view", h.ViewAdminships)
}
