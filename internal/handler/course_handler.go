package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
)

type courseService interface {
	NewCourse(ctx context.Context, actor models.User, req dto.CourseNewRequest) (*dto.CourseData, error)
	NewCourseData(ctx context.Context, actor models.User, req dto.CourseDataNewRequest) (*dto.CourseData, error)
	NewCourseKey(ctx context.Context, actor models.User, req dto.CourseKeyNewRequest) (*dto.CourseKeyData, error)
	NewCourseKeyData(ctx context.Context, actor models.User, req dto.CourseKeyDataNewRequest) (*dto.CourseKeyData, error)
	NewCourseMembershipKey(ctx context.Context, actor models.User, req dto.CourseMembershipNewKeyRequest) (*dto.CourseMembership, error)
	NewCourseMembershipCancel(ctx context.Context, actor models.User, req dto.CourseMembershipNewCancelRequest) (*dto.CourseMembership, error)
	Courses(ctx context.Context, actor models.User, filter models.CourseFilter) ([]dto.Course, error)
	CourseData(ctx context.Context, actor models.User, filter models.CourseDataFilter) ([]dto.CourseData, error)
	CourseKeys(ctx context.Context, actor models.User, filter models.CourseKeyFilter) ([]dto.CourseKey, error)
	CourseKeyData(ctx context.Context, actor models.User, filter models.CourseKeyDataFilter) ([]dto.CourseKeyData, error)
	CourseMemberships(ctx context.Context, actor models.User, filter models.CourseMembershipFilter) ([]dto.CourseMembership, error)
}

// CourseHandler exposes course, course key and membership endpoints.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs a course handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// NewCourse godoc
// @Summary Create course
// @Description The caller becomes its first instructor.
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CourseNewRequest true "Course payload"
// @Success 200 {object} response.Envelope{data=dto.CourseData}
// @Router /course/new [post]
func (h *CourseHandler) NewCourse(c *gin.Context) { mutate(c, h.service.NewCourse) }

// NewCourseData godoc
// @Summary Append course data
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CourseDataNewRequest true "Course data payload"
// @Success 200 {object} response.Envelope{data=dto.CourseData}
// @Router /course_data/new [post]
func (h *CourseHandler) NewCourseData(c *gin.Context) { mutate(c, h.service.NewCourseData) }

// NewCourseKey godoc
// @Summary Issue course key
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CourseKeyNewRequest true "Course key payload"
// @Success 200 {object} response.Envelope{data=dto.CourseKeyData}
// @Router /course_key/new [post]
func (h *CourseHandler) NewCourseKey(c *gin.Context) { mutate(c, h.service.NewCourseKey) }

// NewCourseKeyData godoc
// @Summary Append course key data
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CourseKeyDataNewRequest true "Course key data payload"
// @Success 200 {object} response.Envelope{data=dto.CourseKeyData}
// @Router /course_key_data/new [post]
func (h *CourseHandler) NewCourseKeyData(c *gin.Context) { mutate(c, h.service.NewCourseKeyData) }

// NewCourseMembershipKey godoc
// @Summary Redeem course key
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CourseMembershipNewKeyRequest true "Redemption payload"
// @Success 200 {object} response.Envelope{data=dto.CourseMembership}
// @Router /course_membership/new_key [post]
func (h *CourseHandler) NewCourseMembershipKey(c *gin.Context) {
	mutate(c, h.service.NewCourseMembershipKey)
}

// NewCourseMembershipCancel godoc
// @Summary Leave or remove from course
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CourseMembershipNewCancelRequest true "Cancel payload"
// @Success 200 {object} response.Envelope{data=dto.CourseMembership}
// @Router /course_membership/new_cancel [post]
func (h *CourseHandler) NewCourseMembershipCancel(c *gin.Context) {
	mutate(c, h.service.NewCourseMembershipCancel)
}

// ViewCourses godoc
// @Summary List courses
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.CourseFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.Course}
// @Router /course/view [post]
func (h *CourseHandler) ViewCourses(c *gin.Context) { view(c, h.service.Courses) }

// ViewCourseData godoc
// @Summary List course data
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.CourseDataFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.CourseData}
// @Router /course_data/view [post]
func (h *CourseHandler) ViewCourseData(c *gin.Context) { view(c, h.service.CourseData) }

// ViewCourseKeys godoc
// @Summary List course keys
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.CourseKeyFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.CourseKey}
// @Router /course_key/view [post]
func (h *CourseHandler) ViewCourseKeys(c *gin.Context) { view(c, h.service.CourseKeys) }

// ViewCourseKeyData godoc
// @Summary List course key data
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.CourseKeyDataFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.CourseKeyData}
// @Router /course_key_data/view [post]
func (h *CourseHandler) ViewCourseKeyData(c *gin.Context) { view(c, h.service.CourseKeyData) }

// ViewCourseMemberships godoc
// @Summary List course memberships
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.CourseMembershipFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.CourseMembership}
// @Router /course_membership/view [post]
func (h *CourseHandler) ViewCourseMemberships(c *gin.Context) { view(c, h.service.CourseMemberships) }

// Register mounts the course routes on rg.
func (h *CourseHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/course/new", h.NewCourse)
	rg.POST("/course/view", h.ViewCourses)
	rg.POST("/course_data/new", h.NewCourseData)
	rg.POST("/course_data/view", h.ViewCourseData)
	rg.POST("/course_key/new", h.NewCourseKey)
	rg.POST("/course_key/view", h.ViewCourseKeys)
	rg.POST("/course_key_data/new", h.NewCourseKeyData)
	rg.POST("/course_key_data/view", h.ViewCourseKeyData)
	rg.POST("/course_membership/new_key", h.NewCourseMembershipKey)
	rg.POST("/course_membership/new_cancel", h.NewCourseMembershipCancel)
	rg.POST("/course_membership/view", h.ViewCourseMemberships)
}
