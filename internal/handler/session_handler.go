package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
)

type sessionService interface {
	NewSession(ctx context.Context, actor models.User, req dto.SessionNewRequest) (*dto.SessionData, error)
	NewSessionData(ctx context.Context, actor models.User, req dto.SessionDataNewRequest) (*dto.SessionData, error)
	NewSessionRequest(ctx context.Context, actor models.User, req dto.SessionRequestNewRequest) (*dto.SessionRequest, error)
	NewSessionRequestResponse(ctx context.Context, actor models.User, req dto.SessionRequestResponseNewRequest) (*dto.SessionRequestResponse, error)
	NewCommitments(ctx context.Context, actor models.User, req dto.CommitmentNewRequest) ([]dto.Commitment, error)
	Sessions(ctx context.Context, actor models.User, filter models.SessionFilter) ([]dto.Session, error)
	SessionData(ctx context.Context, actor models.User, filter models.SessionDataFilter) ([]dto.SessionData, error)
	SessionRequests(ctx context.Context, actor models.User, filter models.SessionRequestFilter) ([]dto.SessionRequest, error)
	SessionRequestResponses(ctx context.Context, actor models.User, filter models.SessionRequestResponseFilter) ([]dto.SessionRequestResponse, error)
	Commitments(ctx context.Context, actor models.User, filter models.CommitmentFilter) ([]dto.Commitment, error)
}

// SessionHandler exposes session, request and commitment endpoints.
type SessionHandler struct {
	service sessionService
}

// NewSessionHandler constructs a session handler.
func NewSessionHandler(svc sessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// NewSession godoc
// @Summary Schedule session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SessionNewRequest true "Session payload"
// @Success 200 {object} response.Envelope{data=dto.SessionData}
// @Router /session/new [post]
func (h *SessionHandler) NewSession(c *gin.Context) { mutate(c, h.service.NewSession) }

// NewSessionData godoc
// @Summary Append session data
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SessionDataNewRequest true "Session data payload"
// @Success 200 {object} response.Envelope{data=dto.SessionData}
// @Router /session_data/new [post]
func (h *SessionHandler) NewSessionData(c *gin.Context) { mutate(c, h.service.NewSessionData) }

// NewSessionRequest godoc
// @Summary Request a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SessionRequestNewRequest true "Request payload"
// @Success 200 {object} response.Envelope{data=dto.SessionRequest}
// @Router /session_request/new [post]
func (h *SessionHandler) NewSessionRequest(c *gin.Context) { mutate(c, h.service.NewSessionRequest) }

// NewSessionRequestResponse godoc
// @Summary Accept or decline a session request
// @Description Supplying session_id accepts; omitting it declines.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SessionRequestResponseNewRequest true "Response payload"
// @Success 200 {object} response.Envelope{data=dto.SessionRequestResponse}
// @Failure 409 {object} response.Envelope
// @Router /session_request_response/new [post]
func (h *SessionHandler) NewSessionRequestResponse(c *gin.Context) {
	mutate(c, h.service.NewSessionRequestResponse)
}

// NewCommitments godoc
// @Summary Commit attendees to a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CommitmentNewRequest true "Commitment payload"
// @Success 200 {object} response.Envelope{data=[]dto.Commitment}
// @Router /commitment/new [post]
func (h *SessionHandler) NewCommitments(c *gin.Context) { mutate(c, h.service.NewCommitments) }

// ViewSessions godoc
// @Summary List sessions
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SessionFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.Session}
// @Router /session/view [post]
func (h *SessionHandler) ViewSessions(c *gin.Context) { view(c, h.service.Sessions) }

// ViewSessionData godoc
// @Summary List session data
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SessionDataFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.SessionData}
// @Router /session_data/view [post]
func (h *SessionHandler) ViewSessionData(c *gin.Context) { view(c, h.service.SessionData) }

// ViewSessionRequests godoc
// @Summary List session requests
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SessionRequestFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.SessionRequest}
// @Router /session_request/view [post]
func (h *SessionHandler) ViewSessionRequests(c *gin.Context) { view(c, h.service.SessionRequests) }

// ViewSessionRequestResponses godoc
// @Summary List session request responses
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.SessionRequestResponseFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.SessionRequestResponse}
// @Router /session_request_response/view [post]
func (h *SessionHandler) ViewSessionRequestResponses(c *gin.Context) {
	view(c, h.service.SessionRequestResponses)
}

// ViewCommitments godoc
// @Summary List commitments
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.CommitmentFilter false "Filter"
// @Success 200 {object} response.Envelope{data=[]dto.Commitment}
// @Router /commitment/view [post]
func (h *SessionHandler) ViewCommitments(c *gin.Context) { view(c, h.service.Commitments) }

// Register mounts the session routes on rg.
func (h *SessionHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/session/new", h.NewSession)
	rg.POST("/session/view", h.ViewSessions)
	rg.POST("/session_data/new", h.NewSessionData)
	rg.POST("/session_data/view", h.ViewSessionData)
	rg.POST("/session_request/new", h.NewSessionRequest)
	rg.POST("/session_request/view", h.ViewSessionRequests)
	rg.POST("/session_request_response/new", h.NewSessionRequestResponse)
	rg.POST("/session_request_response/view", h.ViewSessionRequestResponses)
	rg.POST("/commitment/new", h.NewCommitments)
	rg.POST("/commitment/view", h.ViewCommitments)
}
