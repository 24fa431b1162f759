package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hours-api/internal/models"
)

// SessionRepository persists sessions, session requests and commitments.
type SessionRepository struct {
	store
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{store{db: db}}
}

// CreateSession inserts a session and assigns its id.
func (r *SessionRepository) CreateSession(ctx context.Context, exec sqlx.ExtContext, session *models.Session) error {
	return sessionChain.Append(ctx, r.exec(exec), session)
}

// FindSession loads a session, returning nil when it does not exist.
func (r *SessionRepository) FindSession(ctx context.Context, exec sqlx.ExtContext, sessionID int64) (*models.Session, error) {
	return byID[models.Session](ctx, r.exec(exec), sessionChain, sessionID)
}

// ListSessions returns sessions matching the filter.
func (r *SessionRepository) ListSessions(ctx context.Context, exec sqlx.ExtContext, filter models.SessionFilter) ([]models.Session, error) {
	f := common(filter.CommonFilter).
		Int64s("session_id", filter.SessionID).
		Int64s("course_id", filter.CourseID)
	return list[models.Session](ctx, r.exec(exec), sessionChain, filter.OnlyRecent, f)
}

// AppendSessionData appends a session data version.
func (r *SessionRepository) AppendSessionData(ctx context.Context, exec sqlx.ExtContext, data *models.SessionData) error {
	return sessionDataChain.Append(ctx, r.exec(exec), data)
}

// SessionDataHead returns the current data for a session.
func (r *SessionRepository) SessionDataHead(ctx context.Context, exec sqlx.ExtContext, sessionID int64) (*models.SessionData, error) {
	return head[models.SessionData](ctx, r.exec(exec), sessionDataChain, sessionID)
}

// ListSessionData returns session data versions matching the filter.
func (r *SessionRepository) ListSessionData(ctx context.Context, exec sqlx.ExtContext, filter models.SessionDataFilter) ([]models.SessionData, error) {
	f := common(filter.CommonFilter).
		Int64s("session_data_id", filter.SessionDataID).
		Int64s("session_id", filter.SessionID).
		Eq("name", filter.Name).
		Contains("name", filter.PartialName).
		Min("start_time", filter.MinStartTime).
		Max("start_time", filter.MaxStartTime).
		Min("end_time", filter.MinEndTime).
		Max("end_time", filter.MaxEndTime).
		Eq("active", filter.Active)
	return list[models.SessionData](ctx, r.exec(exec), sessionDataChain, filter.OnlyRecent, f)
}

// CreateSessionRequest inserts a session request and assigns its id.
func (r *SessionRepository) CreateSessionRequest(ctx context.Context, exec sqlx.ExtContext, request *models.SessionRequest) error {
	return sessionRequestChain.Append(ctx, r.exec(exec), request)
}

// FindSessionRequest loads a session request, returning nil when absent.
func (r *SessionRepository) FindSessionRequest(ctx context.Context, exec sqlx.ExtContext, requestID int64) (*models.SessionRequest, error) {
	return byID[models.SessionRequest](ctx, r.exec(exec), sessionRequestChain, requestID)
}

// ListSessionRequests returns session requests matching the filter.
func (r *SessionRepository) ListSessionRequests(ctx context.Context, exec sqlx.ExtContext, filter models.SessionRequestFilter) ([]models.SessionRequest, error) {
	f := common(filter.CommonFilter).
		Int64s("session_request_id", filter.SessionRequestID).
		Int64s("course_id", filter.CourseID).
		Eq("message", filter.Message).
		Contains("message", filter.PartialMessage).
		Min("start_time", filter.MinStartTime).
		Max("start_time", filter.MaxStartTime).
		Min("end_time", filter.MinEndTime).
		Max("end_time", filter.MaxEndTime)
	return list[models.SessionRequest](ctx, r.exec(exec), sessionRequestChain, filter.OnlyRecent, f)
}

// CreateSessionRequestResponse inserts the single response to a request. A
// second response violates the primary key.
func (r *SessionRepository) CreateSessionRequestResponse(ctx context.Context, exec sqlx.ExtContext, response *models.SessionRequestResponse) error {
	return sessionRequestResponseChain.Append(ctx, r.exec(exec), response)
}

// FindSessionRequestResponse loads the response to a request, if any.
func (r *SessionRepository) FindSessionRequestResponse(ctx context.Context, exec sqlx.ExtContext, requestID int64) (*models.SessionRequestResponse, error) {
	return byID[models.SessionRequestResponse](ctx, r.exec(exec), sessionRequestResponseChain, requestID)
}

// ListSessionRequestResponses returns responses matching the filter.
func (r *SessionRepository) ListSessionRequestResponses(ctx context.Context, exec sqlx.ExtContext, filter models.SessionRequestResponseFilter) ([]models.SessionRequestResponse, error) {
	f := common(filter.CommonFilter).
		Int64s("session_request_id", filter.SessionRequestID).
		Eq("message", filter.Message).
		Contains("message", filter.PartialMessage).
		Int64s("commitment_id", filter.CommitmentID).
		Present("commitment_id", filter.Accepted)
	return list[models.SessionRequestResponse](ctx, r.exec(exec), sessionRequestResponseChain, filter.OnlyRecent, f)
}

// AppendCommitment appends a commitment version.
func (r *SessionRepository) AppendCommitment(ctx context.Context, exec sqlx.ExtContext, commitment *models.Commitment) error {
	return commitmentChain.Append(ctx, r.exec(exec), commitment)
}

// FindCommitment loads a commitment version by id.
func (r *SessionRepository) FindCommitment(ctx context.Context, exec sqlx.ExtContext, commitmentID int64) (*models.Commitment, error) {
	return byID[models.Commitment](ctx, r.exec(exec), commitmentChain, commitmentID)
}

// CommitmentHead returns the current commitment of attendee to session.
func (r *SessionRepository) CommitmentHead(ctx context.Context, exec sqlx.ExtContext, attendeeUserID, sessionID int64) (*models.Commitment, error) {
	return head[models.Commitment](ctx, r.exec(exec), commitmentChain, attendeeUserID, sessionID)
}

// ListCommitments returns commitment versions matching the filter.
func (r *SessionRepository) ListCommitments(ctx context.Context, exec sqlx.ExtContext, filter models.CommitmentFilter) ([]models.Commitment, error) {
	f := common(filter.CommonFilter).
		Int64s("commitment_id", filter.CommitmentID).
		Int64s("attendee_user_id", filter.AttendeeUserID).
		Int64s("session_id", filter.SessionID).
		Eq("active", filter.Active)
	return list[models.Commitment](ctx, r.exec(exec), commitmentChain, filter.OnlyRecent, f)
}
