package service

import (
	"context"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/events"
)

// SessionService runs session, session request and commitment workflows.
type SessionService struct {
	workflow
}

// NewSessionService constructs the service.
func NewSessionService(deps Deps) *SessionService {
	return &SessionService{workflow: newWorkflow(deps)}
}

// NewSession schedules a session and commits the listed students to it.
func (s *SessionService) NewSession(ctx context.Context, actor models.User, req dto.SessionNewRequest) (*dto.SessionData, error) {
	if err := s.valid(req, "invalid session payload"); err != nil {
		return nil, err
	}
	if err := durationOK(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	var out dto.SessionData
	err := s.coord.Mutate(ctx, "session_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.course(ctx, exec, req.CourseID); err != nil {
			return err
		}
		if err := s.requireInstructor(ctx, exec, actor.UserID, req.CourseID); err != nil {
			return err
		}
		if err := s.courseActive(ctx, exec, req.CourseID); err != nil {
			return err
		}
		if err := s.requireStudents(ctx, exec, req.CourseID, req.AttendeeUserIDs); err != nil {
			return err
		}

		session := &models.Session{CreationTime: scope.Now(), CreatorUserID: actor.UserID, CourseID: req.CourseID}
		if err := s.stores.Sessions.CreateSession(ctx, exec, session); err != nil {
			return storage(err, "failed to create session")
		}
		data := &models.SessionData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			SessionID:     session.SessionID,
			Name:          req.Name,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Active:        true,
		}
		if err := s.stores.Sessions.AppendSessionData(ctx, exec, data); err != nil {
			return storage(err, "failed to append session data")
		}
		if _, err := s.commit(ctx, scope, actor.UserID, session.SessionID, req.AttendeeUserIDs, true); err != nil {
			return err
		}

		assembled, err := s.assemble.Bind(ctx, exec).SessionData(*data)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.SessionCreated, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SessionService) commit(ctx context.Context, scope *Scope, creator, sessionID int64, attendees []int64, active bool) ([]models.Commitment, error) {
	commitments := make([]models.Commitment, 0, len(attendees))
	for _, attendee := range attendees {
		commitment := &models.Commitment{
			CreationTime:   scope.Now(),
			CreatorUserID:  creator,
			AttendeeUserID: attendee,
			SessionID:      sessionID,
			Active:         active,
		}
		if err := s.stores.Sessions.AppendCommitment(ctx, scope.Exec(), commitment); err != nil {
			return nil, storage(err, "failed to append commitment")
		}
		commitments = append(commitments, *commitment)
	}
	return commitments, nil
}

// NewSessionData appends a version of a session's schedule.
func (s *SessionService) NewSessionData(ctx context.Context, actor models.User, req dto.SessionDataNewRequest) (*dto.SessionData, error) {
	if err := s.valid(req, "invalid session data payload"); err != nil {
		return nil, err
	}
	if err := durationOK(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	var out dto.SessionData
	err := s.coord.Mutate(ctx, "session_data_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		session, err := s.session(ctx, exec, req.SessionID)
		if err != nil {
			return err
		}
		if err := s.requireInstructor(ctx, exec, actor.UserID, session.CourseID); err != nil {
			return err
		}
		data := &models.SessionData{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			SessionID:     session.SessionID,
			Name:          req.Name,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Active:        req.Active,
		}
		if err := s.stores.Sessions.AppendSessionData(ctx, exec, data); err != nil {
			return storage(err, "failed to append session data")
		}
		assembled, err := s.assemble.Bind(ctx, exec).SessionData(*data)
		out = assembled
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSessionRequest records a student's request for a session.
func (s *SessionService) NewSessionRequest(ctx context.Context, actor models.User, req dto.SessionRequestNewRequest) (*dto.SessionRequest, error) {
	if err := s.valid(req, "invalid session request payload"); err != nil {
		return nil, err
	}
	if err := durationOK(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	var out dto.SessionRequest
	err := s.coord.Mutate(ctx, "session_request_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		if _, err := s.course(ctx, exec, req.CourseID); err != nil {
			return err
		}
		if err := s.courseActive(ctx, exec, req.CourseID); err != nil {
			return err
		}
		student, err := s.gate.IsStudent(ctx, exec, actor.UserID, req.CourseID)
		if err != nil {
			return err
		}
		if !student {
			return forbidden("only students of the course may request sessions")
		}
		request := &models.SessionRequest{
			CreationTime:  scope.Now(),
			CreatorUserID: actor.UserID,
			CourseID:      req.CourseID,
			Message:       req.Message,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
		}
		if err := s.stores.Sessions.CreateSessionRequest(ctx, exec, request); err != nil {
			return storage(err, "failed to create session request")
		}
		assembled, err := s.assemble.Bind(ctx, exec).SessionRequest(*request)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.SessionRequestCreated, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSessionRequestResponse resolves a pending request exactly once. A nil
// session declines it; accepting commits the requester to the session,
// reusing their current commitment when one exists.
func (s *SessionService) NewSessionRequestResponse(ctx context.Context, actor models.User, req dto.SessionRequestResponseNewRequest) (*dto.SessionRequestResponse, error) {
	if err := s.valid(req, "invalid session request response payload"); err != nil {
		return nil, err
	}
	var out dto.SessionRequestResponse
	err := s.coord.Mutate(ctx, "session_request_response_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		request, err := s.stores.Sessions.FindSessionRequest(ctx, exec, req.SessionRequestID)
		if err != nil {
			return storage(err, "failed to load session request")
		}
		if request == nil {
			return missing(appErrors.ErrSessionRequestNonexistent)
		}
		existing, err := s.stores.Sessions.FindSessionRequestResponse(ctx, exec, request.SessionRequestID)
		if err != nil {
			return storage(err, "failed to load session request response")
		}
		if existing != nil {
			return missing(appErrors.ErrSessionRequestResponseExistent)
		}
		if err := s.courseActive(ctx, exec, request.CourseID); err != nil {
			return err
		}
		instructor, err := s.gate.IsInstructor(ctx, exec, actor.UserID, request.CourseID)
		if err != nil {
			return err
		}

		response := &models.SessionRequestResponse{
			SessionRequestID: request.SessionRequestID,
			CreationTime:     scope.Now(),
			CreatorUserID:    actor.UserID,
			Message:          req.Message,
		}
		if req.SessionID == nil {
			if !instructor && actor.UserID != request.CreatorUserID {
				return forbidden("only the requester or an instructor may decline")
			}
		} else {
			if !instructor {
				return forbidden("only an instructor may accept")
			}
			commitmentID, err := s.acceptInto(ctx, scope, actor.UserID, request, *req.SessionID)
			if err != nil {
				return err
			}
			response.CommitmentID = &commitmentID
		}

		if err := s.stores.Sessions.CreateSessionRequestResponse(ctx, exec, response); err != nil {
			if isUniqueViolation(err) {
				return missing(appErrors.ErrSessionRequestResponseExistent)
			}
			return storage(err, "failed to create session request response")
		}
		assembled, err := s.assemble.Bind(ctx, exec).SessionRequestResponse(*response)
		if err != nil {
			return err
		}
		out = assembled
		scope.Emit(events.SessionRequestResponseCreated, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SessionService) acceptInto(ctx context.Context, scope *Scope, actorID int64, request *models.SessionRequest, sessionID int64) (int64, error) {
	exec := scope.Exec()
	session, err := s.session(ctx, exec, sessionID)
	if err != nil {
		return 0, err
	}
	if session.CourseID != request.CourseID {
		return 0, missing(appErrors.ErrSessionCourseMismatch)
	}
	current, err := s.stores.Sessions.CommitmentHead(ctx, exec, request.CreatorUserID, session.SessionID)
	if err != nil {
		return 0, storage(err, "failed to resolve commitment")
	}
	if current != nil {
		return current.CommitmentID, nil
	}
	created, err := s.commit(ctx, scope, actorID, session.SessionID, []int64{request.CreatorUserID}, true)
	if err != nil {
		return 0, err
	}
	return created[0].CommitmentID, nil
}

// NewCommitments appends one commitment head per listed student.
func (s *SessionService) NewCommitments(ctx context.Context, actor models.User, req dto.CommitmentNewRequest) ([]dto.Commitment, error) {
	if err := s.valid(req, "invalid commitment payload"); err != nil {
		return nil, err
	}
	var out []dto.Commitment
	err := s.coord.Mutate(ctx, "commitment_new", actor.UserID, func(ctx context.Context, scope *Scope) error {
		exec := scope.Exec()
		session, err := s.session(ctx, exec, req.SessionID)
		if err != nil {
			return err
		}
		if err := s.requireInstructor(ctx, exec, actor.UserID, session.CourseID); err != nil {
			return err
		}
		if err := s.courseActive(ctx, exec, session.CourseID); err != nil {
			return err
		}
		if err := s.requireStudents(ctx, exec, session.CourseID, req.AttendeeUserIDs); err != nil {
			return err
		}
		commitments, err := s.commit(ctx, scope, actor.UserID, session.SessionID, req.AttendeeUserIDs, req.Active)
		if err != nil {
			return err
		}
		out, err = assembleAll(commitments, s.assemble.Bind(ctx, exec).Commitment)
		if err != nil {
			return err
		}
		for _, commitment := range out {
			scope.Emit(events.CommitmentCreated, commitment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Sessions lists sessions of courses the caller currently belongs to.
func (s *SessionService) Sessions(ctx context.Context, actor models.User, filter models.SessionFilter) ([]dto.Session, error) {
	var out []dto.Session
	err := s.coord.View(ctx, "session_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Sessions.ListSessions(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list sessions")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.Session) (bool, error) { return v.isMember(row.CourseID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).Session)
		return err
	})
	return out, err
}

// SessionData lists session data versions under the same rule as Sessions.
func (s *SessionService) SessionData(ctx context.Context, actor models.User, filter models.SessionDataFilter) ([]dto.SessionData, error) {
	var out []dto.SessionData
	err := s.coord.View(ctx, "session_data_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Sessions.ListSessionData(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list session data")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.SessionData) (bool, error) { return v.isSessionMember(row.SessionID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).SessionData)
		return err
	})
	return out, err
}

// SessionRequests lists requests the caller made or may answer.
func (s *SessionService) SessionRequests(ctx context.Context, actor models.User, filter models.SessionRequestFilter) ([]dto.SessionRequest, error) {
	var out []dto.SessionRequest
	err := s.coord.View(ctx, "session_request_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Sessions.ListSessionRequests(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list session requests")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.SessionRequest) (bool, error) { return v.canSeeRequest(row.SessionRequestID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).SessionRequest)
		return err
	})
	return out, err
}

// SessionRequestResponses lists responses to requests the caller may see.
func (s *SessionService) SessionRequestResponses(ctx context.Context, actor models.User, filter models.SessionRequestResponseFilter) ([]dto.SessionRequestResponse, error) {
	var out []dto.SessionRequestResponse
	err := s.coord.View(ctx, "session_request_response_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Sessions.ListSessionRequestResponses(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list session request responses")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.SessionRequestResponse) (bool, error) { return v.canSeeRequest(row.SessionRequestID) })
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).SessionRequestResponse)
		return err
	})
	return out, err
}

// Commitments lists commitments the caller holds or whose course they teach.
func (s *SessionService) Commitments(ctx context.Context, actor models.User, filter models.CommitmentFilter) ([]dto.Commitment, error) {
	var out []dto.Commitment
	err := s.coord.View(ctx, "commitment_view", actor.UserID, func(ctx context.Context, scope *Scope) error {
		rows, err := s.stores.Sessions.ListCommitments(ctx, scope.Exec(), filter)
		if err != nil {
			return storage(err, "failed to list commitments")
		}
		v := newViewer(ctx, scope.Exec(), s.stores, actor.UserID)
		rows, err = visible(rows, func(row models.Commitment) (bool, error) {
			if row.AttendeeUserID == actor.UserID {
				return true, nil
			}
			return v.isSessionInstructor(row.SessionID)
		})
		if err != nil {
			return err
		}
		out, err = assembleAll(rows, s.assemble.Bind(ctx, scope.Exec()).Commitment)
		return err
	})
	return out, err
}
