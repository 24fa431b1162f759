package service

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/events"
)

func (h *harness) request(student, courseID int64) int64 {
	h.t.Helper()
	out, err := h.sessions.NewSessionRequest(context.Background(), user(student), dto.SessionRequestNewRequest{
		CourseID:  courseID,
		Message:   "need help with factoring",
		StartTime: h.millis(),
		EndTime:   h.millis() + 3_600_000,
	})
	require.NoError(h.t, err)
	return out.SessionRequestID
}

func (h *harness) respond(actor, requestID int64, sessionID *int64) (*dto.SessionRequestResponse, error) {
	return h.sessions.NewSessionRequestResponse(context.Background(), user(actor), dto.SessionRequestResponseNewRequest{
		SessionRequestID: requestID,
		Message:          "see you then",
		SessionID:        sessionID,
	})
}

func TestNewSessionCommitsAttendees(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()

	out, err := h.sessions.NewSession(context.Background(), user(1), dto.SessionNewRequest{
		CourseID:        courseID,
		Name:            "Review",
		StartTime:       100,
		EndTime:         200,
		AttendeeUserIDs: []int64{2},
	})
	require.NoError(t, err)
	assert.Equal(t, courseID, out.Session.Course.CourseID)
	assert.True(t, out.Active)

	head, err := h.mem.CommitmentHead(context.Background(), nil, 2, out.Session.SessionID)
	require.NoError(t, err)
	require.NotNil(t, head)
	assert.True(t, head.Active)
	assert.Contains(t, h.dispatched.names(), events.SessionCreated)
}

func TestNewSessionRejections(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, _, courseID := h.classroom()

	cases := []struct {
		name  string
		actor int64
		req   dto.SessionNewRequest
		want  *appErrors.Error
	}{
		{name: "negative duration", actor: 1, req: dto.SessionNewRequest{CourseID: courseID, Name: "x", StartTime: 5, EndTime: 1}, want: appErrors.ErrNegativeDuration},
		{name: "not instructor", actor: 2, req: dto.SessionNewRequest{CourseID: courseID, Name: "x"}, want: appErrors.ErrForbidden},
		{name: "unknown course", actor: 1, req: dto.SessionNewRequest{CourseID: 999, Name: "x"}, want: appErrors.ErrCourseNonexistent},
		{name: "attendee not a student", actor: 1, req: dto.SessionNewRequest{CourseID: courseID, Name: "x", AttendeeUserIDs: []int64{2, 8}}, want: appErrors.ErrUserNonexistent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.sessions.NewSession(ctx, user(tc.actor), tc.req)
			requireCode(t, err, tc.want)
		})
	}
	assert.Empty(t, h.mem.sessions)
	assert.Empty(t, h.mem.commitments)
}

func TestNewSessionDataVersionsSchedule(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	sessionID := h.newSession(1, courseID, 100, 200)

	_, err := h.sessions.NewSessionData(context.Background(), user(2), dto.SessionDataNewRequest{SessionID: sessionID, Name: "Moved", StartTime: 300, EndTime: 400})
	requireCode(t, err, appErrors.ErrForbidden)

	out, err := h.sessions.NewSessionData(context.Background(), user(1), dto.SessionDataNewRequest{SessionID: sessionID, Name: "Moved", StartTime: 300, EndTime: 400, Active: true})
	require.NoError(t, err)
	assert.Equal(t, int64(300), out.StartTime)

	head, err := h.mem.SessionDataHead(context.Background(), nil, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "Moved", head.Name)
	assert.Len(t, h.mem.sessionData, 2)
}

func TestSessionRequestOnlyFromStudents(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()

	_, err := h.sessions.NewSessionRequest(context.Background(), user(1), dto.SessionRequestNewRequest{CourseID: courseID})
	requireCode(t, err, appErrors.ErrForbidden)

	requestID := h.request(2, courseID)
	assert.NotZero(t, requestID)
	assert.Contains(t, h.dispatched.names(), events.SessionRequestCreated)
}

func TestSessionRequestResolvesOnce(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	requestID := h.request(2, courseID)

	declined, err := h.respond(1, requestID, nil)
	require.NoError(t, err)
	assert.Nil(t, declined.Commitment)
	assert.Equal(t, requestID, declined.SessionRequest.SessionRequestID)

	sessionID := h.newSession(1, courseID, 100, 200)
	_, err = h.respond(1, requestID, &sessionID)
	requireCode(t, err, appErrors.ErrSessionRequestResponseExistent)
	_, err = h.respond(2, requestID, nil)
	requireCode(t, err, appErrors.ErrSessionRequestResponseExistent)
	assert.Len(t, h.mem.responses, 1)
}

func TestSessionRequestDeclineRules(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	h.enroll(1, courseID, 3, models.CourseMembershipKindStudent)
	requestID := h.request(2, courseID)

	_, err := h.respond(3, requestID, nil)
	requireCode(t, err, appErrors.ErrForbidden)

	_, err = h.respond(2, requestID, nil)
	require.NoError(t, err, "the requester may withdraw")
}

func TestSessionRequestAcceptCommits(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	requestID := h.request(2, courseID)
	sessionID := h.newSession(1, courseID, 100, 200)

	_, err := h.respond(2, requestID, &sessionID)
	requireCode(t, err, appErrors.ErrForbidden)

	accepted, err := h.respond(1, requestID, &sessionID)
	require.NoError(t, err)
	require.NotNil(t, accepted.Commitment)
	assert.Equal(t, int64(2), accepted.Commitment.AttendeeUserID)
	assert.Equal(t, sessionID, accepted.Commitment.Session.SessionID)
	assert.True(t, accepted.Commitment.Active)
	assert.Contains(t, h.dispatched.names(), events.SessionRequestResponseCreated)
}

func TestSessionRequestAcceptReusesCommitment(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	sessionID := h.newSession(1, courseID, 100, 200, 2)
	existing, err := h.mem.CommitmentHead(context.Background(), nil, 2, sessionID)
	require.NoError(t, err)
	requestID := h.request(2, courseID)

	accepted, err := h.respond(1, requestID, &sessionID)
	require.NoError(t, err)
	require.NotNil(t, accepted.Commitment)
	assert.Equal(t, existing.CommitmentID, accepted.Commitment.CommitmentID)
	assert.Len(t, h.mem.commitments, 1)
}

func TestSessionRequestAcceptIntoOtherCourse(t *testing.T) {
	h := newHarness(t)
	schoolID, locationID, courseID := h.classroom()
	otherCourse := h.newCourse(1, schoolID, locationID)
	otherSession := h.newSession(1, otherCourse, 100, 200)
	requestID := h.request(2, courseID)

	_, err := h.respond(1, requestID, &otherSession)
	requireCode(t, err, appErrors.ErrSessionCourseMismatch)

	missingSession := int64(999)
	_, err = h.respond(1, requestID, &missingSession)
	requireCode(t, err, appErrors.ErrSessionNonexistent)
	assert.Empty(t, h.mem.responses)
}

func TestSessionRequestResponseUniqueViolation(t *testing.T) {
	h := newHarness(t)
	_, _, courseID := h.classroom()
	requestID := h.request(2, courseID)
	h.mem.failOn["CreateSessionRequestResponse"] = &pq.Error{Code: pqUniqueViolation}
	before := len(h.dispatched.names())

	_, err := h.respond(1, requestID, nil)
	requireCode(t, err, appErrors.ErrSessionRequestResponseExistent)
	assert.Len(t, h.dispatched.names(), before)
}

func TestNewCommitmentsAppendHeads(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, _, courseID := h.classroom()
	h.enroll(1, courseID, 3, models.CourseMembershipKindStudent)
	sessionID := h.newSession(1, courseID, 100, 200, 2)

	out, err := h.sessions.NewCommitments(ctx, user(1), dto.CommitmentNewRequest{SessionID: sessionID, AttendeeUserIDs: []int64{2, 3}, Active: false})
	require.NoError(t, err)
	require.Len(t, out, 2)

	head, err := h.mem.CommitmentHead(ctx, nil, 2, sessionID)
	require.NoError(t, err)
	assert.False(t, head.Active)
	assert.Len(t, h.mem.commitments, 3)

	created := 0
	for _, name := range h.dispatched.names() {
		if name == events.CommitmentCreated {
			created++
		}
	}
	assert.Equal(t, 2, created)

	_, err = h.sessions.NewCommitments(ctx, user(2), dto.CommitmentNewRequest{SessionID: sessionID, AttendeeUserIDs: []int64{2}})
	requireCode(t, err, appErrors.ErrForbidden)
}

func TestSessionViews(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, _, courseID := h.classroom()
	h.enroll(1, courseID, 3, models.CourseMembershipKindStudent)
	sessionID := h.newSession(1, courseID, 100, 200, 2, 3)
	requestID := h.request(2, courseID)
	_, err := h.respond(1, requestID, nil)
	require.NoError(t, err)

	sessions, err := h.sessions.Sessions(ctx, user(3), models.SessionFilter{})
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
	sessions, err = h.sessions.Sessions(ctx, user(9), models.SessionFilter{})
	require.NoError(t, err)
	assert.Empty(t, sessions)

	data, err := h.sessions.SessionData(ctx, user(2), models.SessionDataFilter{SessionID: []int64{sessionID}})
	require.NoError(t, err)
	assert.Len(t, data, 1)

	for viewer, want := range map[int64]int{1: 1, 2: 1, 3: 0} {
		requests, err := h.sessions.SessionRequests(ctx, user(viewer), models.SessionRequestFilter{})
		require.NoError(t, err)
		assert.Len(t, requests, want, "viewer %d", viewer)

		responses, err := h.sessions.SessionRequestResponses(ctx, user(viewer), models.SessionRequestResponseFilter{})
		require.NoError(t, err)
		assert.Len(t, responses, want, "viewer %d", viewer)
	}

	for viewer, want := range map[int64]int{1: 2, 2: 1, 3: 1, 9: 0} {
		commitments, err := h.sessions.Commitments(ctx, user(viewer), models.CommitmentFilter{})
		require.NoError(t, err)
		assert.Len(t, commitments, want, "viewer %d", viewer)
	}
}
