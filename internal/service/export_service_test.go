package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	filestore "github.com/noah-isme/hours-api/pkg/storage"
)

type failingSigner struct {
	err error
}

func (f failingSigner) Sign(name string) (string, time.Time, error) {
	return name, time.Now().Add(time.Hour), nil
}

func (f failingSigner) Verify(string) (string, error) {
	return "", f.err
}

func newExportHarness(t *testing.T) (*harness, *ExportService) {
	t.Helper()
	h := newHarness(t)
	files, err := filestore.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewExportService(h.deps, files, filestore.NewSigner("secret", time.Hour), ExportConfig{})
	return h, svc
}

func TestSessionAttendanceSheet(t *testing.T) {
	h, svc := newExportHarness(t)
	ctx := context.Background()
	schoolID, locationID, courseID := h.classroom()
	elsewhere := h.newLocation(1, schoolID)
	h.newCourse(1, schoolID, elsewhere)
	h.enroll(1, courseID, 3, models.CourseMembershipKindStudent)

	start := h.millis()
	minute := int64(60_000)
	sessionID := h.newSession(1, courseID, start, start+60*minute, 2, 3)

	stay := func(location, attendee, fst, snd int64) int64 {
		out, err := h.attendance.NewStay(ctx, user(1), dto.StayNewRequest{LocationID: location, AttendeeUserID: attendee, FstTime: ptr(fst), SndTime: ptr(snd)})
		require.NoError(t, err)
		return out.Stay.StayID
	}
	stay(locationID, 2, start-10*minute, start+30*minute)
	stay(elsewhere, 3, start, start+60*minute)
	archived := stay(locationID, 3, start, start+60*minute)
	_, err := h.attendance.NewStayData(ctx, user(1), dto.StayDataNewRequest{StayID: archived, FstTime: ptr(start), SndTime: ptr(start + 60*minute), Active: false})
	require.NoError(t, err)

	out, err := svc.SessionAttendance(ctx, user(1), dto.AttendanceExportRequest{SessionID: sessionID, Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, []dto.AttendanceRow{
		{AttendeeUserID: 2, Committed: true, Present: true, StayMinutes: 30},
		{AttendeeUserID: 3, Committed: true, Present: false, StayMinutes: 0},
	}, out.Rows)
	require.True(t, strings.HasPrefix(out.DownloadURL, "/api/v1/export/"))
	assert.Greater(t, out.ExpiresAt, time.Now().UnixMilli())

	file, name, err := svc.Download(strings.TrimPrefix(out.DownloadURL, "/api/v1/export/"))
	require.NoError(t, err)
	defer file.Close()
	assert.True(t, strings.HasSuffix(name, ".csv"))
	body, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "Attendee,Committed,Present,Minutes\n2,yes,yes,30\n3,yes,no,0\n", string(body))
}

func TestSessionAttendanceRejections(t *testing.T) {
	h, svc := newExportHarness(t)
	ctx := context.Background()
	_, _, courseID := h.classroom()
	sessionID := h.newSession(1, courseID, 100, 200, 2)

	_, err := svc.SessionAttendance(ctx, user(2), dto.AttendanceExportRequest{SessionID: sessionID, Format: "pdf"})
	requireCode(t, err, appErrors.ErrForbidden)

	_, err = svc.SessionAttendance(ctx, user(1), dto.AttendanceExportRequest{SessionID: sessionID, Format: "xlsx"})
	requireCode(t, err, appErrors.ErrValidation)

	_, err = svc.SessionAttendance(ctx, user(1), dto.AttendanceExportRequest{SessionID: 999, Format: "csv"})
	requireCode(t, err, appErrors.ErrSessionNonexistent)
}

func TestSessionAttendancePDF(t *testing.T) {
	h, svc := newExportHarness(t)
	_, _, courseID := h.classroom()
	sessionID := h.newSession(1, courseID, 100, 200, 2)

	out, err := svc.SessionAttendance(context.Background(), user(1), dto.AttendanceExportRequest{SessionID: sessionID, Format: "pdf"})
	require.NoError(t, err)
	file, name, err := svc.Download(strings.TrimPrefix(out.DownloadURL, "/api/v1/export/"))
	require.NoError(t, err)
	defer file.Close()
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	head := make([]byte, 4)
	_, err = io.ReadFull(file, head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(head))
}

func TestDownloadLinkFailures(t *testing.T) {
	h := newHarness(t)
	files, err := filestore.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	expired := NewExportService(h.deps, files, failingSigner{err: filestore.ErrTokenExpired}, ExportConfig{})
	_, _, err = expired.Download("anything")
	requireCode(t, err, appErrors.ErrNotFound)

	invalid := NewExportService(h.deps, files, failingSigner{err: filestore.ErrTokenInvalid}, ExportConfig{})
	_, _, err = invalid.Download("anything")
	requireCode(t, err, appErrors.ErrUnauthorized)

	signer := filestore.NewSigner("secret", time.Hour)
	token, _, err := signer.Sign("attendance/missing.csv")
	require.NoError(t, err)
	svc := NewExportService(h.deps, files, signer, ExportConfig{})
	_, _, err = svc.Download(token)
	requireCode(t, err, appErrors.ErrNotFound)
}
