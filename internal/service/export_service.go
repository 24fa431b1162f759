package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/export"
	filestore "github.com/noah-isme/hours-api/pkg/storage"
)

type fileStore interface {
	Save(name string, data []byte) (string, error)
	Open(name string) (*os.File, error)
}

type urlSigner interface {
	Sign(name string) (string, time.Time, error)
	Verify(token string) (string, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
}

// ExportService renders session attendance sheets and serves them through
// signed links.
type ExportService struct {
	workflow
	files  fileStore
	signer urlSigner
	cfg    ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(deps Deps, files fileStore, signer urlSigner, cfg ExportConfig) *ExportService {
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api/v1"
	}
	return &ExportService{workflow: newWorkflow(deps), files: files, signer: signer, cfg: cfg}
}

// sheetSource is what a session sheet is computed from.
type sheetSource struct {
	name        string
	start, end  int64
	locationID  int64
	commitments []models.Commitment
}

// SessionAttendance renders the attendance sheet of a session taught by the
// caller and returns a signed download link.
func (s *ExportService) SessionAttendance(ctx context.Context, actor models.User, req dto.AttendanceExportRequest) (*dto.AttendanceExport, error) {
	if err := s.valid(req, "invalid export payload"); err != nil {
		return nil, err
	}
	renderer, err := export.ForFormat(req.Format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unsupported export format")
	}

	var rows []dto.AttendanceRow
	var title string
	err = s.coord.View(ctx, "attendance_export", actor.UserID, func(ctx context.Context, scope *Scope) error {
		src, err := s.source(ctx, scope.Exec(), actor.UserID, req.SessionID)
		if err != nil {
			return err
		}
		title = fmt.Sprintf("Attendance %s", src.name)
		rows, err = s.attendance(ctx, scope.Exec(), src)
		return err
	})
	if err != nil {
		return nil, err
	}

	payload, err := renderer.Render(attendanceSheet(title, rows))
	if err != nil {
		return nil, storage(err, "failed to render attendance sheet")
	}
	name := fmt.Sprintf("attendance/session_%d_%s.%s", req.SessionID, uuid.NewString(), renderer.Extension())
	stored, err := s.files.Save(name, payload)
	if err != nil {
		return nil, storage(err, "failed to store attendance sheet")
	}
	token, expiresAt, err := s.signer.Sign(stored)
	if err != nil {
		return nil, storage(err, "failed to sign download link")
	}
	s.logger.Info("attendance sheet exported",
		zap.Int64("session_id", req.SessionID),
		zap.String("format", req.Format),
		zap.Int("rows", len(rows)))

	return &dto.AttendanceExport{
		SessionID:   req.SessionID,
		Format:      req.Format,
		Rows:        rows,
		DownloadURL: fmt.Sprintf("%s/export/%s", strings.TrimRight(s.cfg.APIPrefix, "/"), token),
		ExpiresAt:   expiresAt.UnixMilli(),
	}, nil
}

func (s *ExportService) source(ctx context.Context, exec sqlx.ExtContext, actorID, sessionID int64) (*sheetSource, error) {
	session, err := s.session(ctx, exec, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.requireInstructor(ctx, exec, actorID, session.CourseID); err != nil {
		return nil, err
	}
	sessionData, err := s.stores.Sessions.SessionDataHead(ctx, exec, session.SessionID)
	if err != nil {
		return nil, storage(err, "failed to resolve session data")
	}
	if sessionData == nil {
		return nil, missing(appErrors.ErrSessionNonexistent)
	}
	courseData, err := s.stores.Courses.CourseDataHead(ctx, exec, session.CourseID)
	if err != nil {
		return nil, storage(err, "failed to resolve course data")
	}
	if courseData == nil {
		return nil, missing(appErrors.ErrCourseNonexistent)
	}

	filter := models.CommitmentFilter{SessionID: []int64{session.SessionID}}
	filter.OnlyRecent = true
	commitments, err := s.stores.Sessions.ListCommitments(ctx, exec, filter)
	if err != nil {
		return nil, storage(err, "failed to list commitments")
	}
	return &sheetSource{
		name:        sessionData.Name,
		start:       sessionData.StartTime,
		end:         sessionData.EndTime,
		locationID:  courseData.LocationID,
		commitments: commitments,
	}, nil
}

func (s *ExportService) attendance(ctx context.Context, exec sqlx.ExtContext, src *sheetSource) ([]dto.AttendanceRow, error) {
	rows := make([]dto.AttendanceRow, 0, len(src.commitments))
	for _, commitment := range src.commitments {
		minutes, present, err := s.presence(ctx, exec, commitment.AttendeeUserID, src)
		if err != nil {
			return nil, err
		}
		rows = append(rows, dto.AttendanceRow{
			AttendeeUserID: commitment.AttendeeUserID,
			Committed:      commitment.Active,
			Present:        present,
			StayMinutes:    minutes,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AttendeeUserID < rows[j].AttendeeUserID })
	return rows, nil
}

// presence sums the overlap between the session window and the attendee's
// active stays at the course location.
func (s *ExportService) presence(ctx context.Context, exec sqlx.ExtContext, attendee int64, src *sheetSource) (int64, bool, error) {
	stays, err := s.stores.Attendance.ListStays(ctx, exec, models.StayFilter{
		AttendeeUserID: []int64{attendee},
		LocationID:     []int64{src.locationID},
	})
	if err != nil {
		return 0, false, storage(err, "failed to list stays")
	}
	var overlap int64
	present := false
	for _, stay := range stays {
		data, err := s.stores.Attendance.StayDataHead(ctx, exec, stay.StayID)
		if err != nil {
			return 0, false, storage(err, "failed to resolve stay data")
		}
		if data == nil || !data.Active {
			continue
		}
		fst, err := s.endpointTime(ctx, exec, data.FstEncounterID, data.FstTime)
		if err != nil {
			return 0, false, err
		}
		snd, err := s.endpointTime(ctx, exec, data.SndEncounterID, data.SndTime)
		if err != nil {
			return 0, false, err
		}
		if fst > src.end || snd < src.start {
			continue
		}
		present = true
		overlap += min(snd, src.end) - max(fst, src.start)
	}
	return overlap / int64(time.Minute/time.Millisecond), present, nil
}

func (s *ExportService) endpointTime(ctx context.Context, exec sqlx.ExtContext, encounterID, at *int64) (int64, error) {
	if encounterID == nil {
		if at == nil {
			return 0, nil
		}
		return *at, nil
	}
	encounter, err := s.stores.Attendance.FindEncounter(ctx, exec, *encounterID)
	if err != nil {
		return 0, storage(err, "failed to load encounter")
	}
	if encounter == nil {
		return 0, missing(appErrors.ErrEncounterNonexistent)
	}
	return encounter.CreationTime, nil
}

func attendanceSheet(title string, rows []dto.AttendanceRow) export.Sheet {
	sheet := export.Sheet{
		Title:   title,
		Headers: []string{"Attendee", "Committed", "Present", "Minutes"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		sheet.Rows = append(sheet.Rows, []string{
			strconv.FormatInt(row.AttendeeUserID, 10),
			yesNo(row.Committed),
			yesNo(row.Present),
			strconv.FormatInt(row.StayMinutes, 10),
		})
	}
	return sheet
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// Download resolves a signed link to the stored file.
func (s *ExportService) Download(token string) (*os.File, string, error) {
	name, err := s.signer.Verify(token)
	switch {
	case errors.Is(err, filestore.ErrTokenExpired):
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "download link expired")
	case err != nil:
		return nil, "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid download link")
	}
	file, err := s.files.Open(name)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "export file not found")
	}
	return file, name, nil
}
