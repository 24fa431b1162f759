package handler

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hours-api/internal/dto"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/export"
	"github.com/noah-isme/hours-api/pkg/response"
)

type exportService interface {
	SessionAttendance(ctx context.Context, actor models.User, req dto.AttendanceExportRequest) (*dto.AttendanceExport, error)
	Download(token string) (*os.File, string, error)
}

// ExportHandler renders attendance sheets and serves signed downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc exportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// SessionAttendance godoc
// @Summary Export session attendance
// @Description Renders the sheet and returns a signed download link.
// @Tags Export
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AttendanceExportRequest true "Export payload"
// @Success 200 {object} response.Envelope{data=dto.AttendanceExport}
// @Router /attendance_export/new [post]
func (h *ExportHandler) SessionAttendance(c *gin.Context) { mutate(c, h.service.SessionAttendance) }

// Download godoc
// @Summary Download exported file
// @Tags Export
// @Produce octet-stream
// @Param token path string true "Signed token"
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /export/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	file, name, err := h.service.Download(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "export file not found"))
		return
	}
	contentType := "application/octet-stream"
	if renderer, err := export.ForFormat(strings.TrimPrefix(filepath.Ext(name), ".")); err == nil {
		contentType = renderer.ContentType()
	}
	c.DataFromReader(http.StatusOK, info.Size(), contentType, file, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filepath.Base(name)),
	})
}

// Register mounts the authenticated export route on rg.
func (h *ExportHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/attendance_export/new", h.SessionAttendance)
}

// RegisterDownload mounts the signed download route. The token is the
// credential so no authentication is required.
func (h *ExportHandler) RegisterDownload(rg *gin.RouterGroup) {
	rg.GET("/export/:token", h.Download)
}
