package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/hours-api/internal/middleware"
	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/response"
)

var filterValidator = validator.New()

// windowed is implemented by every view filter through models.CommonFilter.
type windowed interface {
	Window() (limit, offset int)
}

func currentUser(c *gin.Context) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return models.User{}, false
	}
	return *user, true
}

func invalidPayload(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload")
}

// mutate binds a required JSON payload and runs one write operation.
func mutate[Req, Resp any](c *gin.Context, op func(context.Context, models.User, Req) (Resp, error)) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	out, err := op(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, out)
}

// view binds an optional JSON filter. An empty body selects everything the
// caller may see.
func view[F windowed, Resp any](c *gin.Context, op func(context.Context, models.User, F) ([]Resp, error)) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var filter F
	if err := c.ShouldBindJSON(&filter); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, invalidPayload(err))
		return
	}
	if err := filterValidator.Struct(filter); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	rows, err := op(c.Request.Context(), actor, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	if rows == nil {
		rows = []Resp{}
	}
	limit, offset := filter.Window()
	response.JSON(c, http.StatusOK, rows, &models.Pagination{Limit: limit, Offset: offset, Count: len(rows)})
}
