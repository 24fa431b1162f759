package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
	"github.com/noah-isme/hours-api/pkg/response"
)

// ContextUserKey is the gin context key storing the verified caller.
const ContextUserKey = "currentUser"

// verifier resolves a bearer credential to a user.
type verifier interface {
	Verify(ctx context.Context, credential string) (*models.User, error)
}

// Authenticate rejects requests whose bearer credential the directory does
// not accept. No handler runs for a rejected request.
func Authenticate(dir verifier, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		credential, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			response.Abort(c, appErrors.Clone(appErrors.ErrAPIKeyNonexistent, "missing bearer credential"))
			return
		}

		user, err := dir.Verify(c.Request.Context(), credential)
		if err != nil {
			appErr := appErrors.FromError(err)
			logger.Debug("credential rejected", zap.String("code", appErr.Code), zap.Error(err))
			response.Abort(c, appErr)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the caller stored by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

func bearer(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	credential := strings.TrimSpace(parts[1])
	return credential, credential != ""
}
