package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
)

const (
	verifyPath = "/public/api/get_user_by_api_key_if_valid"
	lookupPath = "/public/api/get_user_by_id"
)

type remoteUser struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type remoteError struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// HTTPDirectory calls a remote auth service over JSON.
type HTTPDirectory struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPDirectory constructs a directory backed by baseURL.
func NewHTTPDirectory(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPDirectory{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Verify returns the owner of apiKey.
func (d *HTTPDirectory) Verify(ctx context.Context, credential string) (*models.User, error) {
	return d.call(ctx, verifyPath, map[string]interface{}{"apiKey": credential})
}

// Lookup returns the user with userID.
func (d *HTTPDirectory) Lookup(ctx context.Context, userID int64) (*models.User, error) {
	return d.call(ctx, lookupPath, map[string]interface{}{"userId": userID})
}

func (d *HTTPDirectory) call(ctx context.Context, path string, payload interface{}) (*models.User, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode identity request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build identity request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Error("identity service unreachable", zap.String("path", path), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrAuthOther.Code, appErrors.ErrAuthOther.Status, "identity service unreachable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrAuthOther.Code, appErrors.ErrAuthOther.Status, "failed to read identity response")
	}

	if resp.StatusCode != http.StatusOK {
		var remote remoteError
		if jsonErr := json.Unmarshal(raw, &remote); jsonErr != nil || remote.Category == "" {
			remote.Category = categoryForStatus(resp.StatusCode)
		}
		return nil, d.report(path, remote)
	}

	var user remoteUser
	if err := json.Unmarshal(raw, &user); err != nil || user.UserID <= 0 {
		d.logger.Error("identity service returned an unreadable user", zap.String("path", path))
		return nil, appErrors.Clone(appErrors.ErrAuthOther, "identity service returned an unreadable user")
	}
	return &models.User{UserID: user.UserID, Name: user.Name, Email: user.Email}, nil
}

// report converts an upstream failure. Caller-facing categories pass through
// quietly, service failures are logged.
func (d *HTTPDirectory) report(path string, remote remoteError) error {
	mapped := errorFor(remote.Category)
	switch mapped.Code {
	case appErrors.ErrAPIKeyNonexistent.Code, appErrors.ErrAPIKeyUnauthorized.Code, appErrors.ErrUserNonexistent.Code:
	default:
		d.logger.Error("identity service failure",
			zap.String("path", path),
			zap.String("category", string(remote.Category)),
			zap.String("message", remote.Message),
		)
	}
	return appErrors.Wrap(fmt.Errorf("auth service: %s", remote.Category), mapped.Code, mapped.Status, mapped.Message)
}

func categoryForStatus(status int) Category {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return CategoryUnauthorized
	case http.StatusNotFound:
		return CategoryNonexistent
	case http.StatusBadRequest:
		return CategoryBadRequest
	case http.StatusMethodNotAllowed:
		return CategoryMethodNotAllowed
	case http.StatusInternalServerError:
		return CategoryInternal
	default:
		return Category(fmt.Sprintf("HTTP_%d", status))
	}
}
