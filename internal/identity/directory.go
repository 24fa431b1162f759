// Package identity verifies caller credentials against an external user
// directory.
package identity

import (
	"context"

	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
)

// Directory resolves credentials and user ids to verified users.
type Directory interface {
	// Verify returns the user owning credential.
	Verify(ctx context.Context, credential string) (*models.User, error)
	// Lookup returns the user with userID or ErrUserNonexistent.
	Lookup(ctx context.Context, userID int64) (*models.User, error)
}

// Category is an upstream failure category reported by a directory.
type Category string

const (
	CategoryNonexistent      Category = "API_KEY_NONEXISTENT"
	CategoryUnauthorized     Category = "API_KEY_UNAUTHORIZED"
	CategoryUserMissing      Category = "USER_NONEXISTENT"
	CategoryInternal         Category = "INTERNAL_SERVER_ERROR"
	CategoryBadRequest       Category = "BAD_REQUEST"
	CategoryMethodNotAllowed Category = "METHOD_NOT_ALLOWED"
)

// errorFor maps an upstream category to the local taxonomy.
func errorFor(category Category) *appErrors.Error {
	switch category {
	case CategoryNonexistent:
		return appErrors.ErrAPIKeyNonexistent
	case CategoryUnauthorized:
		return appErrors.ErrAPIKeyUnauthorized
	case CategoryUserMissing:
		return appErrors.ErrUserNonexistent
	case CategoryInternal:
		return appErrors.ErrAuthInternalServerError
	case CategoryBadRequest, CategoryMethodNotAllowed:
		return appErrors.ErrAuthBadRequest
	default:
		return appErrors.ErrAuthOther
	}
}
