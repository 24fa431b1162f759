package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/internal/models"
	appErrors "github.com/noah-isme/hours-api/pkg/errors"
)

// Claims are the bearer token claims issued by the identity provider. The
// subject carries the numeric user id.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTDirectory trusts HS256 tokens signed with a shared secret.
type JWTDirectory struct {
	secret []byte
	issuer string
	logger *zap.Logger
}

// NewJWTDirectory constructs a token-backed directory.
func NewJWTDirectory(secret, issuer string, logger *zap.Logger) *JWTDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JWTDirectory{secret: []byte(secret), issuer: issuer, logger: logger}
}

// Verify parses the token and returns its subject.
func (d *JWTDirectory) Verify(ctx context.Context, credential string) (*models.User, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if d.issuer != "" {
		opts = append(opts, jwt.WithIssuer(d.issuer))
	}
	token, err := jwt.ParseWithClaims(credential, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return d.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, appErrors.Wrap(err, appErrors.ErrAPIKeyNonexistent.Code, appErrors.ErrAPIKeyNonexistent.Status, "invalid api key")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrAPIKeyUnauthorized.Code, appErrors.ErrAPIKeyUnauthorized.Status, "api key rejected")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrAPIKeyUnauthorized, "invalid token claims")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		d.logger.Warn("token subject is not a user id", zap.String("subject", claims.Subject))
		return nil, appErrors.Clone(appErrors.ErrAPIKeyUnauthorized, "invalid token subject")
	}
	return &models.User{UserID: userID, Name: claims.Name, Email: claims.Email}, nil
}

// Lookup accepts any positive id. Tokens are self-contained, so there is no
// roster to consult.
func (d *JWTDirectory) Lookup(ctx context.Context, userID int64) (*models.User, error) {
	if userID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrUserNonexistent, fmt.Sprintf("user %d does not exist", userID))
	}
	return &models.User{UserID: userID}, nil
}

// IssueToken signs a token for user. Used by tests and local tooling.
func (d *JWTDirectory) IssueToken(user models.User, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = strconv.FormatInt(user.UserID, 10)
	if claims.Issuer == "" {
		claims.Issuer = d.issuer
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Name: user.Name, Email: user.Email, RegisteredClaims: claims})
	return token.SignedString(d.secret)
}
