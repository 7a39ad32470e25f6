package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/team7/classroom-informer-api/internal/models"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
)

// IdentityConfig describes how to verify tokens from the external identity
// provider.
type IdentityConfig struct {
	TokenSecret string
	Issuer      string
	Audience    []string
}

// IdentityService verifies access tokens issued by the external identity
// provider. Signup, login and token issuance all live with the provider;
// this service only checks signatures and extracts the user id.
type IdentityService struct {
	config IdentityConfig
	logger *zap.Logger
}

// NewIdentityService constructs an IdentityService.
func NewIdentityService(config IdentityConfig, logger *zap.Logger) *IdentityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdentityService{config: config, logger: logger}
}

// ValidateToken parses and verifies a bearer token, returning its claims.
func (s *IdentityService) ValidateToken(raw string) (*models.AuthClaims, error) {
	claims := &models.AuthClaims{}

	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(s.config.Issuer))
	}
	for _, aud := range s.config.Audience {
		options = append(options, jwt.WithAudience(aud))
	}

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.TokenSecret), nil
	}, options...)
	if err != nil {
		s.logger.Debug("token validation failed", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	if !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}

	// The provider issues UUID subjects; anything else is not one of ours.
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, fmt.Sprintf("invalid subject %q", claims.Subject))
	}

	return claims, nil
}
