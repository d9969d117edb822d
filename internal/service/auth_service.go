package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
	appErrors "github.com/vinnynacc/teammate-directory-api/pkg/errors"
)

const sessionSubject = "admin"

// AuthConfig defines the shared-secret guard configuration. Secret gates
// every mutating operation; SecretHash, when set, is a bcrypt hash checked
// instead of the plain secret during password login.
type AuthConfig struct {
	Secret     string
	SecretHash string
	SessionTTL time.Duration
}

// AuthService is the access guard: it verifies the presented credential
// against the configured secret and issues short-lived session tokens. The
// raw secret stays valid as a directly presented credential, so login is a
// convenience, not a requirement.
type AuthService struct {
	config AuthConfig
	logger *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(config AuthConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.SessionTTL <= 0 {
		config.SessionTTL = 12 * time.Hour
	}
	return &AuthService{config: config, logger: logger}
}

// Login authenticates with either a password or a previously issued token
// and returns a fresh session token.
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	authenticated := false
	switch {
	case req.Token != "":
		authenticated = s.Authorize(req.Token)
	case req.Password != "":
		authenticated = s.verifyPassword(req.Password)
	}
	if !authenticated {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Invalid credentials")
	}

	token, err := s.issueSessionToken()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue session token")
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.config.SessionTTL.Seconds()),
	}, nil
}

// Authorize reports whether the presented credential is the admin secret
// itself or a valid unexpired session token.
func (s *AuthService) Authorize(presented string) bool {
	if presented == "" {
		return false
	}
	if s.matchesSecret(presented) {
		return true
	}
	return s.validateSessionToken(presented)
}

func (s *AuthService) verifyPassword(password string) bool {
	if s.config.SecretHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.config.SecretHash), []byte(password)) == nil
	}
	return s.matchesSecret(password)
}

func (s *AuthService) matchesSecret(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.config.Secret)) == 1
}

func (s *AuthService) issueSessionToken() (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionSubject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

func (s *AuthService) validateSessionToken(tokenString string) bool {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return false
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	return ok && token.Valid && claims.Subject == sessionSubject
}
