package services

import (
	"context"
	"errors"
	"log"
	"time"

	"antlogistics/internal/adapters/persistence/repositories"
	"antlogistics/internal/config"
	"antlogistics/internal/core/domain"
	"antlogistics/internal/pkg/jwt"
	"antlogistics/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles credential verification and session issuance
type AuthService struct {
	operatorRepo repositories.OperatorRepository
	cfg          *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(operatorRepo repositories.OperatorRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		operatorRepo: operatorRepo,
		cfg:          cfg,
	}
}

// LoginResult represents the outcome of an authentication attempt. On
// failure only Success is set; the response shape never reveals whether the
// username existed.
type LoginResult struct {
	Success   bool      `json:"success"`
	Username  string    `json:"username,omitempty"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// SessionInfo represents a validated session
type SessionInfo struct {
	OperatorID string `json:"-"`
	Username   string `json:"username"`
	Role       string `json:"role"`
}

// Authenticate verifies a username/password pair and issues a session
// token. Fails closed: unknown user, inactive account and wrong password all
// produce the same unsuccessful result with a nil error; only server-side
// logs distinguish them.
func (s *AuthService) Authenticate(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	if domain.Blank(username) || plainPassword == "" {
		return &LoginResult{Success: false}, nil
	}

	normalized := domain.NormalizeUsername(username)

	operator, err := s.operatorRepo.GetByUsername(ctx, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Failed login for %s: unknown username", normalized)
			return &LoginResult{Success: false}, nil
		}
		return nil, err
	}

	if !operator.IsActive {
		log.Printf("⚠️ Failed login for %s: operator inactive", normalized)
		return &LoginResult{Success: false}, nil
	}

	if !password.Verify(plainPassword, operator.PasswordHash) {
		log.Printf("⚠️ Failed login for %s: wrong password", normalized)
		return &LoginResult{Success: false}, nil
	}

	now := time.Now().UTC()
	operator.LastLoginAt = &now
	if err := s.operatorRepo.Update(ctx, operator); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwt.GenerateSessionToken(
		operator.ID,
		operator.Username,
		operator.Role,
		uuid.NewString(),
		s.cfg.JWT.Secret,
		s.cfg.JWT.SessionMinutes,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Operator logged in: %s", operator.Username)

	return &LoginResult{
		Success:   true,
		Username:  operator.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateSession verifies a session artifact's signature and expiry.
// Returns ErrUnauthenticated for any invalid, expired or malformed token.
func (s *AuthService) ValidateSession(artifact string) (*SessionInfo, error) {
	if artifact == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := jwt.ValidateSessionToken(artifact, s.cfg.JWT.Secret)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	return &SessionInfo{
		OperatorID: claims.OperatorID,
		Username:   claims.Username,
		Role:       claims.Role,
	}, nil
}

// Logout invalidates the carried artifact. Tokens are stateless and
// short-lived, so invalidation happens by expiring the cookie at the HTTP
// boundary; this only records the event.
func (s *AuthService) Logout(username string) {
	if username != "" {
		log.Printf("✅ Operator logged out: %s", username)
	}
}
