package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/utils"
)

// AuthService signs admins in with email and password and keeps their
// sessions in Redis.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	tokens   *utils.TokenManager
	now      func() time.Time
	log      logrus.FieldLogger
}

func NewAuthService(users UserStore, sessions SessionStore, tokens *utils.TokenManager, log logrus.FieldLogger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		now:      time.Now,
		log:      log,
	}
}

// SignIn checks the credentials and opens a new session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, *utils.TokenPair, error) {
	probe := &models.User{Email: email}
	probe.Prepare()

	user, err := s.users.FindUserByEmail(ctx, probe.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.open(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	at := s.now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, at); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to record last login")
	} else {
		user.LastLoginAt = &at
	}
	return user, pair, nil
}

// Session validates a refresh token against its live session and rotates
// the token pair.
func (s *AuthService) Session(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrSessionExpired
	}

	session, err := s.sessions.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionExpired
	}

	user, err := s.users.FindUserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionExpired
	}

	if err := s.sessions.DeleteSession(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}
	return s.open(ctx, user.ID)
}

// Authenticate verifies an access token and rejects signed-out sessions.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*utils.Claims, error) {
	claims, err := s.tokens.VerifyAccess(accessToken)
	if err != nil {
		return nil, err
	}
	revoked, err := s.sessions.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token: %w", err)
	}
	if revoked {
		return nil, ErrSessionExpired
	}
	return claims, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionExpired
	}
	return user, nil
}

// SignOut ends the session and blacklists its access token until it expires.
func (s *AuthService) SignOut(ctx context.Context, jti string) error {
	if jti == "" {
		return ErrSessionExpired
	}
	if err := s.sessions.DeleteSession(ctx, jti); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if err := s.sessions.Blacklist(ctx, jti, utils.AccessTokenDuration); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *AuthService) open(ctx context.Context, userID uuid.UUID) (*utils.TokenPair, error) {
	pair, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, err
	}
	err = s.sessions.StoreSession(ctx, &models.Session{
		ID:        pair.SessionID,
		UserID:    userID,
		ExpiresAt: pair.RefreshExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return pair, nil
}

// IsSessionError reports whether err means the caller must sign in again.
func IsSessionError(err error) bool {
	return errors.Is(err, ErrSessionExpired) || errors.Is(err, utils.ErrTokenInvalid)
}
