package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type SignUpInput struct {
	Email        string
	Password     string
	Name         string
	ProvinceName string
	DistrictName string
}

// Session is returned on sign-in and refresh.
type Session struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	SignOut(ctx context.Context, userID, refreshToken string) error
	VerifyToken(token string) (Identity, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	PublicProfile(ctx context.Context, userID string) (models.Profile, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *TokenIssuer
	logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, tokens *TokenIssuer, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *authService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	name := strings.TrimSpace(in.Name)
	if len(name) < 3 {
		return nil, fmt.Errorf("%w: name must be at least 3 characters", ErrValidation)
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Address:      in.ProvinceName + "_" + in.DistrictName,
		IsActive:     true,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		s.logger.WithError(err).Error("Failed to create user")
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, refresh, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.users.AddRefreshToken(ctx, user.ID, refresh); err != nil {
		s.logger.WithError(err).Error("Failed to store refresh token")
		return nil, err
	}

	return &Session{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh rotates a refresh token. Presenting a token that is not on record
// revokes every refresh token of the user.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	identity, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	access, refresh, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.users.RotateRefreshToken(ctx, user.ID, refreshToken, refresh); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.WithField("user_id", user.ID).Warn("Unknown refresh token presented, revoking sessions")
			if clearErr := s.users.ClearRefreshTokens(ctx, user.ID); clearErr != nil {
				s.logger.WithError(clearErr).Error("Failed to revoke refresh tokens")
			}
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	return &Session{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) SignOut(ctx context.Context, userID, refreshToken string) error {
	if err := s.users.RemoveRefreshToken(ctx, userID, refreshToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	return nil
}

func (s *authService) VerifyToken(token string) (Identity, error) {
	return s.tokens.Verify(token)
}

func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	identity, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) PublicProfile(ctx context.Context, userID string) (models.Profile, error) {
	if err := parseUserID(userID); err != nil {
		return models.Profile{}, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Profile{}, ErrUserNotFound
		}
		return models.Profile{}, err
	}

	return user.Profile(), nil
}

func (s *authService) issuePair(userID string) (string, string, error) {
	access, err := s.tokens.IssueAccess(userID)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.IssueRefresh(userID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
