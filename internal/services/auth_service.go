// internal/services/auth_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shopease/shopease-backend/internal/blobstore"
	"github.com/shopease/shopease-backend/internal/config"
	"github.com/shopease/shopease-backend/internal/models"
	"github.com/shopease/shopease-backend/internal/utils"
)

// AuthService is the identity boundary: an in-process user registry behind
// JWT tokens. The admin flag is computed purely from the configured email
// allow-list; nothing else in the system decides who is an admin.
type AuthService struct {
	mu    sync.RWMutex
	users map[string]*models.User // keyed by lowercased email
	store blobstore.Store
	cfg   *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name         string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	ProfileImage string `json:"profile_image,omitempty" validate:"omitempty,url"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // in seconds
}

func NewAuthService(store blobstore.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		users: make(map[string]*models.User),
		store: store,
		cfg:   cfg,
	}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(req.Email)

	s.mu.Lock()
	if _, exists := s.users[email]; exists {
		s.mu.Unlock()
		return nil, errors.New("user with this email already exists")
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Name:      req.Name,
		IsAdmin:   s.cfg.Admin.IsAdmin(req.Email),
		CreatedAt: time.Now(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	s.users[email] = user
	s.mu.Unlock()

	s.cacheSession(ctx, user)

	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	user, exists := s.users[strings.ToLower(req.Email)]
	if !exists {
		s.mu.Unlock()
		return nil, errors.New("invalid email or password")
	}

	if err := user.CheckPassword(req.Password); err != nil {
		s.mu.Unlock()
		return nil, errors.New("invalid email or password")
	}

	now := time.Now()
	user.LastLoginAt = &now
	s.mu.Unlock()

	s.cacheSession(ctx, user)

	return s.issueTokens(user)
}

// Logout removes the cached session blob. Token invalidation is the
// client's job; the boundary only clears its side of the session.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	if err := s.store.Delete(ctx, sessionKey(userID)); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to remove cached session")
	}
}

func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	userID, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *AuthService) GetUserByID(userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == userID {
			u := *user
			return &u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	var user *models.User
	for _, u := range s.users {
		if u.ID == userID {
			user = u
			break
		}
	}
	if user == nil {
		s.mu.Unlock()
		return nil, errors.New("user not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}
	updated := *user
	s.mu.Unlock()

	s.cacheSession(ctx, &updated)

	return &updated, nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name, user.IsAdmin, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	u := *user
	return &AuthResponse{
		User:         &u,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}

// cacheSession mirrors the signed-in user to the blob store. Failures are
// logged, never surfaced: the cached blob is a convenience, not state.
func (s *AuthService) cacheSession(ctx context.Context, user *models.User) {
	record := models.SessionRecord{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		IsAdmin:      user.IsAdmin,
		ProfileImage: user.ProfileImage,
	}

	data, err := json.Marshal(record)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to encode session record")
		return
	}
	if err := s.store.Write(ctx, sessionKey(user.ID), string(data)); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to cache session record")
	}
}
