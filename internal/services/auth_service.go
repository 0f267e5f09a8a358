package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finledger/internal/config"
	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountPending     = errors.New("account is awaiting approval")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

type authService struct {
	userRepo   repositories.UserRepositoryInterface
	cfg        *config.JWTConfig
	bcryptCost int
	metrics    MetricsRecorderInterface
}

// NewAuthService creates the registration and sign-in service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cfg *config.JWTConfig,
	bcryptCost int,
	metrics MetricsRecorderInterface,
) AuthServiceInterface {
	return &authService{
		userRepo:   userRepo,
		cfg:        cfg,
		bcryptCost: bcryptCost,
		metrics:    metrics,
	}
}

// Register creates a new user in pending status. The account cannot sign in
// until it is approved.
func (s *authService) Register(name, email, password string) (*models.User, error) {
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Status:       models.UserStatusPending,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, err
		}
		slog.Error("failed to create user", "email", email, "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.metrics.RecordAuthEvent("register")
	slog.Info("user registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

// Login verifies credentials and issues a signed access token. Pending
// accounts are rejected with ErrAccountPending.
func (s *authService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.RecordAuthEvent("login_failed")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.metrics.RecordAuthEvent("login_failed")
		slog.Warn("failed login attempt", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsApproved() {
		s.metrics.RecordAuthEvent("login_pending")
		return "", nil, ErrAccountPending
	}

	token, err := s.signToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.metrics.RecordAuthEvent("login")
	slog.Info("user logged in", "user_id", user.ID)

	return token, user, nil
}

// Approve moves a pending user to approved status
func (s *authService) Approve(userID uuid.UUID) error {
	if err := s.userRepo.UpdateStatus(userID, models.UserStatusApproved); err != nil {
		return err
	}

	s.metrics.RecordAuthEvent("approve")
	slog.Info("user approved", "user_id", userID)
	return nil
}

// ParseToken validates a signed access token and returns the session it
// carries
func (s *authService) ParseToken(tokenString string) (session.Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return session.Session{}, ErrExpiredToken
		}
		return session.Session{}, ErrInvalidToken
	}
	if !token.Valid {
		return session.Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return session.Session{}, ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return session.Session{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return session.Session{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return session.Session{
		UserID: userID,
		Email:  email,
	}, nil
}

func (s *authService) signToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iss":   s.cfg.Issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.AccessTokenDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}
