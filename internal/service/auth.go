package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seelv/dancebook/internal/clock"
	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/pkg/jwthelper"
	"github.com/seelv/dancebook/internal/repository"
)

var (
	ErrUserEmailExists    = repository.ErrUserEmailExists
	ErrInvalidCredentials = domain.ErrInvalidCredentials
	ErrTokenInvalid       = domain.ErrTokenInvalid
	ErrTokenRevoked       = domain.ErrTokenRevoked
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	CreateWithDetails(ctx context.Context, user domain.User, details domain.UserDetails) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

type SessionRepository interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthService struct {
	repo       AuthUserRepository
	sessions   SessionRepository
	clock      clock.Clock
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(repo AuthUserRepository, sessions SessionRepository, clk clock.Clock, signingKey string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:       repo,
		sessions:   sessions,
		clock:      clk,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.newUser(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) CreateSuperuser(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.newUser(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}
	user.IsStaff = true
	user.IsSuperuser = true

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// SignupWithDetails creates the account and its profile atomically.
func (s *AuthService) SignupWithDetails(ctx context.Context, email, password string, details domain.UserDetails) (domain.User, error) {
	user, err := s.newUser(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.repo.CreateWithDetails(ctx, user, details)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.CreateWithDetails -> %w", err)
	}

	return created, nil
}

// Login checks the credentials of an active user and stamps its last login.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if !user.IsActive || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	now := s.clock.Now()
	user.LastLogin = &now
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AuthService) IssueToken(user domain.User, userAgent string) (string, error) {
	token, err := jwthelper.GenerateToken(s.signingKey, user.ID, userAgent, s.clock.Now(), s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	return token, nil
}

// ResolveToken maps a bearer token to the active user it was issued for.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.parse(ctx, token)
	if err != nil {
		return domain.User{}, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return domain.User{}, ErrTokenInvalid
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrTokenInvalid
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !user.IsActive {
		return domain.User{}, ErrTokenInvalid
	}

	return user, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(ctx, token)
	if err != nil {
		return err
	}

	if err := s.sessions.Revoke(ctx, claims.ID, claims.TTL(s.clock.Now())); err != nil {
		return fmt.Errorf("s.sessions.Revoke -> %w", err)
	}

	return nil
}

func (s *AuthService) parse(ctx context.Context, token string) (*jwthelper.Claims, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing
	}

	claims, err := jwthelper.ParseToken(s.signingKey, token, s.clock.Now())
	if err != nil {
		zap.L().Debug("rejected token", zap.Error(err))
		return nil, ErrTokenInvalid
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("s.sessions.IsRevoked -> %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

func (s *AuthService) newUser(ctx context.Context, email, password string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrUserEmailRequired
	}
	if err := checkPassword(password); err != nil {
		return domain.User{}, err
	}
	if err := checkEmailAvailable(ctx, s.repo, email); err != nil {
		return domain.User{}, err
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
	}, nil
}

func checkPassword(password string) error {
	if len([]rune(password)) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return string(hash), nil
}

type emailFinder interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

func checkEmailAvailable(ctx context.Context, repo emailFinder, email string) error {
	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrUserEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return nil
}
