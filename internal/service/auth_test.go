package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seelv/dancebook/internal/clock"
	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key-0123456789"

var testNow = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

func newTestAuthService(users *mockUserRepo, sessions *mockSessionRepo) *AuthService {
	return NewAuthService(users, sessions, clock.NewFixed(testNow), testSigningKey, time.Hour)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	users := new(mockUserRepo)
	s := newTestAuthService(users, new(mockSessionRepo))

	users.On("FindByEmail", ctx, "dancer@example.com").Return(domain.User{}, ErrUserNotFound)
	users.On("Create", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "dancer@example.com" &&
			u.IsActive && !u.IsStaff &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("swing")) == nil
	})).Return(domain.User{ID: 1, Email: "dancer@example.com", IsActive: true}, nil)

	user, err := s.Signup(ctx, "  Dancer@Example.COM ", "swing")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	users.AssertExpectations(t)
}

func TestAuthService_Signup_Rejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(users *mockUserRepo)
		wantErr  error
	}{
		{
			name:     "empty email",
			email:    "   ",
			password: "swing",
			wantErr:  domain.ErrUserEmailRequired,
		},
		{
			name:     "short password",
			email:    "dancer@example.com",
			password: "pw",
			wantErr:  domain.ErrPasswordTooShort,
		},
		{
			name:     "duplicate email ignoring case",
			email:    "DANCER@example.com",
			password: "swing",
			setup: func(users *mockUserRepo) {
				users.On("FindByEmail", ctx, "dancer@example.com").Return(domain.User{ID: 1}, nil)
			},
			wantErr: ErrUserEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepo)
			if tt.setup != nil {
				tt.setup(users)
			}
			s := newTestAuthService(users, new(mockSessionRepo))

			_, err := s.Signup(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
			users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_CreateSuperuser(t *testing.T) {
	ctx := context.Background()
	users := new(mockUserRepo)
	s := newTestAuthService(users, new(mockSessionRepo))

	users.On("FindByEmail", ctx, "admin@example.com").Return(domain.User{}, ErrUserNotFound)
	users.On("Create", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.IsStaff && u.IsSuperuser && u.IsActive
	})).Return(domain.User{ID: 2, Email: "admin@example.com", IsActive: true, IsStaff: true, IsSuperuser: true}, nil)

	user, err := s.CreateSuperuser(ctx, "admin@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
}

func TestAuthService_SignupWithDetails(t *testing.T) {
	ctx := context.Background()
	users := new(mockUserRepo)
	s := newTestAuthService(users, new(mockSessionRepo))
	details := domain.UserDetails{Name: "Norma", Surname: "Miller", Tel: "600000000"}

	users.On("FindByEmail", ctx, "norma@example.com").Return(domain.User{}, ErrUserNotFound)
	users.On("CreateWithDetails", ctx, mock.AnythingOfType("domain.User"), details).
		Return(domain.User{ID: 3, Email: "norma@example.com", Details: &details}, nil)

	user, err := s.SignupWithDetails(ctx, "norma@example.com", "secret", details)
	require.NoError(t, err)
	require.NotNil(t, user.Details)
	assert.Equal(t, "Norma", user.Details.Name)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := domain.User{ID: 1, Email: "dancer@example.com", Password: hashed(t, "swing"), IsActive: true}

	t.Run("success stamps last login", func(t *testing.T) {
		users := new(mockUserRepo)
		s := newTestAuthService(users, new(mockSessionRepo))

		users.On("FindByEmail", ctx, "dancer@example.com").Return(stored, nil)
		users.On("Update", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.LastLogin != nil && u.LastLogin.Equal(testNow)
		})).Return(stored, nil)

		user, err := s.Login(ctx, "Dancer@example.com", "swing")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
		users.AssertExpectations(t)
	})

	failures := []struct {
		name     string
		found    domain.User
		findErr  error
		password string
	}{
		{name: "unknown user", findErr: ErrUserNotFound, password: "swing"},
		{name: "wrong password", found: stored, password: "lindy"},
		{name: "empty password", found: stored, password: ""},
		{name: "inactive user", found: domain.User{ID: 1, Password: stored.Password}, password: "swing"},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepo)
			s := newTestAuthService(users, new(mockSessionRepo))
			users.On("FindByEmail", ctx, "dancer@example.com").Return(tt.found, tt.findErr)

			_, err := s.Login(ctx, "dancer@example.com", tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.ErrorIs(t, err, domain.ErrValidation)
			users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_ResolveToken(t *testing.T) {
	ctx := context.Background()
	active := domain.User{ID: 7, Email: "dancer@example.com", IsActive: true}

	issue := func(t *testing.T, s *AuthService, user domain.User) string {
		token, err := s.IssueToken(user, "go-test")
		require.NoError(t, err)
		return token
	}

	t.Run("valid token", func(t *testing.T) {
		users, sessions := new(mockUserRepo), new(mockSessionRepo)
		s := newTestAuthService(users, sessions)
		sessions.On("IsRevoked", ctx, mock.Anything).Return(false, nil)
		users.On("FindByID", ctx, uint(7)).Return(active, nil)

		user, err := s.ResolveToken(ctx, issue(t, s, active))
		require.NoError(t, err)
		assert.Equal(t, active.ID, user.ID)
	})

	t.Run("missing token", func(t *testing.T) {
		s := newTestAuthService(new(mockUserRepo), new(mockSessionRepo))
		_, err := s.ResolveToken(ctx, "")
		assert.ErrorIs(t, err, domain.ErrTokenMissing)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		s := newTestAuthService(new(mockUserRepo), new(mockSessionRepo))
		_, err := s.ResolveToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("revoked token", func(t *testing.T) {
		users, sessions := new(mockUserRepo), new(mockSessionRepo)
		s := newTestAuthService(users, sessions)
		sessions.On("IsRevoked", ctx, mock.Anything).Return(true, nil)

		_, err := s.ResolveToken(ctx, issue(t, s, active))
		assert.ErrorIs(t, err, ErrTokenRevoked)
		users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("deleted user", func(t *testing.T) {
		users, sessions := new(mockUserRepo), new(mockSessionRepo)
		s := newTestAuthService(users, sessions)
		sessions.On("IsRevoked", ctx, mock.Anything).Return(false, nil)
		users.On("FindByID", ctx, uint(7)).Return(domain.User{}, ErrUserNotFound)

		_, err := s.ResolveToken(ctx, issue(t, s, active))
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("inactive user", func(t *testing.T) {
		users, sessions := new(mockUserRepo), new(mockSessionRepo)
		s := newTestAuthService(users, sessions)
		sessions.On("IsRevoked", ctx, mock.Anything).Return(false, nil)
		users.On("FindByID", ctx, uint(7)).Return(domain.User{ID: 7}, nil)

		_, err := s.ResolveToken(ctx, issue(t, s, active))
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	sessions := new(mockSessionRepo)
	s := newTestAuthService(new(mockUserRepo), sessions)

	token, err := s.IssueToken(domain.User{ID: 7}, "")
	require.NoError(t, err)
	claims, err := jwthelper.ParseToken([]byte(testSigningKey), token, testNow)
	require.NoError(t, err)
	assert.True(t, claims.IssuedAt.Time.Equal(testNow))

	sessions.On("IsRevoked", ctx, claims.ID).Return(false, nil)
	sessions.On("Revoke", ctx, claims.ID, time.Hour).Return(nil)

	require.NoError(t, s.Logout(ctx, token))
	sessions.AssertExpectations(t)
}

func TestAuthService_TokenFollowsClock(t *testing.T) {
	ctx := context.Background()
	issuer := newTestAuthService(new(mockUserRepo), new(mockSessionRepo))
	token, err := issuer.IssueToken(domain.User{ID: 7, IsActive: true}, "")
	require.NoError(t, err)

	later := NewAuthService(new(mockUserRepo), new(mockSessionRepo), clock.NewFixed(testNow.Add(2*time.Hour)), testSigningKey, time.Hour)
	_, err = later.ResolveToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
