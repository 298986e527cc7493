package service

import (
	"context"
	"fmt"

	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/repository"
)

var (
	ErrUserNotFound    = repository.ErrUserNotFound
	ErrUserHasBookings = repository.ErrUserHasBookings
	ErrDetailsExist    = repository.ErrDetailsExist
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id uint) error
	CreateDetails(ctx context.Context, details domain.UserDetails) (domain.UserDetails, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetUser returns the user together with its details, if any.
func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) AttachDetails(ctx context.Context, userID uint, details domain.UserDetails) (domain.UserDetails, error) {
	details.UserID = userID

	created, err := s.repo.CreateDetails(ctx, details)
	if err != nil {
		return domain.UserDetails{}, fmt.Errorf("s.repo.CreateDetails -> %w", err)
	}

	return created, nil
}

// UpdateMe changes the email and/or password of a user. Nil fields are left as they are.
func (s *UserService) UpdateMe(ctx context.Context, userID uint, email, password *string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if email != nil {
		normalized := domain.NormalizeEmail(*email)
		if normalized == "" {
			return domain.User{}, domain.ErrUserEmailRequired
		}
		if normalized != user.Email {
			if err := checkEmailAvailable(ctx, s.repo, normalized); err != nil {
				return domain.User{}, err
			}
			user.Email = normalized
		}
	}

	if password != nil {
		if err := checkPassword(*password); err != nil {
			return domain.User{}, err
		}
		hashedPassword, err := hashPassword(*password)
		if err != nil {
			return domain.User{}, err
		}
		user.Password = hashedPassword
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
