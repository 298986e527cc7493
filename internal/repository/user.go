package repository

import (
	"context"
	"fmt"

	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrUserHasBookings = dao.ErrUserHasBookings
	ErrDetailsExist    = dao.ErrDetailsExist
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	InsertWithDetails(ctx context.Context, user dao.User, details dao.UserDetails) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
	Delete(ctx context.Context, id uint) error
	InsertDetails(ctx context.Context, details dao.UserDetails) (dao.UserDetails, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) CreateWithDetails(ctx context.Context, user domain.User, details domain.UserDetails) (domain.User, error) {
	created, err := r.dao.InsertWithDetails(ctx, r.domainToDao(user), detailsDomainToDao(details))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.InsertWithDetails -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) CreateDetails(ctx context.Context, details domain.UserDetails) (domain.UserDetails, error) {
	created, err := r.dao.InsertDetails(ctx, detailsDomainToDao(details))
	if err != nil {
		return domain.UserDetails{}, fmt.Errorf("r.dao.InsertDetails -> %w", err)
	}

	return detailsDaoToDomain(created), nil
}

func (r *UserRepository) domainToDao(u domain.User) dao.User {
	return dao.User{
		ID:          u.ID,
		Email:       u.Email,
		Password:    u.Password,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	user := domain.User{
		ID:          u.ID,
		Email:       u.Email,
		Password:    u.Password,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.Details != nil {
		details := detailsDaoToDomain(*u.Details)
		user.Details = &details
	}

	return user
}

func detailsDomainToDao(d domain.UserDetails) dao.UserDetails {
	return dao.UserDetails{
		UserID:    d.UserID,
		Name:      d.Name,
		Surname:   d.Surname,
		Address:   d.Address,
		City:      d.City,
		Country:   d.Country,
		Tel:       d.Tel,
		Privacy:   d.Privacy,
		Marketing: d.Marketing,
	}
}

func detailsDaoToDomain(d dao.UserDetails) domain.UserDetails {
	return domain.UserDetails{
		UserID:    d.UserID,
		Name:      d.Name,
		Surname:   d.Surname,
		Address:   d.Address,
		City:      d.City,
		Country:   d.Country,
		Tel:       d.Tel,
		Privacy:   d.Privacy,
		Marketing: d.Marketing,
	}
}
