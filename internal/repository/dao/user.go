package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seelv/dancebook/internal/domain"
)

var (
	ErrUserEmailExists = domain.ErrUserEmailExists
	ErrUserNotFound    = domain.ErrUserNotFound
	ErrUserHasBookings = domain.ErrUserHasBookings
	ErrDetailsExist    = domain.ErrDetailsExist
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"size:255;unique;not null"`
	Password string `gorm:"not null"`

	IsActive    bool `gorm:"not null;default:true"`
	IsStaff     bool `gorm:"not null;default:false"`
	IsSuperuser bool `gorm:"not null;default:false"`
	LastLogin   *time.Time

	Details *UserDetails `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDetails struct {
	UserID    uint   `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"size:255;not null"`
	Surname   string `gorm:"size:255;not null"`
	Address   string `gorm:"size:255;not null"`
	City      string `gorm:"size:255;not null"`
	Country   string `gorm:"size:255;not null"`
	Tel       string `gorm:"size:13;not null"`
	Privacy   bool   `gorm:"not null;default:false"`
	Marketing bool   `gorm:"not null;default:false"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

// InsertWithDetails creates the user and its details in one transaction.
func (d *UserDAO) InsertWithDetails(ctx context.Context, user User, details UserDetails) (User, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrUserEmailExists
			}

			return err
		}

		details.UserID = user.ID
		if err := tx.Create(&details).Error; err != nil {
			return err
		}
		user.Details = &details

		return nil
	})
	if err != nil {
		return User{}, err
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Preload("Details").First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// Update writes the credential columns and last login of an existing user.
func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).
		Model(&User{ID: user.ID}).
		Select("Email", "Password", "LastLogin").
		Updates(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return User{}, ErrUserNotFound
	}

	return d.FindByID(ctx, user.ID)
}

// Delete removes a user and, through the cascade, its details. Users still
// referenced by bookings are protected.
func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bookings int64
		if err := tx.Model(&Booking{}).Where("user_id = ?", id).Count(&bookings).Error; err != nil {
			return err
		}
		if bookings > 0 {
			return ErrUserHasBookings
		}

		result := tx.Delete(&User{}, id)
		if result.Error != nil {
			if _, ok := foreignKeyViolation(result.Error); ok {
				return ErrUserHasBookings
			}

			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return nil
	})
}

// InsertDetails attaches details to an existing user, at most once.
func (d *UserDAO) InsertDetails(ctx context.Context, details UserDetails) (UserDetails, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, details.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}

			return err
		}

		var existing int64
		if err := tx.Model(&UserDetails{}).Where("user_id = ?", details.UserID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDetailsExist
		}

		if err := tx.Create(&details).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDetailsExist
			}

			return err
		}

		return nil
	})
	if err != nil {
		return UserDetails{}, err
	}

	return details, nil
}
