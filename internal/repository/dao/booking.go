package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seelv/dancebook/internal/domain"
)

var (
	ErrBookingNotFound    = domain.ErrBookingNotFound
	ErrBookingAlreadyPaid = domain.ErrBookingAlreadyPaid
)

type Booking struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"constraint:OnDelete:RESTRICT"`
	PackID    uint      `gorm:"not null;index"`
	Pack      Pack      `gorm:"constraint:OnDelete:RESTRICT"`
	Date      time.Time `gorm:"type:date;not null"`
	Payed     bool      `gorm:"not null;default:false"`
	DatePayed *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

func preloadBookingPack(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Pack").
		Preload("Pack.Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("events.date, events.time, events.id")
		}).
		Preload("Pack.Events.Location").
		Preload("Pack.Events.Artists", orderByID("artists")).
		Preload("Pack.Discounts", orderByID("discounts"))
}

func (d *BookingDAO) Insert(ctx context.Context, booking Booking) (Booking, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&booking)
	if result.Error != nil {
		if constraint, ok := foreignKeyViolation(result.Error); ok {
			if strings.Contains(constraint, "user") {
				return Booking{}, ErrUserNotFound
			}

			return Booking{}, ErrPackNotFound
		}

		return Booking{}, result.Error
	}

	return booking, nil
}

func (d *BookingDAO) FindByID(ctx context.Context, id uint) (Booking, error) {
	var booking Booking
	if err := d.db.WithContext(ctx).
		Scopes(preloadBookingPack).
		First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Booking{}, ErrBookingNotFound
		}

		return Booking{}, err
	}

	return booking, nil
}

func (d *BookingDAO) ListByUserID(ctx context.Context, userID uint) ([]Booking, error) {
	var bookings []Booking
	if err := d.db.WithContext(ctx).
		Scopes(preloadBookingPack).
		Where("user_id = ?", userID).
		Order("id").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// MarkPaid flips an unpaid booking to paid under a row lock, so two
// concurrent payments cannot both succeed.
func (d *BookingDAO) MarkPaid(ctx context.Context, id uint, at time.Time) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}

			return err
		}
		if booking.Payed {
			return ErrBookingAlreadyPaid
		}

		return tx.Model(&booking).Updates(map[string]interface{}{"payed": true, "date_payed": at}).Error
	})
}

func (d *BookingDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
