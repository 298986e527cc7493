package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seelv/dancebook/internal/domain"
)

var (
	ErrPackNotFound    = domain.ErrPackNotFound
	ErrPackHasBookings = domain.ErrPackHasBookings
	ErrPackPriceRange  = domain.ErrPackPriceRange
)

type Pack struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Events      []Event         `gorm:"many2many:pack_events;constraint:OnDelete:CASCADE"`
	Discounts   []Discount      `gorm:"many2many:pack_discounts;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PackEvent struct {
	PackID  uint `gorm:"primaryKey"`
	EventID uint `gorm:"primaryKey"`
}

type PackDiscount struct {
	PackID     uint `gorm:"primaryKey"`
	DiscountID uint `gorm:"primaryKey"`
}

type PackDAO struct {
	db *gorm.DB
}

func NewPackDAO(db *gorm.DB) *PackDAO {
	return &PackDAO{
		db: db,
	}
}

// preloadPack loads the nested read shape: events ordered chronologically,
// each with its location and artists, plus the pack's discounts.
func preloadPack(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("events.date, events.time, events.id")
		}).
		Preload("Events.Location").
		Preload("Events.Artists", orderByID("artists")).
		Preload("Discounts", orderByID("discounts"))
}

// Insert creates the pack and links the given events and discounts, all of
// which must exist.
func (d *PackDAO) Insert(ctx context.Context, pack Pack, eventIDs, discountIDs []uint) (Pack, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&pack).Error; err != nil {
			if isNumericOutOfRange(err) {
				return ErrPackPriceRange
			}

			return err
		}

		for _, eventID := range uniqueIDs(eventIDs) {
			if err := linkPackEvent(tx, pack.ID, eventID); err != nil {
				return err
			}
		}
		for _, discountID := range uniqueIDs(discountIDs) {
			if err := linkPackDiscount(tx, pack.ID, discountID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Pack{}, err
	}

	return d.FindByID(ctx, pack.ID)
}

func (d *PackDAO) FindByID(ctx context.Context, id uint) (Pack, error) {
	var pack Pack
	if err := d.db.WithContext(ctx).Scopes(preloadPack).First(&pack, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Pack{}, ErrPackNotFound
		}

		return Pack{}, err
	}

	return pack, nil
}

// ListWithEvents returns every pack that has at least one event.
func (d *PackDAO) ListWithEvents(ctx context.Context) ([]Pack, error) {
	var packs []Pack
	err := d.db.WithContext(ctx).
		Scopes(preloadPack).
		Where("EXISTS (SELECT 1 FROM pack_events pe WHERE pe.pack_id = packs.id)").
		Order("packs.id").
		Find(&packs).Error
	if err != nil {
		return nil, err
	}

	return packs, nil
}

// Delete removes a pack and its links. Packs still referenced by bookings are
// protected.
func (d *PackDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bookings int64
		if err := tx.Model(&Booking{}).Where("pack_id = ?", id).Count(&bookings).Error; err != nil {
			return err
		}
		if bookings > 0 {
			return ErrPackHasBookings
		}

		if err := tx.Where("pack_id = ?", id).Delete(&PackEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pack_id = ?", id).Delete(&PackDiscount{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Pack{}, id)
		if result.Error != nil {
			if _, ok := foreignKeyViolation(result.Error); ok {
				return ErrPackHasBookings
			}

			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPackNotFound
		}

		return nil
	})
}

func (d *PackDAO) AppendEvent(ctx context.Context, packID, eventID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := packExists(tx, packID); err != nil {
			return err
		}

		return linkPackEvent(tx, packID, eventID)
	})
}

func (d *PackDAO) DeleteEvent(ctx context.Context, packID, eventID uint) error {
	result := d.db.WithContext(ctx).Delete(&PackEvent{PackID: packID, EventID: eventID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *PackDAO) AppendDiscount(ctx context.Context, packID, discountID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := packExists(tx, packID); err != nil {
			return err
		}

		return linkPackDiscount(tx, packID, discountID)
	})
}

func (d *PackDAO) DeleteDiscount(ctx context.Context, packID, discountID uint) error {
	result := d.db.WithContext(ctx).Delete(&PackDiscount{PackID: packID, DiscountID: discountID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountNotFound
	}

	return nil
}

func packExists(tx *gorm.DB, id uint) error {
	if err := tx.Select("id").First(&Pack{}, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPackNotFound
		}

		return err
	}

	return nil
}

func linkPackEvent(tx *gorm.DB, packID, eventID uint) error {
	if err := tx.Select("id").First(&Event{}, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}

		return err
	}

	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&PackEvent{PackID: packID, EventID: eventID}).Error
}

func linkPackDiscount(tx *gorm.DB, packID, discountID uint) error {
	if err := tx.Select("id").First(&Discount{}, discountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDiscountNotFound
		}

		return err
	}

	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&PackDiscount{PackID: packID, DiscountID: discountID}).Error
}
