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
	ErrLocationNotFound = domain.ErrLocationNotFound
	ErrArtistNotFound   = domain.ErrArtistNotFound
	ErrEventNotFound    = domain.ErrEventNotFound
	ErrDiscountNotFound = domain.ErrDiscountNotFound
	ErrPriceTooLarge    = domain.ErrPriceTooLarge
)

type Location struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:255;not null"`
	Address string `gorm:"size:255;not null"`
	City    string `gorm:"size:255;not null"`
	Room    string `gorm:"size:255"`
}

type Artist struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Style       string `gorm:"size:50;not null"`
	Type        string `gorm:"size:50;not null"`
	Description string `gorm:"type:text"`
	Country     string `gorm:"size:50;not null"`
}

type Event struct {
	ID          uint             `gorm:"primaryKey"`
	Name        string           `gorm:"size:255;not null"`
	Type        string           `gorm:"size:50;not null"`
	Description string           `gorm:"type:text"`
	Date        domain.Date      `gorm:"type:date;not null;index"`
	Time        domain.TimeOfDay `gorm:"type:time;not null"`
	Price       decimal.Decimal  `gorm:"type:numeric(10,2);not null;default:0"`
	LocationID  uint             `gorm:"not null;index"`
	Location    Location         `gorm:"constraint:OnDelete:CASCADE"`
	Artists     []Artist         `gorm:"many2many:event_artists;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventArtist is the event_artists join table.
type EventArtist struct {
	EventID  uint `gorm:"primaryKey"`
	ArtistID uint `gorm:"primaryKey"`
}

type Discount struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"size:255;not null"`
	Percentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func orderByID(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id")
	}
}

func preloadEvent(db *gorm.DB) *gorm.DB {
	return db.Preload("Location").Preload("Artists", orderByID("artists"))
}

func (d *CatalogDAO) InsertLocation(ctx context.Context, location Location) (Location, error) {
	if err := d.db.WithContext(ctx).Create(&location).Error; err != nil {
		return Location{}, err
	}

	return location, nil
}

func (d *CatalogDAO) FindLocationByID(ctx context.Context, id uint) (Location, error) {
	var location Location
	if err := d.db.WithContext(ctx).First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Location{}, ErrLocationNotFound
		}

		return Location{}, err
	}

	return location, nil
}

func (d *CatalogDAO) ListLocations(ctx context.Context) ([]Location, error) {
	var locations []Location
	if err := d.db.WithContext(ctx).Order("id").Find(&locations).Error; err != nil {
		return nil, err
	}

	return locations, nil
}

func (d *CatalogDAO) InsertArtist(ctx context.Context, artist Artist) (Artist, error) {
	if err := d.db.WithContext(ctx).Create(&artist).Error; err != nil {
		return Artist{}, err
	}

	return artist, nil
}

func (d *CatalogDAO) FindArtistByID(ctx context.Context, id uint) (Artist, error) {
	var artist Artist
	if err := d.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Artist{}, ErrArtistNotFound
		}

		return Artist{}, err
	}

	return artist, nil
}

func (d *CatalogDAO) ListArtists(ctx context.Context) ([]Artist, error) {
	var artists []Artist
	if err := d.db.WithContext(ctx).Order("id").Find(&artists).Error; err != nil {
		return nil, err
	}

	return artists, nil
}

// InsertEvent creates the event and links it to the given artists. The
// location and every artist must already exist.
func (d *CatalogDAO) InsertEvent(ctx context.Context, event Event, artistIDs []uint) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&Location{}, event.LocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLocationNotFound
			}

			return err
		}

		if err := tx.Omit(clause.Associations).Create(&event).Error; err != nil {
			if isNumericOutOfRange(err) {
				return ErrPriceTooLarge
			}

			return err
		}

		for _, artistID := range uniqueIDs(artistIDs) {
			if err := linkEventArtist(tx, event.ID, artistID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Event{}, err
	}

	return d.FindEventByID(ctx, event.ID)
}

func (d *CatalogDAO) FindEventByID(ctx context.Context, id uint) (Event, error) {
	var event Event
	if err := d.db.WithContext(ctx).Scopes(preloadEvent).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, err
	}

	return event, nil
}

func (d *CatalogDAO) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := d.db.WithContext(ctx).Scopes(preloadEvent).Order("date, time, id").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (d *CatalogDAO) AppendEventArtist(ctx context.Context, eventID, artistID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&Event{}, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return err
		}

		return linkEventArtist(tx, eventID, artistID)
	})
}

func (d *CatalogDAO) DeleteEventArtist(ctx context.Context, eventID, artistID uint) error {
	result := d.db.WithContext(ctx).Delete(&EventArtist{EventID: eventID, ArtistID: artistID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtistNotFound
	}

	return nil
}

func linkEventArtist(tx *gorm.DB, eventID, artistID uint) error {
	if err := tx.Select("id").First(&Artist{}, artistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArtistNotFound
		}

		return err
	}

	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&EventArtist{EventID: eventID, ArtistID: artistID}).Error
}

func (d *CatalogDAO) InsertDiscount(ctx context.Context, discount Discount) (Discount, error) {
	if err := d.db.WithContext(ctx).Create(&discount).Error; err != nil {
		return Discount{}, err
	}

	return discount, nil
}

func (d *CatalogDAO) FindDiscountByID(ctx context.Context, id uint) (Discount, error) {
	var discount Discount
	if err := d.db.WithContext(ctx).First(&discount, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Discount{}, ErrDiscountNotFound
		}

		return Discount{}, err
	}

	return discount, nil
}

func (d *CatalogDAO) ListDiscounts(ctx context.Context) ([]Discount, error) {
	var discounts []Discount
	if err := d.db.WithContext(ctx).Order("id").Find(&discounts).Error; err != nil {
		return nil, err
	}

	return discounts, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
