package dao

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// InitTables registers the explicit join tables and migrates the schema.
func InitTables(db *gorm.DB) error {
	joins := []struct {
		model     interface{}
		field     string
		joinTable interface{}
	}{
		{&Event{}, "Artists", &EventArtist{}},
		{&Pack{}, "Events", &PackEvent{}},
		{&Pack{}, "Discounts", &PackDiscount{}},
	}
	for _, j := range joins {
		if err := db.SetupJoinTable(j.model, j.field, j.joinTable); err != nil {
			return fmt.Errorf("db.SetupJoinTable(%s) -> %w", j.field, err)
		}
	}

	return db.AutoMigrate(
		&User{},
		&UserDetails{},
		&Location{},
		&Artist{},
		&Event{},
		&EventArtist{},
		&Discount{},
		&Pack{},
		&PackEvent{},
		&PackDiscount{},
		&Booking{},
	)
}

// DropAllTables removes every table of the public schema. Only used by tests.
func DropAllTables(db *gorm.DB) error {
	var tableNames []string
	if err := db.Table("information_schema.tables").
		Where("table_schema = ?", "public").
		Pluck("table_name", &tableNames).Error; err != nil {
		return err
	}

	for _, tableName := range tableNames {
		if err := db.Exec("DROP TABLE IF EXISTS " + tableName + " CASCADE").Error; err != nil {
			return err
		}
	}

	return nil
}

func pgErrorCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}

	return pgErr.Code, pgErr.ConstraintName, true
}

func isUniqueViolation(err error) bool {
	code, _, ok := pgErrorCode(err)
	return ok && code == pgerrcode.UniqueViolation
}

// isNumericOutOfRange reports whether a value overflowed its numeric column.
func isNumericOutOfRange(err error) bool {
	code, _, ok := pgErrorCode(err)
	return ok && code == pgerrcode.NumericValueOutOfRange
}

// foreignKeyViolation reports whether err violates a foreign key and names the constraint.
func foreignKeyViolation(err error) (string, bool) {
	code, constraint, ok := pgErrorCode(err)
	if !ok || code != pgerrcode.ForeignKeyViolation {
		return "", false
	}

	return constraint, true
}
