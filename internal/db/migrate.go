package db

import (
	"fmt"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&weddingdomain.Wedding{},
		&weddingdomain.Question{},
		&guestdomain.Guest{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
