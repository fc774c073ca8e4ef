package localstore

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lotuspos/counter/internal/domain/entity"
)

// Open opens (or creates) the terminal's sqlite database and migrates the
// session schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("localstore: open %s: %w", path, err)
	}

	if err := db.AutoMigrate(&entity.TerminalSession{}); err != nil {
		return nil, fmt.Errorf("localstore: migrate: %w", err)
	}
	return db, nil
}
