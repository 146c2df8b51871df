// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"arboria/entities"
)

// OpenSQLite opens the store and migrates the schema. TranslateError is on so
// the unique index on (farm_id, position) surfaces as gorm.ErrDuplicatedKey;
// that index, not the in-process pre-check, is the placement arbiter.
func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Farm{},
		&entities.Tree{},
		&entities.Intervention{},
		&entities.User{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
