//go:build integration

// Package mock provides in-memory stand-ins for external infrastructure
// used by the integration suite.
package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory sqlite connection migrated with the
// application models.
type Db struct {
	Conn   *gorm.DB
	models []any
}

// NewDb opens (once) an in-memory database and migrates the given models.
func NewDb(models ...any) *Db {
	dbOnce.Do(func() {
		conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic("failed to open sqlite: " + err.Error())
		}

		sqlDB, err := conn.DB()
		if err != nil {
			panic(err)
		}
		sqlDB.SetMaxOpenConns(1)

		if err := conn.AutoMigrate(models...); err != nil {
			panic("failed to migrate: " + err.Error())
		}

		db = &Db{Conn: conn, models: models}
	})

	return db
}

// Reset deletes all rows from every migrated table.
func (d *Db) Reset() error {
	for _, model := range d.models {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table for %T: %w", model, err)
		}
	}
	return nil
}
