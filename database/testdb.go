// Package database file: database/testdb.go
package database

import (
	"fmt"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// OpenTest opens a named in-memory SQLite database with the full
// schema applied. Each call gets its own database (the name makes it
// survive GORM's connection pooling), so tests stay isolated.
func OpenTest() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
