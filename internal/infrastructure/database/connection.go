// Package database manages the GORM connection lifecycle.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"prio/internal/shared/config"
	"prio/internal/shared/logger"
)

var db *gorm.DB

// Init opens the MySQL connection and configures the pool.
func Init(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.New(slogWriter{}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db = conn
	return db, nil
}

// Get returns the initialized connection.
func Get() *gorm.DB {
	return db
}

// Close closes the underlying connection pool.
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// slogWriter adapts the process logger to GORM's logger interface.
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...interface{}) {
	logger.Get().Info(fmt.Sprintf(format, args...))
}
