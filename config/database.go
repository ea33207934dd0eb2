package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDatabase establishes the configured connection and creates missing tables.
// It exits the process on failure; callers that need the error use OpenDatabase.
func InitDatabase(c AppConfig, modelDefs ...interface{}) *gorm.DB {
	if db != nil {
		return db
	}

	var err error
	db, err = OpenDatabase(c)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db, modelDefs...); err != nil {
		log.Fatalf("auto migration failed: %v", err)
	}
	return db
}

// OpenDatabase opens a gorm handle for c.DBDriver and verifies it with a ping.
func OpenDatabase(c AppConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(c)
	if err != nil {
		return nil, err
	}

	// Derive level from app LogLevel and raise slow-sql threshold to reduce noise
	gLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  toGormLogLevel(c.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: gLogger})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.DBDriver, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if c.DBDriver == "sqlite" {
		// one writer; also keeps a shared in-memory database alive
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return conn, nil
}

// Migrate creates tables that do not exist yet; existing tables only gain missing columns.
func Migrate(conn *gorm.DB, modelDefs ...interface{}) error {
	for _, model := range modelDefs {
		if err := conn.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}
	return nil
}

func dialectorFor(c AppConfig) (gorm.Dialector, error) {
	switch c.DBDriver {
	case "mysql", "":
		dsn := c.DatabaseURI
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
		}
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := c.DatabaseURI
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		dsn := c.DatabaseURI
		if dsn == "" {
			dsn = c.DBName + ".sqlite3"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.DBDriver)
	}
}

// toGormLogLevel maps application LogLevel to GORM's logger level.
func toGormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		// GORM 'Info' shows SQL; use with caution
		return logger.Info
	case "info", "", "warn":
		return logger.Warn
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	default:
		return logger.Warn
	}
}
