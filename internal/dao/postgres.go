package dao

import (
	"database/sql"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPostgres opens a GORM *gorm.DB connection using the given DSN.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{}
	return gorm.Open(postgres.Open(dsn), cfg)
}

// Ping retries Ping on the underlying *sql.DB of a *gorm.DB.
func Ping(gdb *gorm.DB, attempts int, interval time.Duration) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	for i := 0; i < attempts; i++ {
		if err := sqlDB.Ping(); err != nil {
			time.Sleep(interval)
			continue
		}
		return nil
	}
	return sqlDB.Ping()
}

// SQLDB applies pool settings and returns the shared *sql.DB so the raw-SQL
// repositories reuse the same pool as the GORM DAOs.
func SQLDB(gdb *gorm.DB, maxOpen, maxIdle, maxLifeSec int) (*sql.DB, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		sqlDB.SetMaxIdleConns(maxIdle)
	}
	if maxLifeSec > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(maxLifeSec) * time.Second)
	}
	return sqlDB, nil
}
