package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/georgemunganga/printa-pos/internal/config"
	gomysql "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured SQL store and wraps the pool in gorm.
// The memory driver has no SQL store and is rejected here.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	var (
		sqlDB     *sql.DB
		dialector gorm.Dialector
		err       error
	)
	switch cfg.Type {
	case "postgres":
		sqlDB, err = sql.Open("postgres", cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	case "mysql":
		dsn, err := mysqlDSN(cfg.URL)
		if err != nil {
			return nil, err
		}
		sqlDB, err = sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		dialector = mysql.New(mysql.Config{Conn: sqlDB})
	default:
		return nil, fmt.Errorf("database type %q has no sql driver", cfg.Type)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConn)
	sqlDB.SetMaxIdleConns(cfg.IdleConn)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	level := logger.Silent
	if cfg.Debug {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect %s: %w", cfg.Type, err)
	}
	zap.L().Info("database connection established", zap.String("type", cfg.Type))
	return db, nil
}

// mysqlDSN forces parseTime so DATE and DATETIME columns scan into time.Time.
func mysqlDSN(raw string) (string, error) {
	c, err := gomysql.ParseDSN(raw)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	c.ParseTime = true
	return c.FormatDSN(), nil
}
