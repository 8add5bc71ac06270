// database/bootstrap.go
package database

import (
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wms/config"
	"wms/entities"
)

// Open connects to the configured database and migrates the schema.
func Open(cfg config.AppConfig) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch strings.ToLower(cfg.DBDriver) {
	case "mysql":
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required when DB_DRIVER=mysql")
		}
		dial = mysql.Open(cfg.DBDSN)
	case "", "sqlite":
		dial = sqlite.Open(sqliteDSN(cfg.DBPath))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	db, err := gorm.Open(dial, &gorm.Config{Logger: gormLogger()})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenInMemory returns a migrated private sqlite database. The pool is capped
// at one connection because every new :memory: connection is a fresh database.
func OpenInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	// Older databases were created without the composite unique keys; collapse
	// duplicates BEFORE AutoMigrate tries to build the unique indexes.
	if err := dedupeKeys(db, &entities.LeadtimeMaster{}, "ux_leadtime_key", "customer_code, trans_cd"); err != nil {
		return fmt.Errorf("migrate leadtimes: %w", err)
	}
	if err := dedupeKeys(db, &entities.ShippingSchedule{}, "ux_schedule_key", "customer_code, trans_cd, weekday"); err != nil {
		return fmt.Errorf("migrate schedules: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Customer{},
		&entities.LeadtimeMaster{},
		&entities.ShippingSchedule{},
		&entities.Order{},
		&entities.OrderDetail{},
		&entities.ShoppingList{},
		&entities.DelayHistory{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// dedupeKeys keeps the oldest row (lowest id) of every key group when the
// table exists but its unique index does not.
func dedupeKeys(db *gorm.DB, model any, index, keyCols string) error {
	m := db.Migrator()
	if !m.HasTable(model) || m.HasIndex(model, index) {
		return nil
	}
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return err
	}
	table := stmt.Schema.Table

	// the derived table keeps MySQL from rejecting a self-referencing DELETE
	q := fmt.Sprintf(
		`DELETE FROM %s WHERE id NOT IN (SELECT keep_id FROM (SELECT MIN(id) AS keep_id FROM %s GROUP BY %s) AS k)`,
		table, table, keyCols,
	)
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(q)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			logrus.WithFields(logrus.Fields{"table": table, "removed": res.RowsAffected}).
				Warn("removed duplicate rows before adding unique index")
		}
		return nil
	})
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=foreign_keys(1)"
}

func gormLogger() logger.Interface {
	return logger.New(logrus.StandardLogger(), logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
