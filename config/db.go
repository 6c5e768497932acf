package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"schoolms/domain"
)

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

func GetDatabasePath() string {
	if v := os.Getenv("DB_PATH"); v != "" {
		return v
	}
	return "School.db"
}

// BootDB opens the configured database and creates the schema when absent.
// The default is a single SQLite file next to the binary; set
// DB_DRIVER=postgres to use the Postgres DSN from the environment instead.
// The returned handle is passed explicitly to every repository.
func BootDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	if os.Getenv("DB_DRIVER") == "postgres" {
		dialector = postgres.Open(GetDatabaseURL())
	} else {
		dialector = sqlite.Open(GetDatabasePath())
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Class{},
		&domain.Student{},
		&domain.Attendance{},
		&domain.Notification{},
	)
}
