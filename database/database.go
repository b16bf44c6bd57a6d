package database

import (
	"log"

	"crewtime/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the SQLite database at path, creates the schema if absent and
// seeds the default crew. The handle is opened once at startup and shared
// for the life of the process.
func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// SQLite has a single writer; one pooled connection also keeps
	// :memory: databases from splitting across connections.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Entry{},
		&models.EntryEmployeeTime{},
		&models.EntryEmployeeHours{},
	)
	if err != nil {
		return nil, err
	}

	if err := seedCrew(db); err != nil {
		return nil, err
	}

	return db, nil
}

// defaultCrew is the known worker roster the app ships with.
var defaultCrew = []string{
	"John Doe",
	"Jane Smith",
	"Mike Johnson",
	"Emily Davis",
	"Chris Lee",
	"Sara White",
	"David Brown",
	"Anna Wilson",
	"Tom Clark",
	"Nancy Green",
}

func seedCrew(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range defaultCrew {
		user := models.User{
			Username: name,
			Password: "password",
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d default crew users (password: password)", len(defaultCrew))
	return nil
}
