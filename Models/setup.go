package Models

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database and prepares the schema. SQLite is the
// default; a DATABASE_URL switches to Postgres (render-style postgres://
// prefixes are rewritten for the driver).
func Connect(databaseURL, sqlitePath string) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dsn := databaseURL
		if strings.HasPrefix(dsn, "postgres://") {
			dsn = "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
		}
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = connection

	// 1. Base tables with no dependencies
	DB.AutoMigrate(
		&User{},
		&Company{},
		&ChecklistItem{},
		&PartMemory{},
	)

	// 2. Visits, then everything hanging off a visit
	DB.AutoMigrate(&Visit{})
	DB.AutoMigrate(
		&VisitChecklistLine{},
		&VisitPhoto{},
	)

	if err := SeedChecklist(DB); err != nil {
		log.Println("Failed to seed checklist:", err)
	}
	if _, err := GetCompany(DB); err != nil {
		log.Println("Failed to seed company:", err)
	}
	seedAdmin(DB)
}

// seedAdmin creates the initial login when the users table is empty.
func seedAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	password, _ := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	admin := User{
		Name:       "Admin",
		Email:      "admin@garage.local",
		Password:   password,
		Permission: 3,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("Failed to create admin user:", err)
	}
}
