package main

import (
	"context"
	"log"

	"crewtime/config"
	"crewtime/database"
	"crewtime/store"
)

// Offline maintenance: wipe all timesheet entries, child rows first, in a
// single transaction. Users are left alone.
func main() {
	cfg := config.Load()

	db, err := database.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	st := store.New(db)
	if err := st.ClearEntries(context.Background()); err != nil {
		log.Fatalf("Failed to clear entries: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	log.Println("All entries cleared.")
}
