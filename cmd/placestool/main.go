package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"trip-planner/internal/adapters/repositories"
	"trip-planner/internal/config"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// placestool initializes the saved-places database and seeds it from a JSON
// file of alias/address pairs, then prints the resulting table.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	placesPath := config.Get("PLACES_DB_PATH", "data/places.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/places.json")

	db, err := openDB(placesPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	log.Println("Initializing places schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding saved places...")
	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	repo := repositories.NewSqlitePlaceRepository(db)
	places, err := repo.ListPlaces(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range places {
		fmt.Printf("%s\t%s\n", p.Alias, p.Address)
	}
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
