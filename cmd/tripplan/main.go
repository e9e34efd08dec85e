package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"trip-planner/internal/adapters/cache"
	"trip-planner/internal/adapters/directions"
	"trip-planner/internal/adapters/repositories"
	"trip-planner/internal/cli"
	"trip-planner/internal/config"
	"trip-planner/internal/ports"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, MapQuest) behind ports and starts the
// interactive session.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	baseURL := config.Get("MAPQUEST_BASE_URL", directions.DefaultBaseURL)
	placesPath := config.Get("PLACES_DB_PATH", "data/places.db")

	stdin := bufio.NewScanner(os.Stdin)

	// The credential is captured once and reused for the whole session.
	apiKey := strings.TrimSpace(os.Getenv("MAPQUEST_API_KEY"))
	if apiKey == "" {
		apiKey = cli.PromptCredential(stdin, os.Stdout)
	}

	// The trip cache lives in an in-memory database: repeated queries within
	// one session skip the API, and nothing is kept across runs.
	cacheDB, err := openDB(":memory:")
	if err != nil {
		log.Fatal(err)
	}
	defer cacheDB.Close()

	if err := cache.InitSchema(cacheDB); err != nil {
		log.Fatal(err)
	}
	tripCache := cache.NewSqlTripCache(cacheDB)

	// Saved places are optional; without them every input goes to the API
	// verbatim.
	var places ports.PlaceRepository
	placesDB, err := openDB(placesPath)
	if err != nil {
		log.Printf("saved places unavailable: %v", err)
	} else {
		defer placesDB.Close()
		if err := repositories.InitSchema(placesDB); err != nil {
			log.Printf("saved places unavailable: %v", err)
		} else {
			places = repositories.NewSqlitePlaceRepository(placesDB)
		}
	}

	provider := directions.NewMapQuestProvider(apiKey, baseURL, tripCache)

	session := cli.NewSession(stdin, os.Stdout, provider, places)
	if err := session.Run(context.Background()); err != nil {
		log.Fatal(err)
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
