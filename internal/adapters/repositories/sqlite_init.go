package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the saved-places schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		alias TEXT PRIMARY KEY,
		address TEXT NOT NULL
	);
	`

	if _, err := db.Exec(createPlacesQuery); err != nil {
		return fmt.Errorf("init schema: create places table: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	Alias   string `json:"alias"`
	Address string `json:"address"`
}

// Populate the places table from a JSON file of alias/address pairs.
// Aliases are lowercased on insert so prompt input matches regardless of
// casing. Existing aliases are overwritten.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed places: parse json: %w", err)
	}

	rows := make([]PlaceSeed, 0, len(data))
	for i, item := range data {
		alias := strings.ToLower(strings.TrimSpace(item.Alias))
		if alias == "" {
			return fmt.Errorf("seed places: item at index %d: alias cannot be empty", i+1)
		}

		address := strings.TrimSpace(item.Address)
		if address == "" {
			return fmt.Errorf("seed places: item %q at index %d: address cannot be empty", alias, i+1)
		}
		rows = append(rows, PlaceSeed{Alias: alias, Address: address})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO places (
		alias,
		address
	)
	VALUES (?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(p.Alias, p.Address); err != nil {
			return fmt.Errorf("seed places: insert alias=%q: %w", p.Alias, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}
