package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner/internal/domain"
	"trip-planner/internal/ports"
)

// SQLite-backed implementation of the PlaceRepository port.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

// Look up a saved place by alias. Aliases are stored lowercased, so the
// lookup is case-insensitive.
func (s *SqlitePlaceRepository) FindByAlias(ctx context.Context, alias string) (*domain.Place, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	alias = strings.ToLower(strings.TrimSpace(alias))
	if alias == "" {
		return nil, ports.ErrPlaceNotFound
	}

	query := `
	SELECT
		alias,
		address
	FROM places
	WHERE alias = ?;
	`

	var p domain.Place
	if err := s.DB.QueryRowContext(ctx, query, alias).Scan(&p.Alias, &p.Address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place %q: query places table: %w", alias, err)
	}

	return &p, nil
}

// Return all saved places ordered by alias.
func (s *SqlitePlaceRepository) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	query := `
	SELECT
		alias,
		address
	FROM places
	ORDER BY alias;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]*domain.Place, 0, 16)
	for rows.Next() {
		var p domain.Place
		if err := rows.Scan(&p.Alias, &p.Address); err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}
		places = append(places, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}
