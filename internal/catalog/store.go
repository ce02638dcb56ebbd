package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadFromDB loads the catalog from the courses table once at startup. The
// pool is closed before returning; the catalog never touches the database
// again after initialization.
func LoadFromDB(ctx context.Context, databaseURL string) (*Catalog, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	rows, err := pool.Query(ctx,
		`SELECT title, description, organization, skills, prerequisites,
		        price, difficulty, duration, roadmap
		 FROM courses
		 ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.Title, &e.Description, &e.Organization, &e.Skills,
			&e.Prerequisites, &e.Price, &e.Difficulty, &e.Duration, &e.Roadmap,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read course rows: %w", err)
	}

	return &Catalog{entries: entries}, nil
}
