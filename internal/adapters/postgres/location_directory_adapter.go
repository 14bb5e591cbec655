package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LocationDirectoryAdapter resolves arrondissement ids through the
// administrative hierarchy (arrondissement -> department -> region) in one
// joined query per batch.
type LocationDirectoryAdapter struct {
	pool *pgxpool.Pool
}

func NewLocationDirectoryAdapter(pool *pgxpool.Pool) (*LocationDirectoryAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("location directory: pgx pool cannot be nil")
	}
	return &LocationDirectoryAdapter{pool: pool}, nil
}

func (a *LocationDirectoryAdapter) ResolveArrondissements(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := a.pool.Query(ctx, `
		SELECT a.id::text, a.name, d.name, r.name
		FROM arrondissements a
		JOIN departments d ON d.id = a.department_id
		JOIN regions r ON r.id = d.region_id
		WHERE a.id::text = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve arrondissements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, arrondissement, department, region string
		if err := rows.Scan(&id, &arrondissement, &department, &region); err != nil {
			return nil, fmt.Errorf("scan arrondissement row: %w", err)
		}
		names[id] = fmt.Sprintf("%s, %s, %s", arrondissement, department, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate arrondissement rows: %w", err)
	}

	// Unknown locators are simply absent from the map; the builder leaves
	// those locations empty.
	return names, nil
}
