package port

import "context"

// LocationDirectoryPort resolves arrondissement locators into human-readable
// "Arrondissement, Department, Region" chains. Batched so the collection
// builder does one lookup per build instead of one per record.
type LocationDirectoryPort interface {
	ResolveArrondissements(ctx context.Context, ids []string) (map[string]string, error)
}
