package postgres

import (
	"context"
	"fmt"
	"time"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// fetchTimeout bounds one kind's snapshot fetch. The collection builder
// treats a timeout like any other per-kind failure.
const fetchTimeout = 5 * time.Second

// RecordSourceAdapter fetches one cadastral kind's raw rows and surfaces
// them as flat field mappings. One instance per kind; the per-kind SQL is
// the only thing that differs.
type RecordSourceAdapter struct {
	pool  *pgxpool.Pool
	kind  domain.Kind
	query string
}

func newRecordSourceAdapter(pool *pgxpool.Pool, kind domain.Kind, query string) (*RecordSourceAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("%s source: pgx pool cannot be nil", kind)
	}
	return &RecordSourceAdapter{pool: pool, kind: kind, query: query}, nil
}

func NewAllotmentSource(pool *pgxpool.Pool) (*RecordSourceAdapter, error) {
	return newRecordSourceAdapter(pool, domain.KindAllotment, `
		SELECT allotment_code, label, summary, details, area_sqm, unit_price,
		       price_per_sqm, currency, for_sale, for_rent, rent_price,
		       buildable, apartments_approved,
		       image_1, image_2, image_3, image_4, image_5, image_6,
		       video_url, street_address, arrondissement_id,
		       published, featured, created_at, updated_at
		FROM allotments
		ORDER BY created_at DESC`)
}

func NewParcelSource(pool *pgxpool.Pool) (*RecordSourceAdapter, error) {
	return newRecordSourceAdapter(pool, domain.KindParcel, `
		SELECT parcel_number, label, summary, details, surface, price,
		       price_sqm, currency, for_sale, for_rent, rent_price, buildable,
		       image_1, image_2, image_3, image_4, image_5, image_6,
		       street_address, arrondissement_id,
		       published, featured, created_at, updated_at
		FROM parcels
		ORDER BY created_at DESC`)
}

func NewBuildingSource(pool *pgxpool.Pool) (*RecordSourceAdapter, error) {
	return newRecordSourceAdapter(pool, domain.KindBuilding, `
		SELECT building_code, name, summary, details, usage_category,
		       built_area, price, price_sqm, currency, for_sale, for_rent,
		       rent_price, bedrooms, bathrooms, kitchens, living_rooms,
		       floors_count, units_count, parking_spaces,
		       has_elevator, has_generator, has_parking,
		       photo_1, photo_2, photo_3, photo_4, photo_5, photo_6,
		       video_url, street_address, arrondissement_id,
		       published, featured, created_at, updated_at
		FROM buildings
		ORDER BY created_at DESC`)
}

func NewInfrastructureSource(pool *pgxpool.Pool) (*RecordSourceAdapter, error) {
	return newRecordSourceAdapter(pool, domain.KindInfrastructure, `
		SELECT infra_code, name, summary, details, category, area_sqm, price,
		       currency, for_sale, for_rent, rent_price, parking_spaces,
		       has_generator, has_parking,
		       img_1, img_2, img_3, img_4, img_5, img_6,
		       arrondissement_id,
		       published, featured, created_at, updated_at
		FROM infrastructures
		ORDER BY created_at DESC`)
}

func (a *RecordSourceAdapter) Kind() domain.Kind {
	return a.kind
}

// Fetch returns the kind's current rows as flat field mappings, preserving
// query order.
func (a *RecordSourceAdapter) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	rows, err := a.pool.Query(ctx, a.query)
	if err != nil {
		return nil, fmt.Errorf("query %s rows: %w", a.kind, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	records := make([]domain.RawRecord, 0)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read %s row: %w", a.kind, err)
		}
		record := make(domain.RawRecord, len(fields))
		for i, fd := range fields {
			record[fd.Name] = values[i]
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", a.kind, err)
	}

	return records, nil
}
