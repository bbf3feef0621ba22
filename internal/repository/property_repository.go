package repository

import (
	"context"
	"database/sql"
	"math"

	"github.com/dpletzke/LightBnB/internal/consts"
	"github.com/dpletzke/LightBnB/internal/model"
	"github.com/dpletzke/LightBnB/internal/sqlbuilder"
)

type PropertyRepository interface {
	// Search runs the filtered listing search. A nil filters value or a zero
	// limit fall back to an unfiltered search with the default limit.
	Search(ctx context.Context, f *model.PropertySearchFilters, limit int) ([]*model.Property, error)
	// Create inserts a listing and backfills its generated id.
	Create(ctx context.Context, p *model.Property) error
}

type propertyRepo struct{ db *sql.DB }

func NewPropertyRepository(db *sql.DB) PropertyRepository { return &propertyRepo{db: db} }

const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description, properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night, properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms, properties.country, properties.street, properties.city, properties.province, properties.post_code, properties.active`

// buildSearchQuery assembles the search statement. Filter predicates are
// appended in a fixed order and only when their field is set, so the
// placeholder numbering follows directly from which filters are present.
func buildSearchQuery(f *model.PropertySearchFilters, limit int) (string, []any) {
	b := sqlbuilder.NewSelect(propertyColumns+", avg(property_reviews.rating) AS average_rating", "properties").
		Join("property_reviews ON property_reviews.property_id = properties.id")

	if f != nil {
		if f.City != "" {
			b.Where("properties.city LIKE ?", "%"+f.City+"%")
		}
		if f.OwnerID != 0 {
			b.Where("properties.owner_id = ?", f.OwnerID)
		}
		if f.MinimumPricePerNight != 0 {
			b.Where("properties.cost_per_night >= ?", toCents(f.MinimumPricePerNight))
		}
		if f.MaximumPricePerNight != 0 {
			b.Where("properties.cost_per_night <= ?", toCents(f.MaximumPricePerNight))
		}
	}

	b.GroupBy("properties.id")
	if f != nil && f.MinimumRating != 0 {
		b.Having("avg(property_reviews.rating) >= ?", f.MinimumRating)
	}
	b.OrderBy("properties.cost_per_night")

	if limit <= 0 {
		limit = consts.DefaultSearchLimit
	}
	b.Limit(limit)
	return b.SQL()
}

// toCents converts a dollar amount from the API surface into the minor units
// the cost_per_night column stores.
func toCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

func (r *propertyRepo) Search(ctx context.Context, f *model.PropertySearchFilters, limit int) ([]*model.Property, error) {
	query, args := buildSearchQuery(f, limit)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*model.Property
	for rows.Next() {
		p := &model.Property{}
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight, &p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms, &p.Country, &p.Street, &p.City, &p.Province, &p.PostCode, &p.Active, &p.AverageRating); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *propertyRepo) Create(ctx context.Context, p *model.Property) error {
	// Column list is the fixed owner-settable whitelist; id and active come
	// back from the database.
	query, args := sqlbuilder.NewInsert("properties").
		Set("owner_id", p.OwnerID).
		Set("title", p.Title).
		Set("description", p.Description).
		Set("thumbnail_photo_url", p.ThumbnailPhotoURL).
		Set("cover_photo_url", p.CoverPhotoURL).
		Set("cost_per_night", p.CostPerNight).
		Set("parking_spaces", p.ParkingSpaces).
		Set("number_of_bathrooms", p.NumberOfBathrooms).
		Set("number_of_bedrooms", p.NumberOfBedrooms).
		Set("country", p.Country).
		Set("street", p.Street).
		Set("city", p.City).
		Set("province", p.Province).
		Set("post_code", p.PostCode).
		Returning("id, active").
		SQL()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Active)
}
