package repository

import (
	"context"
	"database/sql"

	"github.com/dpletzke/LightBnB/internal/consts"
	"github.com/dpletzke/LightBnB/internal/model"
	"github.com/dpletzke/LightBnB/internal/sqlbuilder"
)

type ReservationRepository interface {
	// ListForGuest returns the guest's reservations joined with the reserved
	// property and its average review rating, oldest start date first.
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]*model.GuestReservation, error)
}

type reservationRepo struct{ db *sql.DB }

func NewReservationRepository(db *sql.DB) ReservationRepository { return &reservationRepo{db: db} }

const reservationColumns = `reservations.id, reservations.guest_id, reservations.property_id, reservations.start_date, reservations.end_date`

func buildGuestReservationsQuery(guestID int64, limit int) (string, []any) {
	b := sqlbuilder.NewSelect(reservationColumns+", "+propertyColumns+", avg(property_reviews.rating) AS average_rating", "reservations").
		Join("properties ON reservations.property_id = properties.id").
		Join("property_reviews ON property_reviews.property_id = properties.id").
		Where("reservations.guest_id = ?", guestID).
		GroupBy("properties.id, reservations.id").
		OrderBy("reservations.start_date")

	if limit <= 0 {
		limit = consts.DefaultReservationLimit
	}
	b.Limit(limit)
	return b.SQL()
}

func (r *reservationRepo) ListForGuest(ctx context.Context, guestID int64, limit int) ([]*model.GuestReservation, error) {
	query, args := buildGuestReservationsQuery(guestID, limit)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*model.GuestReservation
	for rows.Next() {
		g := &model.GuestReservation{}
		p := &g.Property
		if err := rows.Scan(&g.ID, &g.GuestID, &g.PropertyID, &g.StartDate, &g.EndDate, &p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight, &p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms, &p.Country, &p.Street, &p.City, &p.Province, &p.PostCode, &p.Active, &p.AverageRating); err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}
