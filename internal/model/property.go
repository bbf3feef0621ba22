package model

// Property is a row of the properties table. CostPerNight is stored in minor
// currency units (cents).
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Active            bool   `json:"active"`

	// AverageRating is computed by search and listing queries, not stored on
	// the table.
	AverageRating float64 `json:"average_rating"`
}
