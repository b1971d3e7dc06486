package model

// SlideRecord is one normalized slideshow entry. Sale properties, rental
// properties and timed messages all share this schema; the IsMessage and
// IsRental flags tell the front-end which shape it is looking at.
//
// Display fields are always strings and default to "" when unknown, never
// null. Images marshals as [] rather than null so the front-end can iterate
// without guarding.
type SlideRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       string   `json:"price"`
	Location    string   `json:"location"`
	Bedrooms    string   `json:"bedrooms"`
	Bathrooms   string   `json:"bathrooms"`
	Area        string   `json:"area"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	MainImage   string   `json:"mainImage"`
	Pool        string   `json:"pool,omitempty"`
	Reference   string   `json:"reference,omitempty"`

	IsMessage bool `json:"isMessage"`
	IsRental  bool `json:"isRental"`

	// Message-only fields.
	BackgroundColor string `json:"backgroundColor,omitempty"`
	DisplayTime     int    `json:"displayTime,omitempty"`

	// Rental-only fields.
	Sleeps   string `json:"sleeps,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// BuildResponse is the payload returned by the slideshow build endpoint.
// On failure Success is false, Error carries the reason and Data is empty.
type BuildResponse struct {
	Success bool          `json:"success"`
	Data    []SlideRecord `json:"data"`
	Count   int           `json:"count"`
	Error   string        `json:"error,omitempty"`
}
