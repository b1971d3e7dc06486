package model

import "time"

// SaleProperty is a row from the sales side of the prop table, joined with
// its ptype description. Numeric references ("6632") resolve to these.
type SaleProperty struct {
	ID           int64      `json:"id" db:"id"`
	PropCode     *string    `json:"propcode,omitempty" db:"propcode"`
	Name         *string    `json:"pname,omitempty" db:"pname"`
	Price        *float64   `json:"price,omitempty" db:"price"`
	AreaName     *string    `json:"area_name,omitempty" db:"area_name"`
	Bedrooms     *int       `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms    *int       `json:"bathrooms,omitempty" db:"bathrooms"`
	TypeDesc     *string    `json:"type,omitempty" db:"type_desc"`
	Descr        *string    `json:"descr,omitempty" db:"descr"`
	DescrLong    *string    `json:"descrlong,omitempty" db:"descrlong"`
	DescrShort   *string    `json:"descrshort,omitempty" db:"descrshort"`
	ImageGallery *string    `json:"-" db:"imagegallery"`
	Image        *string    `json:"image,omitempty" db:"image"`
	Pool         bool       `json:"pool" db:"pool"`
	Status       *string    `json:"status,omitempty" db:"status"`
	CreatedAt    *time.Time `json:"created_at,omitempty" db:"created_at"`
}

// RentalProperty is a row from the rental side of the prop table, keyed by
// the alphanumeric prop_ref ("DD203", "VL954").
type RentalProperty struct {
	Ref       string   `json:"prop_ref" db:"prop_ref"`
	Name      *string  `json:"pname,omitempty" db:"pname"`
	RPrice    *float64 `json:"rprice,omitempty" db:"rprice"`
	RCurrency *string  `json:"rcurrency,omitempty" db:"rcurrency"`
	AreaName  *string  `json:"area_name,omitempty" db:"area_name"`
	RBeds     *int     `json:"rbeds,omitempty" db:"rbeds"`
	Bedrooms  *int     `json:"bedrooms,omitempty" db:"bedrooms"`
	TypeDesc  *string  `json:"type,omitempty" db:"type_desc"`
	RDescrEN  *string  `json:"rdescr_en,omitempty" db:"rdescr_en"`
	Descr     *string  `json:"descr,omitempty" db:"descr"`
	Pool      bool     `json:"pool" db:"pool"`
	Sleeps    *int     `json:"rcomm_max,omitempty" db:"rcomm_max"`
	RImage    *string  `json:"rimage,omitempty" db:"rimage"`
}

// PropertyFilters narrows the property list endpoint.
type PropertyFilters struct {
	Status *string
	Type   *string
}

// PropertyListResponse is the paged property list payload.
type PropertyListResponse struct {
	Properties []SaleProperty `json:"properties"`
	Total      int            `json:"total"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// PropertyImage describes one image file found on disk for a property.
type PropertyImage struct {
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Alt       string `json:"alt"`
	Caption   string `json:"caption"`
}
