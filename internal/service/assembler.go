package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"datafeed/internal/model"
	"datafeed/internal/utils"
)

// SaleLookup resolves a numeric playlist reference to a sale property.
// A (nil, nil) return means no match.
type SaleLookup func(ctx context.Context, ref string) (*model.SaleProperty, error)

// RentalLookup resolves an alphanumeric playlist reference to a rental
// property. A (nil, nil) return means no match.
type RentalLookup func(ctx context.Context, ref string) (*model.RentalProperty, error)

// BuildError records one playlist item that failed to resolve. Item-level
// failures never abort a build; they are collected for diagnostics while
// the rest of the playlist keeps going.
type BuildError struct {
	Kind model.ItemKind
	Ref  string
	Err  error
}

// Assembler resolves parsed playlist items into slideshow records.
//
// Unresolved references are dropped without surfacing an error to the
// caller: a stale reference must never break the slideshow. Lookup errors
// and timeouts are logged and recorded, then the build continues.
type Assembler struct {
	sales         SaleLookup
	rentals       RentalLookup
	lookupTimeout time.Duration
	largeDir      string
	displayDir    string
}

// NewAssembler creates a new assembler. lookupTimeout bounds each property
// lookup; zero or negative means the 5s default.
func NewAssembler(sales SaleLookup, rentals RentalLookup, lookupTimeout time.Duration, largeDir, displayDir string) *Assembler {
	if lookupTimeout <= 0 {
		lookupTimeout = 5 * time.Second
	}
	if largeDir == "" {
		largeDir = "pics_lg"
	}
	if displayDir == "" {
		displayDir = "pics"
	}
	return &Assembler{
		sales:         sales,
		rentals:       rentals,
		lookupTimeout: lookupTimeout,
		largeDir:      largeDir,
		displayDir:    displayDir,
	}
}

// Build resolves items in input order and returns the records that could be
// produced, plus the failures encountered along the way. Message items
// always produce exactly one record; their "msg-<n>" id is positional,
// counting records already emitted, so earlier skips shift it.
func (a *Assembler) Build(ctx context.Context, items []model.Item) ([]model.SlideRecord, []BuildError) {
	records := make([]model.SlideRecord, 0, len(items))
	var failures []BuildError

	for _, item := range items {
		switch item.Kind {
		case model.ItemSale:
			prop, err := a.lookupSale(ctx, item.Ref)
			if err != nil {
				log.Printf("Error resolving sale property %s: %v", item.Ref, err)
				failures = append(failures, BuildError{Kind: item.Kind, Ref: item.Ref, Err: err})
				continue
			}
			if prop == nil {
				// Silently skip if property not found
				continue
			}
			records = append(records, a.saleRecord(prop))

		case model.ItemRent:
			rental, err := a.lookupRental(ctx, item.Ref)
			if err != nil {
				log.Printf("Error resolving rental property %s: %v", item.Ref, err)
				failures = append(failures, BuildError{Kind: item.Kind, Ref: item.Ref, Err: err})
				continue
			}
			if rental == nil {
				continue
			}
			records = append(records, a.rentalRecord(rental))

		case model.ItemMessage:
			records = append(records, messageRecord(item, len(records)))
		}
	}

	return records, failures
}

func (a *Assembler) lookupSale(ctx context.Context, ref string) (*model.SaleProperty, error) {
	ctx, cancel := context.WithTimeout(ctx, a.lookupTimeout)
	defer cancel()
	return a.sales(ctx, ref)
}

func (a *Assembler) lookupRental(ctx context.Context, ref string) (*model.RentalProperty, error) {
	ctx, cancel := context.WithTimeout(ctx, a.lookupTimeout)
	defer cancel()
	return a.rentals(ctx, ref)
}

func (a *Assembler) saleRecord(prop *model.SaleProperty) model.SlideRecord {
	id := strconv.FormatInt(prop.ID, 10)
	if prop.PropCode != nil && *prop.PropCode != "" {
		id = *prop.PropCode
	}

	// Gallery first, then the single-image column as fallback. Stored
	// paths point at the full-size directory; the slideshow serves the
	// display-size copies.
	var images []string
	mainImage := ""
	if prop.ImageGallery != nil {
		for _, img := range utils.DecodeGallery(*prop.ImageGallery) {
			images = append(images, a.rewriteImagePath(img))
		}
		if len(images) > 0 {
			mainImage = images[0]
		}
	}
	if mainImage == "" && prop.Image != nil && *prop.Image != "" {
		mainImage = a.rewriteImagePath(*prop.Image)
		images = []string{mainImage}
	}
	if images == nil {
		images = []string{}
	}

	pool := "No"
	if prop.Pool {
		pool = "Yes"
	}

	return model.SlideRecord{
		ID:          id,
		Title:       strOr(prop.Name, "Untitled Property"),
		Price:       FormatSalePrice(prop.Price),
		Location:    strOr(prop.AreaName, "Location not specified"),
		Bedrooms:    intStr(prop.Bedrooms),
		Bathrooms:   intStr(prop.Bathrooms),
		Area:        id,
		Type:        strOr(prop.TypeDesc, "Property"),
		Description: strOr(prop.Descr, strOr(prop.DescrLong, strOr(prop.DescrShort, "No description available."))),
		Images:      images,
		MainImage:   mainImage,
		Pool:        pool,
		Reference:   id,
	}
}

func (a *Assembler) rentalRecord(rental *model.RentalProperty) model.SlideRecord {
	currency := "EUR"
	if rental.RCurrency != nil && *rental.RCurrency != "" {
		currency = *rental.RCurrency
	}

	// Rental images live in a single column, already display-sized.
	images := []string{}
	mainImage := ""
	if rental.RImage != nil && *rental.RImage != "" {
		mainImage = *rental.RImage
		images = []string{mainImage}
	}

	bedrooms := intStr(rental.RBeds)
	if bedrooms == "" {
		bedrooms = intStr(rental.Bedrooms)
	}

	pool := "No"
	if rental.Pool {
		pool = "Resort Pool"
	}

	return model.SlideRecord{
		ID:          rental.Ref,
		Title:       strOr(rental.Name, "Rental Property "+rental.Ref),
		Price:       FormatRentalPrice(rental.RPrice, currency),
		Location:    strOr(rental.AreaName, "Algarve"),
		Bedrooms:    bedrooms,
		Bathrooms:   "",
		Area:        rental.Ref,
		Type:        strOr(rental.TypeDesc, "Rental"),
		Description: strOr(rental.RDescrEN, strOr(rental.Descr, "No description available.")),
		Images:      images,
		MainImage:   mainImage,
		Pool:        pool,
		Reference:   rental.Ref,
		IsRental:    true,
		Sleeps:      intStr(rental.Sleeps),
		Duration:    "7 nights",
	}
}

func messageRecord(item model.Item, position int) model.SlideRecord {
	return model.SlideRecord{
		ID:              "msg-" + strconv.Itoa(position),
		Title:           item.Message,
		Type:            "Message",
		Description:     item.Message,
		Images:          []string{},
		IsMessage:       true,
		BackgroundColor: item.BgColor,
		DisplayTime:     item.DisplayMillis,
	}
}

func (a *Assembler) rewriteImagePath(path string) string {
	return strings.ReplaceAll(path, a.largeDir, a.displayDir)
}

func strOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

func intStr(n *int) string {
	if n == nil || *n == 0 {
		return ""
	}
	return strconv.Itoa(*n)
}
