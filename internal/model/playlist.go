package model

// ItemKind classifies one parsed playlist line.
type ItemKind string

const (
	ItemSale    ItemKind = "SALE"
	ItemRent    ItemKind = "RENT"
	ItemMessage ItemKind = "MSG"
)

// Item is the parsed, typed form of one playlist line before resolution.
// Exactly one of Ref or Message is populated, determined by Kind.
type Item struct {
	Kind ItemKind `json:"kind"`

	// Ref is the raw property reference for SALE/RENT items, taken from the
	// line content before any trailing comment.
	Ref string `json:"ref,omitempty"`

	// Comment is the optional annotation after the first '#' on the line.
	// Cosmetic only; it is never surfaced in slideshow output.
	Comment string `json:"comment,omitempty"`

	// Message fields, populated only for MSG items.
	Message       string `json:"message,omitempty"`
	BgColor       string `json:"bgcolor,omitempty"`
	DisplayMillis int    `json:"display_millis,omitempty"`
}
