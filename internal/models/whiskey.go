package models

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

// Whiskey is a shared catalog item. Collection entries and ratings reference it.
type Whiskey struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Distillery  string    `json:"distillery" db:"distillery"`
	Type        string    `json:"type" db:"type"`
	Country     string    `json:"country" db:"country"`
	Region      *string   `json:"region" db:"region"`
	Age         *int      `json:"age" db:"age"`
	ABV         *float64  `json:"abv" db:"abv"`
	Price       *float64  `json:"price" db:"price"`
	Description *string   `json:"description" db:"description"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// WhiskeyAttrs holds the writable catalog fields.
// On update a nil required field is left untouched. Optional fields follow
// nullable semantics: unspecified keeps the stored value, null clears it.
type WhiskeyAttrs struct {
	Name        *string
	Distillery  *string
	Type        *string
	Country     *string
	Region      nullable.Nullable[string]
	Age         nullable.Nullable[int]
	ABV         nullable.Nullable[float64]
	Price       nullable.Nullable[float64]
	Description nullable.Nullable[string]
	ImageURL    nullable.Nullable[string]
}

// WhiskeyFilter narrows a catalog search. Empty fields are ignored.
type WhiskeyFilter struct {
	Query   string
	Type    string
	Country string
}
