package models

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

// BottleStatus describes the state of a bottle in a collection.
type BottleStatus string

const (
	BottleSealed BottleStatus = "sealed"
	BottleOpened BottleStatus = "opened"
	BottleEmpty  BottleStatus = "empty"
)

// CollectionEntry is a whiskey owned by a user. At most one entry exists per (user, whiskey).
type CollectionEntry struct {
	ID            int64        `json:"id" db:"id"`
	UserID        int64        `json:"UserId" db:"user_id"`
	WhiskeyID     int64        `json:"WhiskeyId" db:"whiskey_id"`
	PurchaseDate  *time.Time   `json:"purchaseDate" db:"purchase_date"`
	PurchasePrice *float64     `json:"purchasePrice" db:"purchase_price"`
	Notes         *string      `json:"notes" db:"notes"`
	BottleStatus  BottleStatus `json:"bottleStatus" db:"bottle_status"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time    `json:"updatedAt" db:"updated_at"`
	Whiskey       *Whiskey     `json:"Whiskey,omitempty" db:"whiskey"`
}

// CollectionAttrs holds the user-editable fields of a collection entry.
// On update an unspecified field keeps its value and an explicit null clears it.
// BottleStatus is never null; nil keeps the current status.
type CollectionAttrs struct {
	PurchaseDate  nullable.Nullable[time.Time]
	PurchasePrice nullable.Nullable[float64]
	Notes         nullable.Nullable[string]
	BottleStatus  *BottleStatus
}
