package models

import "time"

// Rating is a user's score for a whiskey. At most one rating exists per (user, whiskey).
type Rating struct {
	ID        int64        `json:"id" db:"id"`
	UserID    int64        `json:"UserId" db:"user_id"`
	WhiskeyID int64        `json:"WhiskeyId" db:"whiskey_id"`
	Score     int          `json:"score" db:"score"`
	Nose      *int         `json:"nose" db:"nose"`
	Taste     *int         `json:"taste" db:"taste"`
	Finish    *int         `json:"finish" db:"finish"`
	Notes     *string      `json:"notes" db:"notes"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time    `json:"updatedAt" db:"updated_at"`
	Whiskey   *Whiskey     `json:"Whiskey,omitempty" db:"whiskey"`
	User      *UserSummary `json:"User,omitempty" db:"user"`
}

// RatingAttrs are the fields overwritten on every (re-)rating.
type RatingAttrs struct {
	Score  int
	Nose   *int
	Taste  *int
	Finish *int
	Notes  *string
}
