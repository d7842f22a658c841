package models

// Activity types published when a user mutates their collection or ratings.
const (
	ActivityCollectionAdded   = "collection.added"
	ActivityCollectionUpdated = "collection.updated"
	ActivityCollectionRemoved = "collection.removed"
	ActivityRatingUpserted    = "rating.upserted"
	ActivityRatingDeleted     = "rating.deleted"
)

// Activity represents a user action on an ownership-scoped resource.
type Activity struct {
	ActivityID string `json:"activity_id"` // ActivityID is a unique identifier for the event.
	Type       string `json:"type"`        // Type is one of the Activity* constants.
	UserID     int64  `json:"user_id"`     // UserID is the acting user.
	WhiskeyID  int64  `json:"whiskey_id"`  // WhiskeyID is the referenced catalog item, zero when unknown.
	EntityID   int64  `json:"entity_id"`   // EntityID is the collection entry or rating id.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix time (seconds) of the action.
}
