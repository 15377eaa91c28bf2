package models

import "time"

// Note is one entry of the dashboard notes widget. Notes belong to an
// anonymous browser owner id kept in a signed cookie.
type Note struct {
	ID        string    `bson:"_id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"-"`
	Text      string    `bson:"text" json:"text"`
	Done      bool      `bson:"done" json:"done"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
