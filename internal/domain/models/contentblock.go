package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentBlock is a reusable unit of content shared between pages.
type ContentBlock struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type,omitempty" json:"type,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`
}

// MediaItem is an uploaded file in the media library.
type MediaItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FileName  string             `bson:"fileName" json:"file_name"`
	URL       string             `bson:"url,omitempty" json:"url,omitempty"`
	Size      int64              `bson:"size,omitempty" json:"size,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
