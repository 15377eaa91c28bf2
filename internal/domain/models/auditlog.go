package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog is one entry written by the CMS when something changes.
// The dashboard only reads these; every field except the id is optional
// because older writers omitted some of them.
type AuditLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId,omitempty" json:"user_id,omitempty"`
	UserName   string             `bson:"userName,omitempty" json:"user_name,omitempty"`
	Action     string             `bson:"action,omitempty" json:"action,omitempty"`
	EntityType string             `bson:"entityType,omitempty" json:"entity_type,omitempty"`
	EntityID   string             `bson:"entityId,omitempty" json:"entity_id,omitempty"`
	EntityName string             `bson:"entityName,omitempty" json:"entity_name,omitempty"`
	Timestamp  *time.Time         `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}
