// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered CMS account. The dashboard only counts these.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DisplayName string             `bson:"displayName" json:"display_name"`
	Email       string             `bson:"email" json:"email"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"` // admin | editor | viewer
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}
