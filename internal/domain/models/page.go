package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageStatus is the publication state of a CMS page.
type PageStatus string

const (
	PageStatusDraft     PageStatus = "Draft"
	PageStatusPublished PageStatus = "Published"
	PageStatusReview    PageStatus = "Review"
)

// PageStatuses lists every status in display order.
var PageStatuses = []PageStatus{PageStatusDraft, PageStatusPublished, PageStatusReview}

// DefaultPageStatus is used for pages whose status is missing or unknown.
const DefaultPageStatus = PageStatusDraft

// ParsePageStatus maps a stored status string onto a known status.
// Anything that is not an exact match falls back to DefaultPageStatus.
func ParsePageStatus(s string) PageStatus {
	switch PageStatus(s) {
	case PageStatusDraft, PageStatusPublished, PageStatusReview:
		return PageStatus(s)
	default:
		return DefaultPageStatus
	}
}

// Page is a CMS page document.
type Page struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug,omitempty" json:"slug,omitempty"`
	Status    PageStatus         `bson:"status,omitempty" json:"status,omitempty"`
	Author    string             `bson:"author,omitempty" json:"author,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`
}
