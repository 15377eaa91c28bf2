package docstore

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoID is returned by RequireID when a document has no usable _id.
var ErrNoID = errors.New("document has no _id")

// Record is one raw document. Field accessors are lenient: a missing field or
// a field of the wrong type reads as absent rather than failing the read, so
// one malformed document cannot break a whole dashboard.
type Record bson.M

// ID returns the document id as a string: the hex form for ObjectIDs, the
// value itself for string ids, fmt's rendering for anything else.
// It is empty when the document has no _id.
func (r Record) ID() string {
	switch v := r["_id"].(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// RequireID is ID but reports ErrNoID instead of an empty string.
func (r Record) RequireID() (string, error) {
	id := r.ID()
	if id == "" {
		return "", ErrNoID
	}
	return id, nil
}

// String returns field as a string, or "" when it is absent or not a string.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Time returns field as a time when it holds a BSON datetime or timestamp.
// Strings, numbers and everything else report false: only values the store
// itself typed as time are trusted.
func (r Record) Time(field string) (time.Time, bool) {
	switch v := r[field].(type) {
	case primitive.DateTime:
		return v.Time().UTC(), true
	case time.Time:
		return v, !v.IsZero()
	case primitive.Timestamp:
		return time.Unix(int64(v.T), 0).UTC(), true
	default:
		return time.Time{}, false
	}
}
