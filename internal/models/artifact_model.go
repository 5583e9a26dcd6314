package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Artifact represents a user-submitted artifact document.
//
// Clients may attach arbitrary descriptive fields (artifact type, historical
// context, image URL, ...) beyond the ones the backend acts on. Those extra
// fields ride in the inline Extra map so they are stored and returned as-is.
type Artifact struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"-"`
	Name       string                 `bson:"name,omitempty" json:"-"`
	AdderEmail string                 `bson:"adderEmail,omitempty" json:"-"`
	LikedBy    []string               `bson:"likedBy,omitempty" json:"-"`
	Extra      map[string]interface{} `bson:",inline" json:"-"`
}

// LikeCount is the derived like count: the size of the likedBy set.
// It is computed at read time, never stored.
func (a *Artifact) LikeCount() int {
	return len(a.LikedBy)
}

// HasLiked reports whether email is a member of the likedBy set.
func (a *Artifact) HasLiked(email string) bool {
	for _, e := range a.LikedBy {
		if e == email {
			return true
		}
	}
	return false
}

// Document flattens the known fields and the Extra map into one map,
// mirroring the shape of the stored document. Callers may add derived
// fields (such as a like count) before serializing.
func (a *Artifact) Document() map[string]interface{} {
	doc := make(map[string]interface{}, len(a.Extra)+4)
	for k, v := range a.Extra {
		doc[k] = v
	}
	if !a.ID.IsZero() {
		doc["_id"] = a.ID.Hex()
	}
	if a.Name != "" {
		doc["name"] = a.Name
	}
	if a.AdderEmail != "" {
		doc["adderEmail"] = a.AdderEmail
	}
	if a.LikedBy != nil {
		doc["likedBy"] = a.LikedBy
	}
	return doc
}

// MarshalJSON serializes the flattened document.
func (a Artifact) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Document())
}

// UnmarshalJSON splits an incoming JSON object into the known fields and the
// Extra map. Unrecognized keys are preserved, not dropped, so an insert body
// round-trips to a superset of itself on readback.
func (a *Artifact) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["_id"].(string); ok {
		if id, err := primitive.ObjectIDFromHex(v); err == nil {
			a.ID = id
		}
		delete(raw, "_id")
	}
	if v, ok := raw["name"].(string); ok {
		a.Name = v
		delete(raw, "name")
	}
	if v, ok := raw["adderEmail"].(string); ok {
		a.AdderEmail = v
		delete(raw, "adderEmail")
	}
	if v, ok := raw["likedBy"].([]interface{}); ok {
		likedBy := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				likedBy = append(likedBy, s)
			}
		}
		a.LikedBy = likedBy
		delete(raw, "likedBy")
	}
	if len(raw) > 0 {
		a.Extra = raw
	}
	return nil
}
