package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user profile document.
//
// Profiles are created from whatever the client submits after a Firebase
// sign-in; like Artifact, unrecognized fields ride in the inline Extra map.
// The email is the identity used for ownership checks on artifact endpoints.
type User struct {
	ID       primitive.ObjectID     `bson:"_id,omitempty" json:"-"`
	Email    string                 `bson:"email,omitempty" json:"-"`
	Name     string                 `bson:"name,omitempty" json:"-"`
	PhotoURL string                 `bson:"photoURL,omitempty" json:"-"`
	Extra    map[string]interface{} `bson:",inline" json:"-"`
}

// MarshalJSON flattens the known fields and the Extra map into one JSON
// object, mirroring the shape of the stored document.
func (u User) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(u.Extra)+4)
	for k, v := range u.Extra {
		doc[k] = v
	}
	if !u.ID.IsZero() {
		doc["_id"] = u.ID.Hex()
	}
	if u.Email != "" {
		doc["email"] = u.Email
	}
	if u.Name != "" {
		doc["name"] = u.Name
	}
	if u.PhotoURL != "" {
		doc["photoURL"] = u.PhotoURL
	}
	return json.Marshal(doc)
}

// UnmarshalJSON splits an incoming JSON object into the known fields and the
// Extra map, preserving unrecognized keys.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["_id"].(string); ok {
		if id, err := primitive.ObjectIDFromHex(v); err == nil {
			u.ID = id
		}
		delete(raw, "_id")
	}
	if v, ok := raw["email"].(string); ok {
		u.Email = v
		delete(raw, "email")
	}
	if v, ok := raw["name"].(string); ok {
		u.Name = v
		delete(raw, "name")
	}
	if v, ok := raw["photoURL"].(string); ok {
		u.PhotoURL = v
		delete(raw, "photoURL")
	}
	if len(raw) > 0 {
		u.Extra = raw
	}
	return nil
}
