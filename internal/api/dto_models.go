package api

import "go.mongodb.org/mongo-driver/mongo"

// Write endpoints return the database acknowledgment rather than the stored
// document, so the DTOs below mirror the driver's result structs with the
// field names clients already consume.

// InsertResult is the response body for insert operations.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

func newInsertResult(res *mongo.InsertOneResult) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

// UpdateResult is the response body for update/upsert operations. A plain
// update acknowledges with upsertedId null rather than omitting the field.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

func newUpdateResult(res *mongo.UpdateResult) UpdateResult {
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

// DeleteResult is the response body for delete operations.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func newDeleteResult(res *mongo.DeleteResult) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// LikeToggleResponse is the response body for the like toggle endpoint.
// Liked reports the new membership state, not the prior one.
type LikeToggleResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}
