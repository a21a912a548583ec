package models

// Store acknowledgments, mirroring the shapes the document store reports.
// Mutating endpoints return these verbatim rather than the updated document.

// InsertAck acknowledges a single-document insert.
type InsertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
}

// UpdateAck acknowledges a single-document update.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteAck acknowledges a single-document delete.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
