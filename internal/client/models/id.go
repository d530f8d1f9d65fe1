package models

// docID is embedded in wire structs to accept both "_id" and "id".
type docID struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
}

func (d docID) value() string {
	if d.MongoID != "" {
		return d.MongoID
	}
	return d.ID
}
