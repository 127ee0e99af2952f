package entities

// Pokemon is the single resource served by the API. ID is supplied by the
// caller and is not guaranteed to be unique across stored records.
type Pokemon struct {
	ID      int    `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Type    string `json:"type" bson:"type"`
	Ability string `json:"ability" bson:"ability"`
	Level   int    `json:"level" bson:"level"`
}
