package domain

import "errors"

// ErrNotFound signals that no record matches the requested unicon id. Any
// other repository error means the store itself failed.
var ErrNotFound = errors.New("unicon id not found")

type Position struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

type UniconPosition struct {
	UniconID string   `json:"unicon_id" bson:"unicon_id"`
	Position Position `json:"position" bson:"position"`
}
