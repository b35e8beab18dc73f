package domain

type UpdateSource string

const (
	SourceHTTP UpdateSource = "http"
	SourceMQTT UpdateSource = "mqtt"
)

type PositionEvent struct {
	UniconID string       `json:"unicon_id"`
	Position Position     `json:"position"`
	Source   UpdateSource `json:"source"`
}
