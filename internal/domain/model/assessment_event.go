package model

// AssessmentEvent is published after a fresh wind data lookup has been scored.
type AssessmentEvent struct {
	EventID       string           `json:"eventId"`
	OccurredAt    string           `json:"occurredAt"`
	CacheKey      string           `json:"cacheKey"`
	TerritoryCode string           `json:"territoryCode,omitempty"`
	Data          WindDataResponse `json:"data"`
}
