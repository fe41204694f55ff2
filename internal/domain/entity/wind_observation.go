package entity

import "time"

// WindObservation is a single provider reading for a coordinate, immutable once built.
type WindObservation struct {
	ID            string    `json:"id"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	LocationName  string    `json:"locationName"`
	WindSpeed     float64   `json:"windSpeed"`
	WindDirection float64   `json:"windDirection"`
	Temperature   float64   `json:"temperature"`
	Pressure      float64   `json:"pressure"`
	Humidity      float64   `json:"humidity"`
	TerritoryCode string    `json:"territoryCode,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
