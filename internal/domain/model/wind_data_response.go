package model

import (
	"time"

	"turbo-api/internal/domain/entity"
)

// TimestampLayout is used for the observation timestamp in responses.
const TimestampLayout = time.RFC3339Nano

// WindDataResponse combines a wind observation with its profitability assessment.
type WindDataResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	LocationName         string  `json:"locationName"`
	WindSpeed            float64 `json:"windSpeed"`
	WindDirection        float64 `json:"windDirection"`
	Temperature          float64 `json:"temperature"`
	Pressure             float64 `json:"pressure"`
	Humidity             float64 `json:"humidity"`
	Timestamp            string  `json:"timestamp"`
	TerritoryCode        string  `json:"territoryCode,omitempty"`
	Grade                string  `json:"grade"`
	Score                float64 `json:"score"`
	FinancialViability   string  `json:"financialViability"`
	EstimatedEnergyYield float64 `json:"estimatedEnergyYield"`
	CapacityFactor       float64 `json:"capacityFactor"`
	Recommendation       string  `json:"recommendation"`
}

func NewWindDataResponse(obs entity.WindObservation, assessment entity.ProfitabilityAssessment) *WindDataResponse {
	return &WindDataResponse{
		Latitude:             obs.Latitude,
		Longitude:            obs.Longitude,
		LocationName:         obs.LocationName,
		WindSpeed:            obs.WindSpeed,
		WindDirection:        obs.WindDirection,
		Temperature:          obs.Temperature,
		Pressure:             obs.Pressure,
		Humidity:             obs.Humidity,
		Timestamp:            obs.Timestamp.Format(TimestampLayout),
		TerritoryCode:        obs.TerritoryCode,
		Grade:                string(assessment.Grade),
		Score:                assessment.Score,
		FinancialViability:   string(assessment.FinancialViability),
		EstimatedEnergyYield: assessment.EstimatedEnergyYield,
		CapacityFactor:       assessment.CapacityFactor,
		Recommendation:       assessment.Recommendation,
	}
}

// CacheEntry is a combined response together with the instant it was stored.
type CacheEntry struct {
	Data      WindDataResponse `json:"data"`
	CreatedAt time.Time        `json:"createdAt"`
}

// IsFresh reports whether the entry is younger than window at now.
func (e CacheEntry) IsFresh(now time.Time, window time.Duration) bool {
	return now.Sub(e.CreatedAt) < window
}
