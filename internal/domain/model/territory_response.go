package model

import "turbo-api/internal/domain/entity"

type TerritoryResponse struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Code               string   `json:"code"`
	GeoJSON            string   `json:"geojson,omitempty"`
	Area               *float64 `json:"area,omitempty"`
	CenterLatitude     *float64 `json:"centerLatitude,omitempty"`
	CenterLongitude    *float64 `json:"centerLongitude,omitempty"`
	Description        string   `json:"description,omitempty"`
	AverageWindSpeed   *float64 `json:"averageWindSpeed,omitempty"`
	ProfitabilityGrade string   `json:"profitabilityGrade,omitempty"`
}

func NewTerritoryResponse(t entity.Territory) TerritoryResponse {
	return TerritoryResponse{
		ID:              t.ID,
		Name:            t.Name,
		Code:            t.Code,
		GeoJSON:         t.GeoJSON,
		Area:            t.Area,
		CenterLatitude:  t.CenterLatitude,
		CenterLongitude: t.CenterLongitude,
		Description:     t.Description,
	}
}

// SamplingResult summarises one territory sampling run.
type SamplingResult struct {
	RequestID string   `json:"requestId"`
	Sampled   int      `json:"sampled"`
	Skipped   int      `json:"skipped"`
	Failed    []string `json:"failed,omitempty"`
}
