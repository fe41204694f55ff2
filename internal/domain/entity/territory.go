package entity

type Territory struct {
	ID              uint     `json:"id" gorm:"primaryKey"`
	Name            string   `json:"name" gorm:"uniqueIndex;not null"`
	Code            string   `json:"code" gorm:"not null"`
	GeoJSON         string   `json:"geojson,omitempty" gorm:"column:geojson;type:text"`
	Area            *float64 `json:"area,omitempty"`
	CenterLatitude  *float64 `json:"centerLatitude,omitempty"`
	CenterLongitude *float64 `json:"centerLongitude,omitempty"`
	Description     string   `json:"description,omitempty" gorm:"type:text"`
}

func (Territory) TableName() string {
	return "territories"
}

// Center returns the territory center when both coordinates are known.
func (t Territory) Center() (lat, lon float64, ok bool) {
	if t.CenterLatitude == nil || t.CenterLongitude == nil {
		return 0, 0, false
	}
	return *t.CenterLatitude, *t.CenterLongitude, true
}
