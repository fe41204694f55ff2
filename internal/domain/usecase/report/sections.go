package report

import (
	"fmt"
	"strings"
	"time"

	"turbo-api/internal/domain/model"
)

const (
	// HouseholdConsumptionKWh is the yearly consumption of one home used for the homes powered estimate
	HouseholdConsumptionKWh = 3500.0
	ProjectLifetimeYears    = 20

	generatedLayout = "02 Jan 2006, 15:04"
	unknownLocation = "Unknown"
)

type row struct {
	label string
	value string
}

type section struct {
	title string
	rows  []row
	text  string
}

// FileName returns the attachment name for a location, spaces become underscores.
func FileName(locationName string) string {
	name := strings.TrimSpace(locationName)
	if name == "" {
		name = unknownLocation
	}
	return "Turbo_Report_" + strings.ReplaceAll(name, " ", "_") + ".pdf"
}

func subtitle(data model.WindDataResponse) string {
	name := data.LocationName
	if strings.TrimSpace(name) == "" {
		name = unknownLocation
	}
	return "Site Assessment: " + name
}

func buildSections(data model.WindDataResponse, ratedPowerKW float64) []section {
	annual := data.EstimatedEnergyYield

	return []section{
		{
			title: "Executive Summary",
			rows: []row{
				{"Profitability Grade", data.Grade},
				{"Overall Score", fmt.Sprintf("%.1f/100", data.Score)},
				{"Financial Viability", data.FinancialViability},
				{"Average Wind Speed", fmt.Sprintf("%.2f m/s", data.WindSpeed)},
			},
		},
		{
			title: "Location Details",
			rows: []row{
				{"Location Name", data.LocationName},
				{"GPS Coordinates", formatCoordinates(data.Latitude, data.Longitude)},
				{"Territory", orDash(data.TerritoryCode)},
				{"Assessment Date", data.Timestamp},
			},
		},
		{
			title: "Wind Resource Analysis",
			rows: []row{
				{"Wind Speed", fmt.Sprintf("%.2f m/s", data.WindSpeed)},
				{"Wind Direction", fmt.Sprintf("%.0f°", data.WindDirection)},
				{"Temperature", fmt.Sprintf("%.1f°C", data.Temperature)},
				{"Atmospheric Pressure", fmt.Sprintf("%.0f hPa", data.Pressure)},
				{"Humidity", fmt.Sprintf("%.0f%%", data.Humidity)},
			},
		},
		{
			title: "Profitability Assessment",
			rows: []row{
				{"Profitability Grade", data.Grade},
				{"Profitability Score", fmt.Sprintf("%.2f/100", data.Score)},
				{"Capacity Factor", fmt.Sprintf("%.2f%%", data.CapacityFactor)},
				{"Financial Viability", data.FinancialViability},
			},
		},
		{
			title: "Energy Yield Projections",
			rows: []row{
				{"Annual Energy Yield", fmt.Sprintf("%.0f kWh/year", annual)},
				{"Daily Average", fmt.Sprintf("%.0f kWh/day", annual/365)},
				{"Monthly Average", fmt.Sprintf("%.0f kWh/month", annual/12)},
				{fmt.Sprintf("%d-Year Lifetime Yield", ProjectLifetimeYears), fmt.Sprintf("%.0f kWh", annual*ProjectLifetimeYears)},
				{"Homes Powered", fmt.Sprintf("%.0f homes", annual/HouseholdConsumptionKWh)},
				{"Turbine Configuration", formatRatedPower(ratedPowerKW)},
			},
		},
		{
			title: "Investment Recommendation",
			text:  data.Recommendation,
		},
	}
}

func formatCoordinates(lat, lon float64) string {
	ns, ew := "N", "E"
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lon < 0 {
		ew, lon = "W", -lon
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", lat, ns, lon, ew)
}

func formatRatedPower(kw float64) string {
	if kw >= 1000 {
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", kw/1000), "0"), ".") + " MW Rated Power"
	}
	return fmt.Sprintf("%.0f kW Rated Power", kw)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func generatedLine(now time.Time) string {
	return "Report Generated: " + now.Format(generatedLayout)
}
