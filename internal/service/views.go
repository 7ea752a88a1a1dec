package service

import (
	"time"

	"ulascansenturk/occupancy-service/internal/db/readings"
)

const noDataMessage = "No data available yet"

type LatestView struct {
	Percentage  *int       `json:"percentage"`
	Level       *string    `json:"level"`
	LastUpdated *time.Time `json:"lastUpdated"`
	Temperature *float64   `json:"temperature,omitempty"`
	IsRaining   *bool      `json:"isRaining,omitempty"`
	Message     string     `json:"message,omitempty"`
}

type HourlyPoint struct {
	Hour       int     `json:"hour"`
	Percentage *int    `json:"percentage"`
	Level      *string `json:"level"`
	DataPoints int     `json:"dataPoints"`
}

type HourlyView struct {
	Date       string        `json:"date"`
	HourlyData []HourlyPoint `json:"hourlyData"`
	HasData    bool          `json:"hasData"`
	Message    string        `json:"message,omitempty"`
}

type RawReading struct {
	Time        string    `json:"time"`
	Timestamp   time.Time `json:"timestamp"`
	Hour        int       `json:"hour"`
	Minute      int       `json:"minute"`
	Percentage  int       `json:"percentage"`
	Level       string    `json:"level"`
	Temperature *float64  `json:"temperature"`
	IsRaining   *bool     `json:"isRaining"`
}

type RawDayView struct {
	Date          string       `json:"date"`
	DateFormatted string       `json:"dateFormatted"`
	IsToday       bool         `json:"isToday"`
	Readings      []RawReading `json:"readings"`
	Count         int          `json:"count"`
}

type HeatmapCell struct {
	Hour          int      `json:"hour"`
	AvgPercentage *float64 `json:"avgPercentage"`
	MaxPercentage *int     `json:"maxPercentage"`
	MinPercentage *int     `json:"minPercentage"`
	DataPoints    int64    `json:"dataPoints"`
}

type HeatmapDay struct {
	Weekday     int           `json:"weekday"`
	WeekdayName string        `json:"weekdayName"`
	Hours       []HeatmapCell `json:"hours"`
}

type HeatmapView struct {
	Weeks     int          `json:"weeks"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Data      []HeatmapDay `json:"data"`
}

type AvailableDatesView struct {
	Dates []readings.DateCount `json:"dates"`
	Count int                  `json:"count"`
}
