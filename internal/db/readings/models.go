package readings

import (
	"time"
)

// UtilizationReading is one persisted observation. Weekday and Hour are derived
// from RecordedAt at write time and are never recomputed.
type UtilizationReading struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RecordedAt time.Time `json:"timestamp" gorm:"column:recorded_at;not null;index:idx_recorded_at"`
	Weekday    int       `json:"weekday" gorm:"not null;index:idx_weekday_hour;check:chk_weekday,weekday BETWEEN 0 AND 6"`
	Hour       int       `json:"hour" gorm:"not null;index:idx_weekday_hour;check:chk_hour,hour BETWEEN 0 AND 23"`
	Percentage int       `json:"percentage" gorm:"not null;check:chk_percentage,percentage BETWEEN 0 AND 100"`
	Level      string    `json:"level" gorm:"not null"`

	Temperature   *float64 `json:"temperature" gorm:"column:temperature"`
	Precipitation *float64 `json:"precipitation" gorm:"column:precipitation"`
	CloudCover    *float64 `json:"cloudCover" gorm:"column:cloud_cover"`
	IsRaining     *bool    `json:"isRaining" gorm:"column:is_raining"`
}

func (UtilizationReading) TableName() string {
	return "utilization_readings"
}

// BucketStats summarises one (weekday, hour) bucket.
type BucketStats struct {
	Weekday       int
	Hour          int
	AvgPercentage float64
	MaxPercentage int
	MinPercentage int
	DataPoints    int64
}

// DateCount is a local calendar date (YYYY-MM-DD) with its row count.
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
