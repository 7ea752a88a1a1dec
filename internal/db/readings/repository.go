package readings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "ulascansenturk/occupancy-service/pkg/errors"
)

// ErrNoReadings is returned by QueryLatest when the table is empty.
var ErrNoReadings = errors.New("no readings stored yet")

type Repository interface {
	Insert(ctx context.Context, reading *UtilizationReading) error
	QueryRange(ctx context.Context, start, end time.Time) ([]UtilizationReading, error)
	QueryLatest(ctx context.Context) (*UtilizationReading, error)
	AggregateByWeekdayHour(ctx context.Context, since time.Time) ([]BucketStats, error)
	DistinctDates(ctx context.Context, loc *time.Location) ([]DateCount, error)
}

type ReadingSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ReadingSQLRepository{db: db}
}

// Migrate creates the readings table and its indices.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UtilizationReading{})
}

func (r *ReadingSQLRepository) Insert(ctx context.Context, reading *UtilizationReading) error {
	if err := validate(reading); err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "reading rejected", err)
	}

	if err := r.db.WithContext(ctx).Create(reading).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "insert reading", err)
	}
	return nil
}

func (r *ReadingSQLRepository) QueryRange(ctx context.Context, start, end time.Time) ([]UtilizationReading, error) {
	var rows []UtilizationReading
	err := r.db.WithContext(ctx).
		Where("recorded_at >= ? AND recorded_at < ?", start, end).
		Order("recorded_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "query readings range", err)
	}
	return rows, nil
}

func (r *ReadingSQLRepository) QueryLatest(ctx context.Context) (*UtilizationReading, error) {
	var reading UtilizationReading
	err := r.db.WithContext(ctx).Order("recorded_at DESC").First(&reading).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoReadings
		}
		return nil, apperrors.Wrap(apperrors.CodeStorage, "query latest reading", err)
	}
	return &reading, nil
}

const aggregateByWeekdayHourSQL = `SELECT weekday, hour,
	AVG(percentage) AS avg_percentage,
	MAX(percentage) AS max_percentage,
	MIN(percentage) AS min_percentage,
	COUNT(*) AS data_points
FROM utilization_readings
WHERE recorded_at >= ?
GROUP BY weekday, hour`

func (r *ReadingSQLRepository) AggregateByWeekdayHour(ctx context.Context, since time.Time) ([]BucketStats, error) {
	var stats []BucketStats
	if err := r.db.WithContext(ctx).Raw(aggregateByWeekdayHourSQL, since).Scan(&stats).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "aggregate readings by weekday and hour", err)
	}
	return stats, nil
}

const distinctDatesSQL = `SELECT to_char(recorded_at AT TIME ZONE ?, 'YYYY-MM-DD') AS date,
	COUNT(*) AS count
FROM utilization_readings
GROUP BY 1
ORDER BY 1 DESC`

func (r *ReadingSQLRepository) DistinctDates(ctx context.Context, loc *time.Location) ([]DateCount, error) {
	if loc == nil || loc.String() == "Local" {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "distinct dates need a named time zone", nil)
	}

	var dates []DateCount
	if err := r.db.WithContext(ctx).Raw(distinctDatesSQL, loc.String()).Scan(&dates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "query distinct dates", err)
	}
	return dates, nil
}

func validate(reading *UtilizationReading) error {
	switch {
	case reading == nil:
		return errors.New("nil reading")
	case reading.RecordedAt.IsZero():
		return errors.New("missing timestamp")
	case reading.Percentage < 0 || reading.Percentage > 100:
		return fmt.Errorf("percentage %d outside [0,100]", reading.Percentage)
	case reading.Weekday < 0 || reading.Weekday > 6:
		return fmt.Errorf("weekday %d outside [0,6]", reading.Weekday)
	case reading.Hour < 0 || reading.Hour > 23:
		return fmt.Errorf("hour %d outside [0,23]", reading.Hour)
	}

	// weather fields travel together
	set := 0
	for _, present := range []bool{
		reading.Temperature != nil,
		reading.Precipitation != nil,
		reading.CloudCover != nil,
		reading.IsRaining != nil,
	} {
		if present {
			set++
		}
	}
	if set != 0 && set != 4 {
		return errors.New("weather fields must be all present or all absent")
	}
	return nil
}
