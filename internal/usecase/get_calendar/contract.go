package get_calendar

import (
	"context"
	"time"
)

// ReservationRepository is the read surface the aggregator needs
type ReservationRepository interface {
	GetReservedDays(ctx context.Context, from, to time.Time, userID *int64) ([]time.Time, error)
}

// Logger is the logging surface the aggregator needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
