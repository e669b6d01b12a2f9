package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// SlotTemplate represents a weekly recurring availability window for a court
// Example: Monday 10:00-22:00 for court 1
// На одну пару (court, weekday) может приходиться несколько шаблонов,
// в том числе пересекающихся
type SlotTemplate struct {
	ID        int64
	CourtID   int64
	Weekday   int // 0=Mon ... 6=Sun
	StartTime types.TimeString
	EndTime   types.TimeString
	BasePrice float64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет инварианты шаблона
func (t *SlotTemplate) Validate() error {
	if t.Weekday < MinWeekday || t.Weekday > MaxWeekday {
		return ErrInvalidWeekday
	}
	if err := t.StartTime.Validate(); err != nil {
		return err
	}
	if err := t.EndTime.Validate(); err != nil {
		return err
	}
	if !t.EndTime.IsAfter(t.StartTime) {
		return ErrTemplateEndNotAfterStart
	}
	return nil
}
