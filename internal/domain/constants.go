package domain

import "errors"

// Default configuration values
const (
	DefaultBlockDurationMinutes = 90
)

// Business validation constants
const (
	MinWeekday = 0 // Monday
	MaxWeekday = 6 // Sunday

	MinBlockDurationMinutes = 5
	MaxBlockDurationMinutes = 480 // 8 hours
)

// DateFormat формат календарной даты в API (YYYY-MM-DD)
const DateFormat = "2006-01-02"

var (
	// ErrInvalidWeekday возвращается при дне недели вне диапазона 0..6
	ErrInvalidWeekday = errors.New("weekday must be in range 0 (Monday) .. 6 (Sunday)")

	// ErrTemplateEndNotAfterStart возвращается, когда конец шаблона не позже начала
	ErrTemplateEndNotAfterStart = errors.New("template end time must be after start time")
)
