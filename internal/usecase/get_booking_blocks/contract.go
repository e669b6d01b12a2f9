package get_booking_blocks

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
)

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	// GetActiveByCourtAndWeekday получает активные шаблоны корта на день недели (0=Mon..6=Sun)
	GetActiveByCourtAndWeekday(ctx context.Context, courtID int64, weekday int) ([]*domain.SlotTemplate, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlapping получает активные бронирования корта, пересекающиеся с окном
	GetOverlapping(ctx context.Context, courtID int64, window domain.Interval) ([]*domain.Booking, error)
}

// CourtServiceClient интерфейс клиента реестра кортов
type CourtServiceClient interface {
	GetCourt(ctx context.Context, courtID int64) (*courtservice.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
