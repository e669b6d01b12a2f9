package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// LockCourt берет транзакционную блокировку на корт (advisory lock)
	// Должен вызываться только внутри транзакции
	LockCourt(ctx context.Context, courtID int64) error
	// GetOverlapping получает активные бронирования корта, пересекающиеся с окном
	// Внутри транзакции блокирует найденные строки (FOR UPDATE)
	GetOverlapping(ctx context.Context, courtID int64, window domain.Interval) ([]*domain.Booking, error)
	// Create создает бронирование со статусом active
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// BlockDeriver пересчитывает бронируемые блоки корта на дату
// Реализуется usecase получения блоков: создание бронирования никогда
// не доверяет цене и границам из запроса клиента
type BlockDeriver interface {
	DeriveBlocks(ctx context.Context, courtID int64, date time.Time) ([]domain.Block, error)
}

// CourtServiceClient интерфейс клиента реестра кортов
type CourtServiceClient interface {
	GetCourt(ctx context.Context, courtID int64) (*courtservice.Court, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
