package get_booking_blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/availability"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
)

// UseCase use case для получения бронируемых блоков корта на дату
// Конвейер: шаблоны -> интервалы дня -> вычитание занятого времени -> блоки
type UseCase struct {
	templateRepo  TemplateRepository
	bookingRepo   BookingRepository
	courtService  CourtServiceClient
	location      *time.Location
	blockDuration time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// location - фиксированная таймзона деплоймента, blockDuration - длительность блока
func NewUseCase(
	templateRepo TemplateRepository,
	bookingRepo BookingRepository,
	courtService CourtServiceClient,
	location *time.Location,
	blockDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo:  templateRepo,
		bookingRepo:   bookingRepo,
		courtService:  courtService,
		location:      location,
		blockDuration: blockDuration,
		logger:        logger,
	}
}

// Execute выполняет use case получения бронируемых блоков
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingBlocks: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookingBlocks: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование и активность корта
	if _, err := uc.courtService.GetCourt(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtClient.ErrCourtNotFound) {
			uc.logger.Warn("GetBookingBlocks: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetBookingBlocks: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Вычисляем бронируемые блоки
	blocks, err := uc.deriveBlocks(ctx, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetBookingBlocks: derived %d blocks for court=%d, date=%s",
		len(blocks), req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Blocks:  blocks,
	}, nil
}

// deriveBlocks прогоняет конвейер доступности для корта на дату:
// шаблоны дня недели -> интервалы с ценами -> минус активные бронирования -> блоки.
// Вынесен отдельно, т.к. создание бронирования выполняет тот же расчет
// при валидации запрошенного блока
func (uc *UseCase) deriveBlocks(ctx context.Context, courtID int64, date time.Time) ([]domain.Block, error) {
	weekday := availability.Weekday(date)

	templates, err := uc.templateRepo.GetActiveByCourtAndWeekday(ctx, courtID, weekday)
	if err != nil {
		uc.logger.Error("GetBookingBlocks: failed to get templates for court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
	}

	base, err := availability.ResolveTemplates(templates, date, uc.location)
	if err != nil {
		uc.logger.Error("GetBookingBlocks: failed to resolve templates for court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to resolve templates: %v", ErrInternal, err)
	}

	// Нет шаблонов на этот день недели - корт закрыт, пустой список блоков
	window, ok := availability.DayWindow(base)
	if !ok {
		return []domain.Block{}, nil
	}

	bookings, err := uc.bookingRepo.GetOverlapping(ctx, courtID, window)
	if err != nil {
		uc.logger.Error("GetBookingBlocks: failed to get bookings for court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	free := availability.SubtractBusy(base, availability.BusyIntervals(bookings))

	return availability.SplitIntoBlocks(free, uc.blockDuration), nil
}

// DeriveBlocks пересчитывает бронируемые блоки без проверки корта
// Используется create_booking для валидации запрошенного блока
func (uc *UseCase) DeriveBlocks(ctx context.Context, courtID int64, date time.Time) ([]domain.Block, error) {
	return uc.deriveBlocks(ctx, courtID, date)
}
