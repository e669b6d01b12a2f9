package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
)

// UseCase use case для создания бронирования
// Схема защиты от двойного бронирования:
//  1. До транзакции блоки пересчитываются по текущему снимку данных и запрошенный
//     интервал сверяется с ними - ловит некорректные и уже занятые интервалы.
//  2. Внутри сериализуемой транзакции берется advisory-блокировка по court_id и
//     занятость перепроверяется еще раз - ловит конкурентную вставку, успевшую
//     закоммититься между шагами 1 и 2. Проигравший получает ErrTimeConflict.
//
// Блокировка всегда ограничена одним кортом: кросс-кортовые дедлоки невозможны
type UseCase struct {
	bookingRepo  BookingRepository
	blockDeriver BlockDeriver
	courtService CourtServiceClient
	txManager    TransactionManager
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockDeriver BlockDeriver,
	courtService CourtServiceClient,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockDeriver: blockDeriver,
		courtService: courtService,
		txManager:    txManager,
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, start=%s, end=%s",
		req.UserID, req.CourtID, req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))

	// 1. Валидация входных данных (до любых обращений к хранилищу)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование и активность корта
	if _, err := uc.courtService.GetCourt(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtClient.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Пересчитываем блоки на дату начала и сверяем запрошенный интервал.
	// Цена и границы блока берутся из пересчета, клиентским данным не доверяем
	date := req.StartAt.In(uc.location)
	blocks, err := uc.blockDeriver.DeriveBlocks(ctx, req.CourtID, date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to derive blocks for court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to derive blocks: %v", ErrInternal, err)
	}

	matched, err := matchBlock(blocks, req.StartAt, req.EndAt)
	if err != nil {
		uc.logger.Warn("CreateBooking: requested interval is not a preset block: court=%d, start=%s, end=%s",
			req.CourtID, req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Атомарная секция: блокировка корта, перепроверка занятости, вставка
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Сериализуем конкурентные создания по этому корту
		if err := uc.bookingRepo.LockCourt(txCtx, req.CourtID); err != nil {
			return uc.mapStorageError("lock court", err)
		}

		// 4.2. Перепроверяем занятость: между пересчетом блоков и этой точкой
		// могла закоммититься конкурентная транзакция
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.CourtID, domain.Interval{
			Start: req.StartAt,
			End:   req.EndAt,
		})
		if err != nil {
			return uc.mapStorageError("recheck overlap", err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: conflict detected for court=%d, start=%s: %d overlapping bookings",
				req.CourtID, req.StartAt.Format(time.RFC3339), len(overlapping))
			return ErrTimeConflict
		}

		// 4.3. Создаем бронирование с ценой из совпавшего блока
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:  req.UserID,
			CourtID: req.CourtID,
			StartAt: matched.Start,
			EndAt:   matched.End,
			Price:   matched.Price,
			Status:  domain.StatusActive,
		})
		if err != nil {
			return uc.mapStorageError("create booking", err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for user=%d, court=%d",
		result.ID, req.UserID, req.CourtID)

	return fromDomain(result), nil
}

// mapStorageError конвертирует ошибки хранилища в ошибки usecase
// Временные ошибки (блокировки, serialization failure) становятся ErrBusy,
// остальные - ErrInternal
func (uc *UseCase) mapStorageError(op string, err error) error {
	if errors.Is(err, bookingRepo.ErrBusy) {
		uc.logger.Warn("CreateBooking: storage busy on %s: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrBusy, op, err)
	}
	uc.logger.Error("CreateBooking: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
