package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	courtClient CourtServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, courtClient CourtServiceClient, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		courtClient: courtClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Бронирование видит только его владелец: чужие бронирования
// неотличимы от несуществующих
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	record, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("[BookingsService.GetByID] Failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if record.UserID != userID {
		s.logger.Warn("[BookingsService.GetByID] User %d requested foreign booking %d", userID, bookingID)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(record), nil
}

// GetUserBookings получает список бронирований пользователя, сначала новые
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	status, err := parseStatusFilter(req.Status)
	if err != nil {
		return nil, err
	}

	records, err := s.bookingRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("[BookingsService.GetUserBookings] Failed to list bookings for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(records), nil
}

// GetCourtBookings получает расписание бронирований корта
// Доступно только владельцу корта
func (s *Service) GetCourtBookings(ctx context.Context, req *models.GetCourtBookingsRequest) (*models.BookingListResponse, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	court, err := s.courtClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtservice.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("[BookingsService.GetCourtBookings] Failed to get court %d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if court.OwnerID != req.UserID {
		s.logger.Warn("[BookingsService.GetCourtBookings] User %d is not the owner of court %d", req.UserID, req.CourtID)
		return nil, ErrAccessDenied
	}

	records, err := s.bookingRepo.GetByCourtWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("[BookingsService.GetCourtBookings] Failed to list bookings for court %d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(records), nil
}

// Cancel отменяет активное бронирование
// Отменить может только владелец бронирования. Повторная отмена
// возвращает ErrNotActive, слот при отмене снова становится доступным
func (s *Service) Cancel(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	record, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("[BookingsService.Cancel] Failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if record.UserID != userID {
		s.logger.Warn("[BookingsService.Cancel] User %d tried to cancel foreign booking %d", userID, bookingID)
		return nil, ErrBookingNotFound
	}

	if !record.CanBeCancelled() {
		return nil, ErrNotActive
	}

	// Условный UPDATE закрывает гонку двух одновременных отмен:
	// проигравший получает ErrBookingNotActive
	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotActive) {
			return nil, ErrNotActive
		}
		s.logger.Error("[BookingsService.Cancel] Failed to cancel booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	s.logger.Info("[BookingsService.Cancel] Booking %d cancelled by user %d", bookingID, userID)

	return models.FromDomainBooking(cancelled), nil
}

// parseStatusFilter валидирует опциональный фильтр по статусу
func parseStatusFilter(raw *string) (*domain.BookingStatus, error) {
	if raw == nil {
		return nil, nil
	}

	status, ok := models.ToDomainBookingStatus(*raw)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *raw)
	}

	return &status, nil
}
