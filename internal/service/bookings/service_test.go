package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID       map[int64]*domain.Booking
	byUser     []*domain.Booking
	byCourt    []*domain.Booking
	cancelErr  error
	listErr    error
	cancelCall int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byUser, f.listErr
}

func (f *fakeBookingRepo) GetByCourtWithFilter(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return f.byCourt, f.listErr
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) (*domain.Booking, error) {
	f.cancelCall++
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}

	booking, ok := f.byID[id]
	if !ok || !booking.IsActive() {
		return nil, bookingRepo.ErrBookingNotActive
	}

	now := time.Now()
	cancelled := *booking
	cancelled.Status = domain.StatusCancelled
	cancelled.CancelledAt = &now
	f.byID[id] = &cancelled
	return &cancelled, nil
}

type fakeCourtClient struct {
	court *courtservice.Court
	err   error
}

func (f *fakeCourtClient) GetCourt(_ context.Context, _ int64) (*courtservice.Court, error) {
	return f.court, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID:      id,
		UserID:  userID,
		CourtID: 1,
		StartAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC),
		Price:   50,
		Status:  domain.StatusActive,
	}
}

func newTestService(repo *fakeBookingRepo, court *fakeCourtClient) *Service {
	if court == nil {
		court = &fakeCourtClient{court: &courtservice.Court{ID: 1, OwnerID: 10, IsActive: true}}
	}
	return NewService(repo, court, nopLogger{})
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{
		1: activeBooking(1, 7),
	}}
	svc := newTestService(repo, nil)

	t.Run("владелец видит свое бронирование", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "active", got.Status)
	})

	t.Run("чужое бронирование неотличимо от несуществующего", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 8)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("несуществующее бронирование", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, 7)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("некорректный ID", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 0, 7)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{byUser: []*domain.Booking{
		activeBooking(2, 7),
		activeBooking(1, 7),
	}}
	svc := newTestService(repo, nil)

	t.Run("список бронирований пользователя", func(t *testing.T) {
		got, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7})
		require.NoError(t, err)
		require.Len(t, got.Bookings, 2)
		assert.Equal(t, int64(2), got.Bookings[0].ID)
	})

	t.Run("неизвестный статус отклоняется", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7, Status: ptr.Ptr("pending")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("валидный статус проходит", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7, Status: ptr.Ptr("active")})
		assert.NoError(t, err)
	})
}

func TestService_GetCourtBookings(t *testing.T) {
	repo := &fakeBookingRepo{byCourt: []*domain.Booking{activeBooking(1, 7)}}

	t.Run("владелец корта видит расписание", func(t *testing.T) {
		svc := newTestService(repo, &fakeCourtClient{court: &courtservice.Court{ID: 1, OwnerID: 10, IsActive: true}})

		got, err := svc.GetCourtBookings(context.Background(), &models.GetCourtBookingsRequest{UserID: 10, CourtID: 1})
		require.NoError(t, err)
		assert.Len(t, got.Bookings, 1)
	})

	t.Run("не владелец получает отказ", func(t *testing.T) {
		svc := newTestService(repo, &fakeCourtClient{court: &courtservice.Court{ID: 1, OwnerID: 10, IsActive: true}})

		_, err := svc.GetCourtBookings(context.Background(), &models.GetCourtBookingsRequest{UserID: 11, CourtID: 1})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("несуществующий корт", func(t *testing.T) {
		svc := newTestService(repo, &fakeCourtClient{err: courtservice.ErrCourtNotFound})

		_, err := svc.GetCourtBookings(context.Background(), &models.GetCourtBookingsRequest{UserID: 10, CourtID: 99})
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("endDate раньше startDate отклоняется", func(t *testing.T) {
		svc := newTestService(repo, nil)

		start := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		_, err := svc.GetCourtBookings(context.Background(), &models.GetCourtBookingsRequest{
			UserID: 10, CourtID: 1, StartDate: &start, EndDate: &end,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("владелец отменяет активное бронирование", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: activeBooking(1, 7)}}
		svc := newTestService(repo, nil)

		got, err := svc.Cancel(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", got.Status)
		assert.NotNil(t, got.CancelledAt)
	})

	t.Run("повторная отмена отклоняется", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: activeBooking(1, 7)}}
		svc := newTestService(repo, nil)

		_, err := svc.Cancel(context.Background(), 1, 7)
		require.NoError(t, err)

		_, err = svc.Cancel(context.Background(), 1, 7)
		assert.ErrorIs(t, err, ErrNotActive)
	})

	t.Run("чужое бронирование нельзя отменить", func(t *testing.T) {
		repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: activeBooking(1, 7)}}
		svc := newTestService(repo, nil)

		_, err := svc.Cancel(context.Background(), 1, 8)
		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.Zero(t, repo.cancelCall)
	})

	t.Run("гонка двух отмен: проигравший получает ErrNotActive", func(t *testing.T) {
		// Между чтением и UPDATE конкурент успел отменить бронирование
		repo := &fakeBookingRepo{
			byID:      map[int64]*domain.Booking{1: activeBooking(1, 7)},
			cancelErr: bookingRepo.ErrBookingNotActive,
		}
		svc := newTestService(repo, nil)

		_, err := svc.Cancel(context.Background(), 1, 7)
		assert.ErrorIs(t, err, ErrNotActive)
	})

	t.Run("ошибка хранилища превращается в ErrInternal", func(t *testing.T) {
		repo := &fakeBookingRepo{
			byID:      map[int64]*domain.Booking{1: activeBooking(1, 7)},
			cancelErr: errors.New("connection reset"),
		}
		svc := newTestService(repo, nil)

		_, err := svc.Cancel(context.Background(), 1, 7)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
