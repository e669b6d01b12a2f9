package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/courtservice"
)

var moscow = time.FixedZone("MSK", 3*60*60)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, moscow)
}

// fakeBookingRepo имитирует хранилище бронирований с блокировкой по корту:
// LockCourt захватывает mutex, разблокировка происходит при коммите fakeTxManager
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64

	lockErr    error
	overlapErr error
	createErr  error
}

func (f *fakeBookingRepo) LockCourt(_ context.Context, _ int64) error {
	if f.lockErr != nil {
		return f.lockErr
	}
	f.mu.Lock()
	return nil
}

func (f *fakeBookingRepo) unlock() {
	f.mu.TryLock()
	f.mu.Unlock()
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, courtID int64, window domain.Interval) ([]*domain.Booking, error) {
	if f.overlapErr != nil {
		return nil, f.overlapErr
	}

	overlapping := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.CourtID == courtID && b.IsActive() && b.Interval().Overlaps(window) {
			overlapping = append(overlapping, b)
		}
	}
	return overlapping, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

// fakeTxManager выполняет fn напрямую и отпускает блокировку репозитория
// после завершения, имитируя освобождение advisory-блокировки при commit/rollback
type fakeTxManager struct {
	repo *fakeBookingRepo
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	defer f.repo.unlock()
	return fn(ctx)
}

type fakeBlockDeriver struct {
	blocks []domain.Block
	err    error
}

func (f *fakeBlockDeriver) DeriveBlocks(_ context.Context, _ int64, _ time.Time) ([]domain.Block, error) {
	return f.blocks, f.err
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

func defaultBlocks() []domain.Block {
	return []domain.Block{
		{Start: at(10, 0), End: at(11, 30), Price: 50},
		{Start: at(11, 30), End: at(13, 0), Price: 50},
	}
}

func newTestUseCase(repo *fakeBookingRepo, deriver *fakeBlockDeriver, court *fakeCourtClient) *UseCase {
	return NewUseCase(repo, deriver, court, &fakeTxManager{repo: repo}, moscow, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		UserID:  7,
		CourtID: 1,
		StartAt: at(10, 0),
		EndAt:   at(11, 30),
	}
}

func TestUseCase_Execute(t *testing.T) {
	court := &fakeCourtClient{court: &courtservice.Court{ID: 1, OwnerID: 10, IsActive: true}}

	t.Run("успешное создание с ценой из блока", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, &fakeBlockDeriver{blocks: defaultBlocks()}, court)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotZero(t, resp.ID)
		assert.Equal(t, int64(7), resp.UserID)
		assert.Equal(t, 50.0, resp.Price)
		assert.Equal(t, string(domain.StatusActive), resp.Status)
		assert.True(t, resp.StartAt.Equal(at(10, 0)))
		assert.True(t, resp.EndAt.Equal(at(11, 30)))
	})

	t.Run("интервал не совпадает ни с одним блоком", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, &fakeBlockDeriver{blocks: defaultBlocks()}, court)

		req := validRequest()
		req.StartAt = at(10, 30)
		req.EndAt = at(12, 0)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidBlock)
		assert.Empty(t, repo.bookings)
	})

	t.Run("частичное покрытие блока отклоняется", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockDeriver{blocks: defaultBlocks()}, court)

		req := validRequest()
		req.EndAt = at(11, 0)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidBlock)
	})

	t.Run("конкурент успел занять время - конфликт", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: []*domain.Booking{
			{ID: 1, CourtID: 1, StartAt: at(10, 0), EndAt: at(11, 30), Status: domain.StatusActive},
		}}
		// Блоки пересчитаны до конкурентной вставки: запрошенный блок еще в списке
		uc := newTestUseCase(repo, &fakeBlockDeriver{blocks: defaultBlocks()}, court)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("отмененное бронирование не мешает", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: []*domain.Booking{
			{ID: 1, CourtID: 1, StartAt: at(10, 0), EndAt: at(11, 30), Status: domain.StatusCancelled},
		}}
		uc := newTestUseCase(repo, &fakeBlockDeriver{blocks: defaultBlocks()}, court)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("несуществующий корт", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeBookingRepo{},
			&fakeBlockDeriver{blocks: defaultBlocks()},
			&fakeCourtClient{err: courtservice.ErrCourtNotFound},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("временная ошибка хранилища превращается в ErrBusy", func(t *testing.T) {
		repo := &fakeBookingRepo{lockErr: bookingRepo.ErrBusy}
		uc := newTestUseCase(repo, &fakeBlockDeriver{blocks: defaultBlocks()}, court)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBusy)
	})

	t.Run("прочие ошибки хранилища превращаются в ErrInternal", func(t *testing.T) {
		repo := &fakeBookingRepo{createErr: errors.New("disk full")}
		uc := newTestUseCase(repo, &fakeBlockDeriver{blocks: defaultBlocks()}, court)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUseCase_Execute_Validation(t *testing.T) {
	court := &fakeCourtClient{court: &courtservice.Court{ID: 1, IsActive: true}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockDeriver{blocks: defaultBlocks()}, court)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"нулевой userID", func(r *Request) { r.UserID = 0 }},
		{"отрицательный courtID", func(r *Request) { r.CourtID = -1 }},
		{"нулевое начало", func(r *Request) { r.StartAt = time.Time{} }},
		{"конец раньше начала", func(r *Request) { r.StartAt, r.EndAt = r.EndAt, r.StartAt }},
		{"конец равен началу", func(r *Request) { r.EndAt = r.StartAt }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// Два конкурентных запроса на один блок: ровно один выигрывает,
// второй получает ErrTimeConflict
func TestUseCase_Execute_ConcurrentSameBlock(t *testing.T) {
	court := &fakeCourtClient{court: &courtservice.Court{ID: 1, IsActive: true}}
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeBlockDeriver{blocks: defaultBlocks()}, court)

	const workers = 8
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			req := validRequest()
			req.UserID = userID
			_, err := uc.Execute(context.Background(), req)
			errs <- err
		}(int64(i + 1))
	}
	wg.Wait()
	close(errs)

	var created, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrTimeConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)
	require.Len(t, repo.bookings, 1)
}
