package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

var moscow = time.FixedZone("MSK", 3*60*60)

// 2026-03-02 - понедельник
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func ts(t *testing.T, value string) types.TimeString {
	t.Helper()
	parsed, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return parsed
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, moscow)
}

func template(t *testing.T, weekday int, start, end string, price float64) *domain.SlotTemplate {
	t.Helper()
	return &domain.SlotTemplate{
		CourtID:   1,
		Weekday:   weekday,
		StartTime: ts(t, start),
		EndTime:   ts(t, end),
		BasePrice: price,
		IsActive:  true,
	}
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, 0, Weekday(monday))
	assert.Equal(t, 1, Weekday(monday.AddDate(0, 0, 1)))
	assert.Equal(t, 6, Weekday(monday.AddDate(0, 0, 6)))
	assert.Equal(t, 0, Weekday(monday.AddDate(0, 0, 7)))
}

func TestResolveTemplates(t *testing.T) {
	t.Run("шаблон дня недели разворачивается в интервал даты", func(t *testing.T) {
		got, err := ResolveTemplates([]*domain.SlotTemplate{
			template(t, 0, "10:00", "14:00", 50),
		}, monday, moscow)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Start.Equal(at(10, 0)))
		assert.True(t, got[0].End.Equal(at(14, 0)))
		assert.Equal(t, 50.0, got[0].Price)
	})

	t.Run("чужой день недели и неактивные шаблоны пропускаются", func(t *testing.T) {
		inactive := template(t, 0, "08:00", "09:00", 30)
		inactive.IsActive = false

		got, err := ResolveTemplates([]*domain.SlotTemplate{
			template(t, 1, "10:00", "14:00", 50), // вторник
			inactive,
		}, monday, moscow)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("пустой набор шаблонов означает закрытый день", func(t *testing.T) {
		got, err := ResolveTemplates(nil, monday, moscow)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDayWindow(t *testing.T) {
	t.Run("окно покрывает все интервалы", func(t *testing.T) {
		base := []domain.PricedInterval{
			{Interval: domain.Interval{Start: at(15, 0), End: at(20, 0)}, Price: 70},
			{Interval: domain.Interval{Start: at(9, 0), End: at(12, 0)}, Price: 50},
		}

		window, ok := DayWindow(base)
		require.True(t, ok)
		assert.True(t, window.Start.Equal(at(9, 0)))
		assert.True(t, window.End.Equal(at(20, 0)))
	})

	t.Run("нет интервалов - нет окна", func(t *testing.T) {
		_, ok := DayWindow(nil)
		assert.False(t, ok)
	})
}

func TestSubtractBusy(t *testing.T) {
	base := []domain.PricedInterval{
		{Interval: domain.Interval{Start: at(10, 0), End: at(14, 0)}, Price: 50},
	}

	t.Run("без занятых интервалов база не меняется", func(t *testing.T) {
		got := SubtractBusy(base, nil)
		require.Len(t, got, 1)
		assert.True(t, got[0].Interval.Equal(base[0].Interval))
		assert.Equal(t, 50.0, got[0].Price)
	})

	t.Run("занятый интервал режет базу на два куска с той же ценой", func(t *testing.T) {
		got := SubtractBusy(base, []domain.Interval{{Start: at(11, 30), End: at(13, 0)}})

		require.Len(t, got, 2)
		assert.True(t, got[0].Interval.Equal(domain.Interval{Start: at(10, 0), End: at(11, 30)}))
		assert.True(t, got[1].Interval.Equal(domain.Interval{Start: at(13, 0), End: at(14, 0)}))
		assert.Equal(t, 50.0, got[0].Price)
		assert.Equal(t, 50.0, got[1].Price)
	})

	t.Run("результат отсортирован по началу", func(t *testing.T) {
		multi := []domain.PricedInterval{
			{Interval: domain.Interval{Start: at(15, 0), End: at(18, 0)}, Price: 70},
			{Interval: domain.Interval{Start: at(9, 0), End: at(12, 0)}, Price: 50},
		}

		got := SubtractBusy(multi, []domain.Interval{{Start: at(10, 0), End: at(10, 30)}})

		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].Start.Before(got[i-1].Start))
		}
	})

	t.Run("занятость не пересекающая базу ничего не меняет", func(t *testing.T) {
		got := SubtractBusy(base, []domain.Interval{{Start: at(14, 0), End: at(15, 30)}})
		require.Len(t, got, 1)
		assert.True(t, got[0].Interval.Equal(base[0].Interval))
	})
}

func TestSplitIntoBlocks(t *testing.T) {
	blockDuration := 90 * time.Minute

	t.Run("интервал нарезается без частичных блоков", func(t *testing.T) {
		free := []domain.PricedInterval{
			{Interval: domain.Interval{Start: at(10, 0), End: at(14, 0)}, Price: 50},
		}

		// 240 минут / 90 = 2 полных блока, остаток 60 минут отбрасывается
		got := SplitIntoBlocks(free, blockDuration)

		require.Len(t, got, 2)
		assert.True(t, got[0].Start.Equal(at(10, 0)))
		assert.True(t, got[0].End.Equal(at(11, 30)))
		assert.True(t, got[1].Start.Equal(at(11, 30)))
		assert.True(t, got[1].End.Equal(at(13, 0)))
		assert.Equal(t, 50.0, got[0].Price)
	})

	t.Run("интервал короче блока не дает блоков", func(t *testing.T) {
		free := []domain.PricedInterval{
			{Interval: domain.Interval{Start: at(10, 0), End: at(11, 0)}, Price: 50},
		}
		assert.Empty(t, SplitIntoBlocks(free, blockDuration))
	})

	t.Run("нарезка каждого интервала начинается с его начала", func(t *testing.T) {
		free := []domain.PricedInterval{
			{Interval: domain.Interval{Start: at(10, 15), End: at(13, 15)}, Price: 50},
		}

		got := SplitIntoBlocks(free, blockDuration)

		require.Len(t, got, 2)
		assert.True(t, got[0].Start.Equal(at(10, 15)))
		assert.True(t, got[1].End.Equal(at(13, 15)))
	})

	t.Run("некорректная длительность дает пустой результат", func(t *testing.T) {
		free := []domain.PricedInterval{
			{Interval: domain.Interval{Start: at(10, 0), End: at(14, 0)}, Price: 50},
		}
		assert.Empty(t, SplitIntoBlocks(free, 0))
	})
}

func TestBusyIntervals(t *testing.T) {
	bookings := []*domain.Booking{
		{StartAt: at(10, 0), EndAt: at(11, 30), Status: domain.StatusActive},
		{StartAt: at(11, 30), EndAt: at(13, 0), Status: domain.StatusCancelled},
	}

	got := BusyIntervals(bookings)

	// Отмененное бронирование не ограничивает доступность
	require.Len(t, got, 1)
	assert.True(t, got[0].Start.Equal(at(10, 0)))
}

// Сквозной сценарий: шаблон понедельника 10:00-14:00, цена 50, блок 90 минут
func TestPipeline_TemplateToBlocks(t *testing.T) {
	templates := []*domain.SlotTemplate{template(t, 0, "10:00", "14:00", 50)}

	resolved, err := ResolveTemplates(templates, monday, moscow)
	require.NoError(t, err)

	free := SubtractBusy(resolved, nil)
	blocks := SplitIntoBlocks(free, 90*time.Minute)

	require.Len(t, blocks, 2)
	assert.True(t, blocks[0].Start.Equal(at(10, 0)))
	assert.True(t, blocks[0].End.Equal(at(11, 30)))
	assert.True(t, blocks[1].Start.Equal(at(11, 30)))
	assert.True(t, blocks[1].End.Equal(at(13, 0)))

	// Повторный расчет дает тот же результат
	again := SplitIntoBlocks(SubtractBusy(resolved, nil), 90*time.Minute)
	assert.Equal(t, blocks, again)
}

// Бронирование одного блока убирает ровно его, соседние блоки остаются
func TestPipeline_BookedBlockDisappears(t *testing.T) {
	templates := []*domain.SlotTemplate{template(t, 0, "10:00", "13:00", 50)}

	resolved, err := ResolveTemplates(templates, monday, moscow)
	require.NoError(t, err)

	busy := []domain.Interval{{Start: at(10, 0), End: at(11, 30)}}
	blocks := SplitIntoBlocks(SubtractBusy(resolved, busy), 90*time.Minute)

	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].Start.Equal(at(11, 30)))
	assert.True(t, blocks[0].End.Equal(at(13, 0)))
}
