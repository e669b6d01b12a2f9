// Package availability содержит чистые функции расчета доступного времени корта:
// разворачивание недельных шаблонов в интервалы дня, вычитание занятого времени
// и нарезку свободного времени на бронируемые блоки.
package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Weekday возвращает день недели в конвенции Monday=0 ... Sunday=6
// (в time.Weekday воскресенье имеет номер 0)
func Weekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// ResolveTemplates разворачивает недельные шаблоны в конкретные интервалы
// указанной даты в таймзоне loc, перенося базовую цену шаблона на интервал.
// Шаблоны, не относящиеся к дню недели даты, и неактивные шаблоны пропускаются.
// Пустой результат - не ошибка: корт в этот день закрыт.
func ResolveTemplates(templates []*domain.SlotTemplate, date time.Time, loc *time.Location) ([]domain.PricedInterval, error) {
	weekday := Weekday(date)

	intervals := make([]domain.PricedInterval, 0, len(templates))

	for _, tpl := range templates {
		if !tpl.IsActive || tpl.Weekday != weekday {
			continue
		}

		start, err := tpl.StartTime.OnDate(date, loc)
		if err != nil {
			return nil, err
		}

		end, err := tpl.EndTime.OnDate(date, loc)
		if err != nil {
			return nil, err
		}

		intervals = append(intervals, domain.PricedInterval{
			Interval: domain.Interval{Start: start, End: end},
			Price:    tpl.BasePrice,
		})
	}

	return intervals, nil
}

// DayWindow вычисляет окно дня [min(start), max(end)) по базовым интервалам
// Второе значение false, если интервалов нет
func DayWindow(base []domain.PricedInterval) (domain.Interval, bool) {
	if len(base) == 0 {
		return domain.Interval{}, false
	}

	window := base[0].Interval
	for _, s := range base[1:] {
		if s.Start.Before(window.Start) {
			window.Start = s.Start
		}
		if s.End.After(window.End) {
			window.End = s.End
		}
	}

	return window, true
}

// SubtractBusy вычитает занятые интервалы из каждого базового интервала
// независимо, перенося цену базового интервала на каждый фрагмент.
// Куски нулевой длины отбрасываются. Результат отсортирован по времени начала,
// при равенстве сохраняется порядок базовых интервалов.
func SubtractBusy(base []domain.PricedInterval, busy []domain.Interval) []domain.PricedInterval {
	result := make([]domain.PricedInterval, 0, len(base))

	for _, slot := range base {
		current := []domain.Interval{slot.Interval}

		for _, b := range busy {
			next := make([]domain.Interval, 0, len(current))
			for _, fragment := range current {
				next = append(next, fragment.Subtract(b)...)
			}
			current = next
		}

		for _, fragment := range current {
			result = append(result, domain.PricedInterval{
				Interval: fragment,
				Price:    slot.Price,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})

	return result
}

// SplitIntoBlocks нарезает свободные интервалы на блоки фиксированной длительности.
// Нарезка каждого интервала начинается с его собственного начала, поэтому блоки
// разных интервалов не обязаны быть выровнены друг относительно друга.
// Остаток короче одного блока отбрасывается, частичные блоки не выдаются.
func SplitIntoBlocks(free []domain.PricedInterval, blockDuration time.Duration) []domain.Block {
	blocks := make([]domain.Block, 0, len(free))

	if blockDuration <= 0 {
		return blocks
	}

	for _, slot := range free {
		current := slot.Start
		for !current.Add(blockDuration).After(slot.End) {
			blocks = append(blocks, domain.Block{
				Start: current,
				End:   current.Add(blockDuration),
				Price: slot.Price,
			})
			current = current.Add(blockDuration)
		}
	}

	return blocks
}

// BusyIntervals извлекает интервалы активных бронирований
// Неактивные (отмененные) бронирования не ограничивают доступность
func BusyIntervals(bookings []*domain.Booking) []domain.Interval {
	busy := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		busy = append(busy, b.Interval())
	}
	return busy
}
