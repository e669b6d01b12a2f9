package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End)
// Транзитное value object: живет только в памяти во время расчета доступности
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsEmpty returns true if the interval has zero or negative length
func (i Interval) IsEmpty() bool {
	return !i.End.After(i.Start)
}

// Duration returns the interval length
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps проверяет реальное пересечение с other
// Граничащие интервалы ([10:00,11:00) и [11:00,12:00)) НЕ пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Equal проверяет точное совпадение границ
func (i Interval) Equal(other Interval) bool {
	return i.Start.Equal(other.Start) && i.End.Equal(other.End)
}

// Subtract возвращает остаток интервала после вычитания busy (0, 1 или 2 куска)
// Результат никогда не содержит кусков нулевой длины
func (i Interval) Subtract(busy Interval) []Interval {
	// Нет пересечения - интервал не меняется
	if !i.Overlaps(busy) {
		return []Interval{i}
	}

	// busy полностью покрывает интервал
	if !busy.Start.After(i.Start) && !busy.End.Before(i.End) {
		return nil
	}

	pieces := make([]Interval, 0, 2)

	// Левый остаток [i.Start, busy.Start)
	if busy.Start.After(i.Start) {
		pieces = append(pieces, Interval{Start: i.Start, End: busy.Start})
	}

	// Правый остаток [busy.End, i.End)
	if busy.End.Before(i.End) {
		pieces = append(pieces, Interval{Start: busy.End, End: i.End})
	}

	result := pieces[:0]
	for _, p := range pieces {
		if !p.IsEmpty() {
			result = append(result, p)
		}
	}

	return result
}

// PricedInterval интервал с ценой, унаследованной от породившего его шаблона
type PricedInterval struct {
	Interval
	Price float64
}

// Block бронируемый блок фиксированной длительности
type Block struct {
	Start time.Time
	End   time.Time
	Price float64
}

// Interval returns the block boundaries as a half-open interval
func (b Block) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}
