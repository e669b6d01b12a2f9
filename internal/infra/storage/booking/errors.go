package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBookingNotActive возвращается, когда условное обновление не нашло
	// активной строки (бронирование отсутствует или уже отменено)
	ErrBookingNotActive = errors.New("booking.repository: booking is not active")

	// ErrBusy возвращается при таймауте блокировки, serialization failure или
	// deadlock. Операцию можно безопасно повторить
	ErrBusy = errors.New("booking.repository: operation temporarily unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
