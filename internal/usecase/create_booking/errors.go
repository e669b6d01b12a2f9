package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден или неактивен
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrInvalidInput возвращается при некорректных входных данных (end <= start и т.п.)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidBlock возвращается, когда запрошенный интервал не совпадает
	// ни с одним бронируемым блоком на эту дату
	ErrInvalidBlock = errors.New("create_booking: requested interval is not an available preset block")

	// ErrTimeConflict возвращается, когда конкурентная транзакция успела создать
	// пересекающееся бронирование
	ErrTimeConflict = errors.New("create_booking: time range already booked")

	// ErrBusy возвращается при таймауте блокировки или serialization failure
	// Запрос можно безопасно повторить
	ErrBusy = errors.New("create_booking: storage is busy, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
