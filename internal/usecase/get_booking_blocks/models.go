package get_booking_blocks

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на получение бронируемых блоков
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата, на которую запрашиваются блоки (без времени)
}

// Response модель ответа со списком бронируемых блоков
type Response struct {
	CourtID int64          // ID корта
	Date    time.Time      // Дата, на которую запрашивались блоки
	Blocks  []domain.Block // Упорядоченный список бронируемых блоков
}
