package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID  int64     // ID пользователя (из auth-коллаборатора)
	CourtID int64     // ID корта
	StartAt time.Time // Начало запрошенного блока
	EndAt   time.Time // Конец запрошенного блока (полуоткрытый интервал)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID      int64
	UserID  int64
	CourtID int64
	StartAt time.Time
	EndAt   time.Time
	// Цена берется из совпавшего блока, а не из запроса клиента
	Price     float64
	Status    string
	CreatedAt time.Time
}

// fromDomain конвертирует domain модель в ответ usecase
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		UserID:    b.UserID,
		CourtID:   b.CourtID,
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
		Price:     b.Price,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}
