package courtservice

// Court модель корта из реестра CourtService
// Движок бронирования не владеет кортами: ему нужны только идентификатор,
// владелец и флаг активности
type Court struct {
	ID       int64  `json:"id"`
	ArenaID  int64  `json:"arena_id"`
	Name     string `json:"name"`
	OwnerID  int64  `json:"owner_id"`
	IsActive bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от CourtService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
