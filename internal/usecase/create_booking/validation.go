package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.EndAt.After(req.StartAt) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	return nil
}

// matchBlock ищет блок, точно совпадающий с запрошенным интервалом
// Частичные совпадения и произвольные окна не принимаются
func matchBlock(blocks []domain.Block, start, end time.Time) (domain.Block, error) {
	for _, block := range blocks {
		if block.Start.Equal(start) && block.End.Equal(end) {
			return block, nil
		}
	}
	return domain.Block{}, ErrInvalidBlock
}
