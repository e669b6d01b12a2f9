package get_booking_blocks

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getBookingBlocks "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_booking_blocks"
)

// BlockResponse HTTP модель бронируемого блока
type BlockResponse struct {
	Start string  `json:"start"` // RFC3339 с офсетом таймзоны
	End   string  `json:"end"`   // RFC3339 с офсетом таймзоны
	Price float64 `json:"price"`
}

// BookingBlocksResponse HTTP response model
type BookingBlocksResponse struct {
	CourtID int64           `json:"courtId"`
	Date    string          `json:"date"` // YYYY-MM-DD
	Blocks  []BlockResponse `json:"blocks"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingBlocks.Response) *BookingBlocksResponse {
	blocks := make([]BlockResponse, 0, len(resp.Blocks))
	for _, block := range resp.Blocks {
		blocks = append(blocks, BlockResponse{
			Start: block.Start.Format(time.RFC3339),
			End:   block.End.Format(time.RFC3339),
			Price: block.Price,
		})
	}

	return &BookingBlocksResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Blocks:  blocks,
	}
}
