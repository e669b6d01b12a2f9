package get_booking_blocks

import (
	"context"

	getBookingBlocks "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_booking_blocks"
)

type GetBookingBlocksUseCase interface {
	Execute(ctx context.Context, req *getBookingBlocks.Request) (*getBookingBlocks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
