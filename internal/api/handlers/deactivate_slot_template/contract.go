package deactivate_slot_template

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/templates/models"
)

type TemplateService interface {
	Deactivate(ctx context.Context, req *models.DeactivateTemplateRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
