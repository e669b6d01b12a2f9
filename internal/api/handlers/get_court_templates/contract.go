package get_court_templates

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/templates/models"
)

type TemplateService interface {
	GetCourtTemplates(ctx context.Context, courtID int64) (*models.TemplateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
